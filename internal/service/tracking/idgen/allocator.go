// Package idgen 송장번호의 순차 시퀀스 할당과 문자열 표기를 담당합니다.
package idgen

import (
	"sync/atomic"

	applog "github.com/darkkaiser/tracking-server/pkg/log"
)

const component = "tracking.idgen"

// Allocator [StartRange, EndRange] 구간의 시퀀스를 중복 없이 오름차순으로 할당합니다.
//
// 상태는 다음에 발급할 값을 담은 단일 원자 카운터이며, CAS로만 변경됩니다.
// 카운터가 EndRange+1에 도달하면 범위가 소진된 것으로 보고 이후 모든 호출은
// ErrExhaustedRange를 반환합니다. 소진 상태는 자동으로 초기화되지 않습니다.
type Allocator struct {
	cfg RangeConfig

	next atomic.Int64

	exhaustedLogged atomic.Bool
}

// NewAllocator 설정을 검증한 뒤 카운터를 StartRange로 초기화한 Allocator를 생성합니다.
func NewAllocator(cfg RangeConfig) (*Allocator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &Allocator{cfg: cfg}
	a.Initialize(cfg.StartRange)

	return a, nil
}

// Initialize 카운터를 start로 올립니다. 카운터가 이미 start 이상이면 아무것도 하지 않습니다.
// 카운터는 EndRange+1(소진 표시)을 넘지 않도록 제한되며, 실제로 값을 바꿨는지 여부를 반환합니다.
func (a *Allocator) Initialize(start int64) bool {
	target := min(start, a.cfg.EndRange+1)

	for {
		cur := a.next.Load()
		if cur >= target {
			return false
		}
		if a.next.CompareAndSwap(cur, target) {
			applog.WithComponentAndFields(component, applog.Fields{
				"from": cur,
				"to":   target,
			}).Debug("시퀀스 카운터 초기화")
			return true
		}
	}
}

// Next 다음 시퀀스를 할당합니다. 동시에 호출되어도 같은 값을 두 번 반환하지 않으며,
// 단일 고루틴 기준으로 반환 값은 엄격하게 증가합니다.
func (a *Allocator) Next() (int64, error) {
	for {
		cur := a.next.Load()

		seq := max(cur, a.cfg.StartRange)
		if seq > a.cfg.EndRange {
			a.logExhaustedOnce()
			return 0, ErrExhaustedRange
		}

		if a.next.CompareAndSwap(cur, seq+1) {
			return seq, nil
		}
	}
}

// Remaining 아직 할당되지 않은 시퀀스의 개수를 반환합니다.
func (a *Allocator) Remaining() int64 {
	seq := max(a.next.Load(), a.cfg.StartRange)
	if seq > a.cfg.EndRange {
		return 0
	}
	return a.cfg.EndRange - seq + 1
}

// Current 다음에 할당될 카운터 값을 반환합니다. 소진된 경우 EndRange+1입니다.
func (a *Allocator) Current() int64 {
	return a.next.Load()
}

// Exhausted 범위가 모두 소진되었는지 여부를 반환합니다.
func (a *Allocator) Exhausted() bool {
	return a.Remaining() == 0
}

// Config 할당기의 범위 설정을 반환합니다.
func (a *Allocator) Config() RangeConfig {
	return a.cfg
}

func (a *Allocator) logExhaustedOnce() {
	if a.exhaustedLogged.CompareAndSwap(false, true) {
		applog.WithComponentAndFields(component, applog.Fields{
			"start_range": a.cfg.StartRange,
			"end_range":   a.cfg.EndRange,
			"instance_id": a.cfg.InstanceID,
		}).Error("송장번호 시퀀스 범위가 모두 소진되었습니다. 새로운 범위로 재시작이 필요합니다")
	}
}
