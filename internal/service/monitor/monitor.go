// Package monitor 송장번호 시퀀스의 남은 용량을 주기적으로 점검합니다.
package monitor

import (
	"context"
	"sync"

	"github.com/darkkaiser/tracking-server/internal/service/tracking/idgen"
	"github.com/darkkaiser/tracking-server/pkg/cronx"
	applog "github.com/darkkaiser/tracking-server/pkg/log"
	"github.com/darkkaiser/tracking-server/pkg/strutil"
	"github.com/robfig/cron/v3"
)

const component = "monitor.service"

// 용량 상태
const (
	levelOK = iota
	levelWarning
	levelExhausted
)

// Options 모니터 설정입니다.
type Options struct {
	// TimeSpec 점검 주기 (초 단위를 포함한 cron 표현식 또는 @every 형식)
	TimeSpec string

	// WarningThreshold 남은 시퀀스 비율이 이 값 이하로 떨어지면 경고합니다. (0~1)
	WarningThreshold float64
}

// CapacityMonitor 시퀀스 할당기의 남은 용량을 cron 주기로 점검하고 로그로 남깁니다.
//
// 경고와 소진 로그는 상태가 바뀔 때 한 번만 기록합니다.
type CapacityMonitor struct {
	opts      Options
	allocator *idgen.Allocator

	cron *cron.Cron

	// lastLevel 마지막으로 보고한 용량 상태
	lastLevel int

	running   bool
	runningMu sync.Mutex
}

// NewService 새로운 CapacityMonitor를 생성합니다.
func NewService(opts Options, allocator *idgen.Allocator) *CapacityMonitor {
	if allocator == nil {
		panic("Allocator는 필수입니다")
	}

	return &CapacityMonitor{
		opts:      opts,
		allocator: allocator,
		lastLevel: levelOK,
	}
}

// Start 점검 작업을 cron에 등록하고 시작합니다. serviceStopCtx가 취소되면 스케줄러를 멈추고 serviceStopWG.Done()을 호출합니다.
func (m *CapacityMonitor) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	m.runningMu.Lock()
	defer m.runningMu.Unlock()

	applog.WithComponent(component).Info("서비스 시작 진입: 용량 모니터 서비스 초기화 프로세스를 시작합니다")

	if m.running {
		serviceStopWG.Done()
		applog.WithComponent(component).Warn("용량 모니터 서비스가 이미 실행 중입니다 (중복 호출)")
		return nil
	}

	c := cronx.New(component)
	if _, err := c.AddFunc(m.opts.TimeSpec, m.check); err != nil {
		serviceStopWG.Done()
		return NewErrInvalidTimeSpec(err, m.opts.TimeSpec)
	}

	// 시작 직후의 상태를 한 번 기록한다.
	m.check()

	m.cron = c
	m.cron.Start()
	m.running = true

	applog.WithComponentAndFields(component, applog.Fields{
		"time_spec":         m.opts.TimeSpec,
		"warning_threshold": m.opts.WarningThreshold,
	}).Info("서비스 시작 완료: 용량 모니터 서비스가 정상적으로 초기화되었습니다")

	go func() {
		defer serviceStopWG.Done()

		<-serviceStopCtx.Done()

		m.stop()
	}()

	return nil
}

func (m *CapacityMonitor) stop() {
	m.runningMu.Lock()
	defer m.runningMu.Unlock()

	if !m.running {
		return
	}

	applog.WithComponent(component).Info("종료 절차 진입: 용량 모니터 서비스 중지 시그널을 수신했습니다")

	if m.cron != nil {
		<-m.cron.Stop().Done()
	}

	m.cron = nil
	m.running = false

	applog.WithComponent(component).Info("용량 모니터 서비스 종료 완료")
}

// check 남은 용량을 점검합니다. cron의 SkipIfStillRunning 체인 덕분에 동시에 실행되지 않습니다.
func (m *CapacityMonitor) check() {
	cfg := m.allocator.Config()
	remaining := m.allocator.Remaining()
	capacity := cfg.Capacity()

	ratio := 0.0
	if capacity > 0 {
		ratio = float64(remaining) / float64(capacity)
	}

	level := levelOK
	switch {
	case remaining == 0:
		level = levelExhausted
	case ratio <= m.opts.WarningThreshold:
		level = levelWarning
	}

	fields := applog.Fields{
		"instance_id":     cfg.InstanceID,
		"remaining":       strutil.FormatCommas(remaining),
		"capacity":        strutil.FormatCommas(capacity),
		"remaining_ratio": ratio,
	}

	if level == m.lastLevel {
		applog.WithComponentAndFields(component, fields).Debug("시퀀스 용량 점검")
		return
	}
	m.lastLevel = level

	switch level {
	case levelExhausted:
		applog.WithComponentAndFields(component, fields).Error("시퀀스 범위가 모두 소진되었습니다: 새로운 범위로 재시작이 필요합니다")
	case levelWarning:
		applog.WithComponentAndFields(component, fields).Warn("시퀀스 잔여 용량이 경고 기준 이하로 떨어졌습니다")
	default:
		applog.WithComponentAndFields(component, fields).Info("시퀀스 잔여 용량이 정상 범위입니다")
	}
}
