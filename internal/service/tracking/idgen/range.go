package idgen

import (
	"math"
	"unicode/utf8"

	apperrors "github.com/darkkaiser/tracking-server/internal/pkg/errors"
)

// MaxInstanceIDLength 인스턴스 식별자의 최대 길이(문자 수)입니다.
const MaxInstanceIDLength = 99

// RangeConfig 한 서버 인스턴스가 발급할 수 있는 시퀀스 범위와 표기 방식입니다.
//
// 여러 인스턴스가 서로 겹치지 않는 [StartRange, EndRange] 구간을 나눠 가지면
// 인스턴스 간 조율 없이도 전역적으로 유일한 송장번호가 보장됩니다.
type RangeConfig struct {
	StartRange int64  // 발급 가능한 첫 번째 시퀀스 (포함)
	EndRange   int64  // 발급 가능한 마지막 시퀀스 (포함)
	Padding    int    // 시퀀스를 0으로 채울 최소 자릿수
	InstanceID string // 송장번호에 삽입되는 인스턴스 식별자
}

// Validate 범위 설정이 유효한지 검증합니다.
func (c RangeConfig) Validate() error {
	if c.StartRange >= c.EndRange {
		return apperrors.Newf(apperrors.InvalidInput, "시퀀스 시작값(start_range: %d)은 종료값(end_range: %d)보다 작아야 합니다", c.StartRange, c.EndRange)
	}
	if c.EndRange == math.MaxInt64 {
		return apperrors.Newf(apperrors.InvalidInput, "시퀀스 종료값(end_range)은 %d보다 작아야 합니다", int64(math.MaxInt64))
	}
	if c.Padding <= 0 {
		return apperrors.Newf(apperrors.InvalidInput, "시퀀스 자릿수(padding)는 0보다 커야 합니다: %d", c.Padding)
	}
	if n := utf8.RuneCountInString(c.InstanceID); n > MaxInstanceIDLength {
		return apperrors.Newf(apperrors.InvalidInput, "인스턴스 식별자(instance_id)는 %d자를 초과할 수 없습니다: %d자", MaxInstanceIDLength, n)
	}
	return nil
}

// Capacity 범위 전체에서 발급 가능한 시퀀스의 개수입니다.
func (c RangeConfig) Capacity() int64 {
	return c.EndRange - max(c.StartRange, 0) + 1
}
