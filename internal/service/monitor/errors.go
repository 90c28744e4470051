package monitor

import (
	apperrors "github.com/darkkaiser/tracking-server/internal/pkg/errors"
)

// NewErrInvalidTimeSpec 점검 주기 표현식을 해석하지 못했을 때 반환하는 에러를 생성합니다.
func NewErrInvalidTimeSpec(err error, spec string) error {
	return apperrors.Wrapf(err, apperrors.InvalidInput, "용량 점검 주기 표현식이 올바르지 않습니다 (time_spec: %q)", spec)
}
