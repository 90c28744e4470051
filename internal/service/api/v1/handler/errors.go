package handler

import (
	apperrors "github.com/darkkaiser/tracking-server/internal/pkg/errors"
	"github.com/darkkaiser/tracking-server/internal/service/api/constants"
	"github.com/darkkaiser/tracking-server/internal/service/api/httputil"
)

// NewErrInvalidBody 요청 본문을 파싱할 수 없을 때의 에러를 생성합니다.
func NewErrInvalidBody() error {
	return httputil.NewBadRequestError(constants.ErrMsgInvalidBody)
}

// NewErrValidationFailed 요청 값 검증에 실패했을 때의 에러를 생성합니다.
func NewErrValidationFailed(msg string) error {
	return httputil.NewBadRequestError(msg)
}

// toHTTPError 서비스 계층 에러를 HTTP 에러로 변환합니다.
//
// 응답 코드는 에러 체인에서 가장 안쪽에 있는 AppError의 타입으로 결정합니다.
//
//   - Exhausted: 500 (발급 범위 소진 전용 메시지)
//   - InvalidInput: 400 (가장 바깥 AppError의 메시지)
//   - Unavailable: 503
//   - 그 외: 500
func toHTTPError(err error) error {
	switch apperrors.UnderlyingType(err) {
	case apperrors.Exhausted:
		return httputil.NewInternalServerError(constants.ErrMsgExhaustedRange)

	case apperrors.InvalidInput:
		var appErr *apperrors.AppError
		if apperrors.As(err, &appErr) {
			return httputil.NewBadRequestError(appErr.Message())
		}
		return httputil.NewBadRequestError(err.Error())

	case apperrors.Unavailable:
		return httputil.NewServiceUnavailableError(constants.ErrMsgStoreUnavailable)

	default:
		return httputil.NewInternalServerError(constants.ErrMsgInternalServer)
	}
}
