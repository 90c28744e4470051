// Package httputil HTTP 에러 응답 생성과 전역 에러 처리를 담당합니다.
package httputil

import (
	"errors"
	"net/http"

	"github.com/darkkaiser/tracking-server/internal/service/api/constants"
	"github.com/darkkaiser/tracking-server/internal/service/api/model/response"
	applog "github.com/darkkaiser/tracking-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// ErrorHandler Echo 프레임워크의 전역 에러 핸들러입니다.
//
// 모든 에러를 ErrorResponse JSON으로 변환하여 응답하고, 상태 코드에 따라 Error/Warn 레벨로 기록합니다.
// echo.HTTPError가 아닌 에러는 내부 정보를 노출하지 않도록 500과 기본 메시지로 응답합니다.
func ErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	message := constants.ErrMsgInternalServer

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		switch m := he.Message.(type) {
		case string:
			message = m
		case response.ErrorResponse:
			message = m.Message
		}
	}

	// 라우트 미존재 시 Echo 기본 메시지("Not Found")만 한국어로 바꿉니다.
	if code == http.StatusNotFound && message == http.StatusText(http.StatusNotFound) {
		message = constants.ErrMsgNotFound
	}

	fields := applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       err,
		"remote_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	}

	if code >= http.StatusInternalServerError {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Error(constants.LogMsgHTTP5xxServerError)
	} else if code >= http.StatusBadRequest {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Warn(constants.LogMsgHTTP4xxClientError)
	}

	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	_ = c.JSON(code, response.ErrorResponse{
		ResultCode: code,
		Message:    message,
	})
}
