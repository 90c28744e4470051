// Package handler v1 API의 HTTP 요청 핸들러를 제공합니다.
//
// 요청을 바인딩하고 검증한 뒤 송장 발급 서비스를 호출하여 응답을 만듭니다.
package handler

import (
	"context"

	"github.com/darkkaiser/tracking-server/internal/service/api/constants"
	"github.com/darkkaiser/tracking-server/internal/service/contract"
	applog "github.com/darkkaiser/tracking-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// TrackingService 핸들러가 사용하는 송장 발급 서비스의 기능입니다.
type TrackingService interface {
	NextTrackingNumber(ctx context.Context) (string, error)
	IssueRecord(ctx context.Context, req contract.IssueRequest) (*contract.TrackingRecord, error)
	ListAll(ctx context.Context) ([]*contract.TrackingRecord, error)
	Filter(ctx context.Context, q contract.FilterQuery) ([]*contract.TrackingRecord, error)
}

// Handler v1 API 요청을 처리하는 핸들러입니다.
type Handler struct {
	trackingService TrackingService
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(trackingService TrackingService) *Handler {
	if trackingService == nil {
		panic(constants.PanicMsgTrackingServiceRequired)
	}

	return &Handler{
		trackingService: trackingService,
	}
}

// log 공통 로깅 필드가 설정된 로거 엔트리를 반환합니다.
func (h *Handler) log(c echo.Context) *applog.Entry {
	return applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":   c.Path(),
		"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
	})
}
