// Package v1 송장 발급 API의 v1 라우트를 정의합니다.
//
// 주요 엔드포인트:
//   - GET  /getAll                - 전체 송장 레코드 조회
//   - GET  /next-tracking-number  - 송장번호 단독 발급
//   - POST /create                - 송장 레코드 발급
//   - GET  /filter                - 송장 레코드 조건 조회
//
// 같은 엔드포인트를 /api/v1 경로 하위에도 등록합니다.
package v1

import (
	"github.com/darkkaiser/tracking-server/internal/service/api/middleware"
	"github.com/darkkaiser/tracking-server/internal/service/api/v1/handler"
	"github.com/labstack/echo/v4"
)

// APIPrefix 버전이 명시된 경로의 접두어
const APIPrefix = "/api/v1"

// RegisterRoutes Echo 인스턴스에 v1 API 라우트를 등록합니다.
func RegisterRoutes(e *echo.Echo, h *handler.Handler) {
	registerTrackingRoutes(e.Group(""), h)
	registerTrackingRoutes(e.Group(APIPrefix), h)
}

func registerTrackingRoutes(g *echo.Group, h *handler.Handler) {
	g.GET("/getAll", h.GetAllHandler)
	g.GET("/next-tracking-number", h.NextTrackingNumberHandler)
	g.POST("/create", h.CreateHandler, middleware.ValidateContentType(echo.MIMEApplicationJSON))
	g.GET("/filter", h.FilterHandler)
}
