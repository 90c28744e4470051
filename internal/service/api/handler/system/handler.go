// Package system 시스템 엔드포인트 핸들러를 제공합니다.
//
// 헬스체크, 버전 정보 등 서비스 운영을 위한 API를 처리합니다.
package system

import (
	"context"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/darkkaiser/tracking-server/internal/pkg/version"
	"github.com/darkkaiser/tracking-server/internal/service/api/constants"
	"github.com/darkkaiser/tracking-server/internal/service/api/model/system"
	"github.com/darkkaiser/tracking-server/internal/service/contract"
	"github.com/darkkaiser/tracking-server/internal/service/tracking/idgen"
	applog "github.com/darkkaiser/tracking-server/pkg/log"
	"github.com/darkkaiser/tracking-server/pkg/strutil"
	"github.com/labstack/echo/v4"
)

// Handler 시스템 엔드포인트 핸들러 (헬스체크, 버전 정보)
type Handler struct {
	store     contract.RecordStore
	allocator *idgen.Allocator

	buildInfo version.Info

	serverStartTime time.Time
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(store contract.RecordStore, allocator *idgen.Allocator, buildInfo version.Info) *Handler {
	if store == nil {
		panic(constants.PanicMsgRecordStoreRequired)
	}
	if allocator == nil {
		panic(constants.PanicMsgAllocatorRequired)
	}

	return &Handler{
		store:     store,
		allocator: allocator,

		buildInfo: buildInfo,

		serverStartTime: time.Now(),
	}
}

// HealthCheckHandler godoc
// @Summary 서버 헬스체크
// @Description 레코드 저장소와 송장번호 할당기의 상태를 확인합니다.
// @Description
// @Description 응답 필드:
// @Description - status: 전체 서버 상태 (healthy, unhealthy)
// @Description - uptime: 서버 가동 시간(초)
// @Description - dependencies: 의존성별 상태 (record_store, sequence_allocator)
// @Tags System
// @Produce json
// @Success 200 {object} system.HealthResponse "헬스체크 결과"
// @Router /health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/health",
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgHealthCheck)

	deps := map[string]system.DependencyStatus{
		constants.DependencyRecordStore: h.checkStore(c.Request().Context()),
		constants.DependencyAllocator:   h.checkAllocator(),
	}

	// 하나라도 unhealthy면 전체 상태를 unhealthy로 설정
	serverStatus := constants.HealthStatusHealthy
	for _, dep := range deps {
		if dep.Status != constants.HealthStatusHealthy {
			serverStatus = constants.HealthStatusUnhealthy
			break
		}
	}

	return c.JSON(http.StatusOK, system.HealthResponse{
		Status:       serverStatus,
		Uptime:       int64(time.Since(h.serverStartTime).Seconds()),
		Dependencies: deps,
	})
}

// checkStore 저장소에 레코드 수를 질의하여 응답 여부와 지연시간을 확인합니다.
func (h *Handler) checkStore(ctx context.Context) system.DependencyStatus {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultHealthCheckTimeout)
	defer cancel()

	start := time.Now()
	n, err := h.store.Count(ctx)
	latency := time.Since(start).Milliseconds()

	if err != nil {
		return system.DependencyStatus{
			Status:    constants.HealthStatusUnhealthy,
			LatencyMs: latency,
			Message:   err.Error(),
		}
	}

	return system.DependencyStatus{
		Status:    constants.HealthStatusHealthy,
		LatencyMs: latency,
		Message:   fmt.Sprintf("%s (레코드 %s건)", constants.MsgDepStatusHealthy, strutil.FormatCommas(n)),
	}
}

func (h *Handler) checkAllocator() system.DependencyStatus {
	if h.allocator.Exhausted() {
		return system.DependencyStatus{
			Status:  constants.HealthStatusUnhealthy,
			Message: constants.MsgDepStatusExhausted,
		}
	}

	return system.DependencyStatus{
		Status:  constants.HealthStatusHealthy,
		Message: fmt.Sprintf("%s (잔여 %s건)", constants.MsgDepStatusHealthy, strutil.FormatCommas(h.allocator.Remaining())),
	}
}

// VersionHandler godoc
// @Summary 서버 버전 정보
// @Description 서버의 버전, Git 커밋 해시, 빌드 날짜, 빌드 번호, Go 버전을 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse "버전 정보"
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/version",
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgVersionInfo)

	goVersion := h.buildInfo.GoVersion
	if goVersion == "" {
		goVersion = runtime.Version()
	}

	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:     h.buildInfo.Version,
		Commit:      h.buildInfo.Commit,
		BuildDate:   h.buildInfo.BuildDate,
		BuildNumber: h.buildInfo.BuildNumber,
		GoVersion:   goVersion,
	})
}
