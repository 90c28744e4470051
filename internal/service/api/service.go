// Package api 송장 발급 REST API 서버를 제공합니다.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	_ "github.com/darkkaiser/tracking-server/docs"
	"github.com/darkkaiser/tracking-server/internal/config"
	"github.com/darkkaiser/tracking-server/internal/pkg/version"
	"github.com/darkkaiser/tracking-server/internal/service/api/constants"
	"github.com/darkkaiser/tracking-server/internal/service/api/handler/system"
	v1 "github.com/darkkaiser/tracking-server/internal/service/api/v1"
	v1handler "github.com/darkkaiser/tracking-server/internal/service/api/v1/handler"
	"github.com/darkkaiser/tracking-server/internal/service/tracking"
	applog "github.com/darkkaiser/tracking-server/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

// Service 송장 발급 API 서버의 생명주기를 관리하는 서비스입니다.
//
// Start()로 시작하면 HTTP(S) 서버가 고루틴에서 실행되며, context가 취소되면
// 최대 5초 동안 진행 중인 요청을 마무리한 뒤 종료합니다.
type Service struct {
	appConfig *config.AppConfig

	trackingService *tracking.Service

	gatherer prometheus.Gatherer

	buildInfo version.Info

	running   bool
	runningMu sync.Mutex
}

// NewService Service 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig, trackingService *tracking.Service, gatherer prometheus.Gatherer, buildInfo version.Info) *Service {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}
	if trackingService == nil {
		panic(constants.PanicMsgTrackingServiceRequired)
	}
	if gatherer == nil {
		panic(constants.PanicMsgGathererRequired)
	}

	return &Service{
		appConfig: appConfig,

		trackingService: trackingService,

		gatherer: gatherer,

		buildInfo: buildInfo,
	}
}

// Start API 서비스를 시작합니다.
//
// 이 함수는 즉시 반환되며, 서버는 고루틴에서 실행됩니다. 서비스가 완전히 종료되면
// serviceStopWG.Done()을 호출합니다. 이미 실행 중이면 경고만 남기고 nil을 반환합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return nil
	}

	s.running = true

	go s.runServiceLoop(serviceStopCtx, serviceStopWG)

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarted)

	return nil
}

// runServiceLoop 서버 설정, HTTP 서버 시작, Shutdown 대기를 순차적으로 수행합니다.
func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	e := s.setupServer()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

// setupServer 핸들러, 미들웨어, 라우트가 구성된 Echo 인스턴스를 생성합니다.
func (s *Service) setupServer() *echo.Echo {
	apiConfig := s.appConfig.TrackingAPI

	systemHandler := system.NewHandler(s.trackingService.Store(), s.trackingService.Allocator(), s.buildInfo)
	v1Handler := v1handler.NewHandler(s.trackingService)

	e := NewHTTPServer(HTTPServerConfig{
		Debug:              s.appConfig.Debug,
		EnableHSTS:         apiConfig.WS.TLSServer,
		AllowOrigins:       apiConfig.CORS.AllowOrigins,
		RateLimitPerSecond: apiConfig.RateLimit.RequestsPerSecond,
		RateLimitBurst:     apiConfig.RateLimit.Burst,
	})

	RegisterRoutes(e, systemHandler, s.gatherer)
	v1.RegisterRoutes(e, v1Handler)

	return e
}

// startHTTPServer 설정에 따라 HTTP 또는 HTTPS 서버를 시작합니다. 서버가 종료되면 done을 닫습니다.
func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	ws := s.appConfig.TrackingAPI.WS
	address := fmt.Sprintf(":%d", ws.ListenPort)

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": ws.ListenPort,
		"tls":  ws.TLSServer,
	}).Info(constants.LogMsgServiceHTTPServerStarting)

	var err error
	if ws.TLSServer {
		err = e.StartTLS(address, ws.TLSCertFile, ws.TLSKeyFile)
	} else {
		err = e.Start(address)
	}

	s.handleServerError(err)
}

// handleServerError HTTP 서버가 반환한 에러를 기록합니다. http.ErrServerClosed는 정상 종료입니다.
func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceHTTPServerStopped)
		return
	}

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  s.appConfig.TrackingAPI.WS.ListenPort,
		"error": err,
	}).Error(constants.LogMsgServiceHTTPServerFatalError)
}

// waitForShutdown 종료 신호를 기다린 뒤 Graceful Shutdown을 수행합니다.
// 서버가 먼저 종료된 경우(포트 바인딩 실패 등)에는 상태만 정리합니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)

	case <-httpServerDone:
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)
		s.cleanup()
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgServiceHTTPServerShutdownError)
	}

	<-httpServerDone

	s.cleanup()
}

func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}
