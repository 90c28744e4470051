package api

import (
	"net/http"
	"time"

	"github.com/darkkaiser/tracking-server/internal/service/api/constants"
	"github.com/darkkaiser/tracking-server/internal/service/api/handler"
	"github.com/darkkaiser/tracking-server/internal/service/api/httputil"
	appmiddleware "github.com/darkkaiser/tracking-server/internal/service/api/middleware"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// hstsMaxAge TLS 사용 시 Strict-Transport-Security 헤더의 max-age (1년)
const hstsMaxAge = 31536000

// HTTPServerConfig HTTP 서버 생성에 필요한 설정을 정의합니다.
type HTTPServerConfig struct {
	// Debug Echo 프레임워크의 디버그 모드 활성화 여부
	Debug bool

	// EnableHSTS HSTS 헤더 사용 여부 (TLS 서버에서만 켭니다)
	EnableHSTS bool

	// AllowOrigins CORS에서 허용할 Origin 목록
	AllowOrigins []string

	// RequestTimeout 요청 하나의 최대 처리 시간 (0이면 기본값)
	RequestTimeout time.Duration

	// RateLimitPerSecond, RateLimitBurst IP별 요청 제한 (0이면 기본값)
	RateLimitPerSecond int
	RateLimitBurst     int
}

// NewHTTPServer 미들웨어 체인이 구성된 Echo 인스턴스를 생성합니다.
//
// 미들웨어 적용 순서:
//
//  1. PanicRecovery - 이후 미들웨어와 핸들러의 panic 복구
//  2. RequestID - X-Request-ID 부여 (로그 추적용)
//  3. Server 헤더 제거
//  4. HTTPLogger - 429/503 응답도 기록되도록 제한 미들웨어보다 앞에 둡니다
//  5. RateLimiting - IP별 요청 제한
//  6. BodyLimit - 요청 본문 크기 제한
//  7. Timeout - 요청 처리 시간 제한
//  8. CORS
//  9. Secure - 보안 헤더
//
// 라우트는 포함되지 않으므로 반환된 인스턴스에 별도로 등록해야 합니다.
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = constants.DefaultReadTimeout
	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
	e.Server.WriteTimeout = constants.DefaultWriteTimeout
	e.Server.IdleTimeout = constants.DefaultIdleTimeout

	e.Logger = appmiddleware.NewLogger()
	e.HTTPErrorHandler = httputil.ErrorHandler
	e.Validator = handler.RequestValidator{}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = constants.DefaultRequestTimeout
	}
	rps := cfg.RateLimitPerSecond
	if rps <= 0 {
		rps = constants.DefaultRateLimitPerSecond
	}
	burst := cfg.RateLimitBurst
	if burst <= 0 {
		burst = constants.DefaultRateLimitBurst
	}

	e.Use(appmiddleware.PanicRecovery())
	e.Use(middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderServer, "")
			return next(c)
		}
	})
	e.Use(appmiddleware.HTTPLogger())
	e.Use(appmiddleware.RateLimiting(rps, burst))
	e.Use(middleware.BodyLimit(constants.DefaultMaxBodySize))
	e.Use(middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
		Timeout: timeout,
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}))

	secureConfig := middleware.DefaultSecureConfig
	if cfg.EnableHSTS {
		secureConfig.HSTSMaxAge = hstsMaxAge
	}
	e.Use(middleware.SecureWithConfig(secureConfig))

	return e
}
