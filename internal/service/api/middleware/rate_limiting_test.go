package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestNewIPRateLimiter(t *testing.T) {
	t.Parallel()

	limiter := newIPRateLimiter(10, 20)

	assert.Equal(t, rate.Limit(10), limiter.rate)
	assert.Equal(t, 20, limiter.burst)
	assert.Equal(t, 0, limiter.size())

	first := limiter.getLimiter("10.0.0.1")
	assert.Same(t, first, limiter.getLimiter("10.0.0.1"))
	assert.NotSame(t, first, limiter.getLimiter("10.0.0.2"))
	assert.Equal(t, 2, limiter.size())
}

func TestRateLimiting_InvalidArguments(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "[RateLimiting] requestsPerSecond는 양수여야 합니다", func() { RateLimiting(0, 10) })
	assert.PanicsWithValue(t, "[RateLimiting] burst는 양수여야 합니다", func() { RateLimiting(10, 0) })
	assert.NotPanics(t, func() { RateLimiting(1, 1) })
}

func newRateLimitedEcho(rps, burst int) *echo.Echo {
	e := echo.New()
	e.Use(RateLimiting(rps, burst))
	e.GET("/next-tracking-number", func(c echo.Context) error {
		return c.String(http.StatusOK, "MY010001")
	})
	return e
}

func doRequest(e *echo.Echo, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/next-tracking-number", nil)
	req.Header.Set(echo.HeaderXRealIP, ip)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiting_BurstThenBlock(t *testing.T) {
	captureLogs(t)

	// 초당 1개 토큰이므로 테스트 도중 보충되는 토큰은 무시할 수 있습니다.
	e := newRateLimitedEcho(1, 3)

	for i := range 3 {
		assert.Equal(t, http.StatusOK, doRequest(e, "192.0.2.1").Code, "요청 %d", i+1)
	}

	rec := doRequest(e, "192.0.2.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))

	// 다른 IP는 독립적으로 제한됩니다.
	assert.Equal(t, http.StatusOK, doRequest(e, "192.0.2.2").Code)
}

func TestRateLimiting_Concurrent(t *testing.T) {
	captureLogs(t)

	const burst = 10
	e := newRateLimitedEcho(1, burst)

	var allowed, rejected atomic.Int32
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			switch doRequest(e, "198.51.100.7").Code {
			case http.StatusOK:
				allowed.Add(1)
			case http.StatusTooManyRequests:
				rejected.Add(1)
			default:
				t.Errorf("예상하지 못한 상태 코드 (요청 %d)", i)
			}
		}()
	}
	wg.Wait()

	assert.GreaterOrEqual(t, allowed.Load(), int32(burst))
	assert.LessOrEqual(t, allowed.Load(), int32(burst+1))
	assert.Equal(t, int32(50), allowed.Load()+rejected.Load())
}
