package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "github.com/darkkaiser/tracking-server/internal/pkg/errors"
	"github.com/darkkaiser/tracking-server/internal/service/api/constants"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanicRecovery(t *testing.T) {
	tests := []struct {
		name         string
		panicPayload any
		requestID    string
		expectError  string
	}{
		{name: "문자열 패닉", panicPayload: "치명적인 오류 발생", expectError: "치명적인 오류 발생"},
		{name: "에러 패닉", panicPayload: errors.New("저장소 연결 실패"), expectError: "저장소 연결 실패"},
		{name: "정수 패닉", panicPayload: 12345, expectError: "12345"},
		{name: "Request ID 포함", panicPayload: "알 수 없는 오류", requestID: "req-123456", expectError: "알 수 없는 오류"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hook := captureLogs(t)

			e := echo.New()
			e.Use(PanicRecovery())
			if tt.requestID != "" {
				e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
					return func(c echo.Context) error {
						c.Response().Header().Set(echo.HeaderXRequestID, tt.requestID)
						return next(c)
					}
				})
			}
			e.GET("/panic", func(echo.Context) error {
				panic(tt.panicPayload)
			})

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

			assert.Equal(t, http.StatusInternalServerError, rec.Code)

			var entry *logrus.Entry
			for _, le := range hook.AllEntries() {
				if le.Message == constants.LogMsgPanicRecovered {
					entry = le
				}
			}
			require.NotNil(t, entry, "패닉 복구 로그가 기록되어야 합니다")

			assert.Equal(t, logrus.ErrorLevel, entry.Level)
			assert.Equal(t, constants.ComponentMiddleware, entry.Data["component"])
			assert.Contains(t, entry.Data["error"].(error).Error(), tt.expectError)
			assert.NotEmpty(t, entry.Data["stack"])
			assert.Equal(t, "/panic", entry.Data["path"])

			if tt.requestID != "" {
				assert.Equal(t, tt.requestID, entry.Data["request_id"])
			} else {
				assert.NotContains(t, entry.Data, "request_id")
			}
		})
	}
}

func TestPanicRecovery_PassesThroughNormalErrors(t *testing.T) {
	e := echo.New()
	e.Use(PanicRecovery())
	e.GET("/bad", func(echo.Context) error {
		return echo.NewHTTPError(http.StatusBadRequest, "bad")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bad", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNewErrPanicRecovered(t *testing.T) {
	t.Parallel()

	cause := errors.New("root")
	err := NewErrPanicRecovered(cause)
	assert.True(t, apperrors.Is(err, apperrors.Internal))
	assert.ErrorIs(t, err, cause)

	err = NewErrPanicRecovered(struct{ ID int }{ID: 1})
	assert.True(t, apperrors.Is(err, apperrors.Internal))
	assert.Contains(t, err.Error(), "{1}")
}
