package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/tracking-server/internal/service/api/constants"
	"github.com/darkkaiser/tracking-server/internal/service/api/model/response"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 주의: 전역 로거에 훅을 등록하므로 t.Parallel()을 사용하지 않습니다.
func TestErrorHandler(t *testing.T) {
	hook := test.NewGlobal()

	tests := []struct {
		name            string
		method          string
		err             error
		expectedStatus  int
		expectedMessage string
		expectedLevel   logrus.Level
	}{
		{
			name:            "404_Echo 기본 메시지는 한국어로 변환",
			method:          http.MethodGet,
			err:             echo.ErrNotFound,
			expectedStatus:  http.StatusNotFound,
			expectedMessage: constants.ErrMsgNotFound,
			expectedLevel:   logrus.WarnLevel,
		},
		{
			name:            "404_커스텀 메시지 유지",
			method:          http.MethodGet,
			err:             NewNotFoundError("레코드가 없습니다"),
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "레코드가 없습니다",
			expectedLevel:   logrus.WarnLevel,
		},
		{
			name:            "400_ErrorResponse 메시지",
			method:          http.MethodPost,
			err:             NewBadRequestError("잘못된 요청입니다"),
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "잘못된 요청입니다",
			expectedLevel:   logrus.WarnLevel,
		},
		{
			name:            "405_문자열 메시지",
			method:          http.MethodPost,
			err:             echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"),
			expectedStatus:  http.StatusMethodNotAllowed,
			expectedMessage: "method not allowed",
			expectedLevel:   logrus.WarnLevel,
		},
		{
			name:            "500_일반 에러는 내부 정보를 숨김",
			method:          http.MethodGet,
			err:             errors.New("database connection failed"),
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: constants.ErrMsgInternalServer,
			expectedLevel:   logrus.ErrorLevel,
		},
		{
			name:            "500_래핑된 HTTPError",
			method:          http.MethodGet,
			err:             fmt.Errorf("wrapped: %w", NewInternalServerError(constants.ErrMsgExhaustedRange)),
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: constants.ErrMsgExhaustedRange,
			expectedLevel:   logrus.ErrorLevel,
		},
		{
			name:            "503_서비스 불가",
			method:          http.MethodGet,
			err:             NewServiceUnavailableError(constants.ErrMsgStoreUnavailable),
			expectedStatus:  http.StatusServiceUnavailable,
			expectedMessage: constants.ErrMsgStoreUnavailable,
			expectedLevel:   logrus.ErrorLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hook.Reset()

			e := echo.New()
			req := httptest.NewRequest(tt.method, "/filter", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			ErrorHandler(tt.err, c)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var resp response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedStatus, resp.ResultCode)
			assert.Equal(t, tt.expectedMessage, resp.Message)

			entry := hook.LastEntry()
			require.NotNil(t, entry)
			assert.Equal(t, tt.expectedLevel, entry.Level)
			assert.Equal(t, constants.ComponentErrorHandler, entry.Data["component"])
			assert.Equal(t, tt.expectedStatus, entry.Data["status_code"])
			assert.Equal(t, "/filter", entry.Data["path"])
		})
	}
}

func TestErrorHandler_HeadRequestHasNoBody(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodHead, "/getAll", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	ErrorHandler(NewBadRequestError("잘못된 요청입니다"), c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestErrorHandler_CommittedResponseIsLeftAlone(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/getAll", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, c.String(http.StatusOK, "partial"))

	ErrorHandler(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "partial", rec.Body.String())
}

func TestErrorConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		create func(string) error
		status int
	}{
		{"BadRequest", NewBadRequestError, http.StatusBadRequest},
		{"NotFound", NewNotFoundError, http.StatusNotFound},
		{"UnsupportedMediaType", NewUnsupportedMediaTypeError, http.StatusUnsupportedMediaType},
		{"TooManyRequests", NewTooManyRequestsError, http.StatusTooManyRequests},
		{"InternalServerError", NewInternalServerError, http.StatusInternalServerError},
		{"ServiceUnavailable", NewServiceUnavailableError, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.create("메시지")

			var he *echo.HTTPError
			require.ErrorAs(t, err, &he)
			assert.Equal(t, tt.status, he.Code)
			assert.Equal(t, response.ErrorResponse{ResultCode: tt.status, Message: "메시지"}, he.Message)
		})
	}
}
