package middleware

import (
	"net/url"
	"strconv"
	"time"

	"github.com/darkkaiser/tracking-server/internal/service/api/constants"
	applog "github.com/darkkaiser/tracking-server/pkg/log"
	"github.com/darkkaiser/tracking-server/pkg/strutil"
	"github.com/labstack/echo/v4"
)

// defaultBytesIn Content-Length 헤더가 없을 때 bytes_in 필드에 기록할 값
const defaultBytesIn = "0"

// sensitiveQueryParams 로그에 원문 그대로 남기지 않을 쿼리 파라미터 목록입니다.
var sensitiveQueryParams = []string{
	constants.QueryCustomerID,
	constants.QueryCustomerName,
	constants.QueryCustomerSlug,
}

// HTTPLogger HTTP 요청/응답을 구조화된 로그로 기록하는 미들웨어를 반환합니다.
//
// 고객 식별 정보가 담긴 쿼리 파라미터(customer_id 등)는 마스킹하여 기록합니다.
func HTTPLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()
			start := time.Now()

			defer func() {
				latency := time.Since(start)

				path := req.URL.Path
				if path == "" {
					path = "/"
				}

				bytesIn := req.Header.Get(echo.HeaderContentLength)
				if bytesIn == "" {
					bytesIn = defaultBytesIn
				}

				applog.WithComponentAndFields(constants.ComponentMiddleware, applog.Fields{
					"method":   req.Method,
					"path":     path,
					"uri":      maskSensitiveQueryParams(req.RequestURI),
					"host":     req.Host,
					"protocol": req.Proto,

					"remote_ip":  c.RealIP(),
					"user_agent": req.UserAgent(),

					"status":    res.Status,
					"bytes_in":  bytesIn,
					"bytes_out": strconv.FormatInt(res.Size, 10),

					"latency":       strconv.FormatInt(latency.Microseconds(), 10),
					"latency_human": latency.String(),

					"request_id": res.Header().Get(echo.HeaderXRequestID),
				}).Info(constants.LogMsgHTTPRequest)
			}()

			// 에러 응답이 먼저 작성되어야 로그에 실제 상태 코드가 남습니다.
			if err := next(c); err != nil {
				c.Error(err)
			}

			return nil
		}
	}
}

// maskSensitiveQueryParams URI의 민감한 쿼리 파라미터 값을 마스킹합니다.
// 파싱에 실패하면 원본을 반환합니다.
//
//	입력: "/filter?customer_id=5bd39d6c-2ef5-4b1e-9f0e-4f3c8a0c7a11&weight=2.5"
//	출력: "/filter?customer_id=5bd3%2A%2A%2A7a11&weight=2.5"
func maskSensitiveQueryParams(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return uri
	}

	q := u.Query()
	masked := false
	for _, param := range sensitiveQueryParams {
		if q.Has(param) {
			q.Set(param, strutil.MaskSensitiveData(q.Get(param)))
			masked = true
		}
	}

	if !masked {
		return uri
	}

	u.RawQuery = q.Encode()
	return u.String()
}
