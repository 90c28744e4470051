// Package constants API 서비스 전반에서 공유하는 상수를 정의합니다.
package constants

// 로깅용 컴포넌트 이름
const (
	ComponentService      = "api.service"
	ComponentHandler      = "api.handler"
	ComponentErrorHandler = "api.error_handler"
	ComponentMiddleware   = "api.middleware"

	MiddlewareContentType = "api.middleware.content_type"
	MiddlewareRateLimit   = "api.middleware.rate_limit"
)

// 헬스체크 상태 값
const (
	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"
)

// 헬스체크 대상 의존성 이름
const (
	DependencyRecordStore = "record_store"
	DependencyAllocator   = "sequence_allocator"
)
