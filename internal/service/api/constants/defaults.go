package constants

import "time"

// HTTP 서버 기본값
const (
	DefaultReadTimeout       = 10 * time.Second
	DefaultReadHeaderTimeout = 5 * time.Second
	DefaultWriteTimeout      = 15 * time.Second
	DefaultIdleTimeout       = 60 * time.Second

	// DefaultRequestTimeout 요청 하나의 최대 처리 시간
	DefaultRequestTimeout = 30 * time.Second

	// DefaultMaxBodySize 요청 본문 최대 크기
	DefaultMaxBodySize = "64K"

	// DefaultShutdownTimeout Graceful Shutdown 최대 대기 시간
	DefaultShutdownTimeout = 5 * time.Second

	// DefaultHealthCheckTimeout 헬스체크에서 저장소 응답을 기다리는 최대 시간
	DefaultHealthCheckTimeout = 2 * time.Second
)

// 요청 제한 기본값 (설정에 값이 없을 때 사용)
const (
	DefaultRateLimitPerSecond = 20
	DefaultRateLimitBurst     = 40
)

// 조회 쿼리 파라미터 이름
const (
	QueryOriginCountry      = "origin_country_id"
	QueryDestinationCountry = "destination_country_id"
	QueryWeight             = "weight"
	QueryCreatedAt          = "created_at"
	QueryCustomerID         = "customer_id"
	QueryCustomerName       = "customer_name"
	QueryCustomerSlug       = "customer_slug"
)
