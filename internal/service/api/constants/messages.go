package constants

// 클라이언트 응답 메시지
const (
	ErrMsgInternalServer       = "내부 서버 오류가 발생했습니다"
	ErrMsgNotFound             = "요청한 리소스를 찾을 수 없습니다"
	ErrMsgTooManyRequests      = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요"
	ErrMsgUnsupportedMediaType = "지원하지 않는 Content-Type 형식입니다"
	ErrMsgInvalidBody          = "요청 본문을 파싱할 수 없습니다. JSON 형식을 확인해주세요"
	ErrMsgExhaustedRange       = "송장번호 발급 범위가 모두 소진되었습니다. 관리자에게 문의해주세요"
	ErrMsgStoreUnavailable     = "송장 저장소를 일시적으로 사용할 수 없습니다. 잠시 후 다시 시도해주세요"
)

// 헬스체크 상세 메시지
const (
	MsgDepStatusHealthy   = "정상 작동 중"
	MsgDepStatusExhausted = "발급 범위 소진"
)

// 로그 메시지
const (
	LogMsgServiceStarting                = "API 서비스 시작 진행 중..."
	LogMsgServiceStarted                 = "API 서비스 시작됨"
	LogMsgServiceAlreadyStarted          = "API 서비스가 이미 시작됨!!!"
	LogMsgServiceStopping                = "API 서비스 중지 진행 중..."
	LogMsgServiceStopped                 = "API 서비스 중지됨"
	LogMsgServiceUnexpectedExit          = "HTTP 서버가 예기치 않게 종료됨"
	LogMsgServiceHTTPServerStarting      = "HTTP 서버 시작"
	LogMsgServiceHTTPServerStopped       = "HTTP 서버 중지됨"
	LogMsgServiceHTTPServerFatalError    = "HTTP 서버 구동 중 치명적인 오류가 발생하였습니다"
	LogMsgServiceHTTPServerShutdownError = "HTTP 서버를 중지하는 중에 오류가 발생하였습니다"

	LogMsgHTTP4xxClientError = "HTTP 4xx: 클라이언트 요청 오류"
	LogMsgHTTP5xxServerError = "HTTP 5xx: 서버 내부 오류"

	LogMsgUnsupportedContentType = "지원하지 않는 Content-Type 요청"
	LogMsgRateLimitExceeded      = "Rate limit 초과"
	LogMsgPanicRecovered         = "PANIC RECOVERED"
	LogMsgHTTPRequest            = "HTTP 요청"

	LogMsgHealthCheck = "헬스체크 조회"
	LogMsgVersionInfo = "버전 정보 조회"
)

// 생성자 인자 검증 실패 시 panic 메시지
const (
	PanicMsgAppConfigRequired       = "AppConfig는 필수입니다"
	PanicMsgTrackingServiceRequired = "TrackingService는 필수입니다"
	PanicMsgGathererRequired        = "prometheus.Gatherer는 필수입니다"
	PanicMsgRecordStoreRequired     = "RecordStore는 필수입니다"
	PanicMsgAllocatorRequired       = "Allocator는 필수입니다"
)
