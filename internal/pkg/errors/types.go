package errors

import "strconv"

// ErrorType 에러의 종류를 나타내는 타입입니다.
type ErrorType int

// 에러 타입 상수
const (
	// Unknown 알 수 없는 에러
	Unknown ErrorType = iota

	// Internal 내부 로직 오류 (버그 등)
	Internal

	// System 시스템 또는 인프라 오류 (디스크, 데이터베이스 등)
	System

	// InvalidInput 잘못된 입력값 또는 설정값 (유효성 검사 실패)
	InvalidInput

	// NotFound 리소스를 찾을 수 없음
	NotFound

	// Conflict 리소스 충돌 (중복 생성 등)
	Conflict

	// Exhausted 할당 가능한 자원이 모두 소진됨 (송장번호 시퀀스 범위 소진 등)
	Exhausted

	// Unavailable 서비스 일시적 사용 불가
	Unavailable
)

var errorTypeNames = [...]string{
	Unknown:      "Unknown",
	Internal:     "Internal",
	System:       "System",
	InvalidInput: "InvalidInput",
	NotFound:     "NotFound",
	Conflict:     "Conflict",
	Exhausted:    "Exhausted",
	Unavailable:  "Unavailable",
}

// String 에러 타입의 이름을 반환합니다.
func (t ErrorType) String() string {
	if t < 0 || int(t) >= len(errorTypeNames) {
		return "ErrorType(" + strconv.Itoa(int(t)) + ")"
	}
	return errorTypeNames[t]
}
