// Package validation 설정 파일과 API 요청 등 외부 입력값의 형식을 검증합니다.
//
// 모든 함수는 유효하지 않은 입력에 대해 사유를 담은 error를 반환하며 동시에 호출해도 안전합니다.
package validation
