// Package errors 송장번호 발급 서버 전반에서 사용하는 타입 기반 에러를 제공합니다.
//
// 모든 에러는 ErrorType으로 분류되며 Wrap 계열 함수로 컨텍스트를 누적합니다.
// HTTP 계층은 UnderlyingType으로 응답 코드를 결정합니다.
//
//	err := errors.New(errors.InvalidInput, "출발 국가 코드가 올바르지 않습니다")
//
//	if err != nil {
//	    return errors.Wrap(err, errors.System, "송장 레코드 저장 실패")
//	}
//
//	if errors.Is(err, errors.Exhausted) {
//	    // 시퀀스 범위 소진
//	}
//
// # 타입 선택
//
//   - InvalidInput: 요청 값 또는 설정 값의 형식 오류
//   - System: 파일/데이터베이스 등 저장소 계층 장애
//   - Exhausted: 설정된 시퀀스 범위를 모두 사용함 (재시도해도 해결되지 않음)
//   - Internal: 있어서는 안 되는 상태 (버그)
package errors

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// AppError 애플리케이션 에러의 표준 표현입니다.
type AppError struct {
	errType ErrorType
	message string
	cause   error
	stack   []StackFrame
}

// Type 에러의 타입을 반환합니다.
func (e *AppError) Type() ErrorType {
	return e.errType
}

// Message 에러 메시지를 반환합니다.
func (e *AppError) Message() string {
	return e.message
}

// Stack 에러 생성 시점의 호출 스택을 반환합니다.
func (e *AppError) Stack() []StackFrame {
	return e.stack
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.errType, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.errType, e.message)
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// Format %+v는 에러 체인 전체와 스택을 출력하고, 그 외 동사는 Error()를 그대로 사용합니다.
func (e *AppError) Format(s fmt.State, verb rune) {
	switch {
	case verb == 'v' && s.Flag('+'):
		e.writeDetailed(s)
	case verb == 'q':
		fmt.Fprintf(s, "%q", e.Error())
	case verb == 'v' || verb == 's':
		io.WriteString(s, e.Error())
	}
}

func (e *AppError) writeDetailed(s fmt.State) {
	fmt.Fprintf(s, "[%s] %s", e.errType, e.message)

	// 스택은 체인의 끝이나 외부 에러와 맞닿은 AppError에서 한 번만 출력한다.
	var inner *AppError
	if e.cause == nil || !errors.As(e.cause, &inner) {
		writeStack(s, e.stack)
	}

	if e.cause == nil {
		return
	}

	fmt.Fprint(s, "\nCaused by:\n")
	if f, ok := e.cause.(fmt.Formatter); ok {
		f.Format(s, 'v')
	} else {
		fmt.Fprintf(s, "\t%v", e.cause)
	}
}

func writeStack(w io.Writer, stack []StackFrame) {
	if len(stack) == 0 {
		return
	}

	fmt.Fprint(w, "\nStack trace:")
	for _, frame := range stack {
		fn := frame.Function
		if i := strings.LastIndex(fn, "/"); i != -1 {
			fn = fn[i+1:]
		}
		fmt.Fprintf(w, "\n\t%s:%d %s", frame.File, frame.Line, fn)
	}
}

// newAppError 생성자 공통 경로입니다. 스택은 New/Wrap 계열을 호출한 위치부터 기록합니다.
func newAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		errType: errType,
		message: message,
		cause:   cause,
		stack:   captureStack(defaultCallerSkip + 1),
	}
}

// New 새로운 에러를 생성합니다.
func New(errType ErrorType, message string) error {
	return newAppError(errType, message, nil)
}

// Newf 포맷 문자열로 메시지를 만들어 새로운 에러를 생성합니다.
func Newf(errType ErrorType, format string, args ...any) error {
	return newAppError(errType, fmt.Sprintf(format, args...), nil)
}

// Wrap err에 타입과 메시지를 덧붙입니다. err이 nil이면 nil을 반환합니다.
func Wrap(err error, errType ErrorType, message string) error {
	if err == nil {
		return nil
	}
	return newAppError(errType, message, err)
}

// Wrapf Wrap과 같지만 메시지에 포맷 문자열을 사용합니다.
func Wrapf(err error, errType ErrorType, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return newAppError(errType, fmt.Sprintf(format, args...), err)
}

// Is 에러 체인에 특정 ErrorType이 포함되어 있는지 확인합니다.
func Is(err error, errType ErrorType) bool {
	for ; err != nil; err = errors.Unwrap(err) {
		if appErr, ok := err.(*AppError); ok && appErr.errType == errType {
			return true
		}
	}
	return false
}

// As errors.As의 별칭입니다.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// UnderlyingType 에러 체인에서 가장 안쪽에 있는 AppError의 ErrorType을 반환합니다.
//
// 체인에 AppError가 없거나 err이 nil이면 Unknown을 반환합니다.
//
//	err := Wrap(New(Exhausted, "범위 소진"), Internal, "발급 실패")
//	UnderlyingType(err) // Exhausted
func UnderlyingType(err error) ErrorType {
	innermost := Unknown
	for ; err != nil; err = errors.Unwrap(err) {
		if appErr, ok := err.(*AppError); ok {
			innermost = appErr.errType
		}
	}
	return innermost
}
