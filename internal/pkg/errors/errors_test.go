package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStd = errors.New("standard error")

// =============================================================================
// benchmarks
// =============================================================================

func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = New(Internal, "error message")
	}
}

func BenchmarkIs(b *testing.B) {
	err := New(Exhausted, "exhausted")
	for i := 0; i < 10; i++ {
		err = Wrap(err, Internal, "wrap")
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Is(err, Exhausted)
	}
}

// =============================================================================
// 에러 생성
// =============================================================================

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		errType ErrorType
		message string
		want    string
	}{
		{"입력 오류", InvalidInput, "잘못된 국가 코드", "[InvalidInput] 잘못된 국가 코드"},
		{"범위 소진", Exhausted, "시퀀스 범위 소진", "[Exhausted] 시퀀스 범위 소진"},
		{"빈 메시지", Internal, "", "[Internal] "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := New(tt.errType, tt.message)
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())

			var appErr *AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.errType, appErr.Type())
			assert.Equal(t, tt.message, appErr.Message())
			assert.NotEmpty(t, appErr.Stack())
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(InvalidInput, "무게 값이 올바르지 않습니다: %q", "abc")
	assert.Equal(t, `[InvalidInput] 무게 값이 올바르지 않습니다: "abc"`, err.Error())
}

func TestWrap(t *testing.T) {
	t.Run("nil 에러는 nil을 반환", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, System, "무시"))
		assert.Nil(t, Wrapf(nil, System, "무시 %d", 1))
	})

	t.Run("원인 에러가 메시지에 포함된다", func(t *testing.T) {
		err := Wrap(errStd, System, "저장 실패")
		assert.Equal(t, "[System] 저장 실패: standard error", err.Error())
		assert.True(t, errors.Is(err, errStd))
	})

	t.Run("Wrapf", func(t *testing.T) {
		err := Wrapf(errStd, System, "파일(%s) 저장 실패", "a.json")
		assert.Equal(t, "[System] 파일(a.json) 저장 실패: standard error", err.Error())
	})
}

// =============================================================================
// 타입 검사
// =============================================================================

func TestIs(t *testing.T) {
	err := Wrap(New(Exhausted, "소진"), Internal, "발급 실패")

	assert.True(t, Is(err, Exhausted))
	assert.True(t, Is(err, Internal))
	assert.False(t, Is(err, InvalidInput))
	assert.False(t, Is(nil, Internal))
	assert.False(t, Is(errStd, Unknown))

	// 표준 에러로 감싸도 체인 탐색이 가능해야 한다.
	wrapped := fmt.Errorf("outer: %w", err)
	assert.True(t, Is(wrapped, Exhausted))
}

func TestUnderlyingType(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"nil", nil, Unknown},
		{"표준 에러", errStd, Unknown},
		{"단일 AppError", New(NotFound, "x"), NotFound},
		{"중첩 AppError", Wrap(New(Exhausted, "x"), Internal, "y"), Exhausted},
		{"외부 에러를 감싼 AppError", Wrap(errStd, System, "x"), System},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UnderlyingType(tt.err))
		})
	}
}

// =============================================================================
// 포맷팅
// =============================================================================

func TestFormat(t *testing.T) {
	err := Wrap(errStd, System, "저장 실패")

	assert.Equal(t, err.Error(), fmt.Sprintf("%s", err))
	assert.Equal(t, err.Error(), fmt.Sprintf("%v", err))
	assert.Equal(t, fmt.Sprintf("%q", err.Error()), fmt.Sprintf("%q", err))

	detailed := fmt.Sprintf("%+v", err)
	assert.True(t, strings.HasPrefix(detailed, "[System] 저장 실패"))
	assert.Contains(t, detailed, "Stack trace:")
	assert.Contains(t, detailed, "Caused by:")
	assert.Contains(t, detailed, "standard error")
}

func TestFormat_StackPrintedOnceInChain(t *testing.T) {
	err := Wrap(New(Exhausted, "inner"), Internal, "outer")

	detailed := fmt.Sprintf("%+v", err)
	assert.Equal(t, 1, strings.Count(detailed, "Stack trace:"))
}

func TestErrorType_String(t *testing.T) {
	assert.Equal(t, "Exhausted", Exhausted.String())
	assert.Equal(t, "Unavailable", Unavailable.String())
	assert.Equal(t, "ErrorType(99)", ErrorType(99).String())
}
