package contract

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	apperrors "github.com/darkkaiser/tracking-server/internal/pkg/errors"
)

// ParseWeightGrams kg 단위의 10진수 문자열을 그램 단위 정수로 변환합니다. (소수 넷째 자리에서 반올림)
//
// 유한한 숫자가 아니거나 변환 결과가 int32 범위를 벗어나면 InvalidInput 에러를 반환합니다.
// 부호는 검사하지 않으므로 발급 요청에서는 ParsePositiveWeightGrams를 사용합니다.
func ParseWeightGrams(kg string) (int, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(kg), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, apperrors.Newf(apperrors.InvalidInput, "무게 값이 올바른 숫자가 아닙니다: %q", kg)
	}

	grams := math.Round(v * 1000)
	if grams > math.MaxInt32 || grams < math.MinInt32 {
		return 0, apperrors.Newf(apperrors.InvalidInput, "무게 값이 허용 범위를 벗어났습니다: %q", kg)
	}

	return int(grams), nil
}

// ParsePositiveWeightGrams ParseWeightGrams와 같지만 0 이하의 무게를 거부합니다.
func ParsePositiveWeightGrams(kg string) (int, error) {
	grams, err := ParseWeightGrams(kg)
	if err != nil {
		return 0, err
	}
	if grams <= 0 {
		return 0, apperrors.Newf(apperrors.InvalidInput, "무게는 0보다 커야 합니다: %q", kg)
	}
	return grams, nil
}

// FormatWeightKg 그램 단위 무게를 소수점 셋째 자리까지의 kg 문자열로 표기합니다. 예: 2500 -> "2.500"
func FormatWeightKg(grams int) string {
	return fmt.Sprintf("%.3f", float64(grams)/1000)
}
