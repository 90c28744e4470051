// Package strutil 문자열 처리 유틸리티를 제공합니다.
package strutil

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// Slugify 고객명 등에서 URL/조회용 슬러그를 만듭니다.
//
// 연속된 공백 문자(스페이스, 탭, 개행 등)를 하나의 '-'로 치환한 뒤 소문자로 변환합니다.
// 그 외의 문자는 그대로 유지하며, 앞뒤 공백도 잘라내지 않고 '-'로 바꿉니다.
//
//	"John Doe"    -> "john-doe"
//	"A  B\tC"     -> "a-b-c"
//	" lead"       -> "-lead"
func Slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte('-')
				inSpace = true
			}
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}

	return strings.ToLower(b.String())
}

// ContainsFold s가 substr을 대소문자 구분 없이 포함하는지 검사합니다. 빈 substr은 항상 true입니다.
//
// 유니코드 case folding으로 양쪽을 정규화한 뒤 비교하므로 변환 후 길이가 달라지는 문자도 일치합니다.
//
//	ContainsFold("Strauß Co", "STRAUSS") // true
//	ContainsFold("ÉMILE Zola", "émile")  // true
func ContainsFold(s, substr string) bool {
	if substr == "" {
		return true
	}

	// Caser는 상태를 가지므로 호출마다 새로 만든다.
	return strings.Contains(cases.Fold().String(s), cases.Fold().String(substr))
}

// Integer 모든 정수 타입을 포괄하는 제네릭 제약입니다.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// FormatCommas 숫자를 천 단위 구분 기호(,)가 포함된 문자열로 변환합니다. 예: 1234567 -> "1,234,567"
func FormatCommas[T Integer](num T) string {
	var str string
	if num < 0 {
		str = strconv.FormatInt(int64(num), 10)
	} else {
		str = strconv.FormatUint(uint64(num), 10)
	}

	sign := ""
	if strings.HasPrefix(str, "-") {
		sign, str = "-", str[1:]
	}
	if len(str) <= 3 {
		return sign + str
	}

	var b strings.Builder
	b.Grow(len(sign) + len(str) + (len(str)-1)/3)
	b.WriteString(sign)

	first := len(str) % 3
	if first == 0 {
		first = 3
	}
	b.WriteString(str[:first])
	for i := first; i < len(str); i += 3 {
		b.WriteByte(',')
		b.WriteString(str[i : i+3])
	}

	return b.String()
}

// MaskSensitiveData 로그 출력용으로 민감한 값을 마스킹합니다.
func MaskSensitiveData(data string) string {
	switch {
	case data == "":
		return ""
	case len(data) <= 3:
		return "***"
	case len(data) <= 12:
		return data[:4] + "***"
	default:
		return data[:4] + "***" + data[len(data)-4:]
	}
}
