package idgen

import "strconv"

// MaxPrefixLength 송장번호 접두어로 사용되는 최대 문자 수입니다.
const MaxPrefixLength = 6

// Format 접두어, 인스턴스 식별자, 시퀀스를 결합하여 송장번호를 만듭니다.
//
// 접두어는 앞의 6자만 사용하고, 시퀀스는 10진수로 표기한 뒤 padding 자릿수가 될 때까지
// 앞에 '0'을 채웁니다. 시퀀스가 padding보다 길면 자르지 않고 그대로 사용합니다.
//
//	Format("MALAYSIA", "01", 7, 4)   // "MALAYS010007"
//	Format("US", "01", 123456, 4)    // "US01123456"
func Format(prefix, instanceID string, seq int64, padding int) string {
	prefix = truncateRunes(prefix, MaxPrefixLength)

	b := make([]byte, 0, len(prefix)+len(instanceID)+max(padding, 20))
	b = append(b, prefix...)
	b = append(b, instanceID...)
	b = appendPaddedInt(b, seq, padding)

	return string(b)
}

// MaxLength cfg로 발급될 수 있는 송장번호의 최대 길이(바이트)를 반환합니다. 접두어는 6자(ASCII)로 가정합니다.
func MaxLength(cfg RangeConfig) int {
	digits := len(strconv.FormatInt(cfg.EndRange, 10))
	return MaxPrefixLength + len(cfg.InstanceID) + max(cfg.Padding, digits)
}

// appendPaddedInt 10진수로 변환한 num을 width 자릿수에 맞춰 '0'으로 채워 dst에 추가합니다.
func appendPaddedInt(dst []byte, num int64, width int) []byte {
	var temp [20]byte
	digits := strconv.AppendInt(temp[:0], num, 10)

	for i := len(digits); i < width; i++ {
		dst = append(dst, '0')
	}

	return append(dst, digits...)
}

func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}

	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}

	return s
}
