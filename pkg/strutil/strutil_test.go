package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"단일 공백", "John Doe", "john-doe"},
		{"연속 공백과 탭", "A  B\tC", "a-b-c"},
		{"앞쪽 공백", " lead", "-lead"},
		{"뒤쪽 공백", "trail ", "trail-"},
		{"개행 포함", "Akira\n\nTanaka", "akira-tanaka"},
		{"공백 없음", "RedBox", "redbox"},
		{"빈 문자열", "", ""},
		{"특수 문자는 유지", "Jane_Smith-Co", "jane_smith-co"},
		{"하이픈과 밑줄 혼합", "Special-Character_Name", "special-character_name"},
		{"유니코드 공백", "Lee\u3000Min", "lee-min"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestContainsFold(t *testing.T) {
	tests := []struct {
		s, substr string
		want      bool
	}{
		{"John Doe", "doe", true},
		{"John Doe", "JOHN", true},
		{"John Doe", "", true},
		{"John Doe", "smith", false},
		{"Jo", "John", false},
		{"한글 Name", "name", true},
		{"", "a", false},
		{"Strauß Co", "STRAUSS", true},
		{"ÉMILE Zola", "émile", true},
		{"\u212Aim Lee", "kim", true},
		{"Kim Lee", "\u212Aim", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ContainsFold(tt.s, tt.substr), "ContainsFold(%q, %q)", tt.s, tt.substr)
	}
}

func TestFormatCommas(t *testing.T) {
	assert.Equal(t, "0", FormatCommas(0))
	assert.Equal(t, "999", FormatCommas(999))
	assert.Equal(t, "1,000", FormatCommas(1000))
	assert.Equal(t, "1,234,567", FormatCommas(int64(1234567)))
	assert.Equal(t, "-1,234", FormatCommas(-1234))
	assert.Equal(t, "18,446,744,073,709,551,615", FormatCommas(^uint64(0)))
}

func TestMaskSensitiveData(t *testing.T) {
	assert.Equal(t, "", MaskSensitiveData(""))
	assert.Equal(t, "***", MaskSensitiveData("abc"))
	assert.Equal(t, "abcd***", MaskSensitiveData("abcdefgh"))
	assert.Equal(t, "abcd***mnop", MaskSensitiveData("abcdefghijklmnop"))
}
