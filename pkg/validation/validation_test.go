package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCORSOrigin(t *testing.T) {
	tests := []struct {
		name    string
		origin  string
		wantErr bool
	}{
		{"와일드카드", "*", false},
		{"HTTP 도메인", "http://example.com", false},
		{"HTTPS 서브도메인", "https://api.dev.example.com", false},
		{"localhost 포트", "http://localhost:3000", false},
		{"IPv4", "http://192.168.0.1:8080", false},
		{"IPv6", "http://[::1]:8080", false},
		{"빈 문자열", "", true},
		{"후행 슬래시", "https://example.com/", true},
		{"경로 포함", "https://example.com/api", true},
		{"쿼리 포함", "https://example.com?x=1", true},
		{"스키마 오류", "ftp://example.com", true},
		{"포트 범위 초과", "http://example.com:70000", true},
		{"사용자 정보 포함", "http://user@example.com", true},
		{"잘못된 호스트", "http://exa_mple.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCORSOrigin(tt.origin)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateHostname(t *testing.T) {
	assert.NoError(t, ValidateHostname("localhost"))
	assert.NoError(t, ValidateHostname("tracking.example.com"))
	assert.Error(t, ValidateHostname("-bad.example.com"))
	assert.Error(t, ValidateHostname("a..b"))
	assert.Error(t, ValidateHostname("example.123"))
}

func TestValidatePort(t *testing.T) {
	assert.NoError(t, ValidatePort(1))
	assert.NoError(t, ValidatePort(65535))
	assert.Error(t, ValidatePort(0))
	assert.Error(t, ValidatePort(65536))
}

func TestValidateCronExpression(t *testing.T) {
	assert.NoError(t, ValidateCronExpression("0 */5 * * * *"))
	assert.NoError(t, ValidateCronExpression("@every 1m"))
	assert.Error(t, ValidateCronExpression("*/5 * * * *"))
	assert.Error(t, ValidateCronExpression("invalid"))
}
