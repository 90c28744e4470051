package validation

import (
	"fmt"

	"github.com/darkkaiser/tracking-server/pkg/cronx"
)

// ValidateCronExpression 초 단위를 포함한 6필드 Cron 표현식(또는 @every 등 Descriptor)인지 검증합니다.
func ValidateCronExpression(spec string) error {
	if _, err := cronx.StandardParser().Parse(spec); err != nil {
		return fmt.Errorf("Cron 표현식 파싱 실패(spec=%q): %w", spec, err)
	}
	return nil
}
