// Package cronx robfig/cron의 애플리케이션 표준 설정을 제공합니다.
package cronx

import (
	"github.com/robfig/cron/v3"

	applog "github.com/darkkaiser/tracking-server/pkg/log"
)

// StandardParser 초 단위를 포함한 6필드 표현식과 Descriptor(@every, @daily 등)를 해석하는 파서를 반환합니다.
// 표준 5필드 형식은 지원하지 않습니다.
//
//	"0 */5 * * * *" : 매 5분 0초
//	"@every 30s"    : 30초마다
func StandardParser() cron.Parser {
	return cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
}

// New StandardParser와 로그 어댑터를 사용하는 스케줄러를 생성합니다.
// 작업에서 발생한 panic은 복구되어 로그로 남습니다.
func New(component string) *cron.Cron {
	logger := NewLogger(component)
	return cron.New(
		cron.WithParser(StandardParser()),
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)
}

// Logger cron.Logger 인터페이스를 애플리케이션 로거로 연결합니다.
type Logger struct {
	component string
}

// NewLogger component 필드가 붙은 cron.Logger를 생성합니다.
func NewLogger(component string) *Logger {
	return &Logger{component: component}
}

// Info cron 내부의 일반 로그는 디버그 레벨로 기록합니다.
func (l *Logger) Info(msg string, keysAndValues ...any) {
	applog.WithComponentAndFields(l.component, toFields(keysAndValues)).Debug(msg)
}

func (l *Logger) Error(err error, msg string, keysAndValues ...any) {
	fields := toFields(keysAndValues)
	fields["error"] = err
	applog.WithComponentAndFields(l.component, fields).Error(msg)
}

func toFields(keysAndValues []any) applog.Fields {
	fields := make(applog.Fields, len(keysAndValues)/2+1)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
