package log

import "github.com/sirupsen/logrus"

// Level logrus.Level의 별칭입니다.
type Level = logrus.Level

// 로그 레벨 (심각도 높은 순)
const (
	PanicLevel = logrus.PanicLevel
	FatalLevel = logrus.FatalLevel
	ErrorLevel = logrus.ErrorLevel
	WarnLevel  = logrus.WarnLevel
	InfoLevel  = logrus.InfoLevel
	DebugLevel = logrus.DebugLevel
	TraceLevel = logrus.TraceLevel
)

// AllLevels logrus.AllLevels의 별칭입니다.
var AllLevels = logrus.AllLevels

type (
	Fields    = logrus.Fields
	Entry     = logrus.Entry
	Logger    = logrus.Logger
	Hook      = logrus.Hook
	Formatter = logrus.Formatter
)

// ParseLevel 문자열("info", "debug" 등)을 로그 레벨로 변환합니다.
func ParseLevel(s string) (Level, error) {
	return logrus.ParseLevel(s)
}
