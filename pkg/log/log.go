// Package log logrus 기반의 애플리케이션 로깅 기능을 제공합니다.
//
// 모든 로그에는 발생 위치를 식별할 수 있도록 component 필드를 붙입니다.
//
//	log.WithComponent("tracking.service").Info("송장번호 발급 완료")
//
// 파일 출력과 로테이션은 Setup으로 구성합니다.
package log

import "github.com/sirupsen/logrus"

// WithComponent component 필드를 포함한 로그 Entry를 반환합니다.
func WithComponent(component string) *Entry {
	return logrus.WithField("component", component)
}

// WithComponentAndFields component 필드와 추가 필드를 포함한 로그 Entry를 반환합니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	newFields := make(Fields, len(fields)+1)
	for k, v := range fields {
		newFields[k] = v
	}
	newFields["component"] = component
	return logrus.WithFields(newFields)
}

// SetLevel 전역 로그 레벨을 변경합니다.
func SetLevel(level Level) {
	logrus.SetLevel(level)
}

// GetLevel 현재 전역 로그 레벨을 반환합니다.
func GetLevel() Level {
	return logrus.GetLevel()
}

// StandardLogger logrus의 전역 Logger를 반환합니다.
func StandardLogger() *Logger {
	return logrus.StandardLogger()
}
