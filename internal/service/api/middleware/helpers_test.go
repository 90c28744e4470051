package middleware

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// captureLogs 전역 로거에 테스트 훅을 등록하고, 테스트 종료 시 원래 훅과 레벨로 복구합니다.
//
// 전역 상태를 변경하므로 이 헬퍼를 사용하는 테스트는 t.Parallel()을 호출하지 않아야 합니다.
func captureLogs(t *testing.T) *test.Hook {
	t.Helper()

	std := logrus.StandardLogger()

	originalHooks := make(logrus.LevelHooks)
	for level, hooks := range std.Hooks {
		originalHooks[level] = append([]logrus.Hook(nil), hooks...)
	}
	originalLevel := std.GetLevel()

	std.SetLevel(logrus.DebugLevel)
	hook := test.NewLocal(std)

	t.Cleanup(func() {
		std.ReplaceHooks(originalHooks)
		std.SetLevel(originalLevel)
	})

	return hook
}
