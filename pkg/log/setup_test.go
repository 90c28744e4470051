package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_WritesRotatingFiles(t *testing.T) {
	dir := t.TempDir()
	l := logrus.New()

	c, err := setup(l, Options{
		Name:              "tracking-server",
		Dir:               dir,
		Level:             TraceLevel,
		EnableCriticalLog: true,
		EnableVerboseLog:  true,
	})
	require.NoError(t, err)

	l.WithField("component", "test").Info("started")
	l.Error("failed")
	l.Debug("details")
	require.NoError(t, c.Close())

	mainLog, err := os.ReadFile(filepath.Join(dir, "tracking-server.log"))
	require.NoError(t, err)
	assert.Contains(t, string(mainLog), "started")
	assert.Contains(t, string(mainLog), "failed")
	assert.NotContains(t, string(mainLog), "details")

	criticalLog, err := os.ReadFile(filepath.Join(dir, "tracking-server.critical.log"))
	require.NoError(t, err)
	assert.Contains(t, string(criticalLog), "failed")
	assert.NotContains(t, string(criticalLog), "started")

	verboseLog, err := os.ReadFile(filepath.Join(dir, "tracking-server.verbose.log"))
	require.NoError(t, err)
	assert.Contains(t, string(verboseLog), "details")
}

func TestSetup_InvalidOptions(t *testing.T) {
	_, err := setup(logrus.New(), Options{})
	assert.ErrorContains(t, err, "유효하지 않은 로그 설정")
}

func TestWithComponentAndFields(t *testing.T) {
	fields := Fields{"seq": 1000}
	entry := WithComponentAndFields("tracking.idgen", fields)

	assert.Equal(t, "tracking.idgen", entry.Data["component"])
	assert.Equal(t, 1000, entry.Data["seq"])
	assert.NotContains(t, fields, "component")
}
