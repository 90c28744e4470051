package log

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write(_ []byte) (int, error) {
	return 0, errors.New("disk full")
}

func newTestEntry(level Level, msg string) *Entry {
	e := logrus.NewEntry(logrus.New())
	e.Level = level
	e.Message = msg
	return e
}

func newTestHook() (*hook, *bytes.Buffer, *bytes.Buffer, *bytes.Buffer, *bytes.Buffer) {
	var mainBuf, criticalBuf, verboseBuf, consoleBuf bytes.Buffer
	h := &hook{
		mainWriter:     &mainBuf,
		criticalWriter: &criticalBuf,
		verboseWriter:  &verboseBuf,
		consoleWriter:  &consoleBuf,
		formatter:      &logrus.TextFormatter{DisableTimestamp: true},
	}
	return h, &mainBuf, &criticalBuf, &verboseBuf, &consoleBuf
}

func TestHook_Routing(t *testing.T) {
	tests := []struct {
		name         string
		level        Level
		wantMain     bool
		wantCritical bool
		wantVerbose  bool
	}{
		{"Error는 Critical과 Main에 기록", ErrorLevel, true, true, false},
		{"Warn은 Main에만 기록", WarnLevel, true, false, false},
		{"Info는 Main에만 기록", InfoLevel, true, false, false},
		{"Debug는 Verbose에만 기록", DebugLevel, false, false, true},
		{"Trace는 Verbose에만 기록", TraceLevel, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mainBuf, criticalBuf, verboseBuf, consoleBuf := newTestHook()

			require.NoError(t, h.Fire(newTestEntry(tt.level, "sequence allocated")))

			assert.Equal(t, tt.wantMain, mainBuf.Len() > 0)
			assert.Equal(t, tt.wantCritical, criticalBuf.Len() > 0)
			assert.Equal(t, tt.wantVerbose, verboseBuf.Len() > 0)
			assert.Contains(t, consoleBuf.String(), "sequence allocated")
		})
	}
}

func TestHook_ClosedIgnoresEntries(t *testing.T) {
	h, mainBuf, _, _, consoleBuf := newTestHook()

	require.NoError(t, h.Close())
	require.NoError(t, h.Fire(newTestEntry(ErrorLevel, "ignored")))

	assert.Zero(t, mainBuf.Len())
	assert.Zero(t, consoleBuf.Len())
}

func TestHook_WriteErrorStillWritesMain(t *testing.T) {
	h, mainBuf, _, _, _ := newTestHook()
	h.criticalWriter = failingWriter{}

	err := h.Fire(newTestEntry(ErrorLevel, "boom"))

	assert.Error(t, err)
	assert.Contains(t, mainBuf.String(), "boom")
}

func TestHook_Levels(t *testing.T) {
	h, _, _, _, _ := newTestHook()
	assert.Equal(t, AllLevels, h.Levels())
}
