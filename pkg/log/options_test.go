package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_Validate(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(filePath, []byte("x"), 0644))

	tests := []struct {
		name    string
		opts    Options
		wantErr string
	}{
		{"정상", Options{Name: "tracking-server"}, ""},
		{"이름 누락", Options{}, "Name"},
		{"디렉토리 경로가 파일", Options{Name: "a", Dir: filePath}, "이미 파일로 존재"},
		{"음수 MaxAge", Options{Name: "a", MaxAge: -1}, "MaxAge"},
		{"음수 MaxSizeMB", Options{Name: "a", MaxSizeMB: -1}, "MaxSizeMB"},
		{"음수 MaxBackups", Options{Name: "a", MaxBackups: -1}, "MaxBackups"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestProfiles(t *testing.T) {
	prod := NewProductionOptions("tracking-server")
	assert.Equal(t, InfoLevel, prod.Level)
	assert.True(t, prod.EnableCriticalLog)
	assert.False(t, prod.EnableConsoleLog)
	assert.NoError(t, prod.Validate())

	dev := NewDevelopmentOptions("tracking-server")
	assert.Equal(t, TraceLevel, dev.Level)
	assert.True(t, dev.EnableConsoleLog)
	assert.NoError(t, dev.Validate())
}
