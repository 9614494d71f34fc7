package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestInitialize(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	tests := []struct {
		name     string
		level    string
		encoding string
		wantErr  bool
	}{
		{name: "info json", level: "info", encoding: "json"},
		{name: "debug console", level: "debug", encoding: "console"},
		{name: "default encoding", level: "warn", encoding: ""},
		{name: "error json", level: "error", encoding: "json"},
		{name: "invalid level", level: "not-a-level", encoding: "json", wantErr: true},
		{name: "invalid encoding", level: "info", encoding: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Initialize(tt.level, tt.encoding)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.IsType(t, &zap.SugaredLogger{}, Log)
			assert.NotPanics(t, func() {
				Log.Infow("test log", "level", tt.level)
			})
		})
	}
}

func TestLog_NopBeforeInitialize(t *testing.T) {
	assert.NotNil(t, Log)
	assert.NotPanics(t, func() {
		Log.Infow("nop logger test")
		Sync()
	})
}
