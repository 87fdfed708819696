package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		debug bool
		level zapcore.Level
	}{
		{"production", false, zapcore.InfoLevel},
		{"development", true, zapcore.DebugLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.debug)
			if err != nil {
				t.Fatal(err)
			}
			if !log.Desugar().Core().Enabled(tt.level) {
				t.Errorf("level %v disabled", tt.level)
			}
			if tt.level > zapcore.DebugLevel && log.Desugar().Core().Enabled(zapcore.DebugLevel) {
				t.Error("debug enabled in production")
			}
		})
	}
}
