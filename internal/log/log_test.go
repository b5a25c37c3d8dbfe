package log

import (
	"testing"

	cblog "github.com/charmbracelet/log"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected cblog.Level
	}{
		{"debug", cblog.DebugLevel},
		{"DEBUG", cblog.DebugLevel},
		{"warn", cblog.WarnLevel},
		{"warning", cblog.WarnLevel},
		{"error", cblog.ErrorLevel},
		{"fatal", cblog.FatalLevel},
		{"info", cblog.InfoLevel},
		{"", cblog.InfoLevel},
		{"verbose", cblog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLogLevel(tt.input); got != tt.expected {
				t.Errorf("parseLogLevel(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSetLevel(t *testing.T) {
	prev := GetLogger().GetLevel()
	t.Cleanup(func() { GetLogger().SetLevel(prev) })

	SetLevel("error")
	if got := GetLogger().GetLevel(); got != cblog.ErrorLevel {
		t.Errorf("level after SetLevel(error) = %v, expected %v", got, cblog.ErrorLevel)
	}
	if GetLogger() != GetLogger() {
		t.Error("GetLogger should return the same instance")
	}
}
