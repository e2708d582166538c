package logger

import (
	"context"
	"testing"
)

func TestNewDefaultsToInfo(t *testing.T) {
	l, ok := New("bogus").(*implLogger)
	if !ok {
		t.Fatal("New() did not return *implLogger")
	}
	if l.level != levels["info"] {
		t.Errorf("level = %d, want info", l.level)
	}
}

func TestLevels(t *testing.T) {
	tests := []struct {
		configured string
		wantLevel  int
	}{
		{"debug", 0},
		{"info", 1},
		{"warn", 2},
		{"error", 3},
		{"WARN", 2},
	}

	for _, tt := range tests {
		l := New(tt.configured).(*implLogger)
		if l.level != tt.wantLevel {
			t.Errorf("New(%q) level = %d, want %d", tt.configured, l.level, tt.wantLevel)
		}
	}
}

func TestLoggingDoesNotPanic(t *testing.T) {
	ctx := context.Background()
	l := New("debug")
	l.Debug(ctx, "debug %d", 1)
	l.Info(ctx, "info %s", "x")
	l.Warn(ctx, "warn")
	l.Error(ctx, "error %v", nil)
}
