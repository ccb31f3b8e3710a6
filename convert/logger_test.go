package convert

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_Default(t *testing.T) {
	if Logger() == nil {
		t.Fatal("Logger() should never be nil")
	}
}

func TestLogger_ConversionFailure(t *testing.T) {
	prev := Logger()
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(prev)

	if _, err := Convert(map[int]bool{1: true}); err == nil {
		t.Fatal("expected an error")
	}
	if _, err := Convert("fine"); err != nil {
		t.Fatal(err)
	}

	entries := logs.FilterMessage("conversion failed").All()
	if len(entries) != 1 {
		t.Fatalf("logged %d failures, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["type"]; got != "map[int]bool" {
		t.Errorf("type field = %v", got)
	}
}
