package profiler

import (
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestProfilerLogsAfterInterval(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	p := NewProfiler(WithLogger(zap.New(core)), WithUpdateInterval(time.Millisecond))

	p.lastTime = time.Now().Add(-time.Second)
	if !p.Tick() {
		t.Fatal("Tick() = false after the interval elapsed")
	}
	if logs.Len() != 1 {
		t.Fatalf("logged %d entries, want 1", logs.Len())
	}
	entry := logs.All()[0]
	if _, ok := entry.ContextMap()["tps"]; !ok {
		t.Errorf("entry fields %v missing tps", entry.ContextMap())
	}
}

func TestProfilerQuietWithinInterval(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	p := NewProfiler(WithLogger(zap.New(core)), WithUpdateInterval(time.Hour))

	for i := 0; i < 10; i++ {
		if p.Tick() {
			t.Fatal("Tick() logged before the interval elapsed")
		}
	}
	if logs.Len() != 0 {
		t.Fatalf("logged %d entries, want 0", logs.Len())
	}
}
