package log

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")
	if got := RequestIDFrom(ctx); got != "req-123" {
		t.Errorf("expected req-123, got %q", got)
	}
	if got := RequestIDFrom(context.Background()); got != "" {
		t.Errorf("expected empty id, got %q", got)
	}
}

func TestInit_FileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "barman.log")
	l := Init(ZapConfig{
		Level:    "debug",
		Mode:     ModeProduction,
		Encoding: EncodingJSON,
		FilePath: path,
	})

	l.Infof(WithRequestID(context.Background(), "abc"), "hello %s", "bar")
	l.(*zapLogger).sugar.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected log output in file sink")
	}
}

func TestInit_InvalidLevelFallsBack(t *testing.T) {
	l := Init(ZapConfig{Level: "nonsense", Mode: ModeDevelopment, Encoding: EncodingConsole})
	if l == nil {
		t.Fatal("expected logger")
	}
	NewNop().Info(context.Background(), "discarded")
}
