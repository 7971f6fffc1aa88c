package observability

import (
	"context"
	"testing"

	"github.com/yungbote/neurobridge-education-mock/internal/config"
	"github.com/yungbote/neurobridge-education-mock/internal/platform/logger"
)

func TestInitTracingDisabledIsNoop(t *testing.T) {
	shutdown, err := InitTracing(context.Background(), logger.NewNop(), config.TracingConfig{Enabled: false}, "development")
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if shutdown == nil {
		t.Fatal("expected shutdown func")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestInitTracingStdoutExporter(t *testing.T) {
	shutdown, err := InitTracing(context.Background(), logger.NewNop(), config.TracingConfig{
		Enabled:     true,
		ServiceName: "education-mock-test",
		SampleRatio: 1,
	}, "test")
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
