package handlers

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/yungbote/neurobridge-education-mock/internal/domain/education"
	"github.com/yungbote/neurobridge-education-mock/internal/platform/logger"
)

func newTestLogger(t *testing.T) (*logger.Logger, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	log, err := logger.New("development", logger.WithCore(core))
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	t.Cleanup(log.Sync)
	return log, logs
}

func newTestCatalog(t *testing.T) *education.Catalog {
	t.Helper()
	c, err := education.DefaultCatalog()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return c
}

func TestNewEducationHandlerWithDeps(t *testing.T) {
	log, _ := newTestLogger(t)
	h := NewEducationHandler(EducationHandlerDeps{Log: log, Catalog: newTestCatalog(t)})
	if h == nil {
		t.Fatal("expected non-nil handler")
	}
}

func TestNewEducationHandlerWithoutLogger(t *testing.T) {
	h := NewEducationHandler(EducationHandlerDeps{Catalog: newTestCatalog(t)})
	if h == nil || h.log == nil {
		t.Fatal("expected handler with a no-op logger")
	}
}
