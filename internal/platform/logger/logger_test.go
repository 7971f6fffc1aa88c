package logger

import (
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved(t *testing.T, opts ...Option) (*Logger, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	log, err := New("development", append(opts, WithCore(core))...)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	return log, logs
}

func TestAuthorizationPassesThroughWithoutRedaction(t *testing.T) {
	log, logs := newObserved(t)

	log.Info("request", "authorization", "Bearer abc")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("unexpected entries: %d", len(entries))
	}
	if got := entries[0].ContextMap()["authorization"]; got != "Bearer abc" {
		t.Fatalf("authorization=%v want=%q", got, "Bearer abc")
	}
}

func TestRedactionMasksCredentialsAndHashesSubjects(t *testing.T) {
	log, logs := newObserved(t, WithRedaction(true, "salt"))

	log.With("refresh_token", "r-1").Info("request",
		"authorization", "Bearer abc",
		"auth_subject", "user-42",
		"path", "/api/chapters",
	)

	fields := logs.All()[0].ContextMap()
	if fields["authorization"] != "[REDACTED]" {
		t.Fatalf("authorization=%v", fields["authorization"])
	}
	if fields["refresh_token"] != "[REDACTED]" {
		t.Fatalf("refresh_token=%v", fields["refresh_token"])
	}
	sub, _ := fields["auth_subject"].(string)
	if !strings.HasPrefix(sub, "hash:") || strings.Contains(sub, "user-42") {
		t.Fatalf("auth_subject=%q", sub)
	}
	if fields["path"] != "/api/chapters" {
		t.Fatalf("path=%v", fields["path"])
	}
}

func TestRedactionMasksJWTLookingValues(t *testing.T) {
	log, logs := newObserved(t, WithRedaction(true, ""))

	jwtish := "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiJ1c2VyLTQyIn0.sig"
	log.Info("body", "raw", jwtish)

	if got := logs.All()[0].ContextMap()["raw"]; got != "[REDACTED]" {
		t.Fatalf("raw=%v", got)
	}
}
