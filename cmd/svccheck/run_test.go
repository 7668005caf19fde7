package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/neilotoole/slogt"

	"github.com/hazz-dev/svccheck/internal/checker"
	"github.com/hazz-dev/svccheck/internal/config"
)

var allDisabled = config.MapEnv{
	"ENABLE_POSTGRES":   "false",
	"ENABLE_MYSQL":      "false",
	"ENABLE_VALKEY":     "false",
	"ENABLE_KAFKA":      "false",
	"ENABLE_OPENSEARCH": "false",
	"ENABLE_MINIO":      "false",
}

func TestExecuteRun_AllDisabled(t *testing.T) {
	var buf bytes.Buffer
	err := executeRun(&buf, allDisabled, slogt.New(t), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "Service Connectivity Checks") {
		t.Errorf("expected banner, got:\n%s", output)
	}
	for _, svc := range []string{"PostgreSQL", "MySQL", "Valkey", "Kafka", "OpenSearch", "MinIO"} {
		if !strings.Contains(output, "[⊘] "+svc) {
			t.Errorf("expected skipped line for %s, got:\n%s", svc, output)
		}
	}
	if !strings.Contains(output, "ENABLE_KAFKA=false -> service intentionally disabled") {
		t.Errorf("expected kafka skip reason, got:\n%s", output)
	}
	if !strings.Contains(output, "Summary: 0 passed, 0 failed, 6 skipped") {
		t.Errorf("expected summary line, got:\n%s", output)
	}
	if strings.Contains(output, "\x1b[") {
		t.Errorf("expected no color codes, got:\n%s", output)
	}
}

func TestExecuteRun_DisabledFlagIsCaseInsensitive(t *testing.T) {
	env := config.MapEnv{}
	for k := range allDisabled {
		env[k] = "OFF"
	}

	var buf bytes.Buffer
	if err := executeRun(&buf, env, slogt.New(t), false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "6 skipped") {
		t.Errorf("expected every check skipped, got:\n%s", buf.String())
	}
}

func TestRunDefinitions_FailureReturnsError(t *testing.T) {
	defs := []checker.Definition{
		func(config.Env) checker.Check {
			return checker.Check{
				Service: "Good",
				Client:  "go-good",
				Gate:    checker.Gate{Flag: "ENABLE_GOOD", DefaultEnabled: true},
				Probe:   func(context.Context) (string, error) { return "fine", nil },
			}
		},
		func(config.Env) checker.Check {
			return checker.Check{
				Service: "Bad",
				Client:  "go-bad",
				Gate:    checker.Gate{Flag: "ENABLE_BAD", DefaultEnabled: true},
				Probe:   func(context.Context) (string, error) { return "", errors.New("connection refused") },
			}
		},
	}

	var buf bytes.Buffer
	err := runDefinitions(&buf, config.MapEnv{}, slogt.New(t), false, defs)
	if err == nil {
		t.Fatal("expected error when a check fails")
	}
	if err.Error() != "1 of 2 checks failed" {
		t.Errorf("unexpected error %q", err)
	}

	output := buf.String()
	if !strings.Contains(output, "[✗] Bad") || !strings.Contains(output, "-> connection refused") {
		t.Errorf("expected failed line, got:\n%s", output)
	}
	if !strings.Contains(output, "Summary: 1 passed, 1 failed, 0 skipped") {
		t.Errorf("expected summary line, got:\n%s", output)
	}
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		value string
		set   bool
		want  slog.Level
	}{
		{"", false, slog.LevelWarn},
		{"debug", true, slog.LevelDebug},
		{"INFO", true, slog.LevelInfo},
		{"error", true, slog.LevelError},
		{"chatty", true, slog.LevelWarn},
	}
	for _, tt := range tests {
		env := config.MapEnv{}
		if tt.set {
			env["LOG_LEVEL"] = tt.value
		}
		if got := logLevel(env); got != tt.want {
			t.Errorf("LOG_LEVEL=%q: expected %v, got %v", tt.value, tt.want, got)
		}
	}
}

func TestUseColor(t *testing.T) {
	if !useColor(config.MapEnv{}, true) {
		t.Error("expected color on a terminal")
	}
	if useColor(config.MapEnv{}, false) {
		t.Error("expected no color when not a terminal")
	}
	if useColor(config.MapEnv{"NO_COLOR": "1"}, true) {
		t.Error("expected NO_COLOR to disable color")
	}
}

func TestVersionCmd(t *testing.T) {
	cmd := rootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "svccheck dev") {
		t.Errorf("expected version line, got %q", buf.String())
	}
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	cmd := rootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"unexpected"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for positional arguments")
	}
}
