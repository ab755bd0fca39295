package bastion

import (
	"flag"
	"testing"
)

func parseArgs(t *testing.T, args ...string) (Config, error) {
	t.Helper()
	fs := flag.NewFlagSet("bastion", flag.ContinueOnError)
	return ParseConfig(fs, args)
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parseArgs(t)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Transport != TransportStdio {
		t.Errorf("expected stdio transport, got %q", cfg.Transport)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Errorf("unexpected HTTP addr: %q", cfg.HTTPAddr)
	}
	if cfg.DBDialect != "sqlite" {
		t.Errorf("unexpected dialect: %q", cfg.DBDialect)
	}
	if cfg.DBDSN != "bastion.db" {
		t.Errorf("unexpected DSN: %q", cfg.DBDSN)
	}
}

func TestParseConfigFlagOverrides(t *testing.T) {
	cfg, err := parseArgs(t,
		"-transport", "http",
		"-http-addr", "0.0.0.0:9090",
		"-db-dialect", "postgres",
		"-db-dsn", "postgres://localhost/bastion",
		"-webhook-url", "https://hooks.slack.com/services/T0/B0/x",
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Transport != TransportHTTP {
		t.Errorf("expected http transport, got %q", cfg.Transport)
	}
	if cfg.HTTPAddr != "0.0.0.0:9090" {
		t.Errorf("unexpected HTTP addr: %q", cfg.HTTPAddr)
	}
	if cfg.DBDialect != "postgres" {
		t.Errorf("unexpected dialect: %q", cfg.DBDialect)
	}
	if cfg.WebhookURL == "" {
		t.Error("expected webhook URL to be set")
	}
}

func TestParseConfigRejectsUnknownTransport(t *testing.T) {
	if _, err := parseArgs(t, "-transport", "grpc"); err == nil {
		t.Fatal("expected error for unknown transport")
	}
}

func TestParseConfigRejectsUnknownDialect(t *testing.T) {
	if _, err := parseArgs(t, "-db-dialect", "mysql"); err == nil {
		t.Fatal("expected error for unknown dialect")
	}
}
