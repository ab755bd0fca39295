package cmd

import (
	"context"
	"errors"
	"flag"
	"testing"
)

func TestParseConfigRequiresTarget(t *testing.T) {
	var cfg *struct{}
	if err := ParseConfig(cfg); err == nil {
		t.Fatal("expected error for nil config target")
	}
}

func TestParseConfigFromArgsLayersFlagsOverEnv(t *testing.T) {
	type cfg struct {
		Port int `env:"BASTION_HEARTH_ENTRYPOINT_TEST_PORT" envDefault:"8082"`
	}

	t.Setenv("BASTION_HEARTH_ENTRYPOINT_TEST_PORT", "9000")

	var c cfg
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	if err := ParseConfig(&c); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	fs.IntVar(&c.Port, "port", c.Port, "port")
	if err := ParseArgs(fs, []string{"-port", "9001"}); err != nil {
		t.Fatalf("parse args: %v", err)
	}
	if c.Port != 9001 {
		t.Fatalf("expected flag to override env, got %d", c.Port)
	}
}

func TestParseArgsRequiresFlagSet(t *testing.T) {
	if err := ParseArgs(nil, nil); err == nil {
		t.Fatal("expected error for nil flag set")
	}
}

func TestRunWithTelemetryRequiresService(t *testing.T) {
	err := RunWithTelemetry(context.Background(), "  ", func(context.Context) error { return nil })
	if err == nil {
		t.Fatal("expected error for empty service name")
	}
}

func TestRunWithTelemetryRequiresRun(t *testing.T) {
	if err := RunWithTelemetry(context.Background(), ServiceBastion, nil); err == nil {
		t.Fatal("expected error for nil run function")
	}
}

func TestRunWithTelemetryPropagatesRunError(t *testing.T) {
	t.Setenv("BASTION_HEARTH_OTEL_ENDPOINT", "")

	wantErr := errors.New("run failed")
	err := RunWithTelemetry(context.Background(), ServiceBastion, func(context.Context) error {
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected run error, got %v", err)
	}
}
