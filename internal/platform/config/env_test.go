package config

import "testing"

func TestParseEnvPopulatesDefaults(t *testing.T) {
	type cfg struct {
		Port int    `env:"BASTION_HEARTH_TEST_PORT" envDefault:"8082"`
		Name string `env:"BASTION_HEARTH_TEST_NAME" envDefault:"bastion"`
	}

	var c cfg
	if err := ParseEnv(&c); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if c.Port != 8082 {
		t.Fatalf("expected default port 8082, got %d", c.Port)
	}
	if c.Name != "bastion" {
		t.Fatalf("expected default name %q, got %q", "bastion", c.Name)
	}
}

func TestParseEnvReadsOverrides(t *testing.T) {
	type cfg struct {
		Port int `env:"BASTION_HEARTH_TEST_PORT" envDefault:"8082"`
	}

	t.Setenv("BASTION_HEARTH_TEST_PORT", "9100")

	var c cfg
	if err := ParseEnv(&c); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if c.Port != 9100 {
		t.Fatalf("expected override port 9100, got %d", c.Port)
	}
}

func TestParseEnvRejectsInvalidValue(t *testing.T) {
	type cfg struct {
		Port int `env:"BASTION_HEARTH_TEST_PORT"`
	}

	t.Setenv("BASTION_HEARTH_TEST_PORT", "not-a-number")

	var c cfg
	if err := ParseEnv(&c); err == nil {
		t.Fatal("expected error for invalid int value")
	}
}
