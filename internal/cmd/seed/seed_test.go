package seed

import (
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DBDialect != "sqlite" {
		t.Errorf("unexpected dialect: %q", cfg.DBDialect)
	}
	if cfg.Days != 5 {
		t.Errorf("unexpected days: %d", cfg.Days)
	}
}

func TestParseConfigRejectsNegativeDays(t *testing.T) {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	if _, err := ParseConfig(fs, []string{"-days", "-1"}); err == nil {
		t.Fatal("expected error for negative days")
	}
}

func TestRunSeedsDemoCampaign(t *testing.T) {
	cfg := Config{
		DBDialect: "sqlite",
		DBDSN:     filepath.Join(t.TempDir(), "seed.db"),
		Days:      5,
	}

	var out bytes.Buffer
	if err := Run(context.Background(), cfg, &out); err != nil {
		t.Fatalf("run seed: %v", err)
	}

	output := out.String()
	for _, want := range []string{
		"campaign The Shattered March",
		"Hearthstone Keep owned by Elara Meadowlight (level 9)",
		"Ravenwatch Spire owned by Kaelen Shadowhand (level 9)",
		"Barrack: Recruit: Bastion Defenders",
		"Kitchen (cramped): under construction",
		"advanced to day 5",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}
