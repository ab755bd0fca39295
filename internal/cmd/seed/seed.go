// Package seed populates a local database with a demo campaign for manual
// testing of the bastion tool surface.
package seed

import (
	"context"
	"flag"
	"fmt"
	"io"

	platformcmd "github.com/louisbranch/bastionhearth/internal/platform/cmd"
	"github.com/louisbranch/bastionhearth/internal/platform/storage/dbmigrate"
	"github.com/louisbranch/bastionhearth/internal/services/bastion/service"
	"github.com/louisbranch/bastionhearth/internal/services/bastion/storage/sqldb"
)

// Config holds seed command configuration.
type Config struct {
	DBDialect string `env:"BASTION_HEARTH_DB_DIALECT" envDefault:"sqlite"`
	DBDSN     string `env:"BASTION_HEARTH_DB_DSN"     envDefault:"bastion.db"`
	Days      int    `env:"BASTION_HEARTH_SEED_DAYS"  envDefault:"5"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.DBDialect, "db-dialect", cfg.DBDialect, "database dialect: sqlite or postgres")
	fs.StringVar(&cfg.DBDSN, "db-dsn", cfg.DBDSN, "database path (sqlite) or DSN (postgres)")
	fs.IntVar(&cfg.Days, "days", cfg.Days, "days to advance after seeding, leaving orders mid-progress")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}

	if !dbmigrate.Dialect(cfg.DBDialect).Valid() {
		return Config{}, fmt.Errorf("unknown database dialect %q", cfg.DBDialect)
	}
	if cfg.Days < 0 {
		return Config{}, fmt.Errorf("days must not be negative, got %d", cfg.Days)
	}
	return cfg, nil
}

// bastionFixture describes one demo bastion and the work it starts with.
type bastionFixture struct {
	character string
	level     int
	bastion   string
	defenders int
	specials  []string
	orders    map[string]string
	basic     string
	basicSize string
}

var fixtures = []bastionFixture{
	{
		character: "Elara Meadowlight",
		level:     9,
		bastion:   "Hearthstone Keep",
		defenders: 6,
		specials:  []string{"Barrack", "Smithy", "Garden"},
		orders: map[string]string{
			"Barrack": "Recruit: Bastion Defenders",
		},
		basic:     "Kitchen",
		basicSize: "cramped",
	},
	{
		character: "Kaelen Shadowhand",
		level:     9,
		bastion:   "Ravenwatch Spire",
		defenders: 4,
		specials:  []string{"Library", "Sanctuary", "Storehouse"},
		orders: map[string]string{
			"Storehouse": "Trade: Goods",
		},
		basic:     "Bedroom",
		basicSize: "roomy",
	},
}

// Run seeds the demo campaign and advances time so tasks sit mid-progress.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceSeed, func(ctx context.Context) error {
		return run(ctx, cfg, out)
	})
}

func run(ctx context.Context, cfg Config, out io.Writer) error {
	store, err := sqldb.Open(dbmigrate.Dialect(cfg.DBDialect), cfg.DBDSN)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	svc := service.New(service.Config{Store: store})

	campaign, err := svc.CreateCampaign(ctx, "The Shattered March")
	if err != nil {
		return fmt.Errorf("create campaign: %w", err)
	}
	fmt.Fprintf(out, "campaign %s (%s)\n", campaign.Name, campaign.ID)

	for _, fixture := range fixtures {
		if err := seedBastion(ctx, svc, campaign.ID, fixture, out); err != nil {
			return err
		}
	}

	if cfg.Days > 0 {
		report, err := svc.AdvanceTime(ctx, campaign.ID, cfg.Days)
		if err != nil {
			return fmt.Errorf("advance time: %w", err)
		}
		fmt.Fprintf(out, "advanced to day %d (%d completions)\n", report.Campaign.CurrentDay, len(report.Completions))
	}

	fmt.Fprintf(out, "done; read campaign://%s/dashboard for the overview\n", campaign.ID)
	return nil
}

func seedBastion(ctx context.Context, svc *service.Service, campaignID string, fixture bastionFixture, out io.Writer) error {
	character, err := svc.AddCharacter(ctx, campaignID, fixture.character, fixture.level)
	if err != nil {
		return fmt.Errorf("add character %s: %w", fixture.character, err)
	}
	bastion, err := svc.AddBastion(ctx, campaignID, character.ID, fixture.bastion, fixture.defenders)
	if err != nil {
		return fmt.Errorf("add bastion %s: %w", fixture.bastion, err)
	}
	fmt.Fprintf(out, "  %s owned by %s (level %d)\n", bastion.Name, character.Name, character.Level)

	for _, name := range fixture.specials {
		facility, err := svc.AcquireSpecial(ctx, bastion.ID, name)
		if err != nil {
			return fmt.Errorf("acquire %s: %w", name, err)
		}
		if orderName, ok := fixture.orders[name]; ok {
			if _, err := svc.IssueOrder(ctx, service.IssueOrderInput{
				FacilityID: facility.ID,
				OrderName:  orderName,
			}); err != nil {
				return fmt.Errorf("issue %s on %s: %w", orderName, name, err)
			}
			fmt.Fprintf(out, "    %s: %s\n", name, orderName)
			continue
		}
		fmt.Fprintf(out, "    %s: idle\n", name)
	}

	if fixture.basic != "" {
		if _, err := svc.BuildBasic(ctx, service.BuildBasicInput{
			BastionID:    bastion.ID,
			FacilityName: fixture.basic,
			Size:         fixture.basicSize,
		}); err != nil {
			return fmt.Errorf("build %s: %w", fixture.basic, err)
		}
		fmt.Fprintf(out, "    %s (%s): under construction\n", fixture.basic, fixture.basicSize)
	}
	return nil
}
