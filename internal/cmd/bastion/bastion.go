// Package bastion parses bastion server flags and runs the MCP surface on
// stdio or HTTP.
package bastion

import (
	"context"
	"flag"
	"fmt"
	"log"

	platformcmd "github.com/louisbranch/bastionhearth/internal/platform/cmd"
	"github.com/louisbranch/bastionhearth/internal/platform/storage/dbmigrate"
	"github.com/louisbranch/bastionhearth/internal/platform/telemetry/metrics"
	mcpapi "github.com/louisbranch/bastionhearth/internal/services/bastion/api/mcp"
	"github.com/louisbranch/bastionhearth/internal/services/bastion/notify"
	"github.com/louisbranch/bastionhearth/internal/services/bastion/service"
	"github.com/louisbranch/bastionhearth/internal/services/bastion/storage/sqldb"
)

// Transport values accepted by the -transport flag.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config holds bastion server command configuration.
type Config struct {
	Transport  string `env:"BASTION_HEARTH_TRANSPORT"   envDefault:"stdio"`
	HTTPAddr   string `env:"BASTION_HEARTH_HTTP_ADDR"   envDefault:"localhost:8080"`
	DBDialect  string `env:"BASTION_HEARTH_DB_DIALECT"  envDefault:"sqlite"`
	DBDSN      string `env:"BASTION_HEARTH_DB_DSN"      envDefault:"bastion.db"`
	WebhookURL string `env:"BASTION_HEARTH_WEBHOOK_URL"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "transport type: stdio or http")
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address (for http transport)")
	fs.StringVar(&cfg.DBDialect, "db-dialect", cfg.DBDialect, "database dialect: sqlite or postgres")
	fs.StringVar(&cfg.DBDSN, "db-dsn", cfg.DBDSN, "database path (sqlite) or DSN (postgres)")
	fs.StringVar(&cfg.WebhookURL, "webhook-url", cfg.WebhookURL, "Slack incoming webhook for chronicle forwarding")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}

	if cfg.Transport != TransportStdio && cfg.Transport != TransportHTTP {
		return Config{}, fmt.Errorf("unknown transport %q: expected %s or %s", cfg.Transport, TransportStdio, TransportHTTP)
	}
	if !dbmigrate.Dialect(cfg.DBDialect).Valid() {
		return Config{}, fmt.Errorf("unknown database dialect %q: expected %s or %s", cfg.DBDialect, dbmigrate.DialectSQLite, dbmigrate.DialectPostgres)
	}
	return cfg, nil
}

// Run starts the bastion MCP server and blocks until ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceBastion, func(ctx context.Context) error {
		store, err := sqldb.Open(dbmigrate.Dialect(cfg.DBDialect), cfg.DBDSN)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				log.Printf("close store: %v", err)
			}
		}()

		webhook := notify.NewWebhook(cfg.WebhookURL)
		if webhook.Enabled() {
			log.Printf("chronicle forwarding enabled")
		}

		m := metrics.New()
		svc := service.New(service.Config{
			Store:     store,
			Forwarder: webhook,
			Metrics:   m,
		})

		server, err := mcpapi.NewServer(svc, m)
		if err != nil {
			return fmt.Errorf("build MCP server: %w", err)
		}

		if cfg.Transport == TransportHTTP {
			return server.RunHTTP(ctx, cfg.HTTPAddr)
		}
		return server.RunStdio(ctx)
	})
}
