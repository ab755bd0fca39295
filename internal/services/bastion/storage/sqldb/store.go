// Package sqldb provides SQL-backed persistence for bastion campaign state.
// The same store serves sqlite for local play and postgres for shared
// deployments; placeholders are rewritten per dialect.
package sqldb

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/louisbranch/bastionhearth/internal/platform/storage/dbmigrate"
	"github.com/louisbranch/bastionhearth/internal/services/bastion/domain"
	"github.com/louisbranch/bastionhearth/internal/services/bastion/storage/sqldb/migrations"
)

// Store provides SQL-backed persistence for bastion campaign state.
type Store struct {
	sqlDB   *sql.DB
	dialect dbmigrate.Dialect
}

var _ domain.Store = (*Store)(nil)

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a bastion store. For sqlite the DSN is a database file path;
// for postgres it is a full connection string.
func Open(dialect dbmigrate.Dialect, dsn string) (*Store, error) {
	if !dialect.Valid() {
		return nil, fmt.Errorf("unsupported dialect %q", dialect)
	}
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("storage dsn is required")
	}

	var sqlDB *sql.DB
	var err error
	switch dialect {
	case dbmigrate.DialectSQLite:
		cleanPath := filepath.Clean(dsn)
		connString := cleanPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL&_pragma=foreign_keys(ON)"
		sqlDB, err = sql.Open("sqlite", connString)
	case dbmigrate.DialectPostgres:
		sqlDB, err = sql.Open("pgx", dsn)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s db: %w", dialect, err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping %s db: %w", dialect, err)
	}

	store := &Store{sqlDB: sqlDB, dialect: dialect}
	if err := store.runMigrations(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) runMigrations() error {
	return dbmigrate.ApplyMigrations(s.sqlDB, s.dialect, migrations.FS, string(s.dialect))
}

// bind returns the placeholder for the 1-based parameter position.
func (s *Store) bind(pos int) string {
	return s.dialect.Bind(pos)
}
