// Package migration applies the schema migrations with golang-migrate.
package migration

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/riskibarqy/football-stats/db"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
)

// Migrator wraps migrate.Migrate with the operations the CLIs expose.
type Migrator struct {
	m      *migrate.Migrate
	source string
	logger *logging.Logger
}

// New opens a migrator against dbURL. An empty dir selects the migrations
// embedded in the binary.
func New(dbURL, dir string, logger *logging.Logger) (*Migrator, error) {
	if logger == nil {
		logger = logging.Default()
	}
	dbURL = strings.TrimSpace(dbURL)
	if dbURL == "" {
		return nil, fmt.Errorf("database url is required")
	}

	var (
		m      *migrate.Migrate
		source string
		err    error
	)
	if dir = strings.TrimSpace(dir); dir != "" {
		abs, absErr := resolveDir(dir)
		if absErr != nil {
			return nil, absErr
		}
		source = "file://" + filepath.ToSlash(abs)
		m, err = migrate.New(source, dbURL)
	} else {
		driver, srcErr := iofs.New(db.Migrations, "migrations")
		if srcErr != nil {
			return nil, fmt.Errorf("open embedded migrations: %w", srcErr)
		}
		source = "embedded"
		m, err = migrate.NewWithSourceInstance("iofs", driver, dbURL)
	}
	if err != nil {
		return nil, fmt.Errorf("create migrator: %w", err)
	}

	return &Migrator{m: m, source: source, logger: logger}, nil
}

// Source names where migrations are read from.
func (g *Migrator) Source() string {
	return g.source
}

// Up applies every pending migration. It reports whether anything changed.
func (g *Migrator) Up() (bool, error) {
	return g.changed(g.m.Up())
}

// Down rolls back steps migrations.
func (g *Migrator) Down(steps int) (bool, error) {
	if steps <= 0 {
		return false, fmt.Errorf("down steps must be > 0")
	}
	return g.changed(g.m.Steps(-steps))
}

// Goto migrates up or down to target.
func (g *Migrator) Goto(target uint) (bool, error) {
	return g.changed(g.m.Migrate(target))
}

// Force sets the version without running migrations, clearing the dirty flag.
func (g *Migrator) Force(version int) error {
	if err := g.m.Force(version); err != nil {
		return fmt.Errorf("force version %d: %w", version, err)
	}
	return nil
}

// Version returns the applied version. ok is false on a fresh database.
func (g *Migrator) Version() (version uint, dirty bool, ok bool, err error) {
	version, dirty, err = g.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, false, nil
	}
	if err != nil {
		return 0, false, false, fmt.Errorf("read version: %w", err)
	}
	return version, dirty, true, nil
}

func (g *Migrator) Close() {
	srcErr, dbErr := g.m.Close()
	if srcErr != nil {
		g.logger.Warn("close migration source", "error", srcErr)
	}
	if dbErr != nil {
		g.logger.Warn("close migration db", "error", dbErr)
	}
}

func (g *Migrator) changed(err error) (bool, error) {
	if errors.Is(err, migrate.ErrNoChange) {
		g.logger.Info("no migration changes", "source", g.source)
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func resolveDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve migrations dir %q: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("migration directory %q not found", dir)
	}
	return abs, nil
}
