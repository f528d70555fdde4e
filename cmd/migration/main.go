// Command migration manages the schema outside the footstats CLI, for
// deployments that migrate as a separate step.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/riskibarqy/football-stats/internal/infrastructure/migration"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
)

// schema is the subset of the migrator the commands drive.
type schema interface {
	Source() string
	Up() (bool, error)
	Down(steps int) (bool, error)
	Goto(target uint) (bool, error)
	Force(version int) error
	Version() (version uint, dirty bool, ok bool, err error)
	Close()
}

func main() {
	_ = godotenv.Load(".env")

	logger := logging.New(os.Stderr, logging.FormatConsole, logging.ParseLevel(os.Getenv("APP_LOG_LEVEL")))
	open := func() (schema, error) {
		dbURL := strings.TrimSpace(os.Getenv("DB_URL"))
		if dbURL == "" {
			return nil, fmt.Errorf("DB_URL is required")
		}
		return migration.New(dbURL, os.Getenv("MIGRATIONS_DIR"), logger)
	}

	cmd := newRootCmd(open, logger, os.Stdout)
	cmd.SetArgs(os.Args[1:])
	err := cmd.Execute()
	if err != nil {
		logger.Error("migration failed", "error", err)
	}
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd(open func() (schema, error), logger *logging.Logger, out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "migration",
		Short:         "Apply, roll back or inspect football-stats schema migrations",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetOut(out)

	// withSchema opens the migrator for one command and closes it after.
	withSchema := func(fn func(m schema, args []string) error) func(*cobra.Command, []string) error {
		return func(_ *cobra.Command, args []string) error {
			m, err := open()
			if err != nil {
				return err
			}
			defer m.Close()
			return fn(m, args)
		}
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: withSchema(func(m schema, _ []string) error {
				changed, err := m.Up()
				if err != nil {
					return fmt.Errorf("apply migrations: %w", err)
				}
				logger.Info("migrations applied", "source", m.Source(), "changed", changed)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "down [steps]",
			Short: "Roll back migrations, one step by default",
			Args:  cobra.MaximumNArgs(1),
			RunE: withSchema(func(m schema, args []string) error {
				steps, err := parseSteps(args)
				if err != nil {
					return err
				}
				if _, err := m.Down(steps); err != nil {
					return fmt.Errorf("roll back migrations: %w", err)
				}
				logger.Info("rolled back migrations", "steps", steps)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the applied version",
			Args:  cobra.NoArgs,
			RunE: withSchema(func(m schema, _ []string) error {
				version, dirty, ok, err := m.Version()
				if err != nil {
					return fmt.Errorf("read version: %w", err)
				}
				if !ok {
					_, err = fmt.Fprintln(out, "version: none\ndirty: false")
					return err
				}
				_, err = fmt.Fprintf(out, "version: %d\ndirty: %t\n", version, dirty)
				return err
			}),
		},
		&cobra.Command{
			Use:   "force <version>",
			Short: "Mark a version as applied without running it",
			Args:  cobra.ExactArgs(1),
			RunE: withSchema(func(m schema, args []string) error {
				version, err := parseVersion(args[0])
				if err != nil {
					return err
				}
				if err := m.Force(version); err != nil {
					return fmt.Errorf("force version: %w", err)
				}
				logger.Info("forced version", "version", version)
				return nil
			}),
		},
		&cobra.Command{
			Use:     "goto <version>",
			Aliases: []string{"migrate"},
			Short:   "Migrate up or down to a version",
			Args:    cobra.ExactArgs(1),
			RunE: withSchema(func(m schema, args []string) error {
				target, err := parseTarget(args[0])
				if err != nil {
					return err
				}
				if _, err := m.Goto(target); err != nil {
					return fmt.Errorf("migrate to %d: %w", target, err)
				}
				logger.Info("migrated", "version", target)
				return nil
			}),
		},
	)
	return root
}

func parseSteps(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	steps, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil || steps <= 0 {
		return 0, fmt.Errorf("down steps must be a positive number, got %q", args[0])
	}
	return steps, nil
}

// parseVersion reads a force target. golang-migrate takes an int there.
func parseVersion(raw string) (int, error) {
	version, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || version < 0 {
		return 0, fmt.Errorf("version must be a non-negative number, got %q", raw)
	}
	return version, nil
}

func parseTarget(raw string) (uint, error) {
	target, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 0)
	if err != nil {
		return 0, fmt.Errorf("target version must be a non-negative number, got %q", raw)
	}
	return uint(target), nil
}
