package migration

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/riskibarqy/football-stats/db"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	t.Parallel()

	entries, err := fs.ReadDir(db.Migrations, "migrations")
	require.NoError(t, err)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, entry := range entries {
		name := entry.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		}
	}
	require.NotEmpty(t, ups)
	require.Equal(t, ups, downs)
}

func TestEmbeddedMigrationCreatesEveryTable(t *testing.T) {
	t.Parallel()

	names, err := fs.Glob(db.Migrations, "migrations/*.up.sql")
	require.NoError(t, err)
	sort.Strings(names)

	var schema strings.Builder
	for _, name := range names {
		raw, err := fs.ReadFile(db.Migrations, name)
		require.NoError(t, err)
		schema.Write(raw)
	}

	for _, table := range []string{"countries", "competitions", "venues", "teams", "seasons", "standings", "fixtures", "fixture_stats", "team_season_competitions"} {
		require.Contains(t, schema.String(), "CREATE TABLE IF NOT EXISTS "+table, table)
	}
}

func TestNew_RejectsMissingInputs(t *testing.T) {
	t.Parallel()

	_, err := New("", "", nil)
	require.Error(t, err)

	_, err = New("postgres://localhost:5432/football_stats", filepath.Join(t.TempDir(), "missing"), nil)
	require.ErrorContains(t, err, "not found")
}
