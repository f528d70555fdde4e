package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/football-stats/internal/domain/fixturestats"
	qb "github.com/riskibarqy/football-stats/internal/platform/querybuilder"
)

type FixtureStatsRepository struct {
	db *sqlx.DB
}

func NewFixtureStatsRepository(db *sqlx.DB) *FixtureStatsRepository {
	return &FixtureStatsRepository{db: db}
}

func (r *FixtureStatsRepository) ExistsForFixture(ctx context.Context, fixtureID int64) (bool, error) {
	query, args, err := qb.Select("1").From("fixture_stats").
		Where(qb.Eq("fixture_id", fixtureID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build fixture stats exists query: %w", err)
	}

	var one int
	if err := r.db.GetContext(ctx, &one, query, args...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("check fixture stats exists: %w", err)
	}
	return true, nil
}

func (r *FixtureStatsRepository) ListByFixtureIDs(ctx context.Context, fixtureIDs []int64) ([]fixturestats.FixtureStats, error) {
	if len(fixtureIDs) == 0 {
		return []fixturestats.FixtureStats{}, nil
	}

	query, args, err := qb.Select("*").From("fixture_stats").
		Where(qb.Any("fixture_id", pq.Array(fixtureIDs))).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list fixture stats query: %w", err)
	}

	var rows []fixtureStatsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list fixture stats: %w", err)
	}

	out := make([]fixturestats.FixtureStats, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *FixtureStatsRepository) Create(ctx context.Context, item fixturestats.FixtureStats) (fixturestats.FixtureStats, error) {
	if err := item.Validate(); err != nil {
		return fixturestats.FixtureStats{}, fmt.Errorf("create fixture stats: %w", err)
	}

	query, args, err := qb.InsertModel("fixture_stats", newFixtureStatsInsertModel(item),
		"ON CONFLICT (fixture_id, home_team_id, away_team_id) DO NOTHING RETURNING *")
	if err != nil {
		return fixturestats.FixtureStats{}, fmt.Errorf("build insert fixture stats query: %w", err)
	}

	var row fixtureStatsTableModel
	inserted, err := insertReturning(ctx, r.db, &row, query, args...)
	if err != nil {
		return fixturestats.FixtureStats{}, fmt.Errorf("insert fixture stats: %w", err)
	}
	if inserted {
		return row.toDomain(), nil
	}

	query, args, err = qb.Select("*").From("fixture_stats").
		Where(
			qb.Eq("fixture_id", item.FixtureID),
			qb.Eq("home_team_id", item.Home.TeamID),
			qb.Eq("away_team_id", item.Away.TeamID),
		).
		ToSQL()
	if err != nil {
		return fixturestats.FixtureStats{}, fmt.Errorf("build get fixture stats query: %w", err)
	}
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return fixturestats.FixtureStats{}, fmt.Errorf("get fixture stats: %w", err)
	}
	return row.toDomain(), nil
}
