package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-stats/internal/domain/fixture"
	qb "github.com/riskibarqy/football-stats/internal/platform/querybuilder"
)

type FixtureRepository struct {
	db *sqlx.DB
}

func NewFixtureRepository(db *sqlx.DB) *FixtureRepository {
	return &FixtureRepository{db: db}
}

func (r *FixtureRepository) GetByID(ctx context.Context, id int64) (fixture.Fixture, bool, error) {
	query, args, err := qb.Select("*").From("fixtures").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return fixture.Fixture{}, false, fmt.Errorf("build get fixture by id query: %w", err)
	}

	var row fixtureTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fixture.Fixture{}, false, nil
		}
		return fixture.Fixture{}, false, fmt.Errorf("get fixture by id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *FixtureRepository) Create(ctx context.Context, item fixture.Fixture) (fixture.Fixture, error) {
	if err := item.Validate(); err != nil {
		return fixture.Fixture{}, fmt.Errorf("create fixture: %w", err)
	}

	query, args, err := qb.InsertModel("fixtures", newFixtureInsertModel(item), "ON CONFLICT (id) DO NOTHING RETURNING *")
	if err != nil {
		return fixture.Fixture{}, fmt.Errorf("build insert fixture query: %w", err)
	}

	var row fixtureTableModel
	inserted, err := insertReturning(ctx, r.db, &row, query, args...)
	if err != nil {
		return fixture.Fixture{}, fmt.Errorf("insert fixture: %w", err)
	}
	if inserted {
		return row.toDomain(), nil
	}

	existing, _, err := r.GetByID(ctx, item.ID)
	return existing, err
}

func (r *FixtureRepository) ListBySeason(ctx context.Context, seasonID int64) ([]fixture.Fixture, error) {
	return r.list(ctx, "list fixtures by season", qb.Eq("season_id", seasonID))
}

func (r *FixtureRepository) ListBySeasonAndTeam(ctx context.Context, seasonID, teamID int64) ([]fixture.Fixture, error) {
	return r.list(ctx, "list fixtures by season and team",
		qb.Eq("season_id", seasonID),
		qb.Or(qb.Eq("home_team_id", teamID), qb.Eq("away_team_id", teamID)),
	)
}

func (r *FixtureRepository) list(ctx context.Context, op string, conditions ...qb.Condition) ([]fixture.Fixture, error) {
	query, args, err := qb.Select("*").From("fixtures").
		Where(conditions...).
		OrderBy("date", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", op, err)
	}

	var rows []fixtureTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]fixture.Fixture, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
