package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/football-stats/internal/domain/season"
	qb "github.com/riskibarqy/football-stats/internal/platform/querybuilder"
)

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func (r *SeasonRepository) Get(ctx context.Context, leagueID int64, year int) (season.Season, bool, error) {
	return r.getOne(ctx, "get season", qb.Eq("league_id", leagueID), qb.Eq("year", year))
}

func (r *SeasonRepository) GetByID(ctx context.Context, id int64) (season.Season, bool, error) {
	return r.getOne(ctx, "get season by id", qb.Eq("id", id))
}

func (r *SeasonRepository) List(ctx context.Context, filter season.Filter) ([]season.Season, error) {
	conditions := make([]qb.Condition, 0, 2)
	switch {
	case len(filter.LeagueIDs) > 0:
		conditions = append(conditions, qb.Any("league_id", pq.Array(filter.LeagueIDs)))
	case filter.RestrictLeagues:
		conditions = append(conditions, qb.Or())
	}
	if filter.Year > 0 {
		conditions = append(conditions, qb.Eq("year", filter.Year))
	}

	query, args, err := qb.Select("*").From("seasons").
		Where(conditions...).
		OrderBy("league_id", "year").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list seasons query: %w", err)
	}

	var rows []seasonTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}

	out := make([]season.Season, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *SeasonRepository) Create(ctx context.Context, item season.Season) (season.Season, error) {
	if err := item.Validate(); err != nil {
		return season.Season{}, fmt.Errorf("create season: %w", err)
	}

	insertModel := seasonInsertModel{
		Year:       item.Year,
		LeagueID:   item.LeagueID,
		TotalTeams: item.TotalTeams,
	}
	query, args, err := qb.InsertModel("seasons", insertModel, "ON CONFLICT (league_id, year) DO NOTHING RETURNING *")
	if err != nil {
		return season.Season{}, fmt.Errorf("build insert season query: %w", err)
	}

	var row seasonTableModel
	inserted, err := insertReturning(ctx, r.db, &row, query, args...)
	if err != nil {
		return season.Season{}, fmt.Errorf("insert season: %w", err)
	}
	if inserted {
		return row.toDomain(), nil
	}

	existing, _, err := r.Get(ctx, item.LeagueID, item.Year)
	return existing, err
}

func (r *SeasonRepository) IncrementTotalTeams(ctx context.Context, id int64, delta int) (season.Season, error) {
	query, args, err := qb.Update("seasons").
		SetExpr("total_teams", "total_teams + ?", delta).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return season.Season{}, fmt.Errorf("build increment total teams query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return season.Season{}, fmt.Errorf("increment total teams: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return season.Season{}, fmt.Errorf("increment total teams: season %d not found", id)
	}

	updated, _, err := r.GetByID(ctx, id)
	return updated, err
}

func (r *SeasonRepository) getOne(ctx context.Context, op string, conditions ...qb.Condition) (season.Season, bool, error) {
	query, args, err := qb.Select("*").From("seasons").
		Where(conditions...).
		ToSQL()
	if err != nil {
		return season.Season{}, false, fmt.Errorf("build %s query: %w", op, err)
	}

	var row seasonTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, fmt.Errorf("%s: %w", op, err)
	}

	return row.toDomain(), true, nil
}
