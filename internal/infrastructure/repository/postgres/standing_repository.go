package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-stats/internal/domain/standing"
	qb "github.com/riskibarqy/football-stats/internal/platform/querybuilder"
)

type StandingRepository struct {
	db *sqlx.DB
}

func NewStandingRepository(db *sqlx.DB) *StandingRepository {
	return &StandingRepository{db: db}
}

func (r *StandingRepository) CountBySeason(ctx context.Context, seasonID int64) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("standings").
		Where(qb.Eq("season_id", seasonID)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count standings query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count standings: %w", err)
	}
	return count, nil
}

func (r *StandingRepository) ListBySeason(ctx context.Context, seasonID int64) ([]standing.Standing, error) {
	query, args, err := qb.Select("*").From("standings").
		Where(qb.Eq("season_id", seasonID)).
		OrderBy("position", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list standings query: %w", err)
	}

	var rows []standingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list standings: %w", err)
	}

	out := make([]standing.Standing, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *StandingRepository) ReplaceBySeason(ctx context.Context, seasonID int64, items []standing.Standing) error {
	models := make([]any, 0, len(items))
	seen := make(map[int64]struct{}, len(items))
	for _, item := range items {
		if _, dup := seen[item.TeamID]; dup {
			continue
		}
		seen[item.TeamID] = struct{}{}
		item.SeasonID = seasonID
		if err := item.Validate(); err != nil {
			return fmt.Errorf("replace standings: %w", err)
		}
		models = append(models, newStandingInsertModel(seasonID, item))
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace standings: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.DeleteFrom("standings").
		Where(qb.Eq("season_id", seasonID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear standings query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return fmt.Errorf("clear standings: %w", err)
	}

	if len(models) > 0 {
		query, args, err := qb.InsertModels("standings", models, "")
		if err != nil {
			return fmt.Errorf("build insert standings query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert standings: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx replace standings: %w", err)
	}
	return nil
}
