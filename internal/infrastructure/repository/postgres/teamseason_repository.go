package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-stats/internal/domain/teamseason"
	qb "github.com/riskibarqy/football-stats/internal/platform/querybuilder"
)

const teamSeasonTable = "team_season_competitions"

type TeamSeasonRepository struct {
	db *sqlx.DB
}

func NewTeamSeasonRepository(db *sqlx.DB) *TeamSeasonRepository {
	return &TeamSeasonRepository{db: db}
}

func (r *TeamSeasonRepository) Exists(ctx context.Context, teamID, seasonID int64) (bool, error) {
	_, ok, err := r.get(ctx, teamID, seasonID)
	return ok, err
}

func (r *TeamSeasonRepository) Create(ctx context.Context, item teamseason.Association) (teamseason.Association, error) {
	if err := item.Validate(); err != nil {
		return teamseason.Association{}, fmt.Errorf("create team season: %w", err)
	}

	insertModel := teamSeasonInsertModel{
		TeamID:        item.TeamID,
		SeasonID:      item.SeasonID,
		CompetitionID: item.CompetitionID,
		VenueID:       item.VenueID,
	}
	query, args, err := qb.InsertModel(teamSeasonTable, insertModel, "ON CONFLICT (team_id, season_id) DO NOTHING RETURNING *")
	if err != nil {
		return teamseason.Association{}, fmt.Errorf("build insert team season query: %w", err)
	}

	var row teamSeasonTableModel
	inserted, err := insertReturning(ctx, r.db, &row, query, args...)
	if err != nil {
		return teamseason.Association{}, fmt.Errorf("insert team season: %w", err)
	}
	if inserted {
		return row.toDomain(), nil
	}

	existing, _, err := r.get(ctx, item.TeamID, item.SeasonID)
	return existing, err
}

func (r *TeamSeasonRepository) ListByTeam(ctx context.Context, teamID int64) ([]teamseason.Association, error) {
	return r.list(ctx, "list team seasons by team", qb.Eq("team_id", teamID))
}

func (r *TeamSeasonRepository) ListBySeason(ctx context.Context, seasonID int64) ([]teamseason.Association, error) {
	return r.list(ctx, "list team seasons by season", qb.Eq("season_id", seasonID))
}

func (r *TeamSeasonRepository) get(ctx context.Context, teamID, seasonID int64) (teamseason.Association, bool, error) {
	query, args, err := qb.Select("*").From(teamSeasonTable).
		Where(qb.Eq("team_id", teamID), qb.Eq("season_id", seasonID)).
		ToSQL()
	if err != nil {
		return teamseason.Association{}, false, fmt.Errorf("build get team season query: %w", err)
	}

	var row teamSeasonTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return teamseason.Association{}, false, nil
		}
		return teamseason.Association{}, false, fmt.Errorf("get team season: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *TeamSeasonRepository) list(ctx context.Context, op string, conditions ...qb.Condition) ([]teamseason.Association, error) {
	query, args, err := qb.Select("*").From(teamSeasonTable).
		Where(conditions...).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", op, err)
	}

	var rows []teamSeasonTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]teamseason.Association, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
