package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-stats/internal/domain/competition"
	qb "github.com/riskibarqy/football-stats/internal/platform/querybuilder"
)

type CompetitionRepository struct {
	db *sqlx.DB
}

func NewCompetitionRepository(db *sqlx.DB) *CompetitionRepository {
	return &CompetitionRepository{db: db}
}

func (r *CompetitionRepository) GetByID(ctx context.Context, id int64) (competition.Competition, bool, error) {
	query, args, err := qb.Select("*").From("competitions").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return competition.Competition{}, false, fmt.Errorf("build get competition by id query: %w", err)
	}

	var row competitionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return competition.Competition{}, false, nil
		}
		return competition.Competition{}, false, fmt.Errorf("get competition by id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *CompetitionRepository) ListByName(ctx context.Context, name string) ([]competition.Competition, error) {
	return r.list(ctx, "list competitions by name", qb.Eq("name", strings.TrimSpace(name)))
}

func (r *CompetitionRepository) List(ctx context.Context, filter competition.Filter) ([]competition.Competition, error) {
	conditions := make([]qb.Condition, 0, 2)
	if filter.CountryID > 0 {
		conditions = append(conditions, qb.Eq("country_id", filter.CountryID))
	}
	if t := strings.TrimSpace(filter.Type); t != "" {
		conditions = append(conditions, qb.Expr("LOWER(type) = LOWER(?)", t))
	}
	return r.list(ctx, "list competitions", conditions...)
}

func (r *CompetitionRepository) Create(ctx context.Context, item competition.Competition) (competition.Competition, error) {
	if err := item.Validate(); err != nil {
		return competition.Competition{}, fmt.Errorf("create competition: %w", err)
	}

	insertModel := competitionInsertModel{
		ID:        item.ID,
		CountryID: item.CountryID,
		Name:      strings.TrimSpace(item.Name),
		Type:      strings.TrimSpace(item.Type),
		Logo:      strings.TrimSpace(item.Logo),
	}
	query, args, err := qb.InsertModel("competitions", insertModel, "ON CONFLICT (id) DO NOTHING RETURNING *")
	if err != nil {
		return competition.Competition{}, fmt.Errorf("build insert competition query: %w", err)
	}

	var row competitionTableModel
	inserted, err := insertReturning(ctx, r.db, &row, query, args...)
	if err != nil {
		return competition.Competition{}, fmt.Errorf("insert competition: %w", err)
	}
	if inserted {
		return row.toDomain(), nil
	}

	existing, _, err := r.GetByID(ctx, item.ID)
	return existing, err
}

func (r *CompetitionRepository) list(ctx context.Context, op string, conditions ...qb.Condition) ([]competition.Competition, error) {
	query, args, err := qb.Select("*").From("competitions").
		Where(conditions...).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", op, err)
	}

	var rows []competitionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]competition.Competition, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
