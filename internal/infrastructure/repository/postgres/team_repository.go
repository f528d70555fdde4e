package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/football-stats/internal/domain/team"
	qb "github.com/riskibarqy/football-stats/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) GetByID(ctx context.Context, id int64) (team.Team, bool, error) {
	return r.getOne(ctx, "get team by id", qb.Eq("id", id))
}

func (r *TeamRepository) GetByName(ctx context.Context, name string) (team.Team, bool, error) {
	return r.getOne(ctx, "get team by name", qb.Eq("name", strings.TrimSpace(name)))
}

func (r *TeamRepository) ListByIDs(ctx context.Context, ids []int64) ([]team.Team, error) {
	if len(ids) == 0 {
		return []team.Team{}, nil
	}

	query, args, err := qb.Select("*").From("teams").
		Where(qb.Any("id", pq.Array(ids))).
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list teams by ids query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list teams by ids: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) (team.Team, error) {
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}

	insertModel := teamInsertModel{
		ID:        item.ID,
		Name:      strings.TrimSpace(item.Name),
		ShortName: stringPtrToNull(item.ShortName),
		Country:   stringPtrToNull(item.Country),
		Founded:   intPtrToNull(item.Founded),
		National:  item.National,
		Logo:      stringPtrToNull(item.Logo),
	}
	query, args, err := qb.InsertModel("teams", insertModel, "ON CONFLICT (id) DO NOTHING RETURNING *")
	if err != nil {
		return team.Team{}, fmt.Errorf("build insert team query: %w", err)
	}

	var row teamTableModel
	inserted, err := insertReturning(ctx, r.db, &row, query, args...)
	if err != nil {
		return team.Team{}, fmt.Errorf("insert team: %w", err)
	}
	if inserted {
		return row.toDomain(), nil
	}

	existing, _, err := r.GetByID(ctx, item.ID)
	return existing, err
}

func (r *TeamRepository) getOne(ctx context.Context, op string, cond qb.Condition) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(cond).
		OrderBy("id").
		Limit(1).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build %s query: %w", op, err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("%s: %w", op, err)
	}

	return row.toDomain(), true, nil
}
