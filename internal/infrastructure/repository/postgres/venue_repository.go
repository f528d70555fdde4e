package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/football-stats/internal/domain/venue"
	qb "github.com/riskibarqy/football-stats/internal/platform/querybuilder"
)

type VenueRepository struct {
	db *sqlx.DB
}

func NewVenueRepository(db *sqlx.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

func (r *VenueRepository) GetByID(ctx context.Context, id int64) (venue.Venue, bool, error) {
	query, args, err := qb.Select("*").From("venues").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return venue.Venue{}, false, fmt.Errorf("build get venue by id query: %w", err)
	}

	var row venueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return venue.Venue{}, false, nil
		}
		return venue.Venue{}, false, fmt.Errorf("get venue by id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *VenueRepository) ListByIDs(ctx context.Context, ids []int64) ([]venue.Venue, error) {
	if len(ids) == 0 {
		return []venue.Venue{}, nil
	}

	query, args, err := qb.Select("*").From("venues").
		Where(qb.Any("id", pq.Array(ids))).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list venues by ids query: %w", err)
	}

	var rows []venueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list venues by ids: %w", err)
	}

	out := make([]venue.Venue, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *VenueRepository) Create(ctx context.Context, item venue.Venue) (venue.Venue, error) {
	if err := item.Validate(); err != nil {
		return venue.Venue{}, fmt.Errorf("create venue: %w", err)
	}

	insertModel := venueInsertModel{
		ID:       item.ID,
		Name:     stringPtrToNull(item.Name),
		Address:  stringPtrToNull(item.Address),
		City:     stringPtrToNull(item.City),
		Capacity: intPtrToNull(item.Capacity),
		Surface:  stringPtrToNull(item.Surface),
		Image:    stringPtrToNull(item.Image),
	}
	query, args, err := qb.InsertModel("venues", insertModel, "ON CONFLICT (id) DO NOTHING RETURNING *")
	if err != nil {
		return venue.Venue{}, fmt.Errorf("build insert venue query: %w", err)
	}

	var row venueTableModel
	inserted, err := insertReturning(ctx, r.db, &row, query, args...)
	if err != nil {
		return venue.Venue{}, fmt.Errorf("insert venue: %w", err)
	}
	if inserted {
		return row.toDomain(), nil
	}

	existing, _, err := r.GetByID(ctx, item.ID)
	return existing, err
}
