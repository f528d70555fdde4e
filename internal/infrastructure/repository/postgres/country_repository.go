package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-stats/internal/domain/country"
	qb "github.com/riskibarqy/football-stats/internal/platform/querybuilder"
)

type CountryRepository struct {
	db *sqlx.DB
}

func NewCountryRepository(db *sqlx.DB) *CountryRepository {
	return &CountryRepository{db: db}
}

func (r *CountryRepository) GetByName(ctx context.Context, name string) (country.Country, bool, error) {
	query, args, err := qb.Select("*").From("countries").
		Where(qb.Eq("name", strings.TrimSpace(name))).
		ToSQL()
	if err != nil {
		return country.Country{}, false, fmt.Errorf("build get country by name query: %w", err)
	}

	var row countryTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return country.Country{}, false, nil
		}
		return country.Country{}, false, fmt.Errorf("get country by name: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *CountryRepository) Create(ctx context.Context, item country.Country) (country.Country, error) {
	if err := item.Validate(); err != nil {
		return country.Country{}, fmt.Errorf("create country: %w", err)
	}

	insertModel := countryInsertModel{
		Name:     strings.TrimSpace(item.Name),
		Code:     strings.TrimSpace(item.Code),
		Flag:     strings.TrimSpace(item.Flag),
		NumComps: item.NumComps,
	}
	query, args, err := qb.InsertModel("countries", insertModel, "ON CONFLICT (name) DO NOTHING RETURNING *")
	if err != nil {
		return country.Country{}, fmt.Errorf("build insert country query: %w", err)
	}

	var row countryTableModel
	inserted, err := insertReturning(ctx, r.db, &row, query, args...)
	if err != nil {
		return country.Country{}, fmt.Errorf("insert country: %w", err)
	}
	if inserted {
		return row.toDomain(), nil
	}

	existing, ok, err := r.GetByName(ctx, insertModel.Name)
	if err != nil {
		return country.Country{}, err
	}
	if !ok {
		return country.Country{}, fmt.Errorf("insert country: conflicting row for %q vanished", insertModel.Name)
	}
	return existing, nil
}

func (r *CountryRepository) List(ctx context.Context) ([]country.Country, error) {
	query, args, err := qb.Select("*").From("countries").OrderBy("name").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list countries query: %w", err)
	}

	var rows []countryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}

	out := make([]country.Country, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
