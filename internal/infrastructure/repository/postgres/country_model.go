package postgres

import (
	"time"

	"github.com/riskibarqy/football-stats/internal/domain/country"
)

type countryTableModel struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Code      string    `db:"code"`
	Flag      string    `db:"flag"`
	NumComps  int       `db:"num_comps"`
	CreatedAt time.Time `db:"created_at"`
}

type countryInsertModel struct {
	Name     string `db:"name"`
	Code     string `db:"code"`
	Flag     string `db:"flag"`
	NumComps int    `db:"num_comps"`
}

func (m countryTableModel) toDomain() country.Country {
	return country.Country{
		ID:       m.ID,
		Name:     m.Name,
		Code:     m.Code,
		Flag:     m.Flag,
		NumComps: m.NumComps,
	}
}
