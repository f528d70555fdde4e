package postgres

import (
	"time"

	"github.com/riskibarqy/football-stats/internal/domain/competition"
)

type competitionTableModel struct {
	ID        int64     `db:"id"`
	CountryID int64     `db:"country_id"`
	Name      string    `db:"name"`
	Type      string    `db:"type"`
	Logo      string    `db:"logo"`
	CreatedAt time.Time `db:"created_at"`
}

type competitionInsertModel struct {
	ID        int64  `db:"id"`
	CountryID int64  `db:"country_id"`
	Name      string `db:"name"`
	Type      string `db:"type"`
	Logo      string `db:"logo"`
}

func (m competitionTableModel) toDomain() competition.Competition {
	return competition.Competition{
		ID:        m.ID,
		CountryID: m.CountryID,
		Name:      m.Name,
		Type:      m.Type,
		Logo:      m.Logo,
	}
}
