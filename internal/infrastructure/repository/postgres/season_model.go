package postgres

import (
	"time"

	"github.com/riskibarqy/football-stats/internal/domain/season"
)

type seasonTableModel struct {
	ID         int64     `db:"id"`
	Year       int       `db:"year"`
	LeagueID   int64     `db:"league_id"`
	TotalTeams int       `db:"total_teams"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

type seasonInsertModel struct {
	Year       int   `db:"year"`
	LeagueID   int64 `db:"league_id"`
	TotalTeams int   `db:"total_teams"`
}

func (m seasonTableModel) toDomain() season.Season {
	return season.Season{
		ID:         m.ID,
		Year:       m.Year,
		LeagueID:   m.LeagueID,
		TotalTeams: m.TotalTeams,
	}
}
