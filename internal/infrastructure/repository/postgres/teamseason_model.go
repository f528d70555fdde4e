package postgres

import (
	"time"

	"github.com/riskibarqy/football-stats/internal/domain/teamseason"
)

type teamSeasonTableModel struct {
	ID            int64     `db:"id"`
	TeamID        int64     `db:"team_id"`
	SeasonID      int64     `db:"season_id"`
	CompetitionID int64     `db:"competition_id"`
	VenueID       int64     `db:"venue_id"`
	CreatedAt     time.Time `db:"created_at"`
}

type teamSeasonInsertModel struct {
	TeamID        int64 `db:"team_id"`
	SeasonID      int64 `db:"season_id"`
	CompetitionID int64 `db:"competition_id"`
	VenueID       int64 `db:"venue_id"`
}

func (m teamSeasonTableModel) toDomain() teamseason.Association {
	return teamseason.Association{
		ID:            m.ID,
		TeamID:        m.TeamID,
		SeasonID:      m.SeasonID,
		CompetitionID: m.CompetitionID,
		VenueID:       m.VenueID,
	}
}
