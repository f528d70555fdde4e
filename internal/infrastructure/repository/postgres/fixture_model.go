package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/football-stats/internal/domain/fixture"
)

type fixtureTableModel struct {
	CreatedAt time.Time `db:"created_at"`
	fixtureInsertModel
}

type fixtureInsertModel struct {
	ID            int64          `db:"id"`
	SeasonID      int64          `db:"season_id"`
	CompetitionID int64          `db:"competition_id"`
	HomeTeamID    int64          `db:"home_team_id"`
	AwayTeamID    int64          `db:"away_team_id"`
	VenueID       int64          `db:"venue_id"`
	Referee       sql.NullString `db:"referee"`
	Date          time.Time      `db:"date"`
	ShortStatus   string         `db:"short_status"`
	Elapsed       sql.NullInt64  `db:"elapsed"`
	Round         string         `db:"round"`
	GoalsHome     sql.NullInt64  `db:"goals_home"`
	GoalsAway     sql.NullInt64  `db:"goals_away"`
	HalfTimeHome  sql.NullInt64  `db:"halftime_home"`
	HalfTimeAway  sql.NullInt64  `db:"halftime_away"`
	FullTimeHome  sql.NullInt64  `db:"fulltime_home"`
	FullTimeAway  sql.NullInt64  `db:"fulltime_away"`
	ExtraTimeHome sql.NullInt64  `db:"extratime_home"`
	ExtraTimeAway sql.NullInt64  `db:"extratime_away"`
	PenaltyHome   sql.NullInt64  `db:"penalty_home"`
	PenaltyAway   sql.NullInt64  `db:"penalty_away"`
}

func newFixtureInsertModel(item fixture.Fixture) fixtureInsertModel {
	return fixtureInsertModel{
		ID:            item.ID,
		SeasonID:      item.SeasonID,
		CompetitionID: item.CompetitionID,
		HomeTeamID:    item.HomeTeamID,
		AwayTeamID:    item.AwayTeamID,
		VenueID:       item.VenueID,
		Referee:       stringPtrToNull(item.Referee),
		Date:          item.Date.UTC(),
		ShortStatus:   item.ShortStatus,
		Elapsed:       intPtrToNull(item.Elapsed),
		Round:         item.Round,
		GoalsHome:     intPtrToNull(item.Goals.Home),
		GoalsAway:     intPtrToNull(item.Goals.Away),
		HalfTimeHome:  intPtrToNull(item.HalfTime.Home),
		HalfTimeAway:  intPtrToNull(item.HalfTime.Away),
		FullTimeHome:  intPtrToNull(item.FullTime.Home),
		FullTimeAway:  intPtrToNull(item.FullTime.Away),
		ExtraTimeHome: intPtrToNull(item.ExtraTime.Home),
		ExtraTimeAway: intPtrToNull(item.ExtraTime.Away),
		PenaltyHome:   intPtrToNull(item.Penalty.Home),
		PenaltyAway:   intPtrToNull(item.Penalty.Away),
	}
}

func (m fixtureTableModel) toDomain() fixture.Fixture {
	return fixture.Fixture{
		ID:            m.ID,
		SeasonID:      m.SeasonID,
		CompetitionID: m.CompetitionID,
		HomeTeamID:    m.HomeTeamID,
		AwayTeamID:    m.AwayTeamID,
		VenueID:       m.VenueID,
		Referee:       nullStringToStringPtr(m.Referee),
		Date:          m.Date.UTC(),
		ShortStatus:   m.ShortStatus,
		Elapsed:       nullInt64ToIntPtr(m.Elapsed),
		Round:         m.Round,
		Goals:         fixture.Score{Home: nullInt64ToIntPtr(m.GoalsHome), Away: nullInt64ToIntPtr(m.GoalsAway)},
		HalfTime:      fixture.Score{Home: nullInt64ToIntPtr(m.HalfTimeHome), Away: nullInt64ToIntPtr(m.HalfTimeAway)},
		FullTime:      fixture.Score{Home: nullInt64ToIntPtr(m.FullTimeHome), Away: nullInt64ToIntPtr(m.FullTimeAway)},
		ExtraTime:     fixture.Score{Home: nullInt64ToIntPtr(m.ExtraTimeHome), Away: nullInt64ToIntPtr(m.ExtraTimeAway)},
		Penalty:       fixture.Score{Home: nullInt64ToIntPtr(m.PenaltyHome), Away: nullInt64ToIntPtr(m.PenaltyAway)},
	}
}
