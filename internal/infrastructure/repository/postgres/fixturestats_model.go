package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/football-stats/internal/domain/fixturestats"
)

type fixtureStatsTableModel struct {
	ID        int64     `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	fixtureStatsInsertModel
}

type fixtureStatsInsertModel struct {
	FixtureID        int64          `db:"fixture_id"`
	HomeTeamID       int64          `db:"home_team_id"`
	HomeShOnGoal     sql.NullInt64  `db:"home_sh_on_goal"`
	HomeShOffGoal    sql.NullInt64  `db:"home_sh_off_goal"`
	HomeTotalSh      sql.NullInt64  `db:"home_total_sh"`
	HomeBlockedSh    sql.NullInt64  `db:"home_blocked_sh"`
	HomeShInside     sql.NullInt64  `db:"home_sh_inside"`
	HomeShOutside    sql.NullInt64  `db:"home_sh_outside"`
	HomeFouls        sql.NullInt64  `db:"home_fouls"`
	HomeCorners      sql.NullInt64  `db:"home_corners"`
	HomeOffsides     sql.NullInt64  `db:"home_offsides"`
	HomePossession   sql.NullString `db:"home_possession"`
	HomeYellows      sql.NullInt64  `db:"home_yellows"`
	HomeReds         sql.NullInt64  `db:"home_reds"`
	HomeSaves        sql.NullInt64  `db:"home_saves"`
	HomeTotPasses    sql.NullInt64  `db:"home_tot_passes"`
	HomeAccuratePass sql.NullInt64  `db:"home_accurate_pass"`
	HomePercentPass  sql.NullString `db:"home_percent_pass"`
	HomeExGoals      sql.NullString `db:"home_ex_goals"`
	AwayTeamID       int64          `db:"away_team_id"`
	AwayShOnGoal     sql.NullInt64  `db:"away_sh_on_goal"`
	AwayShOffGoal    sql.NullInt64  `db:"away_sh_off_goal"`
	AwayTotalSh      sql.NullInt64  `db:"away_total_sh"`
	AwayBlockedSh    sql.NullInt64  `db:"away_blocked_sh"`
	AwayShInside     sql.NullInt64  `db:"away_sh_inside"`
	AwayShOutside    sql.NullInt64  `db:"away_sh_outside"`
	AwayFouls        sql.NullInt64  `db:"away_fouls"`
	AwayCorners      sql.NullInt64  `db:"away_corners"`
	AwayOffsides     sql.NullInt64  `db:"away_offsides"`
	AwayPossession   sql.NullString `db:"away_possession"`
	AwayYellows      sql.NullInt64  `db:"away_yellows"`
	AwayReds         sql.NullInt64  `db:"away_reds"`
	AwaySaves        sql.NullInt64  `db:"away_saves"`
	AwayTotPasses    sql.NullInt64  `db:"away_tot_passes"`
	AwayAccuratePass sql.NullInt64  `db:"away_accurate_pass"`
	AwayPercentPass  sql.NullString `db:"away_percent_pass"`
	AwayExGoals      sql.NullString `db:"away_ex_goals"`
}

func newFixtureStatsInsertModel(item fixturestats.FixtureStats) fixtureStatsInsertModel {
	return fixtureStatsInsertModel{
		FixtureID:        item.FixtureID,
		HomeTeamID:       item.Home.TeamID,
		HomeShOnGoal:     intPtrToNull(item.Home.ShotsOnGoal),
		HomeShOffGoal:    intPtrToNull(item.Home.ShotsOffGoal),
		HomeTotalSh:      intPtrToNull(item.Home.TotalShots),
		HomeBlockedSh:    intPtrToNull(item.Home.BlockedShots),
		HomeShInside:     intPtrToNull(item.Home.ShotsInside),
		HomeShOutside:    intPtrToNull(item.Home.ShotsOutside),
		HomeFouls:        intPtrToNull(item.Home.Fouls),
		HomeCorners:      intPtrToNull(item.Home.Corners),
		HomeOffsides:     intPtrToNull(item.Home.Offsides),
		HomePossession:   stringPtrToNull(item.Home.Possession),
		HomeYellows:      intPtrToNull(item.Home.Yellows),
		HomeReds:         intPtrToNull(item.Home.Reds),
		HomeSaves:        intPtrToNull(item.Home.Saves),
		HomeTotPasses:    intPtrToNull(item.Home.TotalPasses),
		HomeAccuratePass: intPtrToNull(item.Home.AccuratePass),
		HomePercentPass:  stringPtrToNull(item.Home.PercentPass),
		HomeExGoals:      stringPtrToNull(item.Home.ExpectedGoals),
		AwayTeamID:       item.Away.TeamID,
		AwayShOnGoal:     intPtrToNull(item.Away.ShotsOnGoal),
		AwayShOffGoal:    intPtrToNull(item.Away.ShotsOffGoal),
		AwayTotalSh:      intPtrToNull(item.Away.TotalShots),
		AwayBlockedSh:    intPtrToNull(item.Away.BlockedShots),
		AwayShInside:     intPtrToNull(item.Away.ShotsInside),
		AwayShOutside:    intPtrToNull(item.Away.ShotsOutside),
		AwayFouls:        intPtrToNull(item.Away.Fouls),
		AwayCorners:      intPtrToNull(item.Away.Corners),
		AwayOffsides:     intPtrToNull(item.Away.Offsides),
		AwayPossession:   stringPtrToNull(item.Away.Possession),
		AwayYellows:      intPtrToNull(item.Away.Yellows),
		AwayReds:         intPtrToNull(item.Away.Reds),
		AwaySaves:        intPtrToNull(item.Away.Saves),
		AwayTotPasses:    intPtrToNull(item.Away.TotalPasses),
		AwayAccuratePass: intPtrToNull(item.Away.AccuratePass),
		AwayPercentPass:  stringPtrToNull(item.Away.PercentPass),
		AwayExGoals:      stringPtrToNull(item.Away.ExpectedGoals),
	}
}

func (m fixtureStatsTableModel) toDomain() fixturestats.FixtureStats {
	return fixturestats.FixtureStats{
		ID:        m.ID,
		FixtureID: m.FixtureID,
		Home:      m.homeSide(),
		Away:      m.awaySide(),
	}
}

func (m fixtureStatsTableModel) homeSide() fixturestats.TeamStatistics {
	return fixturestats.TeamStatistics{
		TeamID:        m.HomeTeamID,
		ShotsOnGoal:   nullInt64ToIntPtr(m.HomeShOnGoal),
		ShotsOffGoal:  nullInt64ToIntPtr(m.HomeShOffGoal),
		TotalShots:    nullInt64ToIntPtr(m.HomeTotalSh),
		BlockedShots:  nullInt64ToIntPtr(m.HomeBlockedSh),
		ShotsInside:   nullInt64ToIntPtr(m.HomeShInside),
		ShotsOutside:  nullInt64ToIntPtr(m.HomeShOutside),
		Fouls:         nullInt64ToIntPtr(m.HomeFouls),
		Corners:       nullInt64ToIntPtr(m.HomeCorners),
		Offsides:      nullInt64ToIntPtr(m.HomeOffsides),
		Possession:    nullStringToStringPtr(m.HomePossession),
		Yellows:       nullInt64ToIntPtr(m.HomeYellows),
		Reds:          nullInt64ToIntPtr(m.HomeReds),
		Saves:         nullInt64ToIntPtr(m.HomeSaves),
		TotalPasses:   nullInt64ToIntPtr(m.HomeTotPasses),
		AccuratePass:  nullInt64ToIntPtr(m.HomeAccuratePass),
		PercentPass:   nullStringToStringPtr(m.HomePercentPass),
		ExpectedGoals: nullStringToStringPtr(m.HomeExGoals),
	}
}

func (m fixtureStatsTableModel) awaySide() fixturestats.TeamStatistics {
	return fixturestats.TeamStatistics{
		TeamID:        m.AwayTeamID,
		ShotsOnGoal:   nullInt64ToIntPtr(m.AwayShOnGoal),
		ShotsOffGoal:  nullInt64ToIntPtr(m.AwayShOffGoal),
		TotalShots:    nullInt64ToIntPtr(m.AwayTotalSh),
		BlockedShots:  nullInt64ToIntPtr(m.AwayBlockedSh),
		ShotsInside:   nullInt64ToIntPtr(m.AwayShInside),
		ShotsOutside:  nullInt64ToIntPtr(m.AwayShOutside),
		Fouls:         nullInt64ToIntPtr(m.AwayFouls),
		Corners:       nullInt64ToIntPtr(m.AwayCorners),
		Offsides:      nullInt64ToIntPtr(m.AwayOffsides),
		Possession:    nullStringToStringPtr(m.AwayPossession),
		Yellows:       nullInt64ToIntPtr(m.AwayYellows),
		Reds:          nullInt64ToIntPtr(m.AwayReds),
		Saves:         nullInt64ToIntPtr(m.AwaySaves),
		TotalPasses:   nullInt64ToIntPtr(m.AwayTotPasses),
		AccuratePass:  nullInt64ToIntPtr(m.AwayAccuratePass),
		PercentPass:   nullStringToStringPtr(m.AwayPercentPass),
		ExpectedGoals: nullStringToStringPtr(m.AwayExGoals),
	}
}
