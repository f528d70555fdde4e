package postgres

import (
	"time"

	"github.com/riskibarqy/football-stats/internal/domain/standing"
)

type standingTableModel struct {
	ID        int64     `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	standingInsertModel
}

type standingInsertModel struct {
	TeamID           int64 `db:"team_id"`
	SeasonID         int64 `db:"season_id"`
	Position         int   `db:"position"`
	Points           int   `db:"points"`
	Played           int   `db:"played"`
	Won              int   `db:"won"`
	Drawn            int   `db:"drawn"`
	Lost             int   `db:"lost"`
	GoalsFor         int   `db:"goals_for"`
	GoalsAgainst     int   `db:"goals_against"`
	GoalDiff         int   `db:"goal_diff"`
	HomePlayed       int   `db:"home_played"`
	HomeWon          int   `db:"home_won"`
	HomeDrawn        int   `db:"home_drawn"`
	HomeLost         int   `db:"home_lost"`
	HomeGoalsFor     int   `db:"home_goals_for"`
	HomeGoalsAgainst int   `db:"home_goals_against"`
	HomeGoalDiff     int   `db:"home_goal_diff"`
	AwayPlayed       int   `db:"away_played"`
	AwayWon          int   `db:"away_won"`
	AwayDrawn        int   `db:"away_drawn"`
	AwayLost         int   `db:"away_lost"`
	AwayGoalsFor     int   `db:"away_goals_for"`
	AwayGoalsAgainst int   `db:"away_goals_against"`
	AwayGoalDiff     int   `db:"away_goal_diff"`
}

func newStandingInsertModel(seasonID int64, item standing.Standing) standingInsertModel {
	return standingInsertModel{
		TeamID:           item.TeamID,
		SeasonID:         seasonID,
		Position:         item.Position,
		Points:           item.Points,
		Played:           item.Overall.Played,
		Won:              item.Overall.Won,
		Drawn:            item.Overall.Drawn,
		Lost:             item.Overall.Lost,
		GoalsFor:         item.Overall.GoalsFor,
		GoalsAgainst:     item.Overall.GoalsAgainst,
		GoalDiff:         item.Overall.GoalsFor - item.Overall.GoalsAgainst,
		HomePlayed:       item.Home.Played,
		HomeWon:          item.Home.Won,
		HomeDrawn:        item.Home.Drawn,
		HomeLost:         item.Home.Lost,
		HomeGoalsFor:     item.Home.GoalsFor,
		HomeGoalsAgainst: item.Home.GoalsAgainst,
		HomeGoalDiff:     item.Home.GoalsFor - item.Home.GoalsAgainst,
		AwayPlayed:       item.Away.Played,
		AwayWon:          item.Away.Won,
		AwayDrawn:        item.Away.Drawn,
		AwayLost:         item.Away.Lost,
		AwayGoalsFor:     item.Away.GoalsFor,
		AwayGoalsAgainst: item.Away.GoalsAgainst,
		AwayGoalDiff:     item.Away.GoalsFor - item.Away.GoalsAgainst,
	}
}

func (m standingTableModel) toDomain() standing.Standing {
	return standing.Standing{
		ID:       m.ID,
		TeamID:   m.TeamID,
		SeasonID: m.SeasonID,
		Position: m.Position,
		Points:   m.Points,
		Overall:  standing.NewRecord(m.Played, m.Won, m.Drawn, m.Lost, m.GoalsFor, m.GoalsAgainst),
		Home:     standing.NewRecord(m.HomePlayed, m.HomeWon, m.HomeDrawn, m.HomeLost, m.HomeGoalsFor, m.HomeGoalsAgainst),
		Away:     standing.NewRecord(m.AwayPlayed, m.AwayWon, m.AwayDrawn, m.AwayLost, m.AwayGoalsFor, m.AwayGoalsAgainst),
	}
}
