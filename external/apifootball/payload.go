package apifootball

import (
	"strconv"
	"strings"
)

type envelope[T any] struct {
	Get        string         `json:"get"`
	Parameters map[string]any `json:"parameters"`
	Errors     any            `json:"errors"`
	Error      any            `json:"error"`
	Results    int            `json:"results"`
	Response   T              `json:"response"`
}

func (e envelope[T]) parameter(key string) string {
	v, ok := e.Parameters[key]
	if !ok || v == nil {
		return ""
	}
	switch value := v.(type) {
	case string:
		return strings.TrimSpace(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	default:
		return ""
	}
}

type leagueItem struct {
	League struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
		Type string `json:"type"`
		Logo string `json:"logo"`
	} `json:"league"`
	Country struct {
		Name string  `json:"name"`
		Code *string `json:"code"`
		Flag *string `json:"flag"`
	} `json:"country"`
}

type teamPayload struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Code     *string `json:"code"`
	Country  *string `json:"country"`
	Founded  *int    `json:"founded"`
	National bool    `json:"national"`
	Logo     *string `json:"logo"`
}

type venuePayload struct {
	ID       *int64  `json:"id"`
	Name     *string `json:"name"`
	Address  *string `json:"address"`
	City     *string `json:"city"`
	Capacity *int    `json:"capacity"`
	Surface  *string `json:"surface"`
	Image    *string `json:"image"`
}

type teamItem struct {
	Team  teamPayload  `json:"team"`
	Venue venuePayload `json:"venue"`
}

type standingsItem struct {
	League struct {
		ID        int64             `json:"id"`
		Season    int               `json:"season"`
		Standings [][]standingEntry `json:"standings"`
	} `json:"league"`
}

type standingEntry struct {
	Rank   int            `json:"rank"`
	Team   teamPayload    `json:"team"`
	Points int            `json:"points"`
	All    standingRecord `json:"all"`
	Home   standingRecord `json:"home"`
	Away   standingRecord `json:"away"`
}

type standingRecord struct {
	Played int `json:"played"`
	Win    int `json:"win"`
	Draw   int `json:"draw"`
	Lose   int `json:"lose"`
	Goals  struct {
		For     int `json:"for"`
		Against int `json:"against"`
	} `json:"goals"`
}

type scorePayload struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type fixtureItem struct {
	Fixture struct {
		ID      int64        `json:"id"`
		Referee *string      `json:"referee"`
		Date    string       `json:"date"`
		Venue   venuePayload `json:"venue"`
		Status  struct {
			Short   string `json:"short"`
			Elapsed *int   `json:"elapsed"`
		} `json:"status"`
	} `json:"fixture"`
	League struct {
		ID     int64  `json:"id"`
		Season int    `json:"season"`
		Round  string `json:"round"`
	} `json:"league"`
	Teams struct {
		Home teamPayload `json:"home"`
		Away teamPayload `json:"away"`
	} `json:"teams"`
	Goals scorePayload `json:"goals"`
	Score struct {
		HalfTime  scorePayload `json:"halftime"`
		FullTime  scorePayload `json:"fulltime"`
		ExtraTime scorePayload `json:"extratime"`
		Penalty   scorePayload `json:"penalty"`
	} `json:"score"`
}

type statisticsItem struct {
	Team       teamPayload `json:"team"`
	Statistics []struct {
		Type  string `json:"type"`
		Value any    `json:"value"`
	} `json:"statistics"`
}
