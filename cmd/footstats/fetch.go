package main

import (
	"github.com/spf13/cobra"

	"github.com/riskibarqy/football-stats/internal/report"
	"github.com/riskibarqy/football-stats/internal/usecase"
)

func initDBCmd(b backend) *cobra.Command {
	return &cobra.Command{
		Use:   "init-db",
		Short: "Create or upgrade the database schema",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			changed, err := b.migrate(cmd.Context())
			if err != nil {
				return err
			}
			p := report.NewPrinter(cmd.OutOrStdout())
			if !changed {
				return p.Notice("Database schema is up to date.")
			}
			return p.Notice("Database schema created.")
		},
	}
}

func fetchCompetitionsCmd(b backend) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch-competitions <country>",
		Short: "Fetch the competitions of a country",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, b, true, func(svc services, p *report.Printer) error {
				result, err := svc.sync.FetchCompetitions(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return p.CompetitionsSynced(result)
			})
		},
	}
}

func fetchTeamsCmd(b backend) *cobra.Command {
	var country string
	cmd := &cobra.Command{
		Use:   "fetch-teams <competition> <year>",
		Short: "Fetch the teams and venues of a season",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := seasonSelector(args, country)
			if err != nil {
				return err
			}
			return withServices(cmd, b, true, func(svc services, p *report.Printer) error {
				result, err := svc.sync.FetchTeams(cmd.Context(), sel)
				if err != nil {
					return err
				}
				return p.TeamsSynced(result)
			})
		},
	}
	addCountryFlag(cmd, &country)
	return cmd
}

func fetchStandingsCmd(b backend) *cobra.Command {
	var country string
	cmd := &cobra.Command{
		Use:   "fetch-standings <competition> <year>",
		Short: "Fetch the league table of a season and print it",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := seasonSelector(args, country)
			if err != nil {
				return err
			}
			return withServices(cmd, b, true, func(svc services, p *report.Printer) error {
				result, err := svc.sync.FetchStandings(cmd.Context(), sel)
				if err != nil {
					return err
				}
				if err := p.StandingsSynced(result); err != nil {
					return err
				}
				if result.SkipReason == usecase.SkipReasonCup {
					return nil
				}
				table, err := svc.reports.Standings(cmd.Context(), sel)
				if err != nil {
					return err
				}
				return p.Standings(table)
			})
		},
	}
	addCountryFlag(cmd, &country)
	return cmd
}

func fetchFixturesCmd(b backend) *cobra.Command {
	var country string
	cmd := &cobra.Command{
		Use:   "fetch-fixtures <competition> <year>",
		Short: "Fetch the fixtures of a season and print them",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := seasonSelector(args, country)
			if err != nil {
				return err
			}
			return withServices(cmd, b, true, func(svc services, p *report.Printer) error {
				result, err := svc.sync.FetchFixtures(cmd.Context(), sel)
				if err != nil {
					return err
				}
				if err := p.FixturesSynced(result); err != nil {
					return err
				}
				table, err := svc.reports.Fixtures(cmd.Context(), sel, "")
				if err != nil {
					return err
				}
				return p.Fixtures(table)
			})
		},
	}
	addCountryFlag(cmd, &country)
	return cmd
}

func fetchFixtureStatsCmd(b backend) *cobra.Command {
	var country string
	cmd := &cobra.Command{
		Use:   "fetch-fixture-stats <competition> <year> <team>",
		Short: "Fetch statistics for the played fixtures of one team",
		Args:  exactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := seasonSelector(args, country)
			if err != nil {
				return err
			}
			return withServices(cmd, b, true, func(svc services, p *report.Printer) error {
				result, err := svc.sync.FetchFixtureStats(cmd.Context(), sel, args[2])
				if err != nil {
					return err
				}
				return p.FixtureStatsSynced(result)
			})
		},
	}
	addCountryFlag(cmd, &country)
	return cmd
}

func fetchTeamStatsCmd(b backend) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch-team-stats <year> <team>",
		Short: "Fetch statistics for one team across every competition of a year",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseYear(args[0])
			if err != nil {
				return err
			}
			return withServices(cmd, b, true, func(svc services, p *report.Printer) error {
				result, err := svc.sync.FetchTeamStats(cmd.Context(), year, args[1])
				if err != nil {
					return err
				}
				return p.FixtureStatsSynced(result)
			})
		},
	}
}

func fetchSeasonCmd(b backend) *cobra.Command {
	var withStats bool
	cmd := &cobra.Command{
		Use:   "fetch-season <country> <competition> <year>",
		Short: "Run every ingestion step for one season",
		Args:  exactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := seasonSelector(args[1:], args[0])
			if err != nil {
				return err
			}
			return withServices(cmd, b, true, func(svc services, p *report.Printer) error {
				result, err := svc.sync.FetchSeason(cmd.Context(), args[0], sel, withStats)
				if printErr := printSeasonResult(p, result); printErr != nil && err == nil {
					err = printErr
				}
				return err
			})
		},
	}
	cmd.Flags().BoolVar(&withStats, "with-stats", false, "Also fetch statistics for every played fixture (slow)")
	return cmd
}

// printSeasonResult reports the steps that completed before any failure.
func printSeasonResult(p *report.Printer, r usecase.SeasonResult) error {
	if r.Competitions.Country.ID == 0 {
		return nil
	}
	if err := p.CompetitionsSynced(r.Competitions); err != nil {
		return err
	}
	if r.Teams.Season.ID == 0 {
		return nil
	}
	if err := p.TeamsSynced(r.Teams); err != nil {
		return err
	}
	if r.Standings.Season.ID == 0 {
		return nil
	}
	if err := p.StandingsSynced(r.Standings); err != nil {
		return err
	}
	if r.Fixtures.Season.ID == 0 {
		return nil
	}
	if err := p.FixturesSynced(r.Fixtures); err != nil {
		return err
	}
	if r.Stats == nil {
		return nil
	}
	return p.FixtureStatsSynced(*r.Stats)
}

func addCountryFlag(cmd *cobra.Command, country *string) {
	cmd.Flags().StringVar(country, "country", "", "Country of the competition, when its name is ambiguous")
}
