package main

import (
	"github.com/spf13/cobra"

	"github.com/riskibarqy/football-stats/internal/report"
	"github.com/riskibarqy/football-stats/internal/usecase"
)

func showCountriesCmd(b backend) *cobra.Command {
	return &cobra.Command{
		Use:   "show-countries",
		Short: "List stored countries",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withServices(cmd, b, false, func(svc services, p *report.Printer) error {
				items, err := svc.reports.Countries(cmd.Context())
				if err != nil {
					return err
				}
				return p.Countries(items)
			})
		},
	}
}

func showCompetitionsCmd(b backend) *cobra.Command {
	var q usecase.CompetitionQuery
	cmd := &cobra.Command{
		Use:   "show-competitions",
		Short: "List stored competitions",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withServices(cmd, b, false, func(svc services, p *report.Printer) error {
				items, err := svc.reports.Competitions(cmd.Context(), q)
				if err != nil {
					return err
				}
				return p.Competitions(items)
			})
		},
	}
	cmd.Flags().StringVar(&q.Country, "country", "", "Only competitions of this country")
	cmd.Flags().StringVar(&q.Type, "type", "", "Only competitions of this type (League or Cup)")
	return cmd
}

func showSeasonsCmd(b backend) *cobra.Command {
	var q usecase.SeasonQuery
	cmd := &cobra.Command{
		Use:   "show-seasons",
		Short: "List stored seasons",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withServices(cmd, b, false, func(svc services, p *report.Printer) error {
				items, err := svc.reports.Seasons(cmd.Context(), q)
				if err != nil {
					return err
				}
				return p.Seasons(items)
			})
		},
	}
	cmd.Flags().StringVar(&q.Competition, "competition", "", "Only seasons of this competition (name or id)")
	cmd.Flags().IntVar(&q.Year, "year", 0, "Only seasons of this year")
	cmd.Flags().StringVar(&q.Country, "country", "", "Only seasons of competitions in this country")
	return cmd
}

func showTeamsCmd(b backend) *cobra.Command {
	var country string
	cmd := &cobra.Command{
		Use:   "show-teams <competition> <year>",
		Short: "List the teams of a season",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := seasonSelector(args, country)
			if err != nil {
				return err
			}
			return withServices(cmd, b, false, func(svc services, p *report.Printer) error {
				r, err := svc.reports.Teams(cmd.Context(), sel)
				if err != nil {
					return err
				}
				return p.Teams(r)
			})
		},
	}
	addCountryFlag(cmd, &country)
	return cmd
}

func showVenuesCmd(b backend) *cobra.Command {
	var country string
	cmd := &cobra.Command{
		Use:   "show-venues <competition> <year>",
		Short: "List the venues of a season's teams",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := seasonSelector(args, country)
			if err != nil {
				return err
			}
			return withServices(cmd, b, false, func(svc services, p *report.Printer) error {
				r, err := svc.reports.Venues(cmd.Context(), sel)
				if err != nil {
					return err
				}
				return p.Venues(r)
			})
		},
	}
	addCountryFlag(cmd, &country)
	return cmd
}

func showStandingsCmd(b backend) *cobra.Command {
	var country string
	cmd := &cobra.Command{
		Use:   "show-standings <competition> <year>",
		Short: "Print the league table of a season",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := seasonSelector(args, country)
			if err != nil {
				return err
			}
			return withServices(cmd, b, false, func(svc services, p *report.Printer) error {
				r, err := svc.reports.Standings(cmd.Context(), sel)
				if err != nil {
					return err
				}
				return p.Standings(r)
			})
		},
	}
	addCountryFlag(cmd, &country)
	return cmd
}

func showFixturesCmd(b backend) *cobra.Command {
	var country string
	cmd := &cobra.Command{
		Use:   "show-fixtures <competition> <year> [team]",
		Short: "Print the fixtures of a season, optionally for one team",
		Args:  rangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := seasonSelector(args, country)
			if err != nil {
				return err
			}
			var teamArg string
			if len(args) == 3 {
				teamArg = args[2]
			}
			return withServices(cmd, b, false, func(svc services, p *report.Printer) error {
				r, err := svc.reports.Fixtures(cmd.Context(), sel, teamArg)
				if err != nil {
					return err
				}
				return p.Fixtures(r)
			})
		},
	}
	addCountryFlag(cmd, &country)
	return cmd
}

func showFixtureStatsCmd(b backend) *cobra.Command {
	var country string
	cmd := &cobra.Command{
		Use:   "show-fixture-stats <competition> <year> <team1> <team2>",
		Short: "Print the statistics of the fixtures between two teams",
		Args:  exactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := seasonSelector(args, country)
			if err != nil {
				return err
			}
			return withServices(cmd, b, false, func(svc services, p *report.Printer) error {
				r, err := svc.reports.FixtureStats(cmd.Context(), sel, args[2], args[3])
				if err != nil {
					return err
				}
				return p.FixtureStats(r)
			})
		},
	}
	addCountryFlag(cmd, &country)
	return cmd
}
