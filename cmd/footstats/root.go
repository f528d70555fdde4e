package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/football-stats/internal/report"
	"github.com/riskibarqy/football-stats/internal/usecase"
)

func newRootCmd(b backend) *cobra.Command {
	root := &cobra.Command{
		Use:           "footstats",
		Short:         "Football statistics ingestion and reports",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	})

	root.AddCommand(initDBCmd(b))
	root.AddCommand(fetchCompetitionsCmd(b))
	root.AddCommand(fetchTeamsCmd(b))
	root.AddCommand(fetchStandingsCmd(b))
	root.AddCommand(fetchFixturesCmd(b))
	root.AddCommand(fetchFixtureStatsCmd(b))
	root.AddCommand(fetchTeamStatsCmd(b))
	root.AddCommand(fetchSeasonCmd(b))

	root.AddCommand(showCountriesCmd(b))
	root.AddCommand(showCompetitionsCmd(b))
	root.AddCommand(showSeasonsCmd(b))
	root.AddCommand(showTeamsCmd(b))
	root.AddCommand(showVenuesCmd(b))
	root.AddCommand(showStandingsCmd(b))
	root.AddCommand(showFixturesCmd(b))
	root.AddCommand(showFixtureStatsCmd(b))
	return root
}

// withServices opens the backend for the duration of fn.
func withServices(cmd *cobra.Command, b backend, needProvider bool, fn func(svc services, p *report.Printer) error) error {
	svc, closeFn, err := b.open(cmd.Context(), needProvider)
	if err != nil {
		return err
	}
	defer closeFn()

	return fn(svc, report.NewPrinter(cmd.OutOrStdout()))
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("%w: %s expects %d argument(s), got %d", usecase.ErrInvalidInput, cmd.Name(), n, len(args))
		}
		return nil
	}
}

func rangeArgs(lo, hi int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < lo || len(args) > hi {
			return fmt.Errorf("%w: %s expects %d to %d arguments, got %d", usecase.ErrInvalidInput, cmd.Name(), lo, hi, len(args))
		}
		return nil
	}
}

func parseYear(raw string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: year %q is not a number", usecase.ErrInvalidInput, raw)
	}
	return year, nil
}

// seasonSelector reads "<competition> <year>" from the first two arguments.
func seasonSelector(args []string, country string) (usecase.SeasonSelector, error) {
	year, err := parseYear(args[1])
	if err != nil {
		return usecase.SeasonSelector{}, err
	}
	return usecase.SeasonSelector{Competition: args[0], Country: country, Year: year}, nil
}
