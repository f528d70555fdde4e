package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/riskibarqy/football-stats/internal/report"
	"github.com/riskibarqy/football-stats/internal/usecase"
)

const (
	exitOK          = 0
	exitFailure     = 1
	exitUsage       = 2
	exitInterrupted = 130
)

const (
	emptyResultMessage = "No data returned from API."
	missingDataHint    = "Please add the required season & teams first."
)

// run executes one command line and maps its outcome to a process exit
// code. Reports and notices go to stdout, failures to stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, b backend) int {
	root := newRootCmd(b)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	return exitCode(err, report.NewPrinter(stdout), report.NewPrinter(stderr))
}

func exitCode(err error, out, errOut *report.Printer) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, usecase.ErrEmptyResult):
		_ = out.Warning(emptyResultMessage, err.Error())
		return exitOK
	case errors.Is(err, context.Canceled):
		_ = errOut.Warning("Interrupted.", "Steps that finished are stored; run the command again to resume.")
		return exitInterrupted
	case errors.Is(err, usecase.ErrNotFound):
		_ = errOut.Warning(err.Error(), missingDataHint)
		return exitFailure
	case errors.Is(err, usecase.ErrInvalidInput):
		_ = errOut.Warning(err.Error(), "Run with --help for usage.")
		return exitUsage
	case errors.Is(err, usecase.ErrTransport):
		_ = errOut.Warning("Request to api-football failed.", err.Error())
		return exitFailure
	case errors.Is(err, usecase.ErrIncompleteData):
		_ = errOut.Warning("api-football returned incomplete data.", err.Error())
		return exitFailure
	default:
		_ = errOut.Warning(fmt.Sprintf("error: %v", err), "")
		return exitFailure
	}
}
