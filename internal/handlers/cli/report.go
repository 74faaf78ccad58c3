package cli

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/sshez/internal/core/domain/command"
	"github.com/AntonioJCosta/sshez/internal/core/domain/outcome"
)

// report prints the message for r and returns an *ExitError unless r succeeded.
func (a *App) report(r outcome.Result) error {
	if r.OK() {
		a.reportSuccess(r)
		return nil
	}

	switch r.Kind {
	case outcome.NotFound:
		a.Reporter.Error(fmt.Sprintf("Could not find host `%s`", r.Alias))
	case outcome.PermissionDenied:
		a.Reporter.Error("Permission denied!")
		a.Reporter.Error(fmt.Sprintf("Please check your %s permissions then try again.", a.ConfigPath))
	default:
		if r.Err != nil {
			a.Reporter.Warn(r.Err.Error())
		}
		a.Reporter.Error(invalidInputMsg)
	}
	if r.Err != nil && a.Logger != nil {
		a.Logger.Debug("operation failed", "op", r.Operation, "err", r.Err)
	}
	return NewExitError(r.Err, ExitCode(r.Kind))
}

func (a *App) reportSuccess(r outcome.Result) {
	switch command.Name(r.Operation) {
	case command.Add:
		if r.DryRun {
			a.Reporter.Info(strings.TrimPrefix(r.Block, "\n"))
			a.Reporter.Warn(fmt.Sprintf("Dry run, nothing was written to %s", a.ConfigPath))
			return
		}
		a.Reporter.Success(fmt.Sprintf("Successfully added `%s` as an alias for `%s`", r.Alias, r.Owner))
		a.Reporter.Info(fmt.Sprintf("Try sshez connect %s", r.Alias))
	case command.Remove:
		a.Reporter.Success(fmt.Sprintf("`%s` was successfully removed from your hosts", r.Alias))
	case command.List:
		if len(r.Aliases) == 0 {
			a.Reporter.Info("No aliases added")
			return
		}
		a.Reporter.List("Listing aliases:", r.Aliases)
	case command.Reset:
		a.Reporter.Success("You have successfully reset your ssh config file.")
	}
}
