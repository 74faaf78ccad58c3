package cli

import (
	"github.com/cockroachdb/errors"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/sshez/internal/core/domain/command"
	"github.com/AntonioJCosta/sshez/internal/core/domain/outcome"
)

// errPickAborted is returned by a picker when the user leaves without choosing.
var errPickAborted = errors.New("selection aborted")

// NewConnectCommand creates the 'connect' subcommand.
func NewConnectCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "connect [alias]",
		Short: "Open an ssh session to a stored alias.",
		Long: `Replaces sshez with "ssh <alias>". Without an alias, and when run in a
terminal, a fuzzy finder lists the stored aliases to choose from.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConnectCmd(cmd, args, app)
		},
	}
}

func runConnectCmd(_ *cobra.Command, args []string, app *App) error {
	if len(args) == 1 {
		return app.report(app.Service.Execute(command.Request{Name: command.Connect, Args: args}))
	}

	req := command.Request{Name: command.Connect}
	if app.Pick == nil {
		req.ArgErr = errors.Wrap(outcome.ErrArgument, "an alias is required when not running in a terminal")
		return app.report(app.Service.Execute(req))
	}

	list := app.Service.Execute(command.Request{Name: command.List})
	if !list.OK() || len(list.Aliases) == 0 {
		return app.report(list)
	}

	name, err := app.Pick(list.Aliases)
	switch {
	case errors.Is(err, errPickAborted):
		return nil
	case err != nil:
		req.ArgErr = err
	default:
		req.Args = []string{name}
	}
	return app.report(app.Service.Execute(req))
}

// fuzzyPick lets the user choose one of names with an inline fuzzy finder.
func fuzzyPick(names []string) (string, error) {
	idx, err := fuzzyfinder.Find(
		names,
		func(i int) string { return names[i] },
		fuzzyfinder.WithPromptString("ssh> "),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", errPickAborted
		}
		return "", errors.Wrap(err, "alias selection failed")
	}
	return names[idx], nil
}
