package cli

import (
	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/sshez/internal/core/domain/command"
)

// NewRemoveCommand creates the 'remove' subcommand.
func NewRemoveCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <alias>",
		Aliases: []string{"rm"},
		Short:   "Remove an alias and all of its config lines.",
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return app.report(app.Service.Execute(command.Request{Name: command.Remove, Args: args}))
		},
	}
}
