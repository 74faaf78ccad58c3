package cli

import (
	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/sshez/internal/core/domain/command"
)

// NewListCommand creates the 'list' subcommand.
func NewListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the aliases in your ssh config.",
		Long:    `Lists every Host alias in file order, duplicates included.`,
		Args:    cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.report(app.Service.Execute(command.Request{Name: command.List}))
		},
	}
}
