package cli

import (
	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/sshez/internal/core/domain/command"
	"github.com/AntonioJCosta/sshez/internal/core/domain/host"
)

// NewAddCommand creates the 'add' subcommand.
func NewAddCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <alias> <user@host>",
		Short: "Add an alias for user@host to your ssh config.",
		Long: `Appends a Host block for the alias to your ssh config. Extra lines
can be added with --port, --identity-file, --batch-mode, --option or a
preset from presets.yaml. Use --test to print the block without writing it.`,
		Example: `  sshez add prod deploy@10.0.0.5 -p 2222
  sshez add db admin@db.internal -i ~/.ssh/db_ed25519 --preset jump`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddCmd(cmd, args, app)
		},
	}

	cmd.Flags().IntP("port", "p", 0, "Port to connect to (adds a Port line).")
	cmd.Flags().StringP("identity-file", "i", "", "Private key to use (adds an IdentityFile line).")
	cmd.Flags().BoolP("batch-mode", "b", false, "Disable password prompts (adds BatchMode yes).")
	cmd.Flags().StringArray("preset", nil, "Append the lines of a named preset. Repeatable.")
	cmd.Flags().StringArrayP("option", "o", nil, `Append a raw "Key value" line. Repeatable.`)
	cmd.Flags().BoolP("test", "t", false, "Print the block without writing it.")

	return cmd
}

func runAddCmd(cmd *cobra.Command, args []string, app *App) error {
	flags := parseAddCommandFlags(cmd)

	req := command.Request{
		Name:    command.Add,
		Options: command.Options{Test: flags.test, Verbose: app.Verbose},
	}

	user, hostName, err := host.ParseOwner(args[1])
	if err != nil {
		req.Args = []string{args[0]}
		req.ArgErr = err
		return app.report(app.Service.Execute(req))
	}
	req.Args = []string{args[0], user, hostName}

	lines, err := buildExtraLines(flags, app.Presets)
	if err != nil {
		req.ArgErr = err
	}
	req.Options.ExtraLines = lines

	return app.report(app.Service.Execute(req))
}
