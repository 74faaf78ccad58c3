package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/sshez/internal/core/domain/command"
	"github.com/AntonioJCosta/sshez/internal/handlers/ui"
)

const resetPrompt = "Are you sure you want to remove all aliases? [y/N] "

// NewResetCommand creates the 'reset' subcommand.
func NewResetCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Empty your ssh config file.",
		Long:  `Removes every alias, and everything else, from your ssh config file after confirmation.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResetCmd(cmd, args, app)
		},
	}
	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt.")
	return cmd
}

func runResetCmd(cmd *cobra.Command, _ []string, app *App) error {
	yes, _ := cmd.Flags().GetBool("yes")
	if !yes {
		confirmed, err := confirm(app.In, app.Out, resetPrompt)
		if err != nil {
			return err
		}
		if !confirmed {
			app.Reporter.Info("Reset cancelled, your ssh config was not changed.")
			return nil
		}
	}
	return app.report(app.Service.Execute(command.Request{Name: command.Reset}))
}

// confirm asks prompt on out and reports whether the answer was y or yes.
// End of input counts as no.
func confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	fmt.Fprint(out, ui.PromptColor(prompt))
	reader := bufio.NewReader(in)
	input, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, errors.Wrap(err, "failed to read confirmation")
	}
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
