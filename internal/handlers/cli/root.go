package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/AntonioJCosta/sshez/internal/appconfig"
	"github.com/AntonioJCosta/sshez/internal/core/domain/outcome"
	"github.com/AntonioJCosta/sshez/internal/core/ports"
	"github.com/AntonioJCosta/sshez/internal/handlers/ui"
	"github.com/AntonioJCosta/sshez/internal/logging"
)

/*
App carries what the subcommands need. In, Out and ErrOut are set by the
caller; the remaining fields are filled by Builder once flags and the app
config have been resolved, right before a subcommand runs.
*/
type App struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer

	Service  ports.AliasManagementService
	Presets  ports.PresetProvider
	Reporter ports.Reporter
	Logger   *log.Logger

	// ConfigPath is the ssh config file shown in permission errors.
	ConfigPath string
	Verbose    bool

	// Pick chooses one alias interactively. Nil when stdin/stdout are not a terminal.
	Pick func(names []string) (string, error)
}

// Builder wires the services for the resolved configuration into app.
type Builder func(cfg *appconfig.Config, app *App) error

func NewRootCommand(version string, app *App, build Builder) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sshez",
		Short: "sshez manages named aliases in your ssh config.",
		Long: `sshez adds, lists, removes and connects to Host aliases stored in
your ssh client config file (~/.ssh/config by default).`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return prepareApp(cmd, app, build)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.report(outcome.Failed("", "", outcome.ErrUnrecognizedCommand))
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config-file", "", "ssh config file to manage (default ~/.ssh/config)")
	flags.BoolP("verbose", "v", false, "print the formed config block and the file path")
	flags.Bool("no-color", false, "disable colored output")

	rootCmd.AddCommand(NewConnectCommand(app))
	rootCmd.AddCommand(NewAddCommand(app))
	rootCmd.AddCommand(NewRemoveCommand(app))
	rootCmd.AddCommand(NewListCommand(app))
	rootCmd.AddCommand(NewResetCommand(app))

	return rootCmd
}

// prepareApp resolves the configuration (defaults, config.yaml, SSHEZ_*
// environment, then flags) and hands it to build.
func prepareApp(cmd *cobra.Command, app *App, build Builder) error {
	appconfig.Init()
	flags := cmd.Flags()
	if err := viper.BindPFlag(appconfig.KeySSHConfig, flags.Lookup("config-file")); err != nil {
		return err
	}
	if err := viper.BindPFlag(appconfig.KeyVerbose, flags.Lookup("verbose")); err != nil {
		return err
	}

	cfg, err := appconfig.Load("")
	if err != nil {
		return err
	}
	if noColor, _ := flags.GetBool("no-color"); noColor {
		cfg.Color = false
	}
	ui.SetColorEnabled(cfg.Color)

	app.Verbose = cfg.Verbose
	app.Logger = logging.New(app.ErrOut, cfg.Verbose)
	if app.Pick == nil && logging.IsInteractive(app.In, app.Out) {
		app.Pick = fuzzyPick
	}
	return build(cfg, app)
}
