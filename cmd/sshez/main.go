package main

import (
	"os"

	"github.com/AntonioJCosta/sshez/internal/adapters/oscommand"
	"github.com/AntonioJCosta/sshez/internal/adapters/presets"
	"github.com/AntonioJCosta/sshez/internal/appconfig"
	"github.com/AntonioJCosta/sshez/internal/core/services/aliasmanagement"
	"github.com/AntonioJCosta/sshez/internal/handlers/cli"
	"github.com/AntonioJCosta/sshez/internal/handlers/ui"
	"github.com/AntonioJCosta/sshez/internal/repositories/sshconfig"
)

// Version is set at build time
var Version = "dev"

func main() {
	app := &cli.App{In: os.Stdin, Out: os.Stdout, ErrOut: os.Stderr}
	rootCmd := cli.NewRootCommand(Version, app, buildApp)
	os.Exit(cli.Run(rootCmd, os.Stderr))
}

// buildApp wires the services for cfg into app.
func buildApp(cfg *appconfig.Config, app *cli.App) error {
	store, err := sshconfig.NewConfigStore(cfg.SSHConfig)
	if err != nil {
		return err
	}

	// ssh only needs -F when the aliases live somewhere other than its default.
	launcherConfig := store.Path()
	if defaultPath, err := sshconfig.DefaultPath(); err == nil && defaultPath == launcherConfig {
		launcherConfig = ""
	}

	app.Reporter = ui.NewConsoleReporter(app.Out, app.ErrOut)

	presetProvider, err := presets.NewYAMLProvider(cfg.PresetsFile)
	if err != nil {
		app.Logger.Warn("presets disabled", "err", err)
	}
	app.Presets = presetProvider

	app.ConfigPath = store.Path()
	app.Service = aliasmanagement.NewService(store, oscommand.NewSSHLauncher(launcherConfig), app.Logger)
	return nil
}
