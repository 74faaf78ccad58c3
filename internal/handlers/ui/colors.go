package ui

import "github.com/fatih/color"

// Message colors
var (
	InfoColor    = color.New(color.FgCyan).SprintFunc()
	SuccessColor = color.New(color.FgGreen).SprintFunc()
	WarningColor = color.New(color.FgYellow).SprintFunc()
	ErrorColor   = color.New(color.FgRed).SprintFunc()
	PromptColor  = color.New(color.FgMagenta).SprintFunc()
)

// Listing colors
var (
	HeaderColor    = color.New(color.FgGreen, color.Bold).SprintFunc()
	AliasNameColor = color.New(color.FgYellow).SprintFunc() // Host tokens in list output
)

// SetColorEnabled toggles ANSI output for every palette entry.
func SetColorEnabled(enabled bool) {
	color.NoColor = !enabled
}
