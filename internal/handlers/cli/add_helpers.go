package cli

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/sshez/internal/core/domain/host"
	"github.com/AntonioJCosta/sshez/internal/core/domain/outcome"
	"github.com/AntonioJCosta/sshez/internal/core/ports"
)

type addCommandFlags struct {
	port         int
	identityFile string
	batchMode    bool
	presets      []string
	options      []string
	test         bool
}

func parseAddCommandFlags(cmd *cobra.Command) addCommandFlags {
	port, _ := cmd.Flags().GetInt("port")
	identityFile, _ := cmd.Flags().GetString("identity-file")
	batchMode, _ := cmd.Flags().GetBool("batch-mode")
	presetNames, _ := cmd.Flags().GetStringArray("preset")
	options, _ := cmd.Flags().GetStringArray("option")
	test, _ := cmd.Flags().GetBool("test")

	return addCommandFlags{
		port:         port,
		identityFile: identityFile,
		batchMode:    batchMode,
		presets:      presetNames,
		options:      options,
		test:         test,
	}
}

// buildExtraLines turns the add flags into config lines, in the order
// Port, IdentityFile, BatchMode, presets, then raw options.
func buildExtraLines(flags addCommandFlags, provider ports.PresetProvider) ([]string, error) {
	var lines []string

	if flags.port != 0 {
		if flags.port < 1 || flags.port > 65535 {
			return nil, errors.Wrapf(outcome.ErrArgument, "port %d is out of range", flags.port)
		}
		lines = append(lines, host.OptionLine("Port", strconv.Itoa(flags.port)))
	}
	if flags.identityFile != "" {
		if strings.ContainsAny(flags.identityFile, "\r\n") {
			return nil, errors.Wrap(outcome.ErrArgument, "identity file cannot span lines")
		}
		lines = append(lines, host.OptionLine("IdentityFile", flags.identityFile))
	}
	if flags.batchMode {
		lines = append(lines, host.OptionLine("BatchMode", "yes"))
	}

	if len(flags.presets) > 0 {
		presetLines, err := resolvePresets(flags.presets, provider)
		if err != nil {
			return nil, err
		}
		lines = append(lines, presetLines...)
	}

	for _, raw := range flags.options {
		line, err := parseOptionLine(raw)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func resolvePresets(names []string, provider ports.PresetProvider) ([]string, error) {
	if provider == nil {
		return nil, errors.Wrap(outcome.ErrArgument, "presets are not available")
	}
	all, err := provider.GetPresets()
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "could not load presets"), outcome.ErrArgument)
	}

	byName := make(map[string]ports.Preset, len(all))
	for _, p := range all {
		byName[p.Name] = p
	}

	var lines []string
	for _, name := range names {
		preset, ok := byName[name]
		if !ok {
			return nil, errors.Wrapf(outcome.ErrArgument, "unknown preset %q", name)
		}
		for _, raw := range preset.Lines {
			line, err := parseOptionLine(raw)
			if err != nil {
				return nil, errors.Wrapf(err, "preset %q", name)
			}
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// parseOptionLine accepts "Key value" or "Key=value" and returns an indented
// config line.
func parseOptionLine(raw string) (string, error) {
	if strings.ContainsAny(raw, "\r\n") {
		return "", errors.Wrapf(outcome.ErrArgument, "option %q cannot span lines", raw)
	}
	trimmed := strings.TrimSpace(raw)

	key, value, found := strings.Cut(trimmed, "=")
	if !found || strings.ContainsAny(key, " \t") {
		fields := strings.Fields(trimmed)
		if len(fields) < 2 {
			return "", errors.Wrapf(outcome.ErrArgument, "option %q must be \"Key value\"", raw)
		}
		key = fields[0]
		value = strings.TrimSpace(trimmed[len(key):])
	}

	key, value = strings.TrimSpace(key), strings.TrimSpace(value)
	if key == "" || value == "" {
		return "", errors.Wrapf(outcome.ErrArgument, "option %q must be \"Key value\"", raw)
	}
	if strings.EqualFold(key, "Host") || strings.EqualFold(key, "Match") {
		return "", errors.Wrapf(outcome.ErrArgument, "option %q would start a new block", raw)
	}
	return host.OptionLine(key, value), nil
}
