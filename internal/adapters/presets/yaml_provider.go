package presets

import (
	"bytes"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/AntonioJCosta/sshez/internal/core/ports"
)

// YAMLProvider implements the PresetProvider interface
// by reading presets from a YAML file.
type YAMLProvider struct {
	filePath string
}

// NewYAMLProvider creates a new YAMLProvider.
// filePath is the path to the YAML file containing presets.
func NewYAMLProvider(filePath string) (ports.PresetProvider, error) {
	if filePath == "" {
		return nil, errors.New("presets file path cannot be empty")
	}
	return &YAMLProvider{filePath: filePath}, nil
}

// GetPresets reads and parses presets from the configured YAML file.
// If the file does not exist or is empty, it returns an empty list and no error.
func (p *YAMLProvider) GetPresets() ([]ports.Preset, error) {
	presets := []ports.Preset{}

	data, err := os.ReadFile(p.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return presets, nil
		}
		return nil, errors.Wrapf(err, "failed to read presets file %s", p.filePath)
	}
	if len(data) == 0 {
		return presets, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&presets); err != nil {
		// A file holding only comments or "---" has no document.
		if errors.Is(err, io.EOF) {
			return []ports.Preset{}, nil
		}
		return nil, errors.Wrapf(err, "failed to unmarshal presets from %s", p.filePath)
	}

	for i, preset := range presets {
		if preset.Name == "" {
			return nil, errors.Newf("preset #%d in %s has no name", i+1, p.filePath)
		}
	}
	return presets, nil
}
