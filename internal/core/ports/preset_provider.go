package ports

// Preset is a named group of extra config lines that can be attached to an alias.
type Preset struct {
	Name  string   `yaml:"name"`
	Lines []string `yaml:"lines"`
}

// PresetProvider defines the interface for sourcing presets
// from a predefined list, like a configuration file.
type PresetProvider interface {
	// GetPresets loads presets from their source.
	GetPresets() ([]Preset, error)
}
