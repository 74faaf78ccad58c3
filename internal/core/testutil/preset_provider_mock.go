package testutil

import "github.com/AntonioJCosta/sshez/internal/core/ports"

// MockPresetProvider is a mock implementation of ports.PresetProvider.
type MockPresetProvider struct {
	GetPresetsFunc func() ([]ports.Preset, error)
}

// GetPresets calls the mock GetPresetsFunc, returning no presets if unset.
func (m *MockPresetProvider) GetPresets() ([]ports.Preset, error) {
	if m.GetPresetsFunc != nil {
		return m.GetPresetsFunc()
	}
	return []ports.Preset{}, nil
}

var _ ports.PresetProvider = (*MockPresetProvider)(nil)
