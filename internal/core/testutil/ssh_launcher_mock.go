package testutil

import "github.com/AntonioJCosta/sshez/internal/core/ports"

// MockSSHLauncher is a mock implementation of ports.SSHLauncher.
// Unlike the real launcher, Connect returns so tests can observe the hand-off.
type MockSSHLauncher struct {
	ConnectFunc func(alias string) error
	Connected   []string
}

// Connect records the alias and calls the mock ConnectFunc.
func (m *MockSSHLauncher) Connect(alias string) error {
	m.Connected = append(m.Connected, alias)
	if m.ConnectFunc != nil {
		return m.ConnectFunc(alias)
	}
	return nil
}

var _ ports.SSHLauncher = (*MockSSHLauncher)(nil)
