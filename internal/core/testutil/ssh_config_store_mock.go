package testutil

import (
	"errors"

	"github.com/AntonioJCosta/sshez/internal/core/ports"
)

// MockSSHConfigStore is a mock implementation of ports.SSHConfigStore for testing.
type MockSSHConfigStore struct {
	AliasNamesFunc               func() ([]string, error)
	ReadLinesFunc                func() ([]string, error)
	AppendBlockFunc              func(text string) error
	RewriteWithoutFunc           func(name string) (bool, error)
	TruncateFunc                 func() error
	SetRestrictedPermissionsFunc func() error
	PathValue                    string

	// Calls records the mutating methods invoked, in order.
	Calls []string
}

func (m *MockSSHConfigStore) AliasNames() ([]string, error) {
	if m.AliasNamesFunc != nil {
		return m.AliasNamesFunc()
	}
	return nil, errors.New("MockSSHConfigStore: AliasNamesFunc not implemented")
}

func (m *MockSSHConfigStore) ReadLines() ([]string, error) {
	if m.ReadLinesFunc != nil {
		return m.ReadLinesFunc()
	}
	return nil, errors.New("MockSSHConfigStore: ReadLinesFunc not implemented")
}

func (m *MockSSHConfigStore) AppendBlock(text string) error {
	m.Calls = append(m.Calls, "AppendBlock")
	if m.AppendBlockFunc != nil {
		return m.AppendBlockFunc(text)
	}
	return errors.New("MockSSHConfigStore: AppendBlockFunc not implemented")
}

func (m *MockSSHConfigStore) RewriteWithout(name string) (bool, error) {
	m.Calls = append(m.Calls, "RewriteWithout")
	if m.RewriteWithoutFunc != nil {
		return m.RewriteWithoutFunc(name)
	}
	return false, errors.New("MockSSHConfigStore: RewriteWithoutFunc not implemented")
}

func (m *MockSSHConfigStore) Truncate() error {
	m.Calls = append(m.Calls, "Truncate")
	if m.TruncateFunc != nil {
		return m.TruncateFunc()
	}
	return errors.New("MockSSHConfigStore: TruncateFunc not implemented")
}

func (m *MockSSHConfigStore) SetRestrictedPermissions() error {
	m.Calls = append(m.Calls, "SetRestrictedPermissions")
	if m.SetRestrictedPermissionsFunc != nil {
		return m.SetRestrictedPermissionsFunc()
	}
	return nil
}

func (m *MockSSHConfigStore) Path() string {
	if m.PathValue != "" {
		return m.PathValue
	}
	return "~/.ssh/config"
}

var _ ports.SSHConfigStore = (*MockSSHConfigStore)(nil)
