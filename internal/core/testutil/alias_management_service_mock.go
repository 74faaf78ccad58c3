package testutil

import (
	"github.com/AntonioJCosta/sshez/internal/core/domain/command"
	"github.com/AntonioJCosta/sshez/internal/core/domain/host"
	"github.com/AntonioJCosta/sshez/internal/core/domain/outcome"
	"github.com/AntonioJCosta/sshez/internal/core/ports"
)

// MockAliasManagementService is a mock implementation of ports.AliasManagementService.
// Every request passed to Execute is recorded in Requests.
type MockAliasManagementService struct {
	ExecuteFunc        func(req command.Request) outcome.Result
	ConnectFunc        func(name string) outcome.Result
	AddFunc            func(alias host.Alias, opts command.Options) outcome.Result
	RemoveFunc         func(name string) outcome.Result
	ListFunc           func() outcome.Result
	ResetConfirmedFunc func() outcome.Result

	Requests []command.Request
}

func (m *MockAliasManagementService) Execute(req command.Request) outcome.Result {
	m.Requests = append(m.Requests, req)
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(req)
	}
	return outcome.Result{Kind: outcome.Success, Operation: string(req.Name)}
}

func (m *MockAliasManagementService) Connect(name string) outcome.Result {
	if m.ConnectFunc != nil {
		return m.ConnectFunc(name)
	}
	return outcome.Result{Kind: outcome.Success, Operation: string(command.Connect), Alias: name}
}

func (m *MockAliasManagementService) Add(alias host.Alias, opts command.Options) outcome.Result {
	if m.AddFunc != nil {
		return m.AddFunc(alias, opts)
	}
	return outcome.Result{Kind: outcome.Success, Operation: string(command.Add), Alias: alias.Name}
}

func (m *MockAliasManagementService) Remove(name string) outcome.Result {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(name)
	}
	return outcome.Result{Kind: outcome.Success, Operation: string(command.Remove), Alias: name}
}

func (m *MockAliasManagementService) List() outcome.Result {
	if m.ListFunc != nil {
		return m.ListFunc()
	}
	return outcome.Result{Kind: outcome.Success, Operation: string(command.List)}
}

func (m *MockAliasManagementService) ResetConfirmed() outcome.Result {
	if m.ResetConfirmedFunc != nil {
		return m.ResetConfirmedFunc()
	}
	return outcome.Result{Kind: outcome.Success, Operation: string(command.Reset)}
}

var _ ports.AliasManagementService = (*MockAliasManagementService)(nil)
