package ports

import (
	"github.com/AntonioJCosta/sshez/internal/core/domain/command"
	"github.com/AntonioJCosta/sshez/internal/core/domain/host"
	"github.com/AntonioJCosta/sshez/internal/core/domain/outcome"
)

// AliasManagementService defines the contract for managing SSH aliases.
// Every operation reports through an outcome.Result; none of them exit the process.
type AliasManagementService interface {
	// Execute dispatches a parsed request to the matching operation.
	Execute(req command.Request) outcome.Result

	// Connect hands off to the ssh client if the alias exists.
	Connect(name string) outcome.Result

	// Add appends a Host block for the alias, or only forms it on a dry run.
	Add(alias host.Alias, opts command.Options) outcome.Result

	// Remove deletes every block for the alias.
	Remove(name string) outcome.Result

	// List returns the alias names in file order.
	List() outcome.Result

	// ResetConfirmed empties the config file. Confirmation is the caller's job.
	ResetConfirmed() outcome.Result
}
