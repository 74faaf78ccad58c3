/*
Package outcome defines the tagged result every alias operation reports,
together with the sentinel errors that classify failures.
*/
package outcome

import "github.com/cockroachdb/errors"

// Sentinel errors. Callers match them with errors.Is.
var (
	// ErrNotFound indicates the requested alias is not in the config file.
	ErrNotFound = errors.New("host not found")

	// ErrPermission indicates the config file could not be read, written,
	// renamed or chmod-ed.
	ErrPermission = errors.New("permission denied")

	// ErrInvalidAlias indicates one of alias, user or host failed validation.
	ErrInvalidAlias = errors.New("invalid alias")

	// ErrArgument indicates the command line was rejected before any file operation.
	ErrArgument = errors.New("invalid argument")

	// ErrUnrecognizedCommand indicates no known operation matched the request.
	ErrUnrecognizedCommand = errors.New("unrecognized command")
)

// Kind tags how an operation ended.
type Kind int

const (
	Success Kind = iota
	NotFound
	PermissionDenied
	Invalid
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case NotFound:
		return "not-found"
	case PermissionDenied:
		return "permission-denied"
	case Invalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Result is returned by every alias operation.
type Result struct {
	Kind Kind
	// Operation is the command name that produced the result.
	Operation string
	// Alias is the alias name the operation targeted, if any.
	Alias string
	// Owner is the user@host pair of an added alias.
	Owner string
	// Block is the config text formed by add (also set on dry runs).
	Block string
	// DryRun is true when add produced Block without writing it.
	DryRun bool
	// Aliases holds the names reported by list, in file order.
	Aliases []string
	// Err is set for every non-Success kind.
	Err error
}

// OK reports whether the operation succeeded.
func (r Result) OK() bool {
	return r.Kind == Success
}

// Classify maps an error onto the Kind it should be reported as.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, ErrNotFound):
		return NotFound
	case errors.Is(err, ErrPermission):
		return PermissionDenied
	default:
		return Invalid
	}
}

// Failed builds a Result for op whose kind is derived from err.
func Failed(op, alias string, err error) Result {
	return Result{
		Kind:      Classify(err),
		Operation: op,
		Alias:     alias,
		Err:       err,
	}
}
