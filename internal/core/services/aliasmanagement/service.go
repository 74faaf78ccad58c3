package aliasmanagement

import (
	"slices"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"

	"github.com/AntonioJCosta/sshez/internal/core/domain/command"
	"github.com/AntonioJCosta/sshez/internal/core/domain/host"
	"github.com/AntonioJCosta/sshez/internal/core/domain/outcome"
	"github.com/AntonioJCosta/sshez/internal/core/ports"
	"github.com/AntonioJCosta/sshez/internal/logging"
)

type service struct {
	store    ports.SSHConfigStore
	launcher ports.SSHLauncher
	logger   *log.Logger
}

// NewService creates a new alias management service.
// It panics if store or launcher is nil. A nil logger discards output.
func NewService(store ports.SSHConfigStore, launcher ports.SSHLauncher, logger *log.Logger) ports.AliasManagementService {
	if store == nil {
		panic("store cannot be nil")
	}
	if launcher == nil {
		panic("launcher cannot be nil")
	}
	if logger == nil {
		logger = logging.NewDiscard()
	}
	return &service{store: store, launcher: launcher, logger: logger}
}

// Execute dispatches a parsed request. A request the parser already rejected
// never reaches the config file. Reset requests are taken as confirmed.
func (s *service) Execute(req command.Request) outcome.Result {
	op := string(req.Name)
	if req.ArgErr != nil {
		return outcome.Failed(op, firstArg(req.Args), markArgument(req.ArgErr))
	}

	switch req.Name {
	case command.Connect:
		if err := expectArgs(req, 1); err != nil {
			return outcome.Failed(op, firstArg(req.Args), err)
		}
		return s.Connect(req.Args[0])
	case command.Add:
		if err := expectArgs(req, 3); err != nil {
			return outcome.Failed(op, firstArg(req.Args), err)
		}
		a := host.Alias{
			Name:     req.Args[0],
			User:     req.Args[1],
			HostName: req.Args[2],
			Options:  req.Options.ExtraLines,
		}
		return s.Add(a, req.Options)
	case command.Remove:
		if err := expectArgs(req, 1); err != nil {
			return outcome.Failed(op, firstArg(req.Args), err)
		}
		return s.Remove(req.Args[0])
	case command.List:
		return s.List()
	case command.Reset:
		return s.ResetConfirmed()
	default:
		return outcome.Failed(op, "", errors.Wrapf(outcome.ErrUnrecognizedCommand, "%q", op))
	}
}

// Connect looks the alias up and hands off to the ssh client. On success the
// launcher replaces the process, so a returned Result always means no session.
func (s *service) Connect(name string) outcome.Result {
	op := string(command.Connect)
	found, err := s.exists(name)
	if err != nil {
		return outcome.Failed(op, name, err)
	}
	if !found {
		return outcome.Failed(op, name, errors.Wrapf(outcome.ErrNotFound, "%q", name))
	}

	s.logger.Debug("connecting", "alias", name)
	if err := s.launcher.Connect(name); err != nil {
		return outcome.Failed(op, name, errors.Wrapf(err, "failed to launch ssh for '%s'", name))
	}
	return outcome.Result{Kind: outcome.Success, Operation: op, Alias: name}
}

// Add forms the Host block for a and appends it, unless opts.Test asks for a
// dry run. An interrupted append can leave a partial trailing block; that is
// not repaired here.
func (s *service) Add(a host.Alias, opts command.Options) outcome.Result {
	op := string(command.Add)
	if err := a.Validate(); err != nil {
		return outcome.Failed(op, a.Name, err)
	}

	block := a.Block()
	s.logger.Debug("formed block", "alias", a.Name, "block", block)

	result := outcome.Result{
		Kind:      outcome.Success,
		Operation: op,
		Alias:     a.Name,
		Owner:     a.Owner(),
		Block:     block,
		DryRun:    opts.Test,
	}
	if opts.Test {
		return result
	}

	if err := s.store.AppendBlock(block); err != nil {
		r := outcome.Failed(op, a.Name, errors.Wrapf(err, "failed to add alias '%s'", a.Name))
		r.Block = block
		return r
	}
	s.logger.Debug("appended block", "alias", a.Name, "path", s.store.Path())
	return result
}

// Remove deletes every block for name. Matching is on the whole alias token,
// so removing "prod" never touches "prod2".
func (s *service) Remove(name string) outcome.Result {
	op := string(command.Remove)
	found, err := s.exists(name)
	if err != nil {
		return outcome.Failed(op, name, err)
	}
	if !found {
		return outcome.Failed(op, name, errors.Wrapf(outcome.ErrNotFound, "%q", name))
	}

	before := s.lineCount()
	removed, err := s.store.RewriteWithout(name)
	if err != nil {
		return outcome.Failed(op, name, errors.Wrapf(err, "failed to remove alias '%s'", name))
	}
	if !removed {
		// The file changed between the lookup and the rewrite.
		return outcome.Failed(op, name, errors.Wrapf(outcome.ErrNotFound, "%q", name))
	}
	s.logger.Debug("removed alias", "alias", name, "path", s.store.Path(), "lines_removed", before-s.lineCount())
	return outcome.Result{Kind: outcome.Success, Operation: op, Alias: name}
}

// List returns every alias in file order. An empty config is still a success.
func (s *service) List() outcome.Result {
	op := string(command.List)
	names, err := s.store.AliasNames()
	if err != nil {
		return outcome.Failed(op, "", errors.Wrap(err, "failed to list aliases"))
	}
	return outcome.Result{Kind: outcome.Success, Operation: op, Aliases: names}
}

// ResetConfirmed empties the config file unconditionally.
func (s *service) ResetConfirmed() outcome.Result {
	op := string(command.Reset)
	if err := s.store.Truncate(); err != nil {
		return outcome.Failed(op, "", errors.Wrap(err, "failed to reset config"))
	}
	s.logger.Debug("config reset", "path", s.store.Path())
	return outcome.Result{Kind: outcome.Success, Operation: op}
}

func (s *service) exists(name string) (bool, error) {
	names, err := s.store.AliasNames()
	if err != nil {
		return false, errors.Wrap(err, "failed to read aliases")
	}
	return slices.Contains(names, name), nil
}

// lineCount is only computed when debug output is on; it returns 0 otherwise
// or when the file cannot be read.
func (s *service) lineCount() int {
	if s.logger.GetLevel() > log.DebugLevel {
		return 0
	}
	lines, err := s.store.ReadLines()
	if err != nil {
		return 0
	}
	return len(lines)
}

func expectArgs(req command.Request, n int) error {
	if len(req.Args) != n {
		return errors.Wrapf(outcome.ErrArgument, "%s expects %d argument(s), got %d", req.Name, n, len(req.Args))
	}
	return nil
}

// markArgument keeps the parser's message while making the error match
// outcome.ErrArgument.
func markArgument(err error) error {
	if errors.Is(err, outcome.ErrArgument) {
		return err
	}
	return errors.Mark(err, outcome.ErrArgument)
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
