package oscommand

import (
	"os"
	"os/exec"
	"syscall"

	"github.com/cockroachdb/errors"

	"github.com/AntonioJCosta/sshez/internal/core/ports"
)

// SSHLauncher implements ports.SSHLauncher by replacing the current process
// with the system ssh client.
type SSHLauncher struct {
	// configFile is passed to ssh with -F when it is not the client default.
	configFile string

	lookPath func(file string) (string, error)
	exec     func(argv0 string, argv []string, envv []string) error
	environ  func() []string
}

// NewSSHLauncher creates a launcher. An empty configFile lets ssh read its
// usual ~/.ssh/config.
func NewSSHLauncher(configFile string) ports.SSHLauncher {
	return &SSHLauncher{
		configFile: configFile,
		lookPath:   exec.LookPath,
		exec:       syscall.Exec,
		environ:    os.Environ,
	}
}

// Connect execs "ssh <alias>". It only returns if ssh could not be started.
func (l *SSHLauncher) Connect(alias string) error {
	sshPath, err := l.lookPath("ssh")
	if err != nil {
		return errors.Wrap(err, "ssh client not found in PATH")
	}

	if err := l.exec(sshPath, l.argv(alias), l.environ()); err != nil {
		return errors.Wrapf(err, "exec %s", sshPath)
	}
	return nil
}

func (l *SSHLauncher) argv(alias string) []string {
	args := []string{"ssh"}
	if l.configFile != "" {
		args = append(args, "-F", l.configFile)
	}
	return append(args, alias)
}
