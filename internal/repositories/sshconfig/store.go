package sshconfig

import (
	"bufio"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/AntonioJCosta/sshez/internal/core/ports"
)

const sshDir = ".ssh"
const sshConfigFilename = "config"

// tempPattern names the scratch file a rewrite streams into. It lives next to
// the config so the final rename stays on one filesystem.
const tempPattern = ".sshez-*.tmp"

const restrictedMode os.FileMode = 0600

// ConfigStore provides access to the SSH client configuration file.
// It is not safe against concurrent external editors: a rewrite replaces
// whatever is on disk with what it read (last writer wins).
type ConfigStore struct {
	path string
}

// DefaultPath returns ~/.ssh/config for the current user.
func DefaultPath() (string, error) {
	usr, err := user.Current()
	if err != nil {
		return "", errors.Wrap(err, "failed to get current user")
	}
	return filepath.Join(usr.HomeDir, sshDir, sshConfigFilename), nil
}

// NewConfigStore creates a ConfigStore for path. An empty path selects
// DefaultPath, and a leading "~/" is expanded to the home directory.
func NewConfigStore(path string) (ports.SSHConfigStore, error) {
	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		return &ConfigStore{path: defaultPath}, nil
	}

	expanded, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	return &ConfigStore{path: expanded}, nil
}

// Path implements the ports.SSHConfigStore interface.
func (s *ConfigStore) Path() string {
	return s.path
}

// AliasNames implements the ports.SSHConfigStore interface.
func (s *ConfigStore) AliasNames() ([]string, error) {
	names := []string{}
	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return names, nil // No config yet means no aliases
		}
		return nil, permissionError("open", s.path, err)
	}
	defer file.Close()

	err = eachLine(file, func(line string) {
		if name, ok := parseHostLine(line); ok && name != "" {
			names = append(names, name)
		}
	})
	if err != nil {
		return nil, permissionError("read", s.path, err)
	}
	return names, nil
}

// ReadLines implements the ports.SSHConfigStore interface.
func (s *ConfigStore) ReadLines() ([]string, error) {
	lines := []string{}
	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return lines, nil
		}
		return nil, permissionError("open", s.path, err)
	}
	defer file.Close()

	if err := eachLine(file, func(line string) { lines = append(lines, line) }); err != nil {
		return nil, permissionError("read", s.path, err)
	}
	return lines, nil
}

// AppendBlock implements the ports.SSHConfigStore interface.
func (s *ConfigStore) AppendBlock(text string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return permissionError("create directory for", s.path, err)
	}

	file, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, restrictedMode)
	if err != nil {
		return permissionError("open for append", s.path, err)
	}

	if _, err := file.WriteString(text); err != nil {
		file.Close()
		return permissionError("append to", s.path, err)
	}
	if err := file.Close(); err != nil {
		return permissionError("close", s.path, err)
	}

	return s.SetRestrictedPermissions()
}

// RewriteWithout implements the ports.SSHConfigStore interface.
// The file is streamed into a temp file in the same directory, which is
// renamed over the original only once it has been fully written and closed.
func (s *ConfigStore) RewriteWithout(name string) (bool, error) {
	target, err := resolveTarget(s.path)
	if err != nil {
		return false, permissionError("resolve", s.path, err)
	}

	src, err := os.Open(target)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, permissionError("open", s.path, err)
	}
	defer src.Close()

	tmp, err := os.CreateTemp(filepath.Dir(target), tempPattern)
	if err != nil {
		return false, permissionError("create temp file for", s.path, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	w := bufio.NewWriter(tmp)
	scanner := newBlockScanner(name, w)
	if err := eachLine(src, scanner.feed); err != nil {
		return false, permissionError("read", s.path, err)
	}
	if err := scanner.finish(); err != nil {
		return false, permissionError("write temp file for", s.path, err)
	}
	if scanner.dropped == 0 {
		return false, nil
	}

	if err := w.Flush(); err != nil {
		return false, permissionError("write temp file for", s.path, err)
	}
	if err := tmp.Sync(); err != nil {
		return false, permissionError("sync temp file for", s.path, err)
	}
	if err := tmp.Chmod(restrictedMode); err != nil {
		return false, permissionError("chmod temp file for", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		return false, permissionError("close temp file for", s.path, err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		return false, permissionError("replace", s.path, err)
	}
	committed = true

	return true, s.SetRestrictedPermissions()
}

// Truncate implements the ports.SSHConfigStore interface.
func (s *ConfigStore) Truncate() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return permissionError("create directory for", s.path, err)
	}
	file, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, restrictedMode)
	if err != nil {
		return permissionError("truncate", s.path, err)
	}
	if err := file.Close(); err != nil {
		return permissionError("close", s.path, err)
	}
	return s.SetRestrictedPermissions()
}

// SetRestrictedPermissions implements the ports.SSHConfigStore interface.
// Some distributions leave new files group-readable, which ssh refuses.
func (s *ConfigStore) SetRestrictedPermissions() error {
	if err := os.Chmod(s.path, restrictedMode); err != nil {
		return permissionError("chmod", s.path, err)
	}
	return nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	usr, err := user.Current()
	if err != nil {
		return "", errors.Wrap(err, "failed to get current user")
	}
	return filepath.Join(usr.HomeDir, strings.TrimPrefix(path, "~")), nil
}

// resolveTarget follows a symlinked config so the rename replaces the real
// file instead of the link.
func resolveTarget(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		if os.IsNotExist(err) {
			return path, nil
		}
		return "", err
	}
	return resolved, nil
}
