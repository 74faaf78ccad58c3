/*
Package host defines the core domain entity for an SSH alias.
*/
package host

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/AntonioJCosta/sshez/internal/core/domain/outcome"
)

/*
Alias represents a named SSH connection: a short name mapped to a user@host
pair plus any extra configuration lines. It is stored on disk as one Host block.
*/
type Alias struct {
	Name     string
	User     string
	HostName string
	// Options are raw config lines appended after User, each ending in a newline.
	Options []string
}

// Owner returns the user@host pair the alias points at.
func (a Alias) Owner() string {
	return fmt.Sprintf("%s@%s", a.User, a.HostName)
}

// Block returns the exact text appended to the config file for this alias.
// It always starts with a blank separator line.
func (a Alias) Block() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Host %s\n", a.Name))
	b.WriteString(fmt.Sprintf("  HostName %s\n", a.HostName))
	b.WriteString(fmt.Sprintf("  User %s\n", a.User))
	for _, line := range a.Options {
		b.WriteString(line)
	}
	return b.String()
}

// Validate checks the three fields an alias is made of.
func (a Alias) Validate() error {
	fields := []struct {
		label string
		value string
	}{
		{"alias", a.Name},
		{"user", a.User},
		{"host", a.HostName},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return errors.Wrapf(outcome.ErrInvalidAlias, "%s cannot be empty", f.label)
		}
		if strings.ContainsAny(f.value, " \t\r\n") {
			return errors.Wrapf(outcome.ErrInvalidAlias, "%s %q cannot contain whitespace", f.label, f.value)
		}
	}
	if strings.ContainsAny(a.Name, "*?!") {
		return errors.Wrapf(outcome.ErrInvalidAlias, "alias %q cannot contain wildcard characters", a.Name)
	}
	return nil
}

// ParseOwner splits a "user@host" argument. The last '@' separates the two
// parts so users containing '@' still parse.
func ParseOwner(owner string) (user string, hostName string, err error) {
	idx := strings.LastIndex(owner, "@")
	if idx <= 0 || idx == len(owner)-1 {
		return "", "", errors.Wrapf(outcome.ErrArgument, "expected user@host, got %q", owner)
	}
	return owner[:idx], owner[idx+1:], nil
}

// OptionLine formats a single extra config line the way Block expects it.
func OptionLine(key, value string) string {
	return fmt.Sprintf("  %s %s\n", key, value)
}
