package sshconfig

import (
	"bufio"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/AntonioJCosta/sshez/internal/core/domain/outcome"
)

// permissionError converts an I/O failure into outcome.ErrPermission.
// The OS error only contributes its text; it is not part of the chain.
func permissionError(op, path string, err error) error {
	return errors.Wrapf(outcome.ErrPermission, "%s %s: %s", op, toUserFriendlyPath(path), err.Error())
}

// eachLine calls fn for every line of r with its terminator still attached,
// so a rewrite reproduces untouched lines byte for byte. A final line without
// a newline is passed as is.
func eachLine(r io.Reader, fn func(line string)) error {
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			fn(line)
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// parseHostLine reports whether line is a Host header and returns its alias
// token. Only a line whose first field is the Host keyword counts; comments
// and values that merely contain "Host " do not.
func parseHostLine(line string) (name string, isHeader bool) {
	trimmed := strings.TrimSpace(line)
	fields := strings.Fields(trimmed)
	if len(fields) == 0 || !strings.EqualFold(fields[0], "Host") {
		return "", false
	}
	return strings.TrimSpace(trimmed[len(fields[0]):]), true
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

type scanState int

const (
	copying scanState = iota
	skipping
)

/*
blockScanner copies lines to out, omitting every block whose header token
equals target. A block runs from its header up to the next header with a
different token.

Blank lines need one extra rule. add always writes a blank separator before a
block, so when a removed block turns out to run to EOF the blank line right
before its header is dropped as well. That keeps add followed by remove
byte-exact and stops a removed last block from leaving a trailing blank line.
A removed block followed by another block keeps the separator in front of it.
*/
type blockScanner struct {
	target string
	out    io.Writer
	state  scanState

	// held is a blank line written only once the next line shows whether it
	// separates a removed block.
	held string
	// pending is the held blank line in front of the block being skipped.
	pending string

	dropped int
	err     error
}

func newBlockScanner(target string, out io.Writer) *blockScanner {
	return &blockScanner{target: target, out: out, state: copying}
}

func (b *blockScanner) feed(line string) {
	if name, ok := parseHostLine(line); ok {
		if name == b.target {
			if b.state == copying {
				b.pending = b.held
				b.held = ""
				b.state = skipping
			}
			b.dropped++
			return
		}
		if b.state == skipping {
			b.write(b.pending)
			b.pending = ""
			b.state = copying
		}
	}

	if b.state == skipping {
		b.dropped++
		return
	}

	b.write(b.held)
	b.held = ""
	if isBlank(line) {
		b.held = line
		return
	}
	b.write(line)
}

// finish flushes any held line and reports the first write error.
func (b *blockScanner) finish() error {
	if b.state == skipping {
		if b.pending != "" {
			b.dropped++
			b.pending = ""
		}
	} else {
		b.write(b.held)
		b.held = ""
	}
	return b.err
}

func (b *blockScanner) write(s string) {
	if s == "" || b.err != nil {
		return
	}
	_, b.err = io.WriteString(b.out, s)
}

// toUserFriendlyPath converts an absolute path to a ~/-based path if it's under the user's home directory.
func toUserFriendlyPath(absPath string) string {
	usr, err := user.Current()
	if err != nil {
		return absPath
	}
	homeDir := usr.HomeDir
	if homeDir == "" || !strings.HasPrefix(absPath, homeDir) {
		return absPath
	}
	if absPath == homeDir || absPath == homeDir+string(os.PathSeparator) {
		return "~"
	}
	rel, err := filepath.Rel(homeDir, absPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return absPath
	}
	return filepath.Join("~", rel)
}
