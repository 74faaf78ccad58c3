package testutil

import (
	"strings"

	"github.com/AntonioJCosta/sshez/internal/core/ports"
)

// MockReporter records every message it receives, prefixed by its level.
type MockReporter struct {
	Lines []string
}

func (m *MockReporter) Info(msg string)    { m.Lines = append(m.Lines, "info: "+msg) }
func (m *MockReporter) Success(msg string) { m.Lines = append(m.Lines, "success: "+msg) }
func (m *MockReporter) Warn(msg string)    { m.Lines = append(m.Lines, "warn: "+msg) }
func (m *MockReporter) Error(msg string)   { m.Lines = append(m.Lines, "error: "+msg) }

func (m *MockReporter) List(heading string, names []string) {
	m.Lines = append(m.Lines, "list: "+heading+" ["+strings.Join(names, ",")+"]")
}

// Output joins everything recorded so far, one message per line.
func (m *MockReporter) Output() string {
	return strings.Join(m.Lines, "\n")
}

var _ ports.Reporter = (*MockReporter)(nil)
