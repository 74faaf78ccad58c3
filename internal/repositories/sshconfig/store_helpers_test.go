package sshconfig

import (
	"bytes"
	"os/user"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParseHostLine(t *testing.T) {
	tests := []struct {
		name         string
		line         string
		wantName     string
		wantIsHeader bool
	}{
		{name: "plain header", line: "Host a\n", wantName: "a", wantIsHeader: true},
		{name: "header with surrounding spaces", line: "  Host   web-1  \n", wantName: "web-1", wantIsHeader: true},
		{name: "lowercase keyword", line: "host db\n", wantName: "db", wantIsHeader: true},
		{name: "crlf terminator", line: "Host win\r\n", wantName: "win", wantIsHeader: true},
		{name: "bare keyword", line: "Host\n", wantName: "", wantIsHeader: true},
		{name: "hostname line", line: "  HostName 1.1.1.1\n", wantIsHeader: false},
		{name: "comment mentioning host", line: "# Host legacy\n", wantIsHeader: false},
		{name: "value containing Host", line: "  LocalCommand echo Host x\n", wantIsHeader: false},
		{name: "blank", line: "\n", wantIsHeader: false},
		{name: "empty", line: "", wantIsHeader: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotName, gotIsHeader := parseHostLine(tt.line)
			if gotIsHeader != tt.wantIsHeader {
				t.Errorf("parseHostLine(%q) isHeader = %v, want %v", tt.line, gotIsHeader, tt.wantIsHeader)
			}
			if gotName != tt.wantName {
				t.Errorf("parseHostLine(%q) name = %q, want %q", tt.line, gotName, tt.wantName)
			}
		})
	}
}

func TestEachLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty input", input: "", want: nil},
		{name: "terminated lines", input: "a\nb\n", want: []string{"a\n", "b\n"}},
		{name: "missing final newline", input: "a\nb", want: []string{"a\n", "b"}},
		{name: "blank lines kept", input: "\n\na\n", want: []string{"\n", "\n", "a\n"}},
		{name: "crlf kept", input: "a\r\nb\r\n", want: []string{"a\r\n", "b\r\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			if err := eachLine(strings.NewReader(tt.input), func(line string) { got = append(got, line) }); err != nil {
				t.Fatalf("eachLine() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("eachLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBlockScanner(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		target      string
		want        string
		wantDropped bool
	}{
		{
			name:        "first block without leading blank",
			input:       "Host a\n  HostName 1.1.1.1\n  User x\n\nHost b\n  HostName 2.2.2.2\n  User y\n",
			target:      "a",
			want:        "Host b\n  HostName 2.2.2.2\n  User y\n",
			wantDropped: true,
		},
		{
			name:        "last block leaves no trailing blank",
			input:       "Host a\n  HostName 1.1.1.1\n  User x\n\nHost b\n  HostName 2.2.2.2\n  User y\n",
			target:      "b",
			want:        "Host a\n  HostName 1.1.1.1\n  User x\n",
			wantDropped: true,
		},
		{
			name:        "middle block keeps one separator",
			input:       "\nHost a\n  User x\n\nHost b\n  User y\n\nHost c\n  User z\n",
			target:      "b",
			want:        "\nHost a\n  User x\n\nHost c\n  User z\n",
			wantDropped: true,
		},
		{
			name:        "shared prefix untouched",
			input:       "Host prod\n  User a\n\nHost prod2\n  User b\n\nHost production\n  User c\n",
			target:      "prod",
			want:        "Host prod2\n  User b\n\nHost production\n  User c\n",
			wantDropped: true,
		},
		{
			name:        "longer name with shared prefix removed alone",
			input:       "Host prod\n  User a\n\nHost prod2\n  User b\n",
			target:      "prod2",
			want:        "Host prod\n  User a\n",
			wantDropped: true,
		},
		{
			name:        "every occurrence removed",
			input:       "Host a\n  User x\n\nHost b\n  User y\n\nHost a\n  Port 22\n",
			target:      "a",
			want:        "Host b\n  User y\n",
			wantDropped: true,
		},
		{
			name:        "header only block",
			input:       "Host a\nHost b\n  User y\n",
			target:      "a",
			want:        "Host b\n  User y\n",
			wantDropped: true,
		},
		{
			name:        "free lines before first block preserved",
			input:       "# managed by hand\nServerAliveInterval 30\n\nHost a\n  User x\n",
			target:      "a",
			want:        "# managed by hand\nServerAliveInterval 30\n",
			wantDropped: true,
		},
		{
			name:        "only one separator consumed",
			input:       "Host a\n  User x\n\n\nHost b\n  User y\n",
			target:      "b",
			want:        "Host a\n  User x\n\n",
			wantDropped: true,
		},
		{
			name:        "comment mentioning target is not a boundary",
			input:       "Host a\n  User x\n# Host b was retired\n",
			target:      "b",
			want:        "Host a\n  User x\n# Host b was retired\n",
			wantDropped: false,
		},
		{
			name:        "absent target copies everything",
			input:       "\nHost a\n  User x\n\n",
			target:      "ghost",
			want:        "\nHost a\n  User x\n\n",
			wantDropped: false,
		},
		{
			name:        "no trailing newline on untouched content",
			input:       "Host a\n  User x\n\nHost b\n  User y",
			target:      "a",
			want:        "Host b\n  User y",
			wantDropped: true,
		},
		{
			name:        "crlf file",
			input:       "Host a\r\n  User x\r\n\r\nHost b\r\n  User y\r\n",
			target:      "b",
			want:        "Host a\r\n  User x\r\n",
			wantDropped: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			scanner := newBlockScanner(tt.target, &out)
			if err := eachLine(strings.NewReader(tt.input), scanner.feed); err != nil {
				t.Fatalf("eachLine() error = %v", err)
			}
			if err := scanner.finish(); err != nil {
				t.Fatalf("finish() error = %v", err)
			}

			if got := out.String(); got != tt.want {
				t.Errorf("scanner output = %q, want %q", got, tt.want)
			}
			if (scanner.dropped > 0) != tt.wantDropped {
				t.Errorf("scanner dropped = %d, wantDropped %v", scanner.dropped, tt.wantDropped)
			}
		})
	}
}

func TestBlockScanner_AddThenRemoveIsExact(t *testing.T) {
	files := []string{
		"",
		"Host a\n  HostName 1.1.1.1\n  User x\n",
		"Host a\n  User x\n\n",
		"\nHost a\n  User x\n\nHost b\n  User y\n",
		"# only comments\n",
		"Host prod2\n  User b\n",
	}
	block := "\nHost prod\n  HostName 3.3.3.3\n  User z\n  Port 2222\n"

	for _, original := range files {
		t.Run(original, func(t *testing.T) {
			var out bytes.Buffer
			scanner := newBlockScanner("prod", &out)
			if err := eachLine(strings.NewReader(original+block), scanner.feed); err != nil {
				t.Fatalf("eachLine() error = %v", err)
			}
			if err := scanner.finish(); err != nil {
				t.Fatalf("finish() error = %v", err)
			}
			if got := out.String(); got != original {
				t.Errorf("add then remove = %q, want %q", got, original)
			}
		})
	}
}

func TestToUserFriendlyPath(t *testing.T) {
	currentUser, err := user.Current()
	if err != nil {
		t.Fatalf("Failed to get current user for testing: %v", err)
	}
	homeDir := currentUser.HomeDir
	if homeDir == "" || homeDir == "/" {
		t.Skip("home directory is not usable for this test")
	}

	tests := []struct {
		name    string
		absPath string
		want    string
	}{
		{name: "path is exactly home directory", absPath: homeDir, want: "~"},
		{name: "ssh config under home", absPath: filepath.Join(homeDir, ".ssh", "config"), want: filepath.Join("~", ".ssh", "config")},
		{name: "path is outside home directory", absPath: "/etc/ssh/ssh_config", want: "/etc/ssh/ssh_config"},
		{name: "sibling sharing the home prefix", absPath: homeDir + "-other/config", want: homeDir + "-other/config"},
		{name: "path is empty", absPath: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toUserFriendlyPath(tt.absPath); got != tt.want {
				t.Errorf("toUserFriendlyPath(%q) = %q, want %q", tt.absPath, got, tt.want)
			}
		})
	}
}
