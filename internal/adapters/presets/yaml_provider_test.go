package presets

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/AntonioJCosta/sshez/internal/core/ports"
)

func TestNewYAMLProvider(t *testing.T) {
	provider, err := NewYAMLProvider("/tmp/presets.yaml")
	if err != nil {
		t.Errorf("NewYAMLProvider() unexpected error = %v", err)
	}
	if _, ok := provider.(*YAMLProvider); !ok {
		t.Errorf("NewYAMLProvider() did not return a *YAMLProvider, got %T", provider)
	}

	if _, err := NewYAMLProvider(""); err == nil {
		t.Error("NewYAMLProvider(\"\") expected an error for an empty path")
	}
}

func TestYAMLProvider_GetPresets(t *testing.T) {
	validYAML := `
- name: jump
  lines:
    - ProxyJump bastion
- name: keepalive
  lines:
    - ServerAliveInterval 30
    - ServerAliveCountMax 3
`
	expectedValid := []ports.Preset{
		{Name: "jump", Lines: []string{"ProxyJump bastion"}},
		{Name: "keepalive", Lines: []string{"ServerAliveInterval 30", "ServerAliveCountMax 3"}},
	}

	tests := []struct {
		name                string
		content             *string
		wantPresets         []ports.Preset
		wantErr             bool
		wantErrorMsgSnippet string
	}{
		{name: "file does not exist", content: nil, wantPresets: []ports.Preset{}},
		{name: "empty file", content: strp(""), wantPresets: []ports.Preset{}},
		{name: "comments only", content: strp("# no presets yet\n"), wantPresets: []ports.Preset{}},
		{name: "empty YAML list", content: strp("[]"), wantPresets: []ports.Preset{}},
		{name: "valid presets", content: strp(validYAML), wantPresets: expectedValid},
		{
			name:                "unknown field rejected",
			content:             strp("- name: jump\n  command: ssh\n"),
			wantErr:             true,
			wantErrorMsgSnippet: "failed to unmarshal presets",
		},
		{
			name:                "not a list",
			content:             strp("name: jump lines: x"),
			wantErr:             true,
			wantErrorMsgSnippet: "failed to unmarshal presets",
		},
		{
			name:                "preset without name",
			content:             strp("- lines: [\"Port 22\"]\n"),
			wantErr:             true,
			wantErrorMsgSnippet: "has no name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "presets.yaml")
			if tt.content != nil {
				if err := os.WriteFile(path, []byte(*tt.content), 0600); err != nil {
					t.Fatalf("failed to write presets file: %v", err)
				}
			}

			provider, err := NewYAMLProvider(path)
			if err != nil {
				t.Fatalf("NewYAMLProvider() failed unexpectedly: %v", err)
			}

			got, err := provider.GetPresets()

			if (err != nil) != tt.wantErr {
				t.Errorf("GetPresets() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if !strings.Contains(err.Error(), tt.wantErrorMsgSnippet) {
					t.Errorf("GetPresets() error = %q, want error to contain %q", err.Error(), tt.wantErrorMsgSnippet)
				}
				if got != nil {
					t.Errorf("GetPresets() expected nil presets on error, got %#v", got)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.wantPresets) {
				t.Errorf("GetPresets() = %#v, want %#v", got, tt.wantPresets)
			}
		})
	}
}

func TestYAMLProvider_GetPresets_ReadFailure(t *testing.T) {
	// A directory can be stat-ed but not read as a file.
	provider, err := NewYAMLProvider(t.TempDir())
	if err != nil {
		t.Fatalf("NewYAMLProvider() failed unexpectedly: %v", err)
	}
	if _, err := provider.GetPresets(); err == nil || !strings.Contains(err.Error(), "failed to read presets file") {
		t.Errorf("GetPresets() error = %v, want read failure", err)
	}
}

func strp(s string) *string { return &s }
