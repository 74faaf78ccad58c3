package oscommand

import (
	"reflect"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
)

func newTestLauncher(configFile string, lookErr, execErr error) (*SSHLauncher, *[]string) {
	var gotArgv []string
	l := &SSHLauncher{
		configFile: configFile,
		lookPath: func(file string) (string, error) {
			if lookErr != nil {
				return "", lookErr
			}
			return "/usr/bin/" + file, nil
		},
		exec: func(argv0 string, argv []string, envv []string) error {
			gotArgv = append([]string{argv0}, argv...)
			return execErr
		},
		environ: func() []string { return []string{"TERM=xterm"} },
	}
	return l, &gotArgv
}

func TestNewSSHLauncher(t *testing.T) {
	launcher := NewSSHLauncher("")
	if _, ok := launcher.(*SSHLauncher); !ok {
		t.Errorf("NewSSHLauncher() did not return a *SSHLauncher, got %T", launcher)
	}
}

func TestSSHLauncher_Connect(t *testing.T) {
	tests := []struct {
		name       string
		configFile string
		lookErr    error
		execErr    error
		wantArgv   []string
		wantErrMsg string
	}{
		{
			name:     "default config",
			wantArgv: []string{"/usr/bin/ssh", "ssh", "prod"},
		},
		{
			name:       "custom config passed with -F",
			configFile: "/home/me/.ssh/work",
			wantArgv:   []string{"/usr/bin/ssh", "ssh", "-F", "/home/me/.ssh/work", "prod"},
		},
		{
			name:       "ssh missing",
			lookErr:    errors.New("executable file not found in $PATH"),
			wantErrMsg: "ssh client not found",
		},
		{
			name:       "exec refused",
			execErr:    errors.New("permission denied"),
			wantArgv:   []string{"/usr/bin/ssh", "ssh", "prod"},
			wantErrMsg: "exec /usr/bin/ssh",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, gotArgv := newTestLauncher(tt.configFile, tt.lookErr, tt.execErr)

			err := l.Connect("prod")

			if tt.wantErrMsg == "" && err != nil {
				t.Fatalf("Connect() unexpected error = %v", err)
			}
			if tt.wantErrMsg != "" && (err == nil || !strings.Contains(err.Error(), tt.wantErrMsg)) {
				t.Errorf("Connect() error = %v, want it to contain %q", err, tt.wantErrMsg)
			}
			if !reflect.DeepEqual(*gotArgv, tt.wantArgv) {
				t.Errorf("exec argv = %v, want %v", *gotArgv, tt.wantArgv)
			}
		})
	}
}
