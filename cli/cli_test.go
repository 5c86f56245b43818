package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardnew/denv/cli/cmd"
	"github.com/ardnew/denv/pkg"
)

// run executes the CLI with args, returning its standard output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	stdout, stderr = &out, &out
	defer func() { stdout, stderr = os.Stdout, os.Stderr }()

	exit := func(code int) { t.Fatalf("exit(%d): %s", code, out.String()) }

	err := Run(context.Background(), exit, args...)

	return out.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestRun_Commands(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".env"), `
export DENV_APP=demo
DENV_DIR=/srv/$DENV_APP
OTHER='x y'
`)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "print",
			args: []string{"-C", dir, "print"},
			want: "DENV_APP='demo'\nDENV_DIR='/srv/demo'\nOTHER='x y'\n",
		},
		{
			name: "print_prefix_json",
			args: []string{"-C", dir, "--prefix", "DENV_", "print", "json", "--indent", "0"},
			want: `{"DENV_APP":"demo","DENV_DIR":"/srv/demo"}` + "\n",
		},
		{
			name: "print_filter",
			args: []string{"-C", dir, "--filter", `value contains " "`, "print", "--export"},
			want: "export OTHER='x y'\n",
		},
		{
			name: "get",
			args: []string{"--dir", dir, "get", "DENV_DIR"},
			want: "/srv/demo\n",
		},
		{
			name: "file_path",
			args: []string{"--file", filepath.Join(dir, ".env"), "get", "OTHER"},
			want: "x y\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			if got != tt.want {
				t.Errorf("Run() output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".env"), "A=1\n")

	_, err := run(t, "-C", dir, "get", "MISSING")
	if !errors.Is(err, cmd.ErrUndefined) {
		t.Errorf("get error = %v, want %v", err, cmd.ErrUndefined)
	}

	_, err = run(t, "-C", dir, "exec")
	if !errors.Is(err, cmd.ErrNoCommand) {
		t.Errorf("exec error = %v, want %v", err, cmd.ErrNoCommand)
	}
}

func TestRun_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".env"), "APP_A=1\nB=2\n")

	conf := configPath(baseConfig)
	writeFile(t, conf, "PREFIX=APP_\n")

	defer os.Remove(conf)

	got, err := run(t, "-C", dir, "print")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if got != "APP_A='1'\n" {
		t.Errorf("Run() output = %q", got)
	}

	// Command-line flags override config file values.
	got, err = run(t, "-C", dir, "--prefix", "B", "print")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if got != "B='2'\n" {
		t.Errorf("Run() output = %q", got)
	}
}

func TestRun_Init(t *testing.T) {
	conf := configPath(baseConfig)
	defer os.Remove(conf)

	if _, err := run(t, "--prefix", "APP_", "--log-level", "info", "init", "--force"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	content, err := os.ReadFile(conf)
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{"PREFIX='APP_'\n", "LOG_LEVEL='info'\n", "FILE='.env'\n"} {
		if !strings.Contains(string(content), want) {
			t.Errorf("config missing %q:\n%s", want, content)
		}
	}

	if !strings.HasPrefix(string(content), "# "+pkg.Name) {
		t.Errorf("config header:\n%s", content)
	}
}
