package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/yuekcc/init-nodejs-project/internal/defs"
	"github.com/yuekcc/init-nodejs-project/pkg/version"
)

// isolateEnv keeps the user's environment and defaults file out of a test.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	unsetenv(t, defs.EnvAuthor)
	unsetenv(t, defs.EnvVersion)
	t.Setenv("NO_COLOR", "1")
}

// unsetenv removes key for the duration of the test.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatal(err)
	}
}

// executeCmd runs a fresh command tree with args and returns stdout and stderr.
func executeCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestRootCmd_Use(t *testing.T) {
	cmd := NewRootCmd()
	if cmd.Name() != defs.AppName {
		t.Errorf("Name() = %q, want %q", cmd.Name(), defs.AppName)
	}
	if cmd.Short == "" || cmd.Long == "" {
		t.Error("root command should have Short and Long help")
	}
}

func TestRootCmd_HasFlags(t *testing.T) {
	cmd := NewRootCmd()
	flags := map[string]string{
		"author":      "a",
		"private":     "p",
		"name":        "n",
		"interactive": "i",
		"pkg-version": "",
		"vue":         "",
		"typescript":  "",
		"git":         "",
		"force":       "",
		"dry-run":     "",
		"config":      "",
		"verbose":     "",
	}
	for name, short := range flags {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			f = cmd.PersistentFlags().Lookup(name)
		}
		if f == nil {
			t.Errorf("root command should have --%s flag", name)
			continue
		}
		if f.Shorthand != short {
			t.Errorf("--%s shorthand = %q, want %q", name, f.Shorthand, short)
		}
	}
}

func TestRootCmd_Version(t *testing.T) {
	for _, arg := range []string{"--version", "-v"} {
		t.Run(arg, func(t *testing.T) {
			isolateEnv(t)
			out, _, err := executeCmd(t, arg)
			if err != nil {
				t.Fatalf("execute error: %v", err)
			}
			if want := version.GetShortVersion() + "\n"; out != want {
				t.Errorf("output = %q, want %q", out, want)
			}
		})
	}
}

func TestRootCmd_Help(t *testing.T) {
	isolateEnv(t)
	out, _, err := executeCmd(t, "-h")
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	for _, want := range []string{"--author", "--private", "--name", "--vue", defs.EnvAuthor, "Optional features: vue, typescript."} {
		if !strings.Contains(out, want) {
			t.Errorf("help output missing %q", want)
		}
	}
}

func TestRootCmd_TooManyArgs(t *testing.T) {
	isolateEnv(t)
	t.Chdir(t.TempDir())
	if _, _, err := executeCmd(t, "one", "two"); err == nil {
		t.Error("expected error for two positional arguments")
	}
}

func TestFormatError(t *testing.T) {
	got := formatError(errors.New("write /tmp/x/package.json: file exists"))
	if !strings.Contains(got, "Error: write /tmp/x/package.json: file exists") {
		t.Errorf("formatError() = %q", got)
	}
	if strings.Contains(got, "\n") {
		t.Errorf("formatError() should be a single line: %q", got)
	}
}
