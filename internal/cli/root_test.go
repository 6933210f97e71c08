package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccollicutt/minigrep/internal/cli/commands"
)

func noEnv(string) (string, bool) { return "", false }

func TestRun_Success(t *testing.T) {
	path := filepath.Join(t.TempDir(), "poem.txt")
	require.NoError(t, os.WriteFile(path, []byte("Rust:\nsafe, fast, productive.\nPick three."), 0644))

	var stdout, stderr bytes.Buffer
	code := Run([]string{"duct", path}, &stdout, &stderr, noEnv)

	assert.Equal(t, 0, code)
	assert.Equal(t, "safe, fast, productive.\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRun_MissingQuery(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run(nil, &stdout, &stderr, noEnv)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Equal(t, "Error: parsing arguments: didn't get a query string\n", stderr.String())
}

func TestRun_MissingFilePath(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"query"}, &stdout, &stderr, noEnv)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "didn't get a file path")
}

func TestRun_UnreadableFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")

	var stdout, stderr bytes.Buffer
	code := Run([]string{"query", missing}, &stdout, &stderr, noEnv)

	assert.Equal(t, 1, code)
	assert.True(t, strings.HasPrefix(stderr.String(), "Error: reading "+missing))
}

func TestRun_DashPrefixedQueries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flags.txt")
	require.NoError(t, os.WriteFile(path, []byte("grep -x matches whole lines\ngrep -v inverts\nstop at --\n"), 0644))

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"-x", path}, "grep -x matches whole lines\n"},
		{[]string{"-v", path}, "grep -v inverts\n"},
		{[]string{"--", path, "ignored"}, "stop at --\n"},
		{[]string{"--bogus", path}, ""},
	}

	for _, tt := range tests {
		var stdout, stderr bytes.Buffer
		code := Run(tt.args, &stdout, &stderr, noEnv)

		assert.Equal(t, 0, code, "args %v: stderr %s", tt.args, stderr.String())
		assert.Equal(t, tt.want, stdout.String(), "args %v", tt.args)
	}
}

func TestRun_BadFlagValue(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"--log-level", "loud", "q", "f"}, &stdout, &stderr, noEnv)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Error:")
}

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"--version"}, &stdout, &stderr, noEnv)

	assert.Equal(t, 0, code)
	assert.Equal(t, "minigrep "+commands.Version+"\n", stdout.String())
}

func TestRun_HelpIsAQuery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("get help\nno match\n"), 0644))

	var stdout, stderr bytes.Buffer
	code := Run([]string{"help", path}, &stdout, &stderr, noEnv)

	assert.Equal(t, 0, code)
	assert.Equal(t, "get help\n", stdout.String())
}

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand(nil)

	assert.Equal(t, "minigrep", cmd.Name())
	assert.False(t, cmd.HasSubCommands())
	assert.NotNil(t, cmd.Flags().Lookup("config"))
}
