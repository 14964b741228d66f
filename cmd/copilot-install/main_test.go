package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMainVersion(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, execute([]string{"copilot-install", "--version"}, &out, &out))
	assert.Contains(t, out.String(), Version)
}

func TestMainUnknownCommand(t *testing.T) {
	var out bytes.Buffer
	err := execute([]string{"copilot-install", "unknown"}, &out, &out)
	require.Error(t, err)
}

func TestMainNoArgsPrintsHelp(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, execute([]string{"copilot-install"}, &out, &out))
	assert.Contains(t, out.String(), "post-install")
	assert.Contains(t, out.String(), "post-update")
}

func TestRunMainSuccess(t *testing.T) {
	var out bytes.Buffer
	called := false
	runMain([]string{"copilot-install", "--version"}, &out, &out, func(int) { called = true })
	assert.False(t, called, "unexpected exit")
}

func TestRunMainError(t *testing.T) {
	var out bytes.Buffer
	code := 0
	runMain([]string{"copilot-install", "unknown"}, &out, &out, func(exitCode int) { code = exitCode })
	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "unknown command")
}

func TestRunMainExecuteError(t *testing.T) {
	orig := executeFunc
	t.Cleanup(func() { executeFunc = orig })
	executeFunc = func([]string, io.Writer, io.Writer) error { return errors.New("boom") }

	var out bytes.Buffer
	code := 0
	runMain([]string{"copilot-install"}, &out, &out, func(c int) { code = c })
	assert.Equal(t, 1, code)
	assert.Equal(t, "boom\n", out.String())
}

func TestMainCallsExecute(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	os.Args = []string{"copilot-install", "--version"}
	main()
}

func TestVersionString(t *testing.T) {
	origVersion, origCommit, origBuild := Version, Commit, BuildDate
	t.Cleanup(func() {
		Version, Commit, BuildDate = origVersion, origCommit, origBuild
	})

	Version, Commit, BuildDate = "v1.2.3", "unknown", "unknown"
	assert.Equal(t, "v1.2.3", versionString())

	Commit, BuildDate = "abc123", "2024-05-01"
	got := versionString()
	assert.True(t, strings.HasPrefix(got, "v1.2.3 ("))
	assert.Contains(t, got, "commit abc123")
	assert.Contains(t, got, "built 2024-05-01")
}
