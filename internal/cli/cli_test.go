package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandUse(t *testing.T) {
	assert.Equal(t, "cstv", rootCmd.Use)
}

func TestRootCommandSilenceFlags(t *testing.T) {
	assert.True(t, rootCmd.SilenceUsage)
	assert.True(t, rootCmd.SilenceErrors)
}

func TestExecuteWithHelp(t *testing.T) {
	rootCmd.SetArgs([]string{"--help"})
	defer rootCmd.SetArgs(nil)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	defer rootCmd.SetOut(nil)

	code := Execute()
	assert.Equal(t, 0, code)
	assert.Contains(t, buf.String(), "cumulative support transfer voting")
}

func TestRunCommandFileFlagShorthand(t *testing.T) {
	flag := runCmd.Flags().Lookup("file")
	require.NotNil(t, flag)
	assert.Equal(t, "f", flag.Shorthand)
}

func TestRunCommandEndToEnd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "election.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"budget": 20,
		"projects": [{"name": "A", "cost": 10}, {"name": "B", "cost": 10}],
		"ballots": [
			{"values": {"A": 5, "B": 5}},
			{"values": {"A": 5, "B": 5}}
		],
		"combination": "EWT"
	}`), 0o644))

	rootCmd.SetArgs([]string{"run", "--file", path})
	defer rootCmd.SetArgs(nil)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	defer rootCmd.SetOut(nil)

	code := Execute()
	require.Equal(t, 0, code)
	assert.Contains(t, buf.String(), "A")
	assert.Contains(t, buf.String(), "B")
}

func TestCompareCommandRunsAllCombinations(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "election.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"budget": 20,
		"projects": [{"name": "A", "cost": 10}, {"name": "B", "cost": 10}],
		"ballots": [
			{"values": {"A": 5, "B": 5}},
			{"values": {"A": 5, "B": 5}}
		],
		"combination": "EWT"
	}`), 0o644))

	rootCmd.SetArgs([]string{"compare", "--file", path})
	defer rootCmd.SetArgs(nil)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	defer rootCmd.SetOut(nil)

	code := Execute()
	require.Equal(t, 0, code)
	for _, name := range []string{"EWT", "EWTC", "EWTS", "MT", "MTC", "MTS"} {
		assert.Contains(t, buf.String(), name)
	}
}

func TestRunCommandRejectsUnknownCombination(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "election.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"budget": 10,
		"projects": [{"name": "A", "cost": 10}],
		"ballots": [{"values": {"A": 10}}],
		"combination": "NOPE"
	}`), 0o644))

	rootCmd.SetArgs([]string{"run", "--file", path})
	defer rootCmd.SetArgs(nil)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}()

	code := Execute()
	assert.Equal(t, 1, code)
}
