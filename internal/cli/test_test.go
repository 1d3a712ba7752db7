package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestCommandPassingSuite(t *testing.T) {
	out, err := execute(t, "", "test", "testdata/passing_suite.yaml")
	require.NoError(t, err)

	assert.Contains(t, out, "PASS rel")
	assert.Contains(t, out, "PASS scalar")
	assert.Contains(t, out, "PASS rejected")
	assert.Contains(t, out, "cli passing: 3/3 passed")
}

func TestTestCommandFailingSuite(t *testing.T) {
	out, err := execute(t, "", "test", "testdata/failing_suite.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	assert.Contains(t, out, "FAIL wrong shape")
	assert.Contains(t, out, "expected find kind tuple")
	assert.Contains(t, out, "cli failing: 0/1 passed")
}

func TestTestCommandMissingSuite(t *testing.T) {
	out, err := execute(t, "", "test", "testdata/no_such_suite.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "SUITE")
}

func TestTestCommandJSON(t *testing.T) {
	out, err := execute(t, "", "--format", "json", "test", "testdata/passing_suite.yaml")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "cli passing", data["suite"])
}
