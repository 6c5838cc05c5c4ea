package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioPath(name string) string {
	return filepath.Join("..", "..", "scenario", "testdata", name)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRun_Smoke(t *testing.T) {
	out, err := execute(t, "run", scenarioPath("smoke.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "scenario smoke (run golden-run)")
	assert.Contains(t, out, "10 passed, 0 failed")
}

func TestRun_FailingExitsOne(t *testing.T) {
	out, err := execute(t, "run", scenarioPath("smoke.yaml"), scenarioPath("failing.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "10 passed, 0 failed")
	assert.Contains(t, out, "FAIL wrong code [Addition]")
}

func TestRun_JSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "run", scenarioPath("smoke.yaml"))
	require.NoError(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   []struct {
			Scenario string `json:"scenario"`
			Results  []struct {
				Pass bool `json:"pass"`
			} `json:"results"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "smoke", resp.Data[0].Scenario)
	assert.Len(t, resp.Data[0].Results, 10)
}

func TestRun_RunIDFlag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "s.yaml")
	doc := "name: s\ncases:\n  - {name: a, op: t, m: {rows: 1, cols: 1}, out: {rows: 1, cols: 1}}\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	out, err := execute(t, "run", "--run-id", "pinned", path)
	require.NoError(t, err)
	assert.Contains(t, out, "scenario s (run pinned)")
}

func TestRun_MissingFileExitsTwo(t *testing.T) {
	out, err := execute(t, "run", scenarioPath("absent.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E001]")
}

func TestRun_InvalidFileExitsOne(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: bad\ncases: []\n"), 0o600))

	out, err := execute(t, "run", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Error [E002]")
}

func TestRun_RequiresArgs(t *testing.T) {
	_, err := execute(t, "run")
	require.Error(t, err)
}
