package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Text(t *testing.T) {
	out, err := execute(t, "validate", scenarioPath("smoke.yaml"), scenarioPath("failing.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "smoke (10 cases)")
	assert.Contains(t, out, "failing (1 cases)")
}

func TestValidate_JSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "validate", scenarioPath("smoke.yaml"))
	require.NoError(t, err)

	var resp struct {
		Status string           `json:"status"`
		Data   ValidationResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.True(t, resp.Data.Valid)
	require.Len(t, resp.Data.Scenarios, 1)
	assert.Equal(t, 10, resp.Data.Scenarios[0].Cases)
}

func TestValidate_MissingFile(t *testing.T) {
	_, err := execute(t, "validate", scenarioPath("absent.yaml"))
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
