package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGuilty_Text(t *testing.T) {
	out, err := run(t, "guilty", "John", "vol")

	require.NoError(t, err)
	assert.Equal(t, "john / theft: GUILTY\nevidence: motive, near_scene, fingerprints\n", out)
}

func TestGuilty_NotGuilty(t *testing.T) {
	out, err := run(t, "guilty", "bruno", "fraud")

	require.NoError(t, err)
	assert.Equal(t, "bruno / fraud: not guilty\nevidence: bank_transaction\n", out)
}

func TestGuilty_JSON(t *testing.T) {
	out, err := run(t, "guilty", "mary", "murder", "-o", "json")
	require.NoError(t, err)

	var v verdictOutput
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.True(t, v.Guilty)
	assert.Equal(t, []string{"motive", "near_scene", "fingerprints", "eyewitness"}, v.Evidence)
	assert.Equal(t, "embedded", v.Engine)
}

func TestAllGuilty_YAML(t *testing.T) {
	out, err := run(t, "all-guilty", "fraud", "--output", "yaml")
	require.NoError(t, err)

	var v allGuiltyOutput
	require.NoError(t, yaml.Unmarshal([]byte(out), &v))
	assert.Equal(t, "fraud", v.CrimeType)
	assert.Equal(t, []string{"alice"}, v.GuiltySuspects)
}

func TestAllGuilty_None(t *testing.T) {
	out, err := run(t, "all-guilty", "arson")

	require.NoError(t, err)
	assert.Equal(t, "arson: no guilty suspects\n", out)
}

func TestUnknownOutputFormat(t *testing.T) {
	_, err := run(t, "all-guilty", "theft", "-o", "xml")
	assert.Error(t, err)
}

func TestUnknownEvaluator(t *testing.T) {
	_, err := run(t, "guilty", "john", "theft", "--evaluator", "datalog")
	assert.Error(t, err)
}

func TestEnvOverridesDefault(t *testing.T) {
	t.Setenv("ENQUETE_OUTPUT", "json")

	out, err := run(t, "all-guilty", "theft")
	require.NoError(t, err)
	assert.Contains(t, out, `"guilty_suspects": [`)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: yaml\n"), 0o600))

	out, err := run(t, "--config", path, "all-guilty", "murder")
	require.NoError(t, err)
	assert.Contains(t, out, "guilty_suspects:\n    - mary")
}

func TestProgram(t *testing.T) {
	out, err := run(t, "program")

	require.NoError(t, err)
	assert.Contains(t, out, "is_guilty(Suspect, 'fraud') :-")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")

	require.NoError(t, err)
	assert.Equal(t, "investigate dev (unknown)\n", out)
}
