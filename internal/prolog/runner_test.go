package prolog

import (
	"context"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExecRunner_Defaults(t *testing.T) {
	r := NewExecRunner("", 0)

	assert.Equal(t, DefaultBinary, r.Binary)
	assert.Equal(t, DefaultTimeout, r.Timeout)
}

func TestExecRunner_MissingBinary(t *testing.T) {
	r := NewExecRunner("enquete-no-such-prolog-binary", time.Second)

	_, err := r.Run(context.Background(), "suspect(john).\n")
	assert.ErrorIs(t, err, ErrEngineUnavailable)
}

func TestExecRunner_PassesProgramFile(t *testing.T) {
	if _, err := exec.LookPath("echo"); err != nil {
		t.Skip("echo not available")
	}
	r := NewExecRunner("echo", time.Second)

	out, err := r.Run(context.Background(), "suspect(john).\n")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "-q -t halt -s "))
	assert.Contains(t, out, ".pl")
}

func TestExecRunner_NonZeroExit(t *testing.T) {
	if _, err := exec.LookPath("false"); err != nil {
		t.Skip("false not available")
	}
	r := NewExecRunner("false", time.Second)

	_, err := r.Run(context.Background(), "suspect(john).\n")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEngineUnavailable)
}
