package prolog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// ErrEngineUnavailable is returned when the Prolog binary cannot be found.
var ErrEngineUnavailable = errors.New("prolog engine unavailable")

const (
	DefaultBinary  = "swipl"
	DefaultTimeout = 10 * time.Second
)

// Runner executes a complete Prolog program and returns its standard output.
type Runner interface {
	Run(ctx context.Context, program string) (string, error)
}

// ExecRunner runs programs through an external SWI-Prolog process.
type ExecRunner struct {
	Binary  string
	Timeout time.Duration
}

func NewExecRunner(binary string, timeout time.Duration) *ExecRunner {
	if binary == "" {
		binary = DefaultBinary
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &ExecRunner{Binary: binary, Timeout: timeout}
}

func (r *ExecRunner) Run(ctx context.Context, program string) (string, error) {
	f, err := os.CreateTemp("", "enquete-*.pl")
	if err != nil {
		return "", fmt.Errorf("create program file: %w", err)
	}
	defer os.Remove(f.Name())

	if _, err := f.WriteString(program); err != nil {
		f.Close()
		return "", fmt.Errorf("write program file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close program file: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.Binary, "-q", "-t", "halt", "-s", f.Name())
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%w: %s", ErrEngineUnavailable, r.Binary)
		}
		if ctx.Err() != nil {
			return "", fmt.Errorf("%s: %w", r.Binary, ctx.Err())
		}
		return "", fmt.Errorf("%s: %w: %s", r.Binary, err, strings.TrimSpace(stderr.String()))
	}

	return stdout.String(), nil
}
