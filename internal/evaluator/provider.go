package evaluator

import (
	"fmt"
	"time"

	"github.com/adrienfranto/ia-enquete-policie/internal/cache"
	"github.com/adrienfranto/ia-enquete-policie/internal/domain"
	"github.com/adrienfranto/ia-enquete-policie/internal/engine"
	"github.com/adrienfranto/ia-enquete-policie/internal/prolog"
	"go.uber.org/zap"
)

// Provider constants
const (
	ProviderEmbedded = "embedded"
	ProviderProlog   = "prolog"
)

type Options struct {
	PrologBinary  string
	PrologTimeout time.Duration
	// CacheTTL wraps the evaluator in a verdict cache when positive.
	CacheTTL time.Duration
}

// New creates an evaluator for the named provider over the default case file.
func New(provider string, opts Options, logger *zap.Logger) (domain.Evaluator, error) {
	return NewWithEngine(provider, engine.Default(), opts, logger)
}

// NewWithEngine is New over a caller-supplied engine.
func NewWithEngine(provider string, eng *engine.Engine, opts Options, logger *zap.Logger) (domain.Evaluator, error) {
	var ev domain.Evaluator

	switch provider {
	case ProviderEmbedded, "":
		ev = eng

	case ProviderProlog:
		runner := prolog.NewExecRunner(opts.PrologBinary, opts.PrologTimeout)
		ev = prolog.NewEvaluator(runner, eng, logger)

	default:
		return nil, fmt.Errorf("unknown evaluator: %s (valid options: embedded, prolog)", provider)
	}

	if opts.CacheTTL > 0 {
		ev = cache.NewVerdictCache(ev, opts.CacheTTL, 2*opts.CacheTTL)
	}
	return ev, nil
}

// Ensure evaluators satisfy domain.Evaluator at compile time.
var (
	_ domain.Evaluator = (*engine.Engine)(nil)
	_ domain.Evaluator = (*prolog.Evaluator)(nil)
	_ domain.Evaluator = (*cache.VerdictCache)(nil)
)
