package prolog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/adrienfranto/ia-enquete-policie/internal/domain"
	"github.com/adrienfranto/ia-enquete-policie/internal/engine"
	"go.uber.org/zap"
)

// Name identifies verdicts produced by the external engine.
const Name = "prolog"

var ErrMalformedOutput = errors.New("malformed prolog output")

// Evaluator delegates guilt queries to an external Prolog engine. When the
// engine is not installed it answers from the in-process engine instead.
type Evaluator struct {
	runner   Runner
	program  string
	fallback *engine.Engine
	logger   *zap.Logger
}

// NewEvaluator renders eng's knowledge base and rules once; eng also serves
// as the fallback.
func NewEvaluator(runner Runner, eng *engine.Engine, logger *zap.Logger) *Evaluator {
	return &Evaluator{
		runner:   runner,
		program:  Program(eng.KnowledgeBase(), eng.Rules()),
		fallback: eng,
		logger:   logger,
	}
}

func (e *Evaluator) Program() string {
	return e.program
}

func (e *Evaluator) Verdict(ctx context.Context, suspect domain.Suspect, crime domain.CrimeType) (*domain.Verdict, error) {
	out, err := e.runner.Run(ctx, e.program+"\n"+verdictGoal(suspect, crime))
	if err != nil {
		if errors.Is(err, ErrEngineUnavailable) {
			e.logger.Warn("prolog engine unavailable, using embedded evaluator", zap.Error(err))
			return e.fallback.Verdict(ctx, suspect, crime)
		}
		return nil, fmt.Errorf("evaluate %s/%s: %w", suspect, crime, err)
	}

	lines := outputLines(out)
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: %q", ErrMalformedOutput, out)
	}
	guilty, err := parseBool(lines[0])
	if err != nil {
		return nil, err
	}
	innocent, err := parseBool(lines[1])
	if err != nil {
		return nil, err
	}

	evidence := []domain.EvidenceKind{}
	if len(lines) > 2 {
		for _, item := range splitList(lines[2]) {
			evidence = append(evidence, domain.EvidenceKind(item))
		}
	}

	return &domain.Verdict{
		Suspect:   suspect,
		CrimeType: crime,
		Guilty:    guilty,
		Innocent:  innocent,
		Evidence:  evidence,
		Engine:    Name,
	}, nil
}

func (e *Evaluator) GuiltySuspects(ctx context.Context, crime domain.CrimeType) ([]domain.Suspect, error) {
	out, err := e.runner.Run(ctx, e.program+"\n"+guiltySuspectsGoal(crime))
	if err != nil {
		if errors.Is(err, ErrEngineUnavailable) {
			e.logger.Warn("prolog engine unavailable, using embedded evaluator", zap.Error(err))
			return e.fallback.GuiltySuspects(ctx, crime)
		}
		return nil, fmt.Errorf("guilty suspects %s: %w", crime, err)
	}

	suspects := []domain.Suspect{}
	lines := outputLines(out)
	if len(lines) == 0 {
		return suspects, nil
	}
	seen := make(map[domain.Suspect]bool)
	for _, item := range splitList(lines[0]) {
		s := domain.Suspect(item)
		if seen[s] {
			continue
		}
		seen[s] = true
		suspects = append(suspects, s)
	}
	return suspects, nil
}

func outputLines(out string) []string {
	out = strings.TrimSpace(strings.ReplaceAll(out, "\r\n", "\n"))
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func parseBool(s string) (bool, error) {
	switch strings.TrimSpace(s) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("%w: expected true or false, got %q", ErrMalformedOutput, s)
}

func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
