package engine

import (
	"context"

	"github.com/adrienfranto/ia-enquete-policie/internal/domain"
	"github.com/adrienfranto/ia-enquete-policie/internal/knowledge"
)

// Name identifies verdicts produced in-process.
const Name = "embedded"

// Engine evaluates guilt rules against a knowledge base. Every method is a
// pure function of the knowledge base and rule table; an Engine may be
// shared between goroutines.
type Engine struct {
	kb    *knowledge.Base
	rules Rules
}

func New(kb *knowledge.Base, rules Rules) *Engine {
	return &Engine{kb: kb, rules: rules}
}

// Default returns an engine over the compiled-in case file.
func Default() *Engine {
	return New(knowledge.Default(), DefaultRules())
}

func (e *Engine) KnowledgeBase() *knowledge.Base {
	return e.kb
}

func (e *Engine) Rules() Rules {
	return e.rules
}

// IsGuilty evaluates the rule for crime over the suspect's facts.
// A crime type without a rule is never proven.
func (e *Engine) IsGuilty(suspect domain.Suspect, crime domain.CrimeType) bool {
	rule, ok := e.rules[crime]
	if !ok {
		return false
	}
	return rule.Eval(func(k domain.EvidenceKind) bool {
		return e.kb.HasFact(k, suspect, crime)
	})
}

// EvidenceAgainst lists every evidence kind on file for the pair, whether
// or not it is enough to convict.
func (e *Engine) EvidenceAgainst(suspect domain.Suspect, crime domain.CrimeType) []domain.EvidenceKind {
	return e.kb.FactsFor(suspect, crime)
}

// AllGuilty returns the guilty suspects in knowledge base order.
func (e *Engine) AllGuilty(crime domain.CrimeType) []domain.Suspect {
	guilty := []domain.Suspect{}
	if _, ok := e.rules[crime]; !ok {
		return guilty
	}
	for _, s := range e.kb.Suspects() {
		if e.IsGuilty(s, crime) {
			guilty = append(guilty, s)
		}
	}
	return guilty
}

// IsInnocent holds for a known suspect and crime type when guilt cannot
// be proven. Unknown names are neither guilty nor innocent.
func (e *Engine) IsInnocent(suspect domain.Suspect, crime domain.CrimeType) bool {
	return e.kb.IsSuspect(suspect) && e.kb.IsCrimeType(crime) && !e.IsGuilty(suspect, crime)
}

// Verdict implements domain.Evaluator.
func (e *Engine) Verdict(_ context.Context, suspect domain.Suspect, crime domain.CrimeType) (*domain.Verdict, error) {
	return &domain.Verdict{
		Suspect:   suspect,
		CrimeType: crime,
		Guilty:    e.IsGuilty(suspect, crime),
		Innocent:  e.IsInnocent(suspect, crime),
		Evidence:  e.EvidenceAgainst(suspect, crime),
		Engine:    Name,
	}, nil
}

// GuiltySuspects implements domain.Evaluator.
func (e *Engine) GuiltySuspects(_ context.Context, crime domain.CrimeType) ([]domain.Suspect, error) {
	return e.AllGuilty(crime), nil
}
