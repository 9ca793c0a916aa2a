package engine

import (
	"strings"

	"github.com/adrienfranto/ia-enquete-policie/internal/domain"
)

// Expr is a boolean formula over the presence of evidence kinds.
type Expr interface {
	// Eval reports whether the formula holds. has is consulted lazily and
	// evaluation stops as soon as the result is known.
	Eval(has func(domain.EvidenceKind) bool) bool

	// Kinds returns every evidence kind the formula mentions, in order of
	// appearance.
	Kinds() []domain.EvidenceKind

	String() string
}

// Has holds when a fact of the given kind exists.
type Has domain.EvidenceKind

func (h Has) Eval(has func(domain.EvidenceKind) bool) bool {
	return has(domain.EvidenceKind(h))
}

func (h Has) Kinds() []domain.EvidenceKind {
	return []domain.EvidenceKind{domain.EvidenceKind(h)}
}

func (h Has) String() string {
	return string(h)
}

// All is a conjunction. An empty All holds.
type All []Expr

func (a All) Eval(has func(domain.EvidenceKind) bool) bool {
	for _, e := range a {
		if !e.Eval(has) {
			return false
		}
	}
	return true
}

func (a All) Kinds() []domain.EvidenceKind {
	return collectKinds(a)
}

func (a All) String() string {
	return join(a, " ∧ ")
}

// Any is a disjunction. An empty Any does not hold.
type Any []Expr

func (a Any) Eval(has func(domain.EvidenceKind) bool) bool {
	for _, e := range a {
		if e.Eval(has) {
			return true
		}
	}
	return false
}

func (a Any) Kinds() []domain.EvidenceKind {
	return collectKinds(a)
}

func (a Any) String() string {
	return "(" + join(a, " ∨ ") + ")"
}

func collectKinds(exprs []Expr) []domain.EvidenceKind {
	var kinds []domain.EvidenceKind
	seen := make(map[domain.EvidenceKind]bool)
	for _, e := range exprs {
		for _, k := range e.Kinds() {
			if !seen[k] {
				seen[k] = true
				kinds = append(kinds, k)
			}
		}
	}
	return kinds
}

func join(exprs []Expr, sep string) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, sep)
}

// Rules maps each crime type to its guilt formula.
type Rules map[domain.CrimeType]Expr

// DefaultRules returns the guilt rules of the case file.
func DefaultRules() Rules {
	return Rules{
		domain.CrimeTypeTheft: All{
			Has(domain.EvidenceMotive),
			Has(domain.EvidenceNearScene),
			Has(domain.EvidenceFingerprints),
		},
		domain.CrimeTypeMurder: All{
			Has(domain.EvidenceMotive),
			Has(domain.EvidenceNearScene),
			Any{Has(domain.EvidenceFingerprints), Has(domain.EvidenceEyewitness)},
		},
		domain.CrimeTypeFraud: All{
			Has(domain.EvidenceMotive),
			Any{Has(domain.EvidenceBankTransaction), Has(domain.EvidenceFakeIdentity)},
		},
	}
}
