package knowledge

import (
	"github.com/adrienfranto/ia-enquete-policie/internal/domain"
)

// Base holds an immutable set of facts together with the suspects and
// crime types they range over. It is safe for concurrent reads.
type Base struct {
	suspects   []domain.Suspect
	crimeTypes []domain.CrimeType
	facts      []domain.Fact
	index      map[domain.Fact]struct{}
}

// New builds a knowledge base. Duplicate facts are kept once.
func New(suspects []domain.Suspect, crimeTypes []domain.CrimeType, facts []domain.Fact) *Base {
	b := &Base{
		suspects:   append([]domain.Suspect{}, suspects...),
		crimeTypes: append([]domain.CrimeType{}, crimeTypes...),
		index:      make(map[domain.Fact]struct{}, len(facts)),
	}
	for _, f := range facts {
		if _, dup := b.index[f]; dup {
			continue
		}
		b.index[f] = struct{}{}
		b.facts = append(b.facts, f)
	}
	return b
}

func (b *Base) HasFact(kind domain.EvidenceKind, suspect domain.Suspect, crime domain.CrimeType) bool {
	_, ok := b.index[domain.Fact{Kind: kind, Suspect: suspect, Crime: crime}]
	return ok
}

// FactsFor returns the evidence kinds asserted for the pair, in
// domain.EvidenceKinds order. The result is never nil.
func (b *Base) FactsFor(suspect domain.Suspect, crime domain.CrimeType) []domain.EvidenceKind {
	kinds := []domain.EvidenceKind{}
	for _, k := range domain.EvidenceKinds {
		if b.HasFact(k, suspect, crime) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

func (b *Base) Suspects() []domain.Suspect {
	return append([]domain.Suspect{}, b.suspects...)
}

func (b *Base) CrimeTypes() []domain.CrimeType {
	return append([]domain.CrimeType{}, b.crimeTypes...)
}

// Facts returns every fact in declaration order.
func (b *Base) Facts() []domain.Fact {
	return append([]domain.Fact{}, b.facts...)
}

func (b *Base) IsSuspect(s domain.Suspect) bool {
	for _, known := range b.suspects {
		if known == s {
			return true
		}
	}
	return false
}

func (b *Base) IsCrimeType(c domain.CrimeType) bool {
	for _, known := range b.crimeTypes {
		if known == c {
			return true
		}
	}
	return false
}
