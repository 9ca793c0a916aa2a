package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Verdict is the outcome of evaluating one suspect against one crime type.
type Verdict struct {
	Suspect   Suspect        `json:"suspect"`
	CrimeType CrimeType      `json:"crime_type"`
	Guilty    bool           `json:"guilty"`
	Innocent  bool           `json:"innocent"`
	Evidence  []EvidenceKind `json:"evidence"`
	Engine    string         `json:"engine"`
}

// Clone returns a deep copy so cached verdicts cannot be mutated by callers.
func (v *Verdict) Clone() *Verdict {
	c := *v
	c.Evidence = append([]EvidenceKind{}, v.Evidence...)
	return &c
}

// Evaluator answers guilt queries. Implementations must be safe for
// concurrent use.
type Evaluator interface {
	Verdict(ctx context.Context, suspect Suspect, crime CrimeType) (*Verdict, error)
	GuiltySuspects(ctx context.Context, crime CrimeType) ([]Suspect, error)
}

// Investigation is the audit record of one answered request.
type Investigation struct {
	ID        uuid.UUID      `json:"id"`
	RequestID string         `json:"request_id,omitempty"`
	Suspect   Suspect        `json:"suspect"`
	CrimeType CrimeType      `json:"crime_type"`
	Guilty    bool           `json:"guilty"`
	Evidence  []EvidenceKind `json:"evidence"`
	Engine    string         `json:"engine"`
	CreatedAt time.Time      `json:"created_at"`
}
