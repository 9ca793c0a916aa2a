package service

import (
	"context"
	"errors"
	"strings"

	"github.com/adrienfranto/ia-enquete-policie/internal/domain"
	"github.com/adrienfranto/ia-enquete-policie/internal/knowledge"
	"go.uber.org/zap"
)

var (
	ErrSuspectRequired   = errors.New("suspect is required")
	ErrCrimeTypeRequired = errors.New("crime type is required")
	ErrHistoryDisabled   = errors.New("investigation history is disabled")
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 200
)

type InvestigationService struct {
	evaluator domain.Evaluator
	kb        *knowledge.Base
	store     domain.InvestigationStore
	logger    *zap.Logger
}

// NewInvestigationService wires an evaluator to the knowledge base it
// reasons over. store may be nil, which disables history.
func NewInvestigationService(evaluator domain.Evaluator, kb *knowledge.Base, store domain.InvestigationStore, logger *zap.Logger) *InvestigationService {
	return &InvestigationService{
		evaluator: evaluator,
		kb:        kb,
		store:     store,
		logger:    logger,
	}
}

// Normalize trims and lower-cases a name the way the case file spells it.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Investigate returns the verdict for a suspect and crime type. Unknown
// names are not errors; they yield a not-guilty verdict with no evidence.
func (s *InvestigationService) Investigate(ctx context.Context, suspect, crimeType, requestID string) (*domain.Verdict, error) {
	suspect = Normalize(suspect)
	crimeType = Normalize(crimeType)
	if suspect == "" {
		return nil, ErrSuspectRequired
	}
	if crimeType == "" {
		return nil, ErrCrimeTypeRequired
	}

	v, err := s.evaluator.Verdict(ctx, domain.Suspect(suspect), domain.ParseCrimeType(crimeType))
	if err != nil {
		return nil, err
	}

	s.record(ctx, v, requestID)
	return v, nil
}

// AllGuilty returns every suspect proven guilty of the crime type.
func (s *InvestigationService) AllGuilty(ctx context.Context, crimeType string) (domain.CrimeType, []domain.Suspect, error) {
	crimeType = Normalize(crimeType)
	if crimeType == "" {
		return "", nil, ErrCrimeTypeRequired
	}

	crime := domain.ParseCrimeType(crimeType)
	suspects, err := s.evaluator.GuiltySuspects(ctx, crime)
	if err != nil {
		return "", nil, err
	}
	return crime, suspects, nil
}

func (s *InvestigationService) Suspects() []domain.Suspect {
	return s.kb.Suspects()
}

func (s *InvestigationService) CrimeTypes() []domain.CrimeType {
	return s.kb.CrimeTypes()
}

// History returns recent investigations, newest first. limit is clamped
// to [1, MaxHistoryLimit]; zero or negative means DefaultHistoryLimit.
func (s *InvestigationService) History(ctx context.Context, limit int) ([]domain.Investigation, error) {
	if s.store == nil {
		return nil, ErrHistoryDisabled
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	return s.store.ListRecent(ctx, limit)
}

// record stores the verdict for auditing. Failures are logged and never
// fail the investigation itself.
func (s *InvestigationService) record(ctx context.Context, v *domain.Verdict, requestID string) {
	if s.store == nil {
		return
	}

	inv := &domain.Investigation{
		RequestID: requestID,
		Suspect:   v.Suspect,
		CrimeType: v.CrimeType,
		Guilty:    v.Guilty,
		Evidence:  v.Evidence,
		Engine:    v.Engine,
	}
	if err := s.store.Create(ctx, inv); err != nil {
		s.logger.Warn("failed to record investigation",
			zap.String("suspect", string(v.Suspect)),
			zap.String("crime_type", string(v.CrimeType)),
			zap.Error(err),
		)
	}
}
