package domain

import "context"

type InvestigationStore interface {
	Create(ctx context.Context, inv *Investigation) error
	ListRecent(ctx context.Context, limit int) ([]Investigation, error)
}
