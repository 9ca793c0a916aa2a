package store

import (
	"context"

	"github.com/adrienfranto/ia-enquete-policie/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type InvestigationStore struct {
	db *pgxpool.Pool
}

func NewInvestigationStore(db *pgxpool.Pool) *InvestigationStore {
	return &InvestigationStore{db: db}
}

func (s *InvestigationStore) Create(ctx context.Context, inv *domain.Investigation) error {
	evidence := make([]string, len(inv.Evidence))
	for i, k := range inv.Evidence {
		evidence[i] = string(k)
	}

	return s.db.QueryRow(ctx,
		`INSERT INTO investigations (request_id, suspect, crime_type, guilty, evidence, engine)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		inv.RequestID, string(inv.Suspect), string(inv.CrimeType), inv.Guilty, evidence, inv.Engine,
	).Scan(&inv.ID, &inv.CreatedAt)
}

// ListRecent returns the newest investigations first.
func (s *InvestigationStore) ListRecent(ctx context.Context, limit int) ([]domain.Investigation, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, request_id, suspect, crime_type, guilty, evidence, engine, created_at
		 FROM investigations
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	investigations := []domain.Investigation{}
	for rows.Next() {
		var (
			inv            domain.Investigation
			suspect, crime string
			evidence       []string
		)
		if err := rows.Scan(&inv.ID, &inv.RequestID, &suspect, &crime, &inv.Guilty, &evidence, &inv.Engine, &inv.CreatedAt); err != nil {
			return nil, err
		}
		inv.Suspect = domain.Suspect(suspect)
		inv.CrimeType = domain.CrimeType(crime)
		inv.Evidence = make([]domain.EvidenceKind, len(evidence))
		for i, k := range evidence {
			inv.Evidence[i] = domain.EvidenceKind(k)
		}
		investigations = append(investigations, inv)
	}
	return investigations, rows.Err()
}
