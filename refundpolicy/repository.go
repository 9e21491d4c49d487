package refundpolicy

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository lists refund-policy snapshots for one organization.
type Repository interface {
	ListByOrg(ctx context.Context, orgID string) ([]Snapshot, error)
}

// PGRepository implements Repository backed by PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a PostgreSQL-backed refund-policy repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// ListByOrg returns every refund-policy snapshot for the organization,
// including inactive and expired ones; the resolver decides which applies.
func (r *PGRepository) ListByOrg(ctx context.Context, orgID string) ([]Snapshot, error) {
	const query = `
		SELECT id, org_id, policy_type, jurisdiction_code, payment_type,
		       refund_percentage, refund_window_hours, version, is_active,
		       effective_at, expired_at
		FROM refund_policy_snapshots
		WHERE org_id = $1
		ORDER BY version DESC, id
	`

	rows, err := r.pool.Query(ctx, query, orgID)
	if err != nil {
		return nil, fmt.Errorf("refundpolicy: list snapshots: %w", err)
	}
	defer rows.Close()

	policies := make([]Snapshot, 0, 8)
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		policies = append(policies, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("refundpolicy: iterate snapshots: %w", err)
	}
	return policies, nil
}

func scanSnapshot(row pgx.Row) (Snapshot, error) {
	var snap Snapshot
	err := row.Scan(
		&snap.ID,
		&snap.OrgID,
		&snap.PolicyType,
		&snap.JurisdictionCode,
		&snap.PaymentType,
		&snap.RefundPercentage,
		&snap.RefundWindowHours,
		&snap.Version,
		&snap.IsActive,
		&snap.EffectiveAt,
		&snap.ExpiredAt,
	)
	if err != nil {
		return Snapshot{}, fmt.Errorf("refundpolicy: scan snapshot: %w", err)
	}
	return snap, nil
}
