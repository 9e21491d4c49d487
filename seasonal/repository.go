package seasonal

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository lists seasonal policies for one organization.
type Repository interface {
	ListByOrg(ctx context.Context, orgID string) ([]Policy, error)
}

// PGRepository implements Repository backed by PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a PostgreSQL-backed seasonal-policy repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// ListByOrg returns every seasonal policy for the organization; the
// resolver performs all date and scope filtering.
func (r *PGRepository) ListByOrg(ctx context.Context, orgID string) ([]Policy, error) {
	const query = `
		SELECT id, org_id, property_id, start_date, end_date, is_active
		FROM seasonal_policies
		WHERE org_id = $1
		ORDER BY start_date DESC, id
	`

	rows, err := r.pool.Query(ctx, query, orgID)
	if err != nil {
		return nil, fmt.Errorf("seasonal: list policies: %w", err)
	}
	defer rows.Close()

	policies := make([]Policy, 0, 8)
	for rows.Next() {
		var p Policy
		if err := rows.Scan(&p.ID, &p.OrgID, &p.PropertyID, &p.StartDate, &p.EndDate, &p.IsActive); err != nil {
			return nil, fmt.Errorf("seasonal: scan policy: %w", err)
		}
		policies = append(policies, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("seasonal: iterate policies: %w", err)
	}
	return policies, nil
}
