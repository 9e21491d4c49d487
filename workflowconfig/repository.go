package workflowconfig

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository lists config snapshots for one organization. Implementations
// are read-only; snapshots are authored elsewhere and never mutated here.
type Repository interface {
	ListByOrg(ctx context.Context, orgID string) ([]Snapshot, error)
}

// PGRepository implements Repository backed by PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a PostgreSQL-backed config snapshot repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

const listColumns = `id, org_id, property_id, jurisdiction_code, version, config, effective_at, expired_at`

// ListByOrg returns every config snapshot for the organization, newest
// version first. The resolver performs all date and scope filtering; the
// store returns the full candidate set.
func (r *PGRepository) ListByOrg(ctx context.Context, orgID string) ([]Snapshot, error) {
	const query = `
		SELECT ` + listColumns + `
		FROM workflow_config_snapshots
		WHERE org_id = $1
		ORDER BY version DESC, id
	`

	rows, err := r.pool.Query(ctx, query, orgID)
	if err != nil {
		return nil, fmt.Errorf("workflowconfig: list snapshots: %w", err)
	}
	defer rows.Close()

	return collectSnapshots(rows)
}

// ListEffective pushes the as-of window into the query as a convenience
// pre-filter. The resolver's own filtering stays authoritative, so feeding
// it an unfiltered ListByOrg result produces the same pick.
func (r *PGRepository) ListEffective(ctx context.Context, orgID string, asOf time.Time) ([]Snapshot, error) {
	const query = `
		SELECT ` + listColumns + `
		FROM workflow_config_snapshots
		WHERE org_id = $1
		  AND effective_at <= $2
		  AND (expired_at IS NULL OR expired_at > $2)
		ORDER BY version DESC, id
	`

	rows, err := r.pool.Query(ctx, query, orgID, asOf)
	if err != nil {
		return nil, fmt.Errorf("workflowconfig: list effective snapshots: %w", err)
	}
	defer rows.Close()

	return collectSnapshots(rows)
}

func collectSnapshots(rows pgx.Rows) ([]Snapshot, error) {
	snapshots := make([]Snapshot, 0, 8)
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("workflowconfig: iterate snapshots: %w", err)
	}
	return snapshots, nil
}

func scanSnapshot(row pgx.Row) (Snapshot, error) {
	var (
		snap Snapshot
		doc  []byte
	)
	err := row.Scan(
		&snap.ID,
		&snap.OrgID,
		&snap.PropertyID,
		&snap.JurisdictionCode,
		&snap.Version,
		&doc,
		&snap.EffectiveAt,
		&snap.ExpiredAt,
	)
	if err != nil {
		return Snapshot{}, fmt.Errorf("workflowconfig: scan snapshot: %w", err)
	}
	if len(doc) > 0 {
		if err := json.Unmarshal(doc, &snap.Config); err != nil {
			return Snapshot{}, fmt.Errorf("workflowconfig: decode config document %s: %w", snap.ID, err)
		}
	}
	return snap, nil
}
