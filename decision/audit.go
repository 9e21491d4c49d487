package decision

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Kind labels which evaluator produced an audit entry.
type Kind string

const (
	KindRefund    Kind = "refund"
	KindFastTrack Kind = "fast_track"
)

// AuditEntry is the append-only record of one evaluation. Payload holds the
// full decision value so a denial can be replayed against the exact policy
// version that produced it.
type AuditEntry struct {
	EvaluationID  string
	OrgID         string
	Kind          Kind
	ReasonCode    string
	Granted       bool
	PolicyID      *string
	PolicyVersion *int
	EvaluatedAt   time.Time
	AsOf          time.Time
	Payload       any
}

// AuditLog records evaluation outcomes.
type AuditLog interface {
	Append(ctx context.Context, entry AuditEntry) error
}

// PGAuditLog implements AuditLog backed by PostgreSQL.
type PGAuditLog struct {
	pool *pgxpool.Pool
}

// NewAuditLog creates a PostgreSQL-backed decision audit log.
func NewAuditLog(pool *pgxpool.Pool) *PGAuditLog {
	return &PGAuditLog{pool: pool}
}

// Append inserts one audit row. Rows are never updated or deleted.
func (l *PGAuditLog) Append(ctx context.Context, entry AuditEntry) error {
	payload, err := json.Marshal(entry.Payload)
	if err != nil {
		return fmt.Errorf("decision: encode audit payload: %w", err)
	}

	const insertSQL = `
		INSERT INTO decision_audit
			(evaluation_id, org_id, kind, reason_code, granted,
			 policy_id, policy_version, evaluated_at, as_of, payload)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::jsonb)
	`
	if _, err := l.pool.Exec(ctx, insertSQL,
		entry.EvaluationID,
		entry.OrgID,
		entry.Kind,
		entry.ReasonCode,
		entry.Granted,
		entry.PolicyID,
		entry.PolicyVersion,
		entry.EvaluatedAt,
		entry.AsOf,
		string(payload),
	); err != nil {
		return fmt.Errorf("decision: insert audit row: %w", err)
	}
	return nil
}
