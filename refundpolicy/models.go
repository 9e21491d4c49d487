package refundpolicy

import (
	"time"

	"leaseflow/temporal"
)

// PolicyType enumerates how a refund amount is derived.
type PolicyType string

const (
	TypeNoRefund      PolicyType = "NO_REFUND"
	TypeFullRefund    PolicyType = "FULL_REFUND"
	TypePartialRefund PolicyType = "PARTIAL_REFUND"
	TypeTimeBased     PolicyType = "TIME_BASED"
)

// Snapshot is one immutable version of a refund policy. JurisdictionCode
// and PaymentType are nil when the policy applies to all jurisdictions or
// payment types. RefundPercentage is required for PARTIAL_REFUND and
// TIME_BASED policies; a nil RefundWindowHours means the window is
// unlimited.
type Snapshot struct {
	ID                string
	OrgID             string
	PolicyType        PolicyType
	JurisdictionCode  *string
	PaymentType       *string
	RefundPercentage  *int
	RefundWindowHours *int
	Version           int
	IsActive          bool
	temporal.Window
}

func (s Snapshot) RecordVersion() int           { return s.Version }
func (s Snapshot) RecordEffectiveAt() time.Time { return s.EffectiveAt }
func (s Snapshot) RecordID() string             { return s.ID }
