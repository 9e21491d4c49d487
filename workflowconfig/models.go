package workflowconfig

import (
	"time"

	"leaseflow/temporal"
)

// Snapshot is one immutable version of an organization's leasing workflow
// configuration. PropertyID and JurisdictionCode are nil when the snapshot
// applies to all properties or all jurisdictions; the resolver, not the
// store, decides which snapshot wins for a given context.
type Snapshot struct {
	ID               string
	OrgID            string
	PropertyID       *string
	JurisdictionCode *string
	Version          int
	Config           Document
	temporal.Window
}

func (s Snapshot) RecordVersion() int           { return s.Version }
func (s Snapshot) RecordEffectiveAt() time.Time { return s.EffectiveAt }
func (s Snapshot) RecordID() string             { return s.ID }

// Document is the structured configuration payload, decoded once when the
// snapshot is loaded so evaluators work on typed data rather than a bag of
// fields. Every sub-section is optional.
type Document struct {
	FastTrack          *FastTrackRules       `json:"fast_track,omitempty"`
	Requirements       []RequirementTemplate `json:"requirements,omitempty"`
	IncomeCalculation  *IncomeCalculation    `json:"income_calculation,omitempty"`
	SubmissionTTLHours *int                  `json:"submission_ttl_hours,omitempty"`
	UnitIntakeMode     *UnitIntakeMode       `json:"unit_intake_mode,omitempty"`
}

// FastTrackRules gates the expedited approval path.
type FastTrackRules struct {
	Enabled  bool        `json:"enabled"`
	Criteria []Criterion `json:"criteria,omitempty"`
}

// Criterion matches when every key in When equals the corresponding value
// in the application context. A nil When matches unconditionally.
type Criterion struct {
	ID   string            `json:"id"`
	When map[string]string `json:"when,omitempty"`
}

// RequirementTemplate names a document or check an applicant must satisfy.
type RequirementTemplate struct {
	Code     string `json:"code"`
	Required bool   `json:"required"`
}

// IncomeCalculation selects how applicant income is normalized.
type IncomeCalculation struct {
	Method IncomeMethod `json:"method"`
}

type IncomeMethod string

const (
	IncomeGrossMonthly IncomeMethod = "GROSS_MONTHLY"
	IncomeNetMonthly   IncomeMethod = "NET_MONTHLY"
	IncomeAnnualized   IncomeMethod = "ANNUALIZED"
)

type UnitIntakeMode string

const (
	UnitIntakeManual UnitIntakeMode = "MANUAL"
	UnitIntakeFeed   UnitIntakeMode = "FEED"
)
