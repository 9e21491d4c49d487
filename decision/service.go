package decision

import (
	"context"
	"errors"
	"fmt"
	"time"

	"leaseflow/eligibility"
	"leaseflow/refundpolicy"
	"leaseflow/seasonal"
	"leaseflow/workflowconfig"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrMissingAsOf signals a caller omitted the as-of instant; the engine
	// never defaults it because decisions must be reproducible.
	ErrMissingAsOf = errors.New("decision: as-of instant required")
	// ErrMissingOrg signals a caller omitted the organization id.
	ErrMissingOrg = errors.New("decision: org id required")
)

// ConfigStore lists workflow-config snapshots for one organization.
type ConfigStore interface {
	ListByOrg(ctx context.Context, orgID string) ([]workflowconfig.Snapshot, error)
}

// PolicyStore lists refund-policy snapshots for one organization.
type PolicyStore interface {
	ListByOrg(ctx context.Context, orgID string) ([]refundpolicy.Snapshot, error)
}

// SeasonalStore lists seasonal policies for one organization.
type SeasonalStore interface {
	ListByOrg(ctx context.Context, orgID string) ([]seasonal.Policy, error)
}

// Service loads snapshots, runs the pure resolvers and evaluators, and
// stamps each outcome with an evaluation id. Persistence stays behind the
// stores; the decisions themselves are side-effect free.
type Service struct {
	configs  ConfigStore
	policies PolicyStore
	seasons  SeasonalStore
	audit    AuditLog
	signer   *ReceiptSigner
	now      func() time.Time
	idGen    func() string
}

func NewService(configs ConfigStore, policies PolicyStore, seasons SeasonalStore) *Service {
	return &Service{
		configs:  configs,
		policies: policies,
		seasons:  seasons,
		now:      time.Now,
		idGen:    func() string { return uuid.NewString() },
	}
}

// WithAuditLog records every outcome to the given append-only log.
func (s *Service) WithAuditLog(audit AuditLog) *Service {
	s.audit = audit
	return s
}

// WithReceiptSigner attaches signed receipts to every outcome.
func (s *Service) WithReceiptSigner(signer *ReceiptSigner) *Service {
	s.signer = signer
	return s
}

// RefundQuery asks whether one payment is refundable for an organization.
type RefundQuery struct {
	OrgID            string
	JurisdictionCode *string
	PaymentType      *string
	Intent           eligibility.PaymentIntent
	AsOf             time.Time
}

// RefundOutcome bundles the decision with its audit identity. Receipt is
// empty unless a signer is configured.
type RefundOutcome struct {
	EvaluationID string
	AsOf         time.Time
	Decision     eligibility.RefundDecision
	Policy       *refundpolicy.Snapshot
	Receipt      string
}

// EvaluateRefund resolves the active refund policy and evaluates the
// payment against it.
func (s *Service) EvaluateRefund(ctx context.Context, q RefundQuery) (RefundOutcome, error) {
	if q.AsOf.IsZero() {
		return RefundOutcome{}, ErrMissingAsOf
	}
	if q.OrgID == "" {
		return RefundOutcome{}, ErrMissingOrg
	}

	policies, err := s.policies.ListByOrg(ctx, q.OrgID)
	if err != nil {
		return RefundOutcome{}, fmt.Errorf("decision: load refund policies: %w", err)
	}

	policy := refundpolicy.PickActivePolicy(policies, refundpolicy.Context{
		JurisdictionCode: q.JurisdictionCode,
		PaymentType:      q.PaymentType,
		AsOf:             q.AsOf,
	})
	verdict := eligibility.EvaluateRefundEligibility(q.Intent, policy, q.AsOf)

	outcome := RefundOutcome{
		EvaluationID: s.idGen(),
		AsOf:         q.AsOf,
		Decision:     verdict,
		Policy:       policy,
	}

	entry := AuditEntry{
		EvaluationID:  outcome.EvaluationID,
		OrgID:         q.OrgID,
		Kind:          KindRefund,
		ReasonCode:    string(verdict.ReasonCode),
		Granted:       verdict.Eligible,
		PolicyID:      verdict.PolicyID,
		PolicyVersion: verdict.PolicyVersion,
		EvaluatedAt:   s.now(),
		AsOf:          q.AsOf,
		Payload:       verdict,
	}
	if s.signer != nil {
		receipt, err := s.signer.Sign(entry)
		if err != nil {
			return RefundOutcome{}, fmt.Errorf("decision: sign receipt: %w", err)
		}
		outcome.Receipt = receipt
	}
	if s.audit != nil {
		if err := s.audit.Append(ctx, entry); err != nil {
			return RefundOutcome{}, fmt.Errorf("decision: append audit: %w", err)
		}
	}

	return outcome, nil
}

// ApplicationQuery asks for every config-driven decision about one rental
// application: fast-track, income method and seasonal policy.
type ApplicationQuery struct {
	OrgID            string
	PropertyID       *string
	JurisdictionCode *string
	Context          map[string]string
	AsOf             time.Time
}

// ApplicationOutcome bundles the resolved config with the decisions derived
// from it.
type ApplicationOutcome struct {
	EvaluationID string
	AsOf         time.Time
	Config       workflowconfig.Resolution
	FastTrack    eligibility.FastTrackDecision
	IncomeMethod workflowconfig.IncomeMethod
	Season       seasonal.Resolution
	Receipt      string
}

// EvaluateApplication loads config and seasonal snapshots concurrently,
// resolves the effective config and derives the application decisions.
func (s *Service) EvaluateApplication(ctx context.Context, q ApplicationQuery) (ApplicationOutcome, error) {
	if q.AsOf.IsZero() {
		return ApplicationOutcome{}, ErrMissingAsOf
	}
	if q.OrgID == "" {
		return ApplicationOutcome{}, ErrMissingOrg
	}

	var (
		configs []workflowconfig.Snapshot
		seasons []seasonal.Policy
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		configs, err = s.configs.ListByOrg(gctx, q.OrgID)
		if err != nil {
			return fmt.Errorf("decision: load configs: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		seasons, err = s.seasons.ListByOrg(gctx, q.OrgID)
		if err != nil {
			return fmt.Errorf("decision: load seasonal policies: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return ApplicationOutcome{}, err
	}

	resolution := workflowconfig.PickEffectiveConfig(configs, workflowconfig.Context{
		PropertyID:       q.PropertyID,
		JurisdictionCode: q.JurisdictionCode,
		AsOf:             q.AsOf,
	})
	fastTrack := eligibility.EvaluateFastTrack(resolution.Config, q.Context)

	outcome := ApplicationOutcome{
		EvaluationID: s.idGen(),
		AsOf:         q.AsOf,
		Config:       resolution,
		FastTrack:    fastTrack,
		IncomeMethod: eligibility.ResolveIncomeCalculationMethod(resolution.Config),
		Season:       seasonal.Resolve(seasons, q.PropertyID, q.AsOf),
	}

	entry := AuditEntry{
		EvaluationID:  outcome.EvaluationID,
		OrgID:         q.OrgID,
		Kind:          KindFastTrack,
		ReasonCode:    string(fastTrack.ReasonCode),
		Granted:       fastTrack.Allowed,
		PolicyID:      fastTrack.ConfigID,
		PolicyVersion: fastTrack.ConfigVersion,
		EvaluatedAt:   s.now(),
		AsOf:          q.AsOf,
		Payload:       outcome,
	}
	if s.signer != nil {
		receipt, err := s.signer.Sign(entry)
		if err != nil {
			return ApplicationOutcome{}, fmt.Errorf("decision: sign receipt: %w", err)
		}
		outcome.Receipt = receipt
		entry.Payload = outcome
	}
	if s.audit != nil {
		if err := s.audit.Append(ctx, entry); err != nil {
			return ApplicationOutcome{}, fmt.Errorf("decision: append audit: %w", err)
		}
	}

	return outcome, nil
}
