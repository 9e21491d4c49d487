package eligibility

import (
	"time"

	"leaseflow/refundpolicy"
)

// PaymentStatus mirrors the payment processor's intent status.
type PaymentStatus string

const (
	PaymentSucceeded PaymentStatus = "SUCCEEDED"
	PaymentPending   PaymentStatus = "PENDING"
	PaymentFailed    PaymentStatus = "FAILED"
)

// PaymentIntent is the read-only payment fact supplied by the caller. The
// engine never loads or mutates it.
type PaymentIntent struct {
	PaymentType string
	Status      PaymentStatus
	AmountCents int64
	PaidAt      *time.Time
}

// ReasonCode explains why a decision came out the way it did. It is always
// present, on success as well as denial, and callers must treat every code
// as an expected outcome rather than an error.
type ReasonCode string

const (
	ReasonEligible                ReasonCode = "ELIGIBLE"
	ReasonNoPolicy                ReasonCode = "NO_POLICY"
	ReasonPolicyInactive          ReasonCode = "POLICY_INACTIVE"
	ReasonPolicyNotEffective      ReasonCode = "POLICY_NOT_EFFECTIVE"
	ReasonPaymentNotSucceeded     ReasonCode = "PAYMENT_NOT_SUCCEEDED"
	ReasonPaymentNotPaid          ReasonCode = "PAYMENT_NOT_PAID"
	ReasonOutsideRefundWindow     ReasonCode = "OUTSIDE_REFUND_WINDOW"
	ReasonPolicyNoRefund          ReasonCode = "POLICY_NO_REFUND"
	ReasonMissingRefundPercentage ReasonCode = "MISSING_REFUND_PERCENTAGE"
	ReasonMatched                 ReasonCode = "MATCHED"
	ReasonNoMatch                 ReasonCode = "NO_MATCH"
	ReasonDisabled                ReasonCode = "DISABLED"
)

// RefundDecision is the evaluator's verdict on one payment. PolicyID and
// PolicyVersion are set whenever a policy was supplied, including denials,
// so every decision stays traceable to the exact rule version behind it.
type RefundDecision struct {
	Eligible            bool
	ReasonCode          ReasonCode
	PolicyID            *string
	PolicyVersion       *int
	EligibleAmountCents *int64
}

// EvaluateRefundEligibility runs the refund guard chain against one payment
// intent. Guards run in a fixed order and short-circuit: the first failure
// names the reason code. The elapsed-time check is strictly greater-than,
// so a payment refunded exactly at the window boundary is still inside it.
func EvaluateRefundEligibility(intent PaymentIntent, policy *refundpolicy.Snapshot, asOf time.Time) RefundDecision {
	if policy == nil {
		return RefundDecision{ReasonCode: ReasonNoPolicy}
	}

	policyID := policy.ID
	policyVersion := policy.Version
	decision := RefundDecision{
		PolicyID:      &policyID,
		PolicyVersion: &policyVersion,
	}
	deny := func(code ReasonCode) RefundDecision {
		decision.Eligible = false
		decision.ReasonCode = code
		return decision
	}

	if !policy.IsActive {
		return deny(ReasonPolicyInactive)
	}
	if !policy.Contains(asOf) {
		return deny(ReasonPolicyNotEffective)
	}
	if intent.Status != PaymentSucceeded {
		return deny(ReasonPaymentNotSucceeded)
	}
	if intent.PaidAt == nil {
		return deny(ReasonPaymentNotPaid)
	}
	if policy.RefundWindowHours != nil {
		window := time.Duration(*policy.RefundWindowHours) * time.Hour
		if asOf.Sub(*intent.PaidAt) > window {
			return deny(ReasonOutsideRefundWindow)
		}
	}

	switch policy.PolicyType {
	case refundpolicy.TypeNoRefund:
		return deny(ReasonPolicyNoRefund)
	case refundpolicy.TypeFullRefund:
		amount := intent.AmountCents
		decision.Eligible = true
		decision.ReasonCode = ReasonEligible
		decision.EligibleAmountCents = &amount
		return decision
	case refundpolicy.TypePartialRefund, refundpolicy.TypeTimeBased:
		if policy.RefundPercentage == nil {
			return deny(ReasonMissingRefundPercentage)
		}
		// Integer division floors for the non-negative amounts payments carry.
		amount := intent.AmountCents * int64(*policy.RefundPercentage) / 100
		if amount <= 0 {
			// A percentage that rounds to nothing is treated the same as a
			// missing one.
			return deny(ReasonMissingRefundPercentage)
		}
		decision.Eligible = true
		decision.ReasonCode = ReasonEligible
		decision.EligibleAmountCents = &amount
		return decision
	default:
		// Unreachable for snapshots decoded through the store; preserved
		// fallback for data that bypassed it.
		return deny(ReasonNoPolicy)
	}
}
