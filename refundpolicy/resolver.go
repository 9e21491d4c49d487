package refundpolicy

import (
	"cmp"
	"slices"
	"time"

	"leaseflow/temporal"
)

// Context scopes a policy lookup. JurisdictionCode and PaymentType are nil
// when the caller has no such scope.
type Context struct {
	JurisdictionCode *string
	PaymentType      *string
	AsOf             time.Time
}

// PickActivePolicy collapses an organization's refund policies into the one
// in force for the given context, or nil when none applies. A policy scoped
// to a different jurisdiction never applies; among the survivors, an exact
// jurisdiction or payment-type match outranks a wildcard (nil) scope, which
// outranks no opinion. Ties fall through to the shared version/effective/id
// ordering.
func PickActivePolicy(policies []Snapshot, rctx Context) *Snapshot {
	active := keep(policies, func(p Snapshot) bool {
		return p.IsActive && p.Contains(rctx.AsOf)
	})

	if rctx.JurisdictionCode != nil {
		active = keep(active, func(p Snapshot) bool {
			return p.JurisdictionCode == nil || *p.JurisdictionCode == *rctx.JurisdictionCode
		})
	}

	if len(active) == 0 {
		return nil
	}

	slices.SortStableFunc(active, temporal.Chain(
		temporal.Desc[Snapshot](func(a, b Snapshot) int {
			return cmp.Compare(specificity(a.JurisdictionCode, rctx.JurisdictionCode), specificity(b.JurisdictionCode, rctx.JurisdictionCode))
		}),
		temporal.Desc[Snapshot](func(a, b Snapshot) int {
			return cmp.Compare(specificity(a.PaymentType, rctx.PaymentType), specificity(b.PaymentType, rctx.PaymentType))
		}),
		temporal.PreferLatest[Snapshot](),
	))

	return &active[0]
}

// specificity ranks a scope against the requested value: exact match above
// wildcard above a scope the request did not ask for.
func specificity(scope, want *string) int {
	switch {
	case scope != nil && want != nil && *scope == *want:
		return 2
	case scope == nil:
		return 1
	default:
		return 0
	}
}

func keep(policies []Snapshot, pred func(Snapshot) bool) []Snapshot {
	out := make([]Snapshot, 0, len(policies))
	for _, p := range policies {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}
