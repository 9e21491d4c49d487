package seasonal

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"leaseflow/temporal"
)

// Resolve picks the seasonal policy in force on the given date. The range
// check is inclusive on both ends: a season is a closed calendar range, not
// an effective-dating window. With a property id, property-scoped and
// global seasons both qualify and the property-scoped one wins; without
// one, only global seasons qualify.
func Resolve(policies []Policy, propertyID *string, asOf time.Time) Resolution {
	candidates := make([]Policy, 0, len(policies))
	for _, p := range policies {
		if !p.IsActive || asOf.Before(p.StartDate) || asOf.After(p.EndDate) {
			continue
		}
		if propertyID != nil {
			if p.PropertyID != nil && *p.PropertyID != *propertyID {
				continue
			}
		} else if p.PropertyID != nil {
			continue
		}
		candidates = append(candidates, p)
	}

	if len(candidates) == 0 {
		return Resolution{}
	}

	slices.SortStableFunc(candidates, temporal.Chain(
		temporal.Desc[Policy](func(a, b Policy) int {
			return cmp.Compare(propertyRank(a, propertyID), propertyRank(b, propertyID))
		}),
		temporal.Desc[Policy](func(a, b Policy) int { return a.StartDate.Compare(b.StartDate) }),
		func(a, b Policy) int { return strings.Compare(a.ID, b.ID) },
	))

	winner := candidates[0]
	start := winner.StartDate
	end := winner.EndDate
	id := winner.ID
	return Resolution{
		AppliedPolicyID: &id,
		SeasonStart:     &start,
		SeasonEnd:       &end,
		IsSeasonActive:  true,
	}
}

func propertyRank(p Policy, propertyID *string) int {
	if p.PropertyID != nil && propertyID != nil && *p.PropertyID == *propertyID {
		return 1
	}
	return 0
}
