package workflowconfig

import (
	"cmp"
	"slices"
	"time"

	"leaseflow/temporal"
)

// Source identifies which precedence tier produced the effective config.
type Source string

const (
	SourceProperty     Source = "property"
	SourceOrg          Source = "org"
	SourceJurisdiction Source = "jurisdiction"
	SourceNone         Source = "none"
)

// Context scopes a resolution request. PropertyID and JurisdictionCode are
// nil when the caller has no such scope.
type Context struct {
	PropertyID       *string
	JurisdictionCode *string
	AsOf             time.Time
}

// Resolution carries the winning snapshot, if any, and the tier it came from.
type Resolution struct {
	Config *Snapshot
	Source Source
}

// PickEffectiveConfig collapses all of an organization's config snapshots
// into the single one in force for the given context. Property-level
// overrides win absolutely over org defaults, which win over
// jurisdiction-only defaults: a global org default intentionally outranks a
// jurisdiction default, so jurisdiction fallback is a last resort. A miss
// at every tier yields SourceNone, never an error.
func PickEffectiveConfig(configs []Snapshot, rctx Context) Resolution {
	active := keep(configs, func(c Snapshot) bool {
		return c.Contains(rctx.AsOf)
	})

	if rctx.PropertyID != nil {
		scoped := keep(active, func(c Snapshot) bool {
			return c.PropertyID != nil && *c.PropertyID == *rctx.PropertyID
		})
		if len(scoped) > 0 {
			slices.SortStableFunc(scoped, temporal.Chain(
				temporal.Desc[Snapshot](func(a, b Snapshot) int {
					return cmp.Compare(jurisdictionRank(a, rctx), jurisdictionRank(b, rctx))
				}),
				temporal.PreferLatest[Snapshot](),
			))
			return Resolution{Config: &scoped[0], Source: SourceProperty}
		}
	}

	orgDefaults := keep(active, func(c Snapshot) bool {
		return c.PropertyID == nil && c.JurisdictionCode == nil
	})
	if len(orgDefaults) > 0 {
		slices.SortStableFunc(orgDefaults, temporal.PreferLatest[Snapshot]())
		return Resolution{Config: &orgDefaults[0], Source: SourceOrg}
	}

	if rctx.JurisdictionCode != nil {
		scoped := keep(active, func(c Snapshot) bool {
			return c.PropertyID == nil && c.JurisdictionCode != nil && *c.JurisdictionCode == *rctx.JurisdictionCode
		})
		if len(scoped) > 0 {
			slices.SortStableFunc(scoped, temporal.PreferLatest[Snapshot]())
			return Resolution{Config: &scoped[0], Source: SourceJurisdiction}
		}
	}

	return Resolution{Source: SourceNone}
}

// jurisdictionRank orders property-scoped snapshots: an exact jurisdiction
// match ranks above a non-matching or nil jurisdiction.
func jurisdictionRank(c Snapshot, rctx Context) int {
	if c.JurisdictionCode != nil && rctx.JurisdictionCode != nil && *c.JurisdictionCode == *rctx.JurisdictionCode {
		return 1
	}
	return 0
}

func keep(configs []Snapshot, pred func(Snapshot) bool) []Snapshot {
	out := make([]Snapshot, 0, len(configs))
	for _, c := range configs {
		if pred(c) {
			out = append(out, c)
		}
	}
	return out
}
