package seasonal

import (
	"testing"
	"time"
)

func season(id string, propertyID *string, start, end time.Time, active bool) Policy {
	return Policy{
		ID:         id,
		OrgID:      "org-1",
		PropertyID: propertyID,
		StartDate:  start,
		EndDate:    end,
		IsActive:   active,
	}
}

func strPtr(s string) *string { return &s }

func TestResolve_InclusiveBounds(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC)
	policies := []Policy{season("season-summer", nil, start, end, true)}

	// Both endpoints are inside: a season is a closed calendar range.
	for _, asOf := range []time.Time{start, end} {
		got := Resolve(policies, nil, asOf)
		if !got.IsSeasonActive {
			t.Fatalf("expected season active at %s", asOf)
		}
		if got.AppliedPolicyID == nil || *got.AppliedPolicyID != "season-summer" {
			t.Fatalf("expected season-summer, got %v", got.AppliedPolicyID)
		}
	}

	if got := Resolve(policies, nil, end.Add(time.Second)); got.IsSeasonActive {
		t.Fatal("expected no season just past the end date")
	}
	if got := Resolve(policies, nil, start.Add(-time.Second)); got.IsSeasonActive {
		t.Fatal("expected no season just before the start date")
	}
}

func TestResolve_PropertySpecificWins(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC)
	policies := []Policy{
		season("season-global", nil, start, end, true),
		season("season-prop", strPtr("prop-9"), start, end, true),
	}

	got := Resolve(policies, strPtr("prop-9"), start.AddDate(0, 1, 0))
	if got.AppliedPolicyID == nil || *got.AppliedPolicyID != "season-prop" {
		t.Fatalf("expected property-specific season to win, got %v", got.AppliedPolicyID)
	}
	if got.SeasonStart == nil || !got.SeasonStart.Equal(start) {
		t.Fatalf("expected season start %s, got %v", start, got.SeasonStart)
	}
	if got.SeasonEnd == nil || !got.SeasonEnd.Equal(end) {
		t.Fatalf("expected season end %s, got %v", end, got.SeasonEnd)
	}
}

func TestResolve_GlobalOnlyWithoutProperty(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC)
	policies := []Policy{
		season("season-prop", strPtr("prop-9"), start, end, true),
	}

	if got := Resolve(policies, nil, start.AddDate(0, 1, 0)); got.IsSeasonActive {
		t.Fatal("expected property-scoped season to be skipped without a property id")
	}
}

func TestResolve_LatestStartThenIDTieBreak(t *testing.T) {
	end := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	early := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	policies := []Policy{
		season("season-a", nil, early, end, true),
		season("season-b", nil, late, end, true),
	}

	got := Resolve(policies, nil, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))
	if got.AppliedPolicyID == nil || *got.AppliedPolicyID != "season-b" {
		t.Fatalf("expected later-starting season to win, got %v", got.AppliedPolicyID)
	}

	tied := []Policy{
		season("season-z", nil, late, end, true),
		season("season-a", nil, late, end, true),
	}
	got = Resolve(tied, nil, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))
	if got.AppliedPolicyID == nil || *got.AppliedPolicyID != "season-a" {
		t.Fatalf("expected id tie-break to pick season-a, got %v", got.AppliedPolicyID)
	}
}

func TestResolve_InactiveOrNone(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC)
	policies := []Policy{season("season-off", nil, start, end, false)}

	got := Resolve(policies, nil, start.AddDate(0, 1, 0))
	if got.IsSeasonActive {
		t.Fatal("expected inactive season to be skipped")
	}
	if got.AppliedPolicyID != nil || got.SeasonStart != nil || got.SeasonEnd != nil {
		t.Fatalf("expected empty resolution, got %+v", got)
	}
}
