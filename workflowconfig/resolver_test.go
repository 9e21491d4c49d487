package workflowconfig

import (
	"testing"
	"time"

	"leaseflow/temporal"
)

func snapshot(id string, version int, propertyID, jurisdiction *string, effectiveAt time.Time, expiredAt *time.Time) Snapshot {
	return Snapshot{
		ID:               id,
		OrgID:            "org-1",
		PropertyID:       propertyID,
		JurisdictionCode: jurisdiction,
		Version:          version,
		Window:           temporal.Window{EffectiveAt: effectiveAt, ExpiredAt: expiredAt},
	}
}

func strPtr(s string) *string { return &s }

func TestPickEffectiveConfig_PropertyOverrideWins(t *testing.T) {
	asOf := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	effective := asOf.AddDate(0, -6, 0)

	property := snapshot("cfg-prop", 1, strPtr("prop-9"), nil, effective, nil)
	orgDefault := snapshot("cfg-org", 5, nil, nil, effective, nil)
	jurisdiction := snapshot("cfg-jur", 9, nil, strPtr("CA"), effective, nil)

	// Every input ordering must produce the same pick.
	orderings := [][]Snapshot{
		{property, orgDefault, jurisdiction},
		{jurisdiction, property, orgDefault},
		{orgDefault, jurisdiction, property},
	}
	for _, configs := range orderings {
		got := PickEffectiveConfig(configs, Context{
			PropertyID:       strPtr("prop-9"),
			JurisdictionCode: strPtr("CA"),
			AsOf:             asOf,
		})
		if got.Source != SourceProperty {
			t.Fatalf("expected property source, got %q", got.Source)
		}
		if got.Config == nil || got.Config.ID != "cfg-prop" {
			t.Fatalf("expected cfg-prop to win, got %+v", got.Config)
		}
	}
}

func TestPickEffectiveConfig_JurisdictionMatchRanksFirstWithinProperty(t *testing.T) {
	asOf := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	effective := asOf.AddDate(0, -1, 0)

	configs := []Snapshot{
		snapshot("cfg-generic", 8, strPtr("prop-9"), nil, effective, nil),
		snapshot("cfg-ca", 2, strPtr("prop-9"), strPtr("CA"), effective, nil),
	}

	got := PickEffectiveConfig(configs, Context{
		PropertyID:       strPtr("prop-9"),
		JurisdictionCode: strPtr("CA"),
		AsOf:             asOf,
	})
	if got.Config == nil || got.Config.ID != "cfg-ca" {
		t.Fatalf("expected jurisdiction match to beat higher version, got %+v", got.Config)
	}
}

func TestPickEffectiveConfig_OrgDefaultBeatsJurisdictionDefault(t *testing.T) {
	asOf := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	effective := asOf.AddDate(0, -1, 0)

	configs := []Snapshot{
		snapshot("cfg-jur", 9, nil, strPtr("CA"), effective, nil),
		snapshot("cfg-org", 1, nil, nil, effective, nil),
	}

	got := PickEffectiveConfig(configs, Context{
		JurisdictionCode: strPtr("CA"),
		AsOf:             asOf,
	})
	if got.Source != SourceOrg {
		t.Fatalf("expected org source, got %q", got.Source)
	}
	if got.Config == nil || got.Config.ID != "cfg-org" {
		t.Fatalf("expected org default to win, got %+v", got.Config)
	}
}

func TestPickEffectiveConfig_JurisdictionFallback(t *testing.T) {
	asOf := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	effective := asOf.AddDate(0, -1, 0)

	configs := []Snapshot{
		snapshot("cfg-jur", 3, nil, strPtr("CA"), effective, nil),
		snapshot("cfg-other", 7, nil, strPtr("NY"), effective, nil),
	}

	got := PickEffectiveConfig(configs, Context{
		JurisdictionCode: strPtr("CA"),
		AsOf:             asOf,
	})
	if got.Source != SourceJurisdiction {
		t.Fatalf("expected jurisdiction source, got %q", got.Source)
	}
	if got.Config == nil || got.Config.ID != "cfg-jur" {
		t.Fatalf("expected cfg-jur to win, got %+v", got.Config)
	}
}

func TestPickEffectiveConfig_VersionSelectionIsTimeSensitive(t *testing.T) {
	v1Start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	v2Start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	configs := []Snapshot{
		snapshot("cfg-v1", 1, nil, nil, v1Start, nil),
		snapshot("cfg-v2", 2, nil, nil, v2Start, nil),
	}

	before := PickEffectiveConfig(configs, Context{AsOf: v2Start.Add(-time.Second)})
	if before.Config == nil || before.Config.ID != "cfg-v1" {
		t.Fatalf("expected v1 just before cutover, got %+v", before.Config)
	}

	after := PickEffectiveConfig(configs, Context{AsOf: v2Start})
	if after.Config == nil || after.Config.ID != "cfg-v2" {
		t.Fatalf("expected v2 at cutover instant, got %+v", after.Config)
	}
}

func TestPickEffectiveConfig_ToleratesOverlappingWindows(t *testing.T) {
	asOf := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	// Both versions are simultaneously effective; the higher version wins.
	configs := []Snapshot{
		snapshot("cfg-v1", 1, nil, nil, asOf.AddDate(0, -6, 0), nil),
		snapshot("cfg-v2", 2, nil, nil, asOf.AddDate(0, -3, 0), nil),
	}

	got := PickEffectiveConfig(configs, Context{AsOf: asOf})
	if got.Config == nil || got.Config.ID != "cfg-v2" {
		t.Fatalf("expected overlapping v2 to win, got %+v", got.Config)
	}
}

func TestPickEffectiveConfig_NoMatch(t *testing.T) {
	asOf := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	expired := asOf.AddDate(0, -1, 0)

	configs := []Snapshot{
		snapshot("cfg-old", 1, nil, nil, asOf.AddDate(-1, 0, 0), &expired),
	}

	got := PickEffectiveConfig(configs, Context{AsOf: asOf})
	if got.Source != SourceNone {
		t.Fatalf("expected none source, got %q", got.Source)
	}
	if got.Config != nil {
		t.Fatalf("expected nil config, got %+v", got.Config)
	}
}

func TestPickEffectiveConfig_PropertyMissFallsBackToOrg(t *testing.T) {
	asOf := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	effective := asOf.AddDate(0, -1, 0)

	configs := []Snapshot{
		snapshot("cfg-other-prop", 4, strPtr("prop-1"), nil, effective, nil),
		snapshot("cfg-org", 2, nil, nil, effective, nil),
	}

	got := PickEffectiveConfig(configs, Context{
		PropertyID: strPtr("prop-9"),
		AsOf:       asOf,
	})
	if got.Source != SourceOrg {
		t.Fatalf("expected org source when property has no override, got %q", got.Source)
	}
}
