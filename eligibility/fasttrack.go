package eligibility

import "leaseflow/workflowconfig"

// FastTrackDecision is the evaluator's verdict on the expedited approval
// path. ConfigID and ConfigVersion are set whenever a config was supplied.
type FastTrackDecision struct {
	Allowed            bool
	MatchedCriteriaIDs []string
	ReasonCode         ReasonCode
	ConfigID           *string
	ConfigVersion      *int
}

// EvaluateFastTrack checks the application context against the config's
// fast-track criteria. A criterion matches when every key in its When
// clause equals the context value under the same key; a missing context key
// never matches. A criterion without a When clause matches unconditionally.
func EvaluateFastTrack(config *workflowconfig.Snapshot, appContext map[string]string) FastTrackDecision {
	decision := FastTrackDecision{
		MatchedCriteriaIDs: []string{},
		ReasonCode:         ReasonDisabled,
	}
	if config == nil {
		return decision
	}

	configID := config.ID
	configVersion := config.Version
	decision.ConfigID = &configID
	decision.ConfigVersion = &configVersion

	rules := config.Config.FastTrack
	if rules == nil || !rules.Enabled {
		return decision
	}

	for _, criterion := range rules.Criteria {
		if criterionMatches(criterion, appContext) {
			decision.MatchedCriteriaIDs = append(decision.MatchedCriteriaIDs, criterion.ID)
		}
	}

	if len(decision.MatchedCriteriaIDs) > 0 {
		decision.Allowed = true
		decision.ReasonCode = ReasonMatched
	} else {
		decision.ReasonCode = ReasonNoMatch
	}
	return decision
}

func criterionMatches(criterion workflowconfig.Criterion, appContext map[string]string) bool {
	for key, want := range criterion.When {
		got, ok := appContext[key]
		if !ok || got != want {
			return false
		}
	}
	return true
}
