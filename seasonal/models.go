package seasonal

import "time"

// Policy is a seasonal leasing policy covering a closed calendar range.
// PropertyID is nil for organization-wide seasons.
type Policy struct {
	ID         string
	OrgID      string
	PropertyID *string
	StartDate  time.Time
	EndDate    time.Time
	IsActive   bool
}

// Resolution names the season in force on a given date, if any.
type Resolution struct {
	AppliedPolicyID *string
	SeasonStart     *time.Time
	SeasonEnd       *time.Time
	IsSeasonActive  bool
}
