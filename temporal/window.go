package temporal

import "time"

// Window describes the validity of an effective-dated record as the
// half-open interval [EffectiveAt, ExpiredAt). A nil ExpiredAt means the
// record is open-ended.
type Window struct {
	EffectiveAt time.Time
	ExpiredAt   *time.Time
}

// Contains reports whether the window is in force at the given instant.
// The start bound is inclusive, the end bound exclusive: a record expiring
// at T is no longer effective at T.
func (w Window) Contains(asOf time.Time) bool {
	if asOf.Before(w.EffectiveAt) {
		return false
	}
	return w.ExpiredAt == nil || w.ExpiredAt.After(asOf)
}
