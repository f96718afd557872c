package cooldown

import (
	"fmt"
	"strings"
	"time"
)

// ErrOnCooldown is returned when action is still on cooldown
type ErrOnCooldown struct {
	Action    string
	Remaining time.Duration
}

func (e ErrOnCooldown) Error() string {
	hours := int(e.Remaining.Hours())
	minutes := int(e.Remaining.Minutes()) % MinutesPerHour
	seconds := int(e.Remaining.Seconds()) % SecondsPerMinute

	switch {
	case hours > 0:
		return fmt.Sprintf(ErrFmtCooldownWithHours, e.Action, hours, minutes)
	case minutes > 0:
		return fmt.Sprintf(ErrFmtCooldownWithMinutes, e.Action, minutes, seconds)
	default:
		return fmt.Sprintf(ErrFmtCooldownSecondsOnly, e.Action, seconds)
	}
}

// Is allows errors.Is() to work with ErrOnCooldown
func (e ErrOnCooldown) Is(target error) bool {
	_, ok := target.(ErrOnCooldown)
	return ok
}

// Daily gates an action to once per calendar day in a fixed time zone.
// Two instants fall on the same day when their local dates are equal,
// so claiming at 23:59 and again at 00:01 is allowed.
type Daily struct {
	loc *time.Location
}

// NewDaily creates a calendar-day gate. A nil location means time.Local.
func NewDaily(loc *time.Location) *Daily {
	if loc == nil {
		loc = time.Local
	}
	return &Daily{loc: loc}
}

// Location returns the zone days are computed in
func (d *Daily) Location() *time.Location {
	return d.loc
}

// DateKey renders the calendar date of t in the storage layout
func (d *Daily) DateKey(t time.Time) string {
	return t.In(d.loc).Format(DateLayout)
}

// ParseDate reads a stored claim date, accepting either layout.
// The result is midnight of that date in the gate's zone.
func (d *Daily) ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{DateLayout, ISODateLayout} {
		if t, err := time.ParseInLocation(layout, s, d.loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf(ErrFmtUnparseableDate, s)
}

// SameDay reports whether a and b share a calendar date
func (d *Daily) SameDay(a, b time.Time) bool {
	ay, am, ad := a.In(d.loc).Date()
	by, bm, bd := b.In(d.loc).Date()
	return ay == by && am == bm && ad == bd
}

// StartOfDay returns local midnight of t's calendar date
func (d *Daily) StartOfDay(t time.Time) time.Time {
	y, m, day := t.In(d.loc).Date()
	return time.Date(y, m, day, 0, 0, 0, 0, d.loc)
}

// NextReset returns the next local midnight after now
func (d *Daily) NextReset(now time.Time) time.Time {
	y, m, day := now.In(d.loc).Date()
	return time.Date(y, m, day+1, 0, 0, 0, 0, d.loc)
}

// UntilNextDay returns the time left until the next local midnight
func (d *Daily) UntilNextDay(now time.Time) time.Duration {
	return d.NextReset(now).Sub(now)
}

// ClaimedToday reports whether the stored claim date is today.
// An empty or unreadable date counts as never claimed.
func (d *Daily) ClaimedToday(lastClaim string, now time.Time) bool {
	if strings.TrimSpace(lastClaim) == "" {
		return false
	}
	claimed, err := d.ParseDate(lastClaim)
	if err != nil {
		return false
	}
	return d.SameDay(claimed, now)
}

// Check returns an ErrOnCooldown when the action was already used today
func (d *Daily) Check(action, lastClaim string, now time.Time) error {
	if d.ClaimedToday(lastClaim, now) {
		return ErrOnCooldown{Action: action, Remaining: d.UntilNextDay(now)}
	}
	return nil
}
