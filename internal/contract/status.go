package contract

import "time"

// Status is the derived, never stored, classification of a contract.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusExpiring Status = "EXPIRING"
	StatusExpired  Status = "EXPIRED"
)

// ExpiringWindowDays is the inclusive number of days before the end date in
// which a contract counts as expiring.
const ExpiringWindowDays = 60

const secondsPerDay = 24 * 60 * 60

// DaysUntil returns the whole calendar days from now's date to end's date.
// Only the calendar dates matter: an end date of today is 0, yesterday is -1.
func DaysUntil(end, now time.Time) int {
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	return int((e.Unix() - today.Unix()) / secondsPerDay)
}

// StatusAt classifies a contract ending on end as seen at now.
func StatusAt(end, now time.Time) Status {
	d := DaysUntil(end, now)

	switch {
	case d < 0:
		return StatusExpired
	case d <= ExpiringWindowDays:
		return StatusExpiring
	}

	return StatusActive
}
