package contract

import "time"

// Filter selects contracts by their derived status.
type Filter string

const (
	FilterAll      Filter = "ALL"
	FilterActive   Filter = "ACTIVE"
	FilterExpiring Filter = "EXPIRING"
	FilterExpired  Filter = "EXPIRED"
)

// Filters lists every filter in display order.
var Filters = []Filter{FilterAll, FilterActive, FilterExpiring, FilterExpired}

func (f Filter) String() string {
	switch f {
	case FilterActive:
		return "Active"
	case FilterExpiring:
		return "Expiring"
	case FilterExpired:
		return "Expired"
	}

	return "All"
}

// Next cycles to the following filter, wrapping back to FilterAll.
func (f Filter) Next() Filter {
	for i, candidate := range Filters {
		if candidate == f {
			return Filters[(i+1)%len(Filters)]
		}
	}

	return FilterAll
}

// Matches reports whether a contract with status s passes the filter.
func (f Filter) Matches(s Status) bool {
	switch f {
	case FilterActive:
		return s == StatusActive
	case FilterExpiring:
		return s == StatusExpiring
	case FilterExpired:
		return s == StatusExpired
	}

	return true
}

// Apply returns the contracts passing the filter at now, in source order.
// The input slice is never modified.
func (f Filter) Apply(contracts []*Contract, now time.Time) []*Contract {
	out := make([]*Contract, 0, len(contracts))

	for _, c := range contracts {
		if f.Matches(c.Status(now)) {
			out = append(out, c)
		}
	}

	return out
}

// Summary counts contracts per status.
type Summary struct {
	Total    int
	Active   int
	Expiring int
	Expired  int
}

func Summarize(contracts []*Contract, now time.Time) Summary {
	s := Summary{Total: len(contracts)}

	for _, c := range contracts {
		switch c.Status(now) {
		case StatusActive:
			s.Active++
		case StatusExpiring:
			s.Expiring++
		case StatusExpired:
			s.Expired++
		}
	}

	return s
}
