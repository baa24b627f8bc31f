package csp

import (
	"slices"
	"time"

	"github.com/samber/lo"
)

// MeetingDomain holds the candidate dates remaining for one meeting. Dates
// only ever leave the set once it is built; filtering never adds to it.
type MeetingDomain struct {
	Values map[time.Time]bool
}

// NewMeetingDomain builds the domain containing every date in [start, end]
// inclusive. An inverted range yields an empty domain.
func NewMeetingDomain(start, end time.Time) MeetingDomain {
	values := make(map[time.Time]bool)
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		values[date] = true
	}
	return MeetingDomain{Values: values}
}

// Sorted returns the domain's dates in ascending order.
func (domain MeetingDomain) Sorted() []time.Time {
	dates := lo.Keys(domain.Values)
	slices.SortFunc(dates, func(a, b time.Time) int {
		return a.Compare(b)
	})
	return dates
}

func generateDomains(meetings int, rangeStart, rangeEnd time.Time) []MeetingDomain {
	domains := make([]MeetingDomain, 0, max(meetings, 0))
	for i := 0; i < meetings; i++ {
		domains = append(domains, NewMeetingDomain(rangeStart, rangeEnd))
	}
	return domains
}
