package csp

import (
	"time"

	"calendarcsp/internal/constraint"

	"github.com/samber/lo"
)

// checkAssignment reports whether the assignment prefix violates no
// constraint. Constraints referencing a meeting not yet assigned are
// vacuously satisfied.
func checkAssignment(constraints []constraint.DateConstraint, assignment []time.Time) bool {
	return lo.EveryBy(constraints, func(c constraint.DateConstraint) bool {
		return c.Consistent(assignment)
	})
}

// backTracking extends the assignment one meeting at a time, trying the
// current meeting's remaining dates in ascending order and undoing any
// choice that cannot be completed. Returns the first complete assignment
// found, or nil when none exists.
func backTracking(assignment []time.Time, domains []MeetingDomain, meetings int, constraints []constraint.DateConstraint) []time.Time {
	if len(assignment) == meetings {
		result := make([]time.Time, meetings)
		copy(result, assignment)
		return result
	}

	index := len(assignment)
	for _, date := range domains[index].Sorted() {
		assignment = append(assignment, date)

		if checkAssignment(constraints, assignment) {
			if result := backTracking(assignment, domains, meetings, constraints); result != nil {
				return result
			}
		}

		assignment = assignment[:index]
	}
	return nil
}
