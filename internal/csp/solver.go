// Package csp solves the calendar satisfaction problem: scheduling n
// meetings within a shared date range so that a set of unary and binary
// constraints on the meetings' dates all hold. Domains are pre-filtered for
// node and arc consistency (AC-3) before a backtracking search assigns
// dates meeting by meeting.
package csp

import (
	"fmt"
	"time"

	"calendarcsp/internal/constraint"
)

type Solver interface {
	// Solve schedules the given number of meetings, each on a date within
	// [rangeStart, rangeEnd] inclusive, such that every constraint holds.
	// Returns a nil schedule with a nil error when no such schedule exists
	// (these are valid outputs; an inverted range simply leaves every
	// domain empty). Constraints referencing meetings outside the instance
	// are ignored. A negative meeting count is an error.
	Solve(meetings int, rangeStart, rangeEnd time.Time, constraints []constraint.DateConstraint) ([]time.Time, error)

	// Verify reports whether the schedule satisfies every constraint whose
	// referenced meetings are all within the schedule.
	Verify(schedule []time.Time, constraints []constraint.DateConstraint) bool
}

func NewSolver() Solver {
	return &backtrackingSolver{}
}

type backtrackingSolver struct{}

func (solver *backtrackingSolver) Solve(meetings int, rangeStart, rangeEnd time.Time, constraints []constraint.DateConstraint) ([]time.Time, error) {
	if meetings < 0 {
		return nil, fmt.Errorf("meeting count must be non-negative: %v", meetings)
	}

	domains := generateDomains(meetings, rangeStart, rangeEnd)

	nodeConsistency(domains, constraints)
	arcConsistency(domains, constraints)

	assignment := make([]time.Time, 0, meetings)
	return backTracking(assignment, domains, meetings, constraints), nil
}

func (solver *backtrackingSolver) Verify(schedule []time.Time, constraints []constraint.DateConstraint) bool {
	return checkAssignment(constraints, schedule)
}
