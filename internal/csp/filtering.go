package csp

import (
	"time"

	"calendarcsp/internal/constraint"

	"github.com/samber/lo"
)

// nodeConsistency removes from each meeting's domain every date that
// violates a unary constraint on that meeting. Binary constraints are left
// to arcConsistency. Unary constraints referencing a meeting outside the
// instance are ignored.
func nodeConsistency(domains []MeetingDomain, constraints []constraint.DateConstraint) {
	for _, c := range constraints {
		unary, ok := c.(constraint.Unary)
		if !ok || unary.Meeting < 0 || unary.Meeting >= len(domains) {
			continue
		}

		// Compute the retained set aside, then swap it in, so the domain is
		// never mutated while being traversed.
		domains[unary.Meeting].Values = lo.PickBy(domains[unary.Meeting].Values, func(date time.Time, _ bool) bool {
			return unary.SatisfiedBy(date)
		})
	}
}

// arc propagates a binary constraint in one direction: every date remaining
// in the tail's domain must have at least one supporting date in the head's
// domain.
type arc struct {
	tail, head int
	constraint constraint.Binary
}

// arcConsistency runs AC-3 over the binary constraints, shrinking the
// domains in place until they are directionally consistent. Binary
// constraints referencing a meeting outside the instance are ignored.
func arcConsistency(domains []MeetingDomain, constraints []constraint.DateConstraint) {
	arcs := make(map[arc]bool)
	for _, c := range constraints {
		binary, ok := c.(constraint.Binary)
		if !ok || binary.Left < 0 || binary.Left >= len(domains) || binary.Right < 0 || binary.Right >= len(domains) {
			continue
		}
		arcs[arc{tail: binary.Left, head: binary.Right, constraint: binary}] = true
		arcs[arc{tail: binary.Right, head: binary.Left, constraint: binary.Reversed()}] = true
	}

	worklist := make(map[arc]bool, len(arcs))
	for a := range arcs {
		worklist[a] = true
	}

	for len(worklist) > 0 {
		var next arc
		for a := range worklist {
			next = a
			break
		}
		delete(worklist, next)

		if revise(next, domains) {
			// The tail's domain shrank: every arc pointing into it may have
			// lost a support and must be revised again.
			for a := range arcs {
				if a.head == next.tail {
					worklist[a] = true
				}
			}
		}
	}
}

// revise removes from the tail's domain every date with no supporting date
// in the head's domain, reporting whether anything was removed.
func revise(a arc, domains []MeetingDomain) bool {
	tailDomain, headDomain := domains[a.tail], domains[a.head]
	headDates := lo.Keys(headDomain.Values)

	retained := lo.PickBy(tailDomain.Values, func(tailDate time.Time, _ bool) bool {
		return lo.SomeBy(headDates, func(headDate time.Time) bool {
			return a.constraint.SatisfiedBy(tailDate, headDate)
		})
	})

	removed := len(retained) < len(tailDomain.Values)
	domains[a.tail].Values = retained
	return removed
}
