package constraint

import "time"

// Operator compares two calendar dates.
type Operator string

const (
	Equal          Operator = "=="
	NotEqual       Operator = "!="
	Less           Operator = "<"
	LessOrEqual    Operator = "<="
	Greater        Operator = ">"
	GreaterOrEqual Operator = ">="
)

// SatisfiedBy reports whether left and right stand in the operator's relation.
func (op Operator) SatisfiedBy(left, right time.Time) bool {
	switch op {
	case Equal:
		return left.Equal(right)
	case NotEqual:
		return !left.Equal(right)
	case Less:
		return left.Before(right)
	case LessOrEqual:
		return left.Before(right) || left.Equal(right)
	case Greater:
		return left.After(right)
	case GreaterOrEqual:
		return left.After(right) || left.Equal(right)
	}
	return false
}

// Reversed returns the operator that holds for (right, left) exactly when op
// holds for (left, right).
func (op Operator) Reversed() Operator {
	switch op {
	case Less:
		return Greater
	case LessOrEqual:
		return GreaterOrEqual
	case Greater:
		return Less
	case GreaterOrEqual:
		return LessOrEqual
	}
	return op
}

// DateConstraint restricts the dates one or two meetings may be scheduled on.
type DateConstraint interface {
	Arity() int

	// Consistent reports whether the assignment prefix (index i holding the
	// date of meeting i) satisfies the constraint. Constraints referencing a
	// meeting beyond the prefix cannot be evaluated yet and are vacuously
	// consistent.
	Consistent(assignment []time.Time) bool
}

// Unary constrains a single meeting's date against a fixed date.
type Unary struct {
	Meeting  int
	Operator Operator
	Date     time.Time
}

func (c Unary) Arity() int {
	return 1
}

// SatisfiedBy reports whether the given date satisfies the constraint.
func (c Unary) SatisfiedBy(date time.Time) bool {
	return c.Operator.SatisfiedBy(date, c.Date)
}

func (c Unary) Consistent(assignment []time.Time) bool {
	if c.Meeting < 0 || c.Meeting >= len(assignment) {
		return true
	}
	return c.SatisfiedBy(assignment[c.Meeting])
}

// Binary constrains the dates of two meetings against each other.
type Binary struct {
	Left     int
	Operator Operator
	Right    int
}

func (c Binary) Arity() int {
	return 2
}

// SatisfiedBy reports whether the given pair of dates satisfies the
// constraint, left and right corresponding to the Left and Right meetings.
func (c Binary) SatisfiedBy(left, right time.Time) bool {
	return c.Operator.SatisfiedBy(left, right)
}

// Reversed returns the equivalent constraint with its operands swapped.
func (c Binary) Reversed() Binary {
	return Binary{
		Left:     c.Right,
		Operator: c.Operator.Reversed(),
		Right:    c.Left,
	}
}

func (c Binary) Consistent(assignment []time.Time) bool {
	if c.Left < 0 || c.Left >= len(assignment) || c.Right < 0 || c.Right >= len(assignment) {
		return true
	}
	return c.SatisfiedBy(assignment[c.Left], assignment[c.Right])
}
