package constraint

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/mitchellh/mapstructure"
)

const DateLayout = "2006-01-02"

var operators = []Operator{Equal, NotEqual, Less, LessOrEqual, Greater, GreaterOrEqual}

// ParseOperator validates a textual operator.
func ParseOperator(s string) (Operator, error) {
	op := Operator(s)
	if !slices.Contains(operators, op) {
		return "", fmt.Errorf("%q is not a valid operator", s)
	}
	return op, nil
}

// ConstraintInput is the raw form of one constraint as it appears in an
// instance file. Unary constraints carry a date, binary constraints a right
// meeting index.
type ConstraintInput struct {
	Arity    int
	Left     int
	Operator string
	Right    int
	Date     string
}

// Input is a full problem instance: the number of meetings, the inclusive
// date range shared by every meeting and the constraints on their dates.
type Input struct {
	Meetings    int
	RangeStart  string `mapstructure:"rangeStart"`
	RangeEnd    string `mapstructure:"rangeEnd"`
	Constraints []ConstraintInput
}

// Range parses the instance's date range.
func (input Input) Range() (start, end time.Time, err error) {
	start, err = time.Parse(DateLayout, input.RangeStart)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("cannot parse range start: %v", err)
	}
	end, err = time.Parse(DateLayout, input.RangeEnd)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("cannot parse range end: %v", err)
	}
	return start, end, nil
}

// DateConstraints materializes the instance's constraints into their typed
// forms.
func (input Input) DateConstraints() ([]DateConstraint, error) {
	constraints := make([]DateConstraint, 0, len(input.Constraints))
	for i, raw := range input.Constraints {
		op, err := ParseOperator(raw.Operator)
		if err != nil {
			return nil, fmt.Errorf("constraint %v: %v", i, err)
		}

		switch raw.Arity {
		case 1:
			date, err := time.Parse(DateLayout, raw.Date)
			if err != nil {
				return nil, fmt.Errorf("constraint %v: cannot parse date: %v", i, err)
			}
			constraints = append(constraints, Unary{Meeting: raw.Left, Operator: op, Date: date})
		case 2:
			constraints = append(constraints, Binary{Left: raw.Left, Operator: op, Right: raw.Right})
		default:
			return nil, fmt.Errorf("constraint %v: arity must be 1 or 2, got %v", i, raw.Arity)
		}
	}
	return constraints, nil
}

// InputFromJson reads a problem instance from a JSON file.
func InputFromJson(file string) (Input, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Input{}, err
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return Input{}, err
	}

	var input Input
	if err := mapstructure.Decode(inputJson, &input); err != nil {
		return Input{}, err
	}

	return input, nil
}
