package constraint

import (
	"os"
	"path"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseOperator(t *testing.T) {
	for _, valid := range []string{"==", "!=", "<", "<=", ">", ">="} {
		op, err := ParseOperator(valid)
		assert.Nil(t, err)
		assert.Equal(t, Operator(valid), op)
	}

	for _, invalid := range []string{"", "=", "<>", "before"} {
		_, err := ParseOperator(invalid)
		assert.NotNil(t, err, "%q must be rejected", invalid)
	}
}

func TestInputRange(t *testing.T) {
	input := Input{RangeStart: "2026-03-01", RangeEnd: "2026-03-05"}

	start, end, err := input.Range()

	assert.Nil(t, err)
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC), end)

	_, _, err = Input{RangeStart: "03/01/2026", RangeEnd: "2026-03-05"}.Range()
	assert.NotNil(t, err)
}

func TestDateConstraints(t *testing.T) {
	t.Run("Correct flow", func(t *testing.T) {
		//** Arrange
		input := Input{
			Constraints: []ConstraintInput{
				{Arity: 1, Left: 0, Operator: "==", Date: "2026-03-02"},
				{Arity: 2, Left: 0, Operator: "<", Right: 1},
			},
		}

		//** Act
		constraints, err := input.DateConstraints()

		//** Assert
		assert.Nil(t, err)
		assert.Equal(t, []DateConstraint{
			Unary{Meeting: 0, Operator: Equal, Date: date(2)},
			Binary{Left: 0, Operator: Less, Right: 1},
		}, constraints)
	})

	t.Run("Invalid operator", func(t *testing.T) {
		input := Input{Constraints: []ConstraintInput{{Arity: 2, Left: 0, Operator: "<>", Right: 1}}}
		_, err := input.DateConstraints()
		assert.NotNil(t, err)
	})

	t.Run("Invalid date", func(t *testing.T) {
		input := Input{Constraints: []ConstraintInput{{Arity: 1, Left: 0, Operator: "==", Date: "tomorrow"}}}
		_, err := input.DateConstraints()
		assert.NotNil(t, err)
	})

	t.Run("Invalid arity", func(t *testing.T) {
		input := Input{Constraints: []ConstraintInput{{Arity: 3, Left: 0, Operator: "==", Right: 1}}}
		_, err := input.DateConstraints()
		assert.NotNil(t, err)
	})
}

func TestInputFromJson(t *testing.T) {
	//** Arrange
	file := path.Join(t.TempDir(), "instance.json")
	contents := `{
		"meetings": 2,
		"rangeStart": "2026-03-01",
		"rangeEnd": "2026-03-07",
		"constraints": [
			{"arity": 1, "left": 0, "operator": "!=", "date": "2026-03-03"},
			{"arity": 2, "left": 0, "operator": "<=", "right": 1}
		]
	}`
	assert.Nil(t, os.WriteFile(file, []byte(contents), 0644))

	//** Act
	input, err := InputFromJson(file)

	//** Assert
	assert.Nil(t, err)
	assert.Equal(t, 2, input.Meetings)
	assert.Equal(t, "2026-03-01", input.RangeStart)
	assert.Equal(t, "2026-03-07", input.RangeEnd)
	assert.Equal(t, []ConstraintInput{
		{Arity: 1, Left: 0, Operator: "!=", Date: "2026-03-03"},
		{Arity: 2, Left: 0, Operator: "<=", Right: 1},
	}, input.Constraints)

	_, err = InputFromJson(path.Join(t.TempDir(), "missing.json"))
	assert.NotNil(t, err)
}
