package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"calendarcsp/internal/constraint"
	"calendarcsp/internal/csp"

	"github.com/onsi/gomega/gmeasure"
)

const samplesPerConfig = 30

type instanceConfig struct {
	Meetings    int
	RangeDays   int
	Constraints int
}

func (config instanceConfig) Name() string {
	return fmt.Sprintf("meetings=%v days=%v constraints=%v", config.Meetings, config.RangeDays, config.Constraints)
}

var rangeStart = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

func main() {
	configs := []instanceConfig{
		{Meetings: 3, RangeDays: 10, Constraints: 4},
		{Meetings: 5, RangeDays: 20, Constraints: 8},
		{Meetings: 8, RangeDays: 30, Constraints: 16},
		{Meetings: 10, RangeDays: 60, Constraints: 24},
	}

	solver := csp.NewSolver()

	for _, config := range configs {
		experiment := gmeasure.NewExperiment(config.Name())
		unsatisfiable := 0

		experiment.Sample(func(idx int) {
			rng := rand.New(rand.NewSource(int64(idx)))
			constraints := makeInstance(rng, config)
			rangeEnd := rangeStart.AddDate(0, 0, config.RangeDays-1)

			experiment.MeasureDuration("solve", func() {
				schedule, err := solver.Solve(config.Meetings, rangeStart, rangeEnd, constraints)
				if err != nil {
					log.Fatal(err)
				} else if schedule == nil {
					unsatisfiable++
				} else if !solver.Verify(schedule, constraints) {
					log.Fatalf("verification failed on instance %v of %v", idx, config.Name())
				}
			})
		}, gmeasure.SamplingConfig{N: samplesPerConfig})

		fmt.Println(experiment.String())
		fmt.Printf("unsatisfiable instances: %v/%v\n\n", unsatisfiable, samplesPerConfig)
	}
}

// makeInstance generates a reproducible random instance: roughly one unary
// constraint for every three binary ones, all referencing meetings and dates
// within the instance.
func makeInstance(rng *rand.Rand, config instanceConfig) []constraint.DateConstraint {
	operators := []constraint.Operator{
		constraint.Equal,
		constraint.NotEqual,
		constraint.Less,
		constraint.LessOrEqual,
		constraint.Greater,
		constraint.GreaterOrEqual,
	}

	constraints := make([]constraint.DateConstraint, 0, config.Constraints)
	for i := 0; i < config.Constraints; i++ {
		op := operators[rng.Intn(len(operators))]

		if rng.Intn(4) == 0 {
			constraints = append(constraints, constraint.Unary{
				Meeting:  rng.Intn(config.Meetings),
				Operator: op,
				Date:     rangeStart.AddDate(0, 0, rng.Intn(config.RangeDays)),
			})
			continue
		}

		left := rng.Intn(config.Meetings)
		right := rng.Intn(config.Meetings)
		for right == left {
			right = rng.Intn(config.Meetings)
		}
		constraints = append(constraints, constraint.Binary{Left: left, Operator: op, Right: right})
	}
	return constraints
}
