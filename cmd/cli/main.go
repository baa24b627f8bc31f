package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"calendarcsp/internal/constraint"
	"calendarcsp/internal/csp"

	"github.com/samber/lo"
)

func main() {
	// Define arguments
	filePathPtr := flag.String("file", "", "Path to the JSON instance file")
	outFilePathPtr := flag.String("out", "", "Path to the file where the schedule will be written; if empty, it'll be written into the Standard Output")
	flag.Parse()
	filePath := *filePathPtr
	outFile := *outFilePathPtr

	// Validate arguments
	if filePath == "" {
		log.Fatal("an instance file must be specified")
	}

	input, err := constraint.InputFromJson(filePath)
	if err != nil {
		log.Fatalf("cannot parse instance file: %v", err)
	}

	rangeStart, rangeEnd, err := input.Range()
	if err != nil {
		log.Fatal(err)
	}

	constraints, err := input.DateConstraints()
	if err != nil {
		log.Fatal(err)
	}

	solver := csp.NewSolver()
	schedule, err := solver.Solve(input.Meetings, rangeStart, rangeEnd, constraints)
	if err != nil {
		log.Fatal(err)
	} else if schedule == nil {
		fmt.Println("Not satisfiable")
		return
	}

	if !solver.Verify(schedule, constraints) {
		log.Fatal("Verification failed")
	}

	lines := lo.Map(schedule, func(scheduled time.Time, meeting int) string {
		return fmt.Sprintf("Meeting %v: %v", meeting, scheduled.Format(constraint.DateLayout))
	})
	output := strings.Join(lines, "\n") + "\n"

	if outFile == "" {
		fmt.Print(output)
	} else if err := os.WriteFile(outFile, []byte(output), 0644); err != nil {
		log.Fatalf("cannot write output file: %v", err)
	}
}
