package interpreter

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"lox/interpreter-go/pkg/driver"
	"lox/interpreter-go/pkg/parser"
)

// FixtureResult reports a single fixture's outcome; Err is nil on pass.
type FixtureResult struct {
	Fixture *driver.Fixture
	Err     error
}

// RunSuite executes every fixture of a suite end to end (scan, parse,
// evaluate) with a fresh interpreter per fixture.
func RunSuite(suite *driver.Suite) []FixtureResult {
	results := make([]FixtureResult, 0, len(suite.Fixtures))
	for _, fixture := range suite.Fixtures {
		results = append(results, FixtureResult{
			Fixture: fixture,
			Err:     RunFixture(suite, fixture),
		})
	}
	return results
}

// RunFixture replays one fixture and compares observed behaviour against its
// expectation.
func RunFixture(suite *driver.Suite, fixture *driver.Fixture) error {
	source, err := os.ReadFile(suite.SourcePath(fixture))
	if err != nil {
		return fmt.Errorf("read fixture source: %w", err)
	}

	var stdout strings.Builder
	runErr := runSource(string(source), &stdout)

	if fixture.Expect.Error != "" {
		if runErr == nil {
			return fmt.Errorf("expected error containing %q, fixture succeeded", fixture.Expect.Error)
		}
		if !strings.Contains(runErr.Error(), fixture.Expect.Error) {
			return fmt.Errorf("expected error containing %q, got %q", fixture.Expect.Error, runErr.Error())
		}
		return nil
	}
	if runErr != nil {
		return fmt.Errorf("fixture failed: %w", runErr)
	}
	if diff := cmp.Diff(fixture.Expect.Output, outputLines(stdout.String()), cmpopts.EquateEmpty()); diff != "" {
		return fmt.Errorf("output mismatch (-want +got):\n%s", diff)
	}
	return nil
}

func runSource(source string, stdout *strings.Builder) error {
	statements, parseErrs := parser.ParseSource(source)
	if len(parseErrs) > 0 {
		return parseErrs[0]
	}
	_, err := NewWithOutput(stdout, false).Interpret(statements)
	return err
}

func outputLines(s string) []string {
	trimmed := strings.TrimRight(s, "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}
