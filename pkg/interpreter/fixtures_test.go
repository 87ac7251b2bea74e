package interpreter

import (
	"path/filepath"
	"testing"

	"lox/interpreter-go/pkg/driver"
)

func TestCoreConformanceSuite(t *testing.T) {
	suite, err := driver.LoadSuiteDir(filepath.Join("testdata", "core"))
	if err != nil {
		t.Fatalf("load suite: %v", err)
	}
	for _, result := range RunSuite(suite) {
		t.Run(result.Fixture.Name, func(t *testing.T) {
			if result.Err != nil {
				t.Fatalf("fixture failed: %v", result.Err)
			}
		})
	}
}

func TestRunFixtureReportsOutputMismatch(t *testing.T) {
	suite, err := driver.LoadSuiteDir(filepath.Join("testdata", "core"))
	if err != nil {
		t.Fatalf("load suite: %v", err)
	}
	broken := &driver.Fixture{
		Name:   "broken-expectation",
		Source: "concat.lox",
		Expect: driver.Expectation{Output: []string{"not-ab"}},
	}
	if err := RunFixture(suite, broken); err == nil {
		t.Fatalf("expected mismatch error")
	}
}
