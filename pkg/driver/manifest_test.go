package driver

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSuite(t *testing.T, dir, contents string) string {
	t.Helper()
	path := filepath.Join(dir, "suite.yml")
	if err := os.WriteFile(path, []byte(strings.TrimSpace(contents)+"\n"), 0o644); err != nil {
		t.Fatalf("write suite.yml: %v", err)
	}
	return path
}

func TestLoadSuite(t *testing.T) {
	dir := t.TempDir()
	path := writeSuite(t, dir, `
name: smoke
fixtures:
  - name: hello
    source: hello.lox
    expect:
      output:
        - hi
  - name: boom
    source: boom.lox
    expect:
      error: "Operands must be numbers."
`)

	suite, err := LoadSuite(path)
	if err != nil {
		t.Fatalf("LoadSuite: %v", err)
	}
	if suite.Name != "smoke" {
		t.Fatalf("suite name = %q", suite.Name)
	}
	if len(suite.Fixtures) != 2 {
		t.Fatalf("fixtures = %#v", suite.Fixtures)
	}
	if suite.Fixtures[0].Expect.Output[0] != "hi" {
		t.Fatalf("first expectation = %#v", suite.Fixtures[0].Expect)
	}
	if suite.Fixtures[1].Expect.Error != "Operands must be numbers." {
		t.Fatalf("second expectation = %#v", suite.Fixtures[1].Expect)
	}
	if got := suite.SourcePath(suite.Fixtures[0]); got != filepath.Join(dir, "hello.lox") {
		t.Fatalf("SourcePath = %q", got)
	}
}

func TestLoadSuiteRejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	path := writeSuite(t, dir, `
name: strict
fixturez:
  - name: typo
`)
	if _, err := LoadSuite(path); err == nil {
		t.Fatalf("expected unknown-field error")
	}
}

func TestLoadSuiteAggregatesValidationIssues(t *testing.T) {
	dir := t.TempDir()
	path := writeSuite(t, dir, `
name: ""
fixtures:
  - name: dup
    source: a.lox
  - name: dup
    source: b.lox
  - name: escape
    source: ../outside.lox
  - name: conflicted
    source: c.lox
    expect:
      output:
        - x
      error: boom
  - source: d.lox
`)
	_, err := LoadSuite(path)
	verr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	wantIssues := []string{
		"suite name is required",
		"duplicate fixture name",
		"must be relative to the suite directory",
		"expects both output and an error",
		"missing a name",
	}
	for _, want := range wantIssues {
		found := false
		for _, issue := range verr.Issues {
			if strings.Contains(issue, want) {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("missing issue containing %q in %v", want, verr.Issues)
		}
	}
}

func TestLoadSuiteEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "suite.yml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadSuite(path); err == nil {
		t.Fatalf("expected empty-manifest error")
	}
}

func TestLoadSuiteDirMissing(t *testing.T) {
	if _, err := LoadSuiteDir(t.TempDir()); err == nil {
		t.Fatalf("expected error for missing suite.yml")
	}
}
