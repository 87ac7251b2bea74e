// Package driver loads conformance-suite manifests and syncs suites from
// git. A suite is a directory of Lox source fixtures described by a
// suite.yml manifest pairing each fixture with its expected output or error.
package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Suite represents the parsed contents of suite.yml.
type Suite struct {
	Path     string
	Name     string
	Fixtures []*Fixture
}

// Fixture pairs a Lox source file with the behaviour it pins down.
type Fixture struct {
	Name   string
	Source string
	Expect Expectation
}

// Expectation holds exactly one of: the stdout lines a fixture must produce,
// or a substring of the error it must fail with.
type Expectation struct {
	Output []string
	Error  string
}

// ValidationError aggregates suite manifest validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "suite: invalid manifest"
	}
	var b strings.Builder
	b.WriteString("suite manifest validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

type suiteFile struct {
	Name     string        `yaml:"name"`
	Fixtures []fixtureFile `yaml:"fixtures"`
}

type fixtureFile struct {
	Name   string          `yaml:"name"`
	Source string          `yaml:"source"`
	Expect expectationFile `yaml:"expect"`
}

type expectationFile struct {
	Output []string `yaml:"output,omitempty"`
	Error  string   `yaml:"error,omitempty"`
}

// LoadSuite parses suite.yml from disk, returning a validated suite.
func LoadSuite(path string) (*Suite, error) {
	if path == "" {
		return nil, fmt.Errorf("suite: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("suite: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("suite: open %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var raw suiteFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("suite: %s is empty", absPath)
		}
		return nil, fmt.Errorf("suite: parse %s: %w", absPath, err)
	}

	suite := raw.toSuite(absPath)
	if err := suite.validate(); err != nil {
		return nil, err
	}
	return suite, nil
}

// LoadSuiteDir loads the suite.yml inside dir.
func LoadSuiteDir(dir string) (*Suite, error) {
	return LoadSuite(filepath.Join(dir, "suite.yml"))
}

func (raw suiteFile) toSuite(path string) *Suite {
	suite := &Suite{
		Path: path,
		Name: strings.TrimSpace(raw.Name),
	}
	for _, f := range raw.Fixtures {
		suite.Fixtures = append(suite.Fixtures, &Fixture{
			Name:   strings.TrimSpace(f.Name),
			Source: strings.TrimSpace(f.Source),
			Expect: Expectation{
				Output: f.Expect.Output,
				Error:  f.Expect.Error,
			},
		})
	}
	return suite
}

// Dir returns the directory fixture sources are resolved against.
func (s *Suite) Dir() string {
	return filepath.Dir(s.Path)
}

// SourcePath resolves a fixture's source file against the suite directory.
func (s *Suite) SourcePath(f *Fixture) string {
	return filepath.Join(s.Dir(), f.Source)
}

func (s *Suite) validate() error {
	var issues []string
	if s.Name == "" {
		issues = append(issues, "suite name is required")
	}
	if len(s.Fixtures) == 0 {
		issues = append(issues, "suite declares no fixtures")
	}
	seen := make(map[string]struct{}, len(s.Fixtures))
	for idx, f := range s.Fixtures {
		label := f.Name
		if label == "" {
			label = fmt.Sprintf("fixture #%d", idx+1)
			issues = append(issues, fmt.Sprintf("%s is missing a name", label))
		}
		if _, dup := seen[f.Name]; dup && f.Name != "" {
			issues = append(issues, fmt.Sprintf("duplicate fixture name %q", f.Name))
		}
		seen[f.Name] = struct{}{}
		if f.Source == "" {
			issues = append(issues, fmt.Sprintf("%s is missing a source file", label))
		} else if filepath.IsAbs(f.Source) || strings.Contains(f.Source, "..") {
			issues = append(issues, fmt.Sprintf("%s source %q must be relative to the suite directory", label, f.Source))
		}
		if len(f.Expect.Output) > 0 && f.Expect.Error != "" {
			issues = append(issues, fmt.Sprintf("%s expects both output and an error", label))
		}
	}
	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}
