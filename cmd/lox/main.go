package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"lox/interpreter-go/pkg/driver"
	"lox/interpreter-go/pkg/interpreter"
	"lox/interpreter-go/pkg/parser"
	"lox/interpreter-go/pkg/runtime"
)

const cliToolVersion = "lox-cli 0.1.0-dev"

// Exit codes follow the usual interpreter convention: 65 for malformed
// input, 70 for a runtime failure.
const (
	exitOK      = 0
	exitUsage   = 1
	exitData    = 65
	exitRuntime = 70
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		return runREPL()
	}
	switch args[0] {
	case "--help", "-h", "help":
		printUsage()
		return exitOK
	case "--version", "-V", "version":
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return exitOK
	case "repl":
		return runREPL()
	case "run":
		if len(args) != 2 {
			fmt.Fprintln(os.Stderr, "usage: lox run <script.lox>")
			return exitUsage
		}
		return runScript(args[1])
	case "suite":
		return runSuiteCommand(args[1:])
	default:
		if len(args) == 1 {
			return runScript(args[0])
		}
		fmt.Fprintf(os.Stderr, "unexpected arguments: %s\n", strings.Join(args[1:], " "))
		printUsage()
		return exitUsage
	}
}

func printUsage() {
	fmt.Fprintln(os.Stdout, `Usage:
  lox                      start an interactive session
  lox <script.lox>         execute a script
  lox run <script.lox>     execute a script
  lox repl                 start an interactive session
  lox suite run <dir>      run the conformance suite in <dir>
  lox suite sync <url> [rev]
                           fetch a conformance suite repository into the
                           cache (LOX_HOME, default ~/.lox)
  lox version              print the CLI version`)
}

// runScript executes a file in script mode: the first failure stops the run.
func runScript(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", path, err)
		return exitUsage
	}
	statements, parseErrs := parser.ParseSource(string(source))
	if len(parseErrs) > 0 {
		for _, perr := range parseErrs {
			fmt.Fprintln(os.Stderr, perr)
		}
		return exitData
	}
	if _, err := interpreter.New().Interpret(statements); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitRuntime
	}
	return exitOK
}

// runREPL keeps one interpreter (and so one global scope) alive across
// lines; a failed line is reported and the session continues.
func runREPL() int {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	fmt.Fprintln(os.Stdout, cliToolVersion)
	interp := interpreter.NewREPL(os.Stdout)

	for {
		input, err := line.Prompt("> ")
		switch {
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(os.Stdout)
			return exitOK
		case err != nil:
			fmt.Fprintf(os.Stderr, "read input: %v\n", err)
			return exitUsage
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		line.AppendHistory(input)

		statements, parseErrs := parser.ParseSource(input)
		if len(parseErrs) > 0 {
			for _, perr := range parseErrs {
				fmt.Fprintln(os.Stderr, perr)
			}
			continue
		}
		value, err := interp.Interpret(statements)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		if value != nil {
			fmt.Fprintln(os.Stdout, runtime.ToString(value))
		}
	}
}

func runSuiteCommand(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: lox suite run <dir> | lox suite sync <url> [rev]")
		return exitUsage
	}
	switch args[0] {
	case "sync":
		if len(args) < 2 || len(args) > 3 {
			fmt.Fprintln(os.Stderr, "usage: lox suite sync <url> [rev]")
			return exitUsage
		}
		rev := ""
		if len(args) == 3 {
			rev = args[2]
		}
		cacheDir, err := resolveLoxHome()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to resolve LOX_HOME: %v\n", err)
			return exitUsage
		}
		dest, err := driver.SyncSuite(cacheDir, args[1], rev)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return exitUsage
		}
		fmt.Fprintf(os.Stdout, "Suite synced: %s\n", dest)
		return exitOK
	case "run":
		if len(args) != 2 {
			fmt.Fprintln(os.Stderr, "usage: lox suite run <dir>")
			return exitUsage
		}
		return runSuiteDir(args[1])
	default:
		if len(args) == 1 {
			return runSuiteDir(args[0])
		}
		fmt.Fprintln(os.Stderr, "usage: lox suite run <dir> | lox suite sync <url> [rev]")
		return exitUsage
	}
}

func runSuiteDir(dir string) int {
	suite, err := driver.LoadSuiteDir(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load suite: %v\n", err)
		return exitUsage
	}
	failures := 0
	for _, result := range interpreter.RunSuite(suite) {
		if result.Err != nil {
			failures++
			fmt.Fprintf(os.Stdout, "FAIL %s: %v\n", result.Fixture.Name, result.Err)
			continue
		}
		fmt.Fprintf(os.Stdout, "ok   %s\n", result.Fixture.Name)
	}
	fmt.Fprintf(os.Stdout, "%s: %d fixtures, %d failed\n", suite.Name, len(suite.Fixtures), failures)
	if failures > 0 {
		return exitData
	}
	return exitOK
}

// resolveLoxHome returns the cache directory, honouring LOX_HOME and
// defaulting to ~/.lox.
func resolveLoxHome() (string, error) {
	if custom := os.Getenv("LOX_HOME"); custom != "" {
		return custom, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine home directory: %w", err)
	}
	return filepath.Join(home, ".lox"), nil
}
