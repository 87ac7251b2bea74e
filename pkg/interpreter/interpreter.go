// Package interpreter executes Lox syntax trees by direct recursive walk.
package interpreter

import (
	"io"
	"os"

	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/runtime"
)

// Interpreter drives evaluation of Lox AST nodes. Evaluation is synchronous
// and depth-first; block scopes nest on the call stack and the first failure
// aborts the remaining statement sequence.
type Interpreter struct {
	globals *runtime.Environment
	stdout  io.Writer
	repl    bool
}

// New returns a script-mode interpreter printing to stdout.
func New() *Interpreter {
	return NewWithOutput(os.Stdout, false)
}

// NewREPL returns an interactive-session interpreter: the value of the last
// top-level expression statement is surfaced by Interpret instead of being
// discarded.
func NewREPL(stdout io.Writer) *Interpreter {
	return NewWithOutput(stdout, true)
}

// NewWithOutput returns an interpreter writing print output to stdout.
func NewWithOutput(stdout io.Writer, repl bool) *Interpreter {
	return &Interpreter{
		globals: runtime.NewEnvironment(nil),
		stdout:  stdout,
		repl:    repl,
	}
}

// GlobalEnvironment returns the interpreter's root environment.
func (i *Interpreter) GlobalEnvironment() *runtime.Environment {
	return i.globals
}

// Interpret executes a statement sequence against the global scope, stopping
// at the first failure. In REPL mode it returns the value of the last
// top-level expression statement (nil when there was none, or when the
// expression yielded no value).
func (i *Interpreter) Interpret(statements []ast.Statement) (runtime.Value, error) {
	var last runtime.Value
	for _, stmt := range statements {
		if expr, ok := stmt.(*ast.ExpressionStatement); ok && i.repl {
			val, err := i.evaluateExpression(expr.Expression, i.globals)
			if err != nil {
				return nil, err
			}
			last = val
			continue
		}
		if err := i.executeStatement(stmt, i.globals); err != nil {
			return nil, err
		}
		last = nil
	}
	return last, nil
}
