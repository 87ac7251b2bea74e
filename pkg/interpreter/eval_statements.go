package interpreter

import (
	"fmt"

	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/runtime"
)

func (i *Interpreter) executeStatement(node ast.Statement, env *runtime.Environment) error {
	switch n := node.(type) {
	case *ast.ExpressionStatement:
		_, err := i.evaluateExpression(n.Expression, env)
		return err
	case *ast.PrintStatement:
		return i.executePrint(n, env)
	case *ast.VarStatement:
		return i.executeVar(n, env)
	case *ast.BlockStatement:
		return i.executeBlock(n.Statements, runtime.NewEnvironment(env))
	case *ast.IfStatement:
		return i.executeIf(n, env)
	case *ast.WhileStatement:
		return i.executeWhile(n, env)
	default:
		return fmt.Errorf("unsupported statement type: %s", n.NodeType())
	}
}

// executeBlock runs statements against a freshly pushed child scope; the
// scope is discarded on return, so only assignments reaching outer scopes
// persist.
func (i *Interpreter) executeBlock(statements []ast.Statement, scope *runtime.Environment) error {
	for _, stmt := range statements {
		if err := i.executeStatement(stmt, scope); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) executePrint(stmt *ast.PrintStatement, env *runtime.Environment) error {
	val, err := i.evaluateExpression(stmt.Expression, env)
	if err != nil {
		return err
	}
	val, err = requireValue(val, stmt.Keyword)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(i.stdout, runtime.ToString(val))
	return err
}

func (i *Interpreter) executeVar(stmt *ast.VarStatement, env *runtime.Environment) error {
	var value runtime.Value
	if stmt.Initializer != nil {
		var err error
		value, err = i.evaluateExpression(stmt.Initializer, env)
		if err != nil {
			return err
		}
	}
	env.Define(stmt.Name.Lexeme, value)
	return nil
}

func (i *Interpreter) executeIf(stmt *ast.IfStatement, env *runtime.Environment) error {
	cond, err := i.evaluateExpression(stmt.Condition, env)
	if err != nil {
		return err
	}
	cond, err = requireValue(cond, stmt.Keyword)
	if err != nil {
		return err
	}
	if isTruthy(cond) {
		return i.executeStatement(stmt.ThenBranch, env)
	}
	if stmt.ElseBranch != nil {
		return i.executeStatement(stmt.ElseBranch, env)
	}
	return nil
}

func (i *Interpreter) executeWhile(stmt *ast.WhileStatement, env *runtime.Environment) error {
	for {
		cond, err := i.evaluateExpression(stmt.Condition, env)
		if err != nil {
			return err
		}
		cond, err = requireValue(cond, stmt.Keyword)
		if err != nil {
			return err
		}
		if !isTruthy(cond) {
			return nil
		}
		if err := i.executeStatement(stmt.Body, env); err != nil {
			return err
		}
	}
}
