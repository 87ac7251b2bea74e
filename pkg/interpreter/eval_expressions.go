package interpreter

import (
	"fmt"

	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/runtime"
	"lox/interpreter-go/pkg/token"
)

// evaluateExpression dispatches over the closed expression node set. A nil
// result with a nil error is the absent value: it arises only from reading a
// variable declared without an initializer, and from expressions that merely
// pass such a value through.
func (i *Interpreter) evaluateExpression(node ast.Expression, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.NumberLiteral:
		return runtime.NumberValue{Val: n.Value}, nil
	case *ast.StringLiteral:
		return runtime.StringValue{Val: n.Value}, nil
	case *ast.BooleanLiteral:
		return runtime.BoolValue{Val: n.Value}, nil
	case *ast.NilLiteral:
		return runtime.NilValue{}, nil
	case *ast.GroupingExpression:
		return i.evaluateExpression(n.Expression, env)
	case *ast.VariableExpression:
		return env.Get(n.Name)
	case *ast.AssignmentExpression:
		return i.evaluateAssignment(n, env)
	case *ast.LogicalExpression:
		return i.evaluateLogical(n, env)
	case *ast.UnaryExpression:
		return i.evaluateUnary(n, env)
	case *ast.BinaryExpression:
		return i.evaluateBinary(n, env)
	default:
		return nil, fmt.Errorf("unsupported expression type: %s", n.NodeType())
	}
}

// evaluateAssignment mutates the scope where the name was declared and
// returns the assigned value, so assignments compose as expressions.
func (i *Interpreter) evaluateAssignment(expr *ast.AssignmentExpression, env *runtime.Environment) (runtime.Value, error) {
	value, err := i.evaluateExpression(expr.Value, env)
	if err != nil {
		return nil, err
	}
	if err := env.Assign(expr.Name, value); err != nil {
		return nil, err
	}
	return value, nil
}

// evaluateLogical short-circuits symmetrically: `or` returns a truthy left
// operand unevaluated-right, `and` returns a falsy one. The deciding
// operand's value is returned untouched rather than coerced to bool. An
// absent left operand never decides; the right operand is evaluated and
// returned as-is.
func (i *Interpreter) evaluateLogical(expr *ast.LogicalExpression, env *runtime.Environment) (runtime.Value, error) {
	left, err := i.evaluateExpression(expr.Left, env)
	if err != nil {
		return nil, err
	}
	if left != nil {
		if expr.Operator.Type == token.Or && isTruthy(left) {
			return left, nil
		}
		if expr.Operator.Type == token.And && !isTruthy(left) {
			return left, nil
		}
	}
	return i.evaluateExpression(expr.Right, env)
}

func (i *Interpreter) evaluateUnary(expr *ast.UnaryExpression, env *runtime.Environment) (runtime.Value, error) {
	right, err := i.evaluateExpression(expr.Right, env)
	if err != nil {
		return nil, err
	}
	right, err = requireValue(right, expr.Operator)
	if err != nil {
		return nil, err
	}
	switch expr.Operator.Type {
	case token.Bang:
		return runtime.BoolValue{Val: !isTruthy(right)}, nil
	case token.Minus:
		num, ok := right.(runtime.NumberValue)
		if !ok {
			return nil, runtime.NewError(expr.Operator.Line, "Operand must be a number.")
		}
		return runtime.NumberValue{Val: -num.Val}, nil
	default:
		return nil, runtime.NewError(expr.Operator.Line, fmt.Sprintf("Unknown unary operator '%s'.", expr.Operator.Lexeme))
	}
}

func (i *Interpreter) evaluateBinary(expr *ast.BinaryExpression, env *runtime.Environment) (runtime.Value, error) {
	left, err := i.evaluateExpression(expr.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluateExpression(expr.Right, env)
	if err != nil {
		return nil, err
	}

	// Equality tolerates absent operands; everything else requires values.
	switch expr.Operator.Type {
	case token.EqualEqual:
		return runtime.BoolValue{Val: isEqual(left, right)}, nil
	case token.BangEqual:
		return runtime.BoolValue{Val: !isEqual(left, right)}, nil
	}

	if left, err = requireValue(left, expr.Operator); err != nil {
		return nil, err
	}
	if right, err = requireValue(right, expr.Operator); err != nil {
		return nil, err
	}

	switch expr.Operator.Type {
	case token.Minus:
		l, r, err := numberOperands(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return runtime.NumberValue{Val: l - r}, nil
	case token.Slash:
		// IEEE float division: /0 yields Inf or NaN, not an error.
		l, r, err := numberOperands(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return runtime.NumberValue{Val: l / r}, nil
	case token.Star:
		l, r, err := numberOperands(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return runtime.NumberValue{Val: l * r}, nil
	case token.Plus:
		if ln, ok := left.(runtime.NumberValue); ok {
			if rn, ok := right.(runtime.NumberValue); ok {
				return runtime.NumberValue{Val: ln.Val + rn.Val}, nil
			}
		}
		if ls, ok := left.(runtime.StringValue); ok {
			if rs, ok := right.(runtime.StringValue); ok {
				return runtime.StringValue{Val: ls.Val + rs.Val}, nil
			}
		}
		return nil, runtime.NewError(expr.Operator.Line, "Operands must be two numbers or two strings.")
	case token.Greater:
		l, r, err := numberOperands(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return runtime.BoolValue{Val: l > r}, nil
	case token.GreaterEqual:
		l, r, err := numberOperands(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return runtime.BoolValue{Val: l >= r}, nil
	case token.Less:
		l, r, err := numberOperands(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return runtime.BoolValue{Val: l < r}, nil
	case token.LessEqual:
		l, r, err := numberOperands(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return runtime.BoolValue{Val: l <= r}, nil
	default:
		return nil, runtime.NewError(expr.Operator.Line, "Operands must be two numbers or two strings.")
	}
}

// isTruthy reproduces the language's truthiness rule exactly: nil and false
// are falsy, every other value is truthy, including 0 and "".
func isTruthy(val runtime.Value) bool {
	switch v := val.(type) {
	case runtime.BoolValue:
		return v.Val
	case runtime.NilValue:
		return false
	case nil:
		return false
	default:
		return true
	}
}

// isEqual is structural value equality. An absent operand is equal to
// nothing, not even another absent operand; nil-the-value equals itself.
func isEqual(a, b runtime.Value) bool {
	if a == nil || b == nil {
		return false
	}
	return a == b
}

// requireValue enforces the grammar's guarantee that operand and condition
// positions always hold a value; an absent result here is a defect, reported
// against the nearest operator or keyword token.
func requireValue(val runtime.Value, tok token.Token) (runtime.Value, error) {
	if val == nil {
		return nil, runtime.NewError(tok.Line, "Expression yielded no value.")
	}
	return val, nil
}

func numberOperands(operator token.Token, left, right runtime.Value) (float64, float64, error) {
	l, lok := left.(runtime.NumberValue)
	r, rok := right.(runtime.NumberValue)
	if !lok || !rok {
		return 0, 0, runtime.NewError(operator.Line, "Operands must be numbers.")
	}
	return l.Val, r.Val, nil
}
