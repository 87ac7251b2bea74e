package ast

import "lox/interpreter-go/pkg/token"

// Terse constructors for building trees by hand, mostly in tests. Operator
// and identifier tokens are synthesized on line 1 unless a caller builds its
// own token.

func ID(name string) *VariableExpression {
	return NewVariableExpression(token.New(token.Identifier, name, nil, 1))
}

func Str(value string) *StringLiteral {
	return NewStringLiteral(value)
}

func Num(value float64) *NumberLiteral {
	return NewNumberLiteral(value)
}

func Bool(value bool) *BooleanLiteral {
	return NewBooleanLiteral(value)
}

func Nil() *NilLiteral {
	return NewNilLiteral()
}

func Group(inner Expression) *GroupingExpression {
	return NewGroupingExpression(inner)
}

func Un(op token.Type, right Expression) *UnaryExpression {
	return NewUnaryExpression(opToken(op), right)
}

func Bin(op token.Type, left, right Expression) *BinaryExpression {
	return NewBinaryExpression(left, opToken(op), right)
}

func Logic(op token.Type, left, right Expression) *LogicalExpression {
	return NewLogicalExpression(left, opToken(op), right)
}

func Assign(name string, value Expression) *AssignmentExpression {
	return NewAssignmentExpression(token.New(token.Identifier, name, nil, 1), value)
}

func ExprStmt(expr Expression) *ExpressionStatement {
	return NewExpressionStatement(expr)
}

func Print(expr Expression) *PrintStatement {
	return NewPrintStatement(opToken(token.Print), expr)
}

func Var(name string, initializer Expression) *VarStatement {
	return NewVarStatement(token.New(token.Identifier, name, nil, 1), initializer)
}

func Block(statements ...Statement) *BlockStatement {
	return NewBlockStatement(statements)
}

func If(condition Expression, thenBranch, elseBranch Statement) *IfStatement {
	return NewIfStatement(opToken(token.If), condition, thenBranch, elseBranch)
}

func While(condition Expression, body Statement) *WhileStatement {
	return NewWhileStatement(opToken(token.While), condition, body)
}

func opToken(op token.Type) token.Token {
	return token.New(op, op.String(), nil, 1)
}
