package parser

import (
	"strings"
	"testing"

	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/token"
)

func parseOne(t *testing.T, source string) ast.Statement {
	t.Helper()
	statements, errs := ParseSource(source)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	if len(statements) != 1 {
		t.Fatalf("expected one statement, got %d", len(statements))
	}
	return statements[0]
}

func TestParseVarDeclaration(t *testing.T) {
	stmt := parseOne(t, "var x = 1;")
	varStmt, ok := stmt.(*ast.VarStatement)
	if !ok {
		t.Fatalf("unexpected statement %#v", stmt)
	}
	if varStmt.Name.Lexeme != "x" {
		t.Fatalf("variable name = %q", varStmt.Name.Lexeme)
	}
	if lit, ok := varStmt.Initializer.(*ast.NumberLiteral); !ok || lit.Value != 1 {
		t.Fatalf("initializer = %#v", varStmt.Initializer)
	}
}

func TestParseVarWithoutInitializer(t *testing.T) {
	stmt := parseOne(t, "var x;")
	varStmt, ok := stmt.(*ast.VarStatement)
	if !ok {
		t.Fatalf("unexpected statement %#v", stmt)
	}
	if varStmt.Initializer != nil {
		t.Fatalf("expected nil initializer, got %#v", varStmt.Initializer)
	}
}

func TestParsePrecedence(t *testing.T) {
	stmt := parseOne(t, "1 + 2 * 3;")
	expr := stmt.(*ast.ExpressionStatement).Expression
	sum, ok := expr.(*ast.BinaryExpression)
	if !ok || sum.Operator.Type != token.Plus {
		t.Fatalf("top-level operator = %#v", expr)
	}
	product, ok := sum.Right.(*ast.BinaryExpression)
	if !ok || product.Operator.Type != token.Star {
		t.Fatalf("multiplication did not bind tighter: %#v", sum.Right)
	}
}

func TestParseGroupingOverridesPrecedence(t *testing.T) {
	stmt := parseOne(t, "(1 + 2) * 3;")
	expr := stmt.(*ast.ExpressionStatement).Expression
	product, ok := expr.(*ast.BinaryExpression)
	if !ok || product.Operator.Type != token.Star {
		t.Fatalf("top-level operator = %#v", expr)
	}
	if _, ok := product.Left.(*ast.GroupingExpression); !ok {
		t.Fatalf("grouping lost: %#v", product.Left)
	}
}

func TestParseLogicalPrecedence(t *testing.T) {
	stmt := parseOne(t, "a or b and c;")
	expr := stmt.(*ast.ExpressionStatement).Expression
	or, ok := expr.(*ast.LogicalExpression)
	if !ok || or.Operator.Type != token.Or {
		t.Fatalf("top-level operator = %#v", expr)
	}
	and, ok := or.Right.(*ast.LogicalExpression)
	if !ok || and.Operator.Type != token.And {
		t.Fatalf("`and` did not bind tighter: %#v", or.Right)
	}
}

func TestParseAssignmentIsRightAssociative(t *testing.T) {
	stmt := parseOne(t, "a = b = 1;")
	expr := stmt.(*ast.ExpressionStatement).Expression
	outer, ok := expr.(*ast.AssignmentExpression)
	if !ok || outer.Name.Lexeme != "a" {
		t.Fatalf("unexpected expression %#v", expr)
	}
	inner, ok := outer.Value.(*ast.AssignmentExpression)
	if !ok || inner.Name.Lexeme != "b" {
		t.Fatalf("nested assignment missing: %#v", outer.Value)
	}
}

func TestParseInvalidAssignmentTarget(t *testing.T) {
	_, errs := ParseSource("1 = 2;")
	if len(errs) == 0 {
		t.Fatalf("expected a parse error")
	}
	if errs[0].Message != "Invalid assignment target." {
		t.Fatalf("unexpected error %#v", errs[0])
	}
}

func TestParseIfElseAttachesToNearestIf(t *testing.T) {
	stmt := parseOne(t, "if (a) if (b) print 1; else print 2;")
	outer := stmt.(*ast.IfStatement)
	if outer.ElseBranch != nil {
		t.Fatalf("else bound to outer if: %#v", outer.ElseBranch)
	}
	inner := outer.ThenBranch.(*ast.IfStatement)
	if inner.ElseBranch == nil {
		t.Fatalf("else lost from inner if")
	}
}

func TestParseWhile(t *testing.T) {
	stmt := parseOne(t, "while (i < 3) { i = i + 1; }")
	while, ok := stmt.(*ast.WhileStatement)
	if !ok {
		t.Fatalf("unexpected statement %#v", stmt)
	}
	if _, ok := while.Condition.(*ast.BinaryExpression); !ok {
		t.Fatalf("condition = %#v", while.Condition)
	}
	block, ok := while.Body.(*ast.BlockStatement)
	if !ok || len(block.Statements) != 1 {
		t.Fatalf("body = %#v", while.Body)
	}
}

func TestParseBlockNesting(t *testing.T) {
	stmt := parseOne(t, "{ var x = 1; { print x; } }")
	outer := stmt.(*ast.BlockStatement)
	if len(outer.Statements) != 2 {
		t.Fatalf("outer block statements = %d", len(outer.Statements))
	}
	if _, ok := outer.Statements[1].(*ast.BlockStatement); !ok {
		t.Fatalf("nested block missing: %#v", outer.Statements[1])
	}
}

func TestParseErrorCarriesLine(t *testing.T) {
	_, errs := ParseSource("print 1;\nprint ;")
	if len(errs) != 1 {
		t.Fatalf("expected one error, got %v", errs)
	}
	if errs[0].Line != 2 {
		t.Fatalf("error line = %d, want 2", errs[0].Line)
	}
	if errs[0].Message != "Expect expression." {
		t.Fatalf("unexpected message %q", errs[0].Message)
	}
}

func TestParseSynchronizesAfterError(t *testing.T) {
	statements, errs := ParseSource("var = 1;\nprint 2;\nvar 3;\nprint 4;")
	if len(errs) != 2 {
		t.Fatalf("expected two errors, got %v", errs)
	}
	// The two well-formed statements survive.
	if len(statements) != 2 {
		t.Fatalf("expected two recovered statements, got %d", len(statements))
	}
	for _, err := range errs {
		if !strings.Contains(err.Message, "Expect variable name.") {
			t.Fatalf("unexpected error %#v", err)
		}
	}
}

func TestParseReportsScanErrors(t *testing.T) {
	_, errs := ParseSource("print @;")
	if len(errs) == 0 {
		t.Fatalf("expected lexical error to surface")
	}
	if !strings.Contains(errs[0].Message, "Unexpected character") {
		t.Fatalf("unexpected error %#v", errs[0])
	}
}
