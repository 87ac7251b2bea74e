package runtime

import "fmt"

// Error is a runtime failure tagged with the source line of the token that
// triggered it. It covers undefined variables, operand type mismatches, and
// internal malformed-result failures alike; callers distinguish them by
// message only, as the language has no catch construct.
type Error struct {
	Line    int
	Message string
}

// NewError constructs a line-tagged runtime error.
func NewError(line int, message string) *Error {
	return &Error{Line: line, Message: message}
}

func (e *Error) Error() string {
	return fmt.Sprintf("[line %d] %s", e.Line, e.Message)
}
