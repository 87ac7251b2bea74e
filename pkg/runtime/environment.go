package runtime

import (
	"fmt"
	"sort"

	"lox/interpreter-go/pkg/token"
)

// Environment provides lexical scoping for Lox runtime values. Scopes form a
// singly-linked chain from the innermost block out to the globals; the chain
// is shared by pointer, so a scope retained elsewhere outlives the block that
// created it.
type Environment struct {
	values    map[string]Value
	enclosing *Environment
}

// NewEnvironment creates a new environment, optionally nested under an
// enclosing one.
func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{
		values:    make(map[string]Value),
		enclosing: enclosing,
	}
}

// Enclosing exposes the lexical parent (nil when global).
func (e *Environment) Enclosing() *Environment {
	return e.enclosing
}

// Define inserts or shadows a binding in the current scope. A nil value
// records a declared-but-uninitialized variable. Redefinition is not an
// error; the previous binding is replaced.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Get retrieves a binding, searching outward through the scope chain. The
// returned value is nil for a variable declared without an initializer. The
// error is tagged with the referencing token's line.
func (e *Environment) Get(name token.Token) (Value, error) {
	if v, ok := e.values[name.Lexeme]; ok {
		return v, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, NewError(name.Line, fmt.Sprintf("Undefined variable '%s'.", name.Lexeme))
}

// Assign updates an existing binding in the first scope of the chain that
// contains it. It never creates a binding; assigning an undeclared name is
// the same undefined-variable error as Get.
func (e *Environment) Assign(name token.Token, value Value) error {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = value
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value)
	}
	return NewError(name.Line, fmt.Sprintf("Undefined variable '%s'.", name.Lexeme))
}

// Keys returns the names bound in this scope in sorted order (useful for
// determinism in tests).
func (e *Environment) Keys() []string {
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
