package property

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Expression is a Deriver backed by an expr-lang expression. The source is
// the expression environment: its fields and methods are addressed by Go
// name.
type Expression struct {
	code    string
	program *vm.Program
}

// Compile compiles code into an Expression.
func Compile(code string) (*Expression, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: the expression is required", ErrInvalidArgument)
	}

	program, err := expr.Compile(code)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to compile expression %q: %w", ErrInvalidArgument, code, err)
	}

	return &Expression{code: code, program: program}, nil
}

// Expr creates a property derived from an expression.
func Expr(name, code string) (Property, error) {
	e, err := Compile(code)
	if err != nil {
		return Property{}, fmt.Errorf("property %q: %w", name, err)
	}

	return New(name, e)
}

// Derive evaluates the expression against source.
func (e *Expression) Derive(source any) (any, error) {
	return expr.Run(e.program, source)
}

// String returns the expression source.
func (e *Expression) String() string {
	return e.code
}
