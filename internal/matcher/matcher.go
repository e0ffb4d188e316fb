// Package matcher implements the demo host's option search. The live-select
// control never searches by itself; this package is the host-side half of the
// protocol, filtering a dataset against the query text carried by each change
// notification.
//
// Matching is expressed in CEL so the behavior is configurable from the
// command line. The expression sees two variables: `option`, a map with
// "label" and "value" keys, and `q`, the query text. It must evaluate to a
// bool.
package matcher

import (
	"fmt"

	"github.com/google/cel-go/cel"
	celext "github.com/google/cel-go/ext"

	"github.com/oakwood-commons/selx/pkg/selx"
)

// DefaultExpression is the substring match applied when no expression is
// supplied.
const DefaultExpression = `option.label.lowerAscii().contains(q.lowerAscii())`

// Matcher filters option lists with a compiled CEL predicate.
type Matcher struct {
	expr string
	prg  cel.Program
}

// New compiles the given CEL expression, or DefaultExpression when expr is
// empty. Compilation failures surface immediately so a bad --match flag is
// caught at startup, not on the first keystroke.
func New(expr string) (*Matcher, error) {
	if expr == "" {
		expr = DefaultExpression
	}

	env, err := cel.NewEnv(
		cel.Variable("option", cel.DynType),
		cel.Variable("q", cel.StringType),
		celext.Strings(),
	)
	if err != nil {
		return nil, fmt.Errorf("matcher: create CEL environment: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("matcher: compile %q: %w", expr, issues.Err())
	}
	// Expressions touching `option` type-check to dyn, so a non-bool result
	// can only be caught statically for fully typed expressions.
	out := ast.OutputType()
	if out != cel.BoolType && out != cel.DynType {
		return nil, fmt.Errorf("matcher: expression %q must evaluate to bool, got %s", expr, out)
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("matcher: build program for %q: %w", expr, err)
	}
	return &Matcher{expr: expr, prg: prg}, nil
}

// Expression returns the compiled expression text.
func (m *Matcher) Expression() string { return m.expr }

// Match evaluates the predicate for one option.
func (m *Matcher) Match(opt selx.Option, q string) (bool, error) {
	out, _, err := m.prg.Eval(map[string]any{
		"option": map[string]any{"label": opt.Label, "value": opt.Value},
		"q":      q,
	})
	if err != nil {
		return false, fmt.Errorf("matcher: eval %q against option %q: %w", m.expr, opt.Label, err)
	}
	b, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("matcher: expression %q returned %T, want bool", m.expr, out.Value())
	}
	return b, nil
}

// Filter returns the options matching the query, preserving input order.
func (m *Matcher) Filter(opts []selx.Option, q string) ([]selx.Option, error) {
	var out []selx.Option
	for _, opt := range opts {
		ok, err := m.Match(opt, q)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, opt)
		}
	}
	return out, nil
}
