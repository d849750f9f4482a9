package calc

import "strings"

// expr is an operand snapshot wrapped in zero or more unary operations.
// Nodes are never modified after construction, so formulas may share them.
type expr struct {
	op      Operation // NoOp for a bare operand
	operand string
	inner   *expr
}

func (e *expr) String() string {
	if e.op == NoOp {
		return e.operand
	}
	return e.op.Symbol() + "( " + e.inner.String() + " )"
}

// term is a completed left-hand expression followed by a binary operator.
type term struct {
	expr *expr
	op   Operation
}

// Formula type represents the expression trail shown above the display,
// such as "5 + √( 9 ) =".
// Its zero value is an empty trail.
//
// The trail is kept as a list of terms and an expression tree for the
// operand being built, so unary operations nest without inspecting the
// rendered text.
// Every method returns a new formula and leaves the receiver unchanged.
type Formula struct {
	terms   []term
	current *expr // operand expression, nil if not yet shown
	closed  bool  // ends with "="
}

// with returns a copy of f whose terms can be appended to without
// affecting f.
func (f Formula) with() Formula {
	g := f
	g.terms = make([]term, len(f.terms), len(f.terms)+1)
	copy(g.terms, f.terms)
	return g
}

func (f Formula) operand(operand string) *expr {
	if f.current != nil {
		return f.current
	}
	return &expr{operand: operand}
}

// Binary appends the current expression, or the operand if there is none,
// followed by op.
func (f Formula) Binary(operand string, op Operation) Formula {
	g := f.with()
	g.terms = append(g.terms, term{expr: f.operand(operand), op: op})
	g.current = nil
	g.closed = false
	return g
}

// ReplaceOperator replaces the operator of the last term and drops the
// current expression.
func (f Formula) ReplaceOperator(op Operation) Formula {
	if len(f.terms) == 0 {
		return f
	}
	g := f.with()
	g.terms[len(g.terms)-1].op = op
	g.current = nil
	return g
}

// Unary wraps the current expression, or the operand if there is none,
// into op.
func (f Formula) Unary(op Operation, operand string) Formula {
	g := f
	g.current = &expr{op: op, inner: f.operand(operand)}
	return g
}

// Set replaces the current expression with the operand.
func (f Formula) Set(operand string) Formula {
	g := f
	g.current = &expr{operand: operand}
	return g
}

// Discard drops the current expression.
func (f Formula) Discard() Formula {
	g := f
	g.current = nil
	return g
}

// Equals completes the trail with the current expression, or the operand
// if there is none, followed by "=".
func (f Formula) Equals(operand string) Formula {
	g := f
	g.current = f.operand(operand)
	g.closed = true
	return g
}

// Closed returns true if the trail ends with "=".
func (f Formula) Closed() bool {
	return f.closed
}

// Pending returns true if the trail ends with a binary operator term
// that has not been completed by "=".
func (f Formula) Pending() bool {
	return len(f.terms) > 0 && !f.closed
}

// String method implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (f Formula) String() string {
	tokens := make([]string, 0, 2*len(f.terms)+2)
	for _, t := range f.terms {
		tokens = append(tokens, t.expr.String(), t.op.Symbol())
	}
	if f.current != nil {
		tokens = append(tokens, f.current.String())
	}
	if f.closed {
		tokens = append(tokens, "=")
	}
	return strings.Join(tokens, " ")
}
