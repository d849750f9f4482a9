package calc

import (
	"errors"
	"fmt"
)

var errNotEvaluable = errors.New("operation cannot be evaluated")

// Eval applies an operation to the operands and returns a canonical result.
//
// Binary operations combine x and y. Unary operations use x and ignore y.
// [PercentAdditive] returns y percent of x, and [PercentMultiplicative]
// returns y / 100.
// Memory operations and [NoOp] cannot be evaluated, see [Memory.Apply].
//
// Eval returns a wrapped [Fault] if the operation fails.
func Eval(op Operation, x, y Value) (Value, error) {
	switch op {
	case Add:
		return x.Add(y)
	case Subtract:
		return x.Sub(y)
	case Multiply:
		return x.Mul(y)
	case Divide:
		return x.Quo(y)
	case SquareRoot:
		return x.Sqrt()
	case Square:
		return x.Sqr()
	case Reciprocal:
		return x.Inv()
	case Negate:
		return x.Neg(), nil
	case PercentAdditive:
		return x.PercentOf(y)
	case PercentMultiplicative:
		return y.Hundredth()
	}
	return Value{}, fmt.Errorf("evaluating %v: %w", op, errNotEvaluable)
}

// PercentOp returns the percent operation used while op is pending.
// It returns [NoOp] if op is not a binary operation.
func PercentOp(op Operation) Operation {
	switch op {
	case Add, Subtract:
		return PercentAdditive
	case Multiply, Divide:
		return PercentMultiplicative
	}
	return NoOp
}

// Percent returns the right operand derived from a percentage key press,
// where x is the left operand and y is the displayed value.
// The result is zero when no binary operation is pending.
func Percent(pending Operation, x, y Value) (Value, error) {
	op := PercentOp(pending)
	if op == NoOp {
		return Value{}, nil
	}
	return Eval(op, x, y)
}
