package calc

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

const (
	// WorkPrec is the number of significant digits kept by arithmetic results.
	WorkPrec = 32
	// MaxExp is the largest magnitude of an adjusted exponent that a value
	// may have. Results outside of [-MaxExp, MaxExp] are reported as [ErrOverflow].
	MaxExp = 10000
	// guardPrec is the smallest number of significant digits that the
	// length reduction in [canonical] may leave.
	guardPrec = MaxDisplayDigits + 1
)

var (
	errInvalidValue = errors.New("invalid value")
	errScaleRange   = errors.New("scale out of range")
)

// Value type represents an immutable signed decimal number used by the
// calculator. Its zero value corresponds to 0.
//
// Every arithmetic method returns a canonical value: it is rounded to [WorkPrec]
// significant digits using rounding half up, trailing zeros are removed, and
// long fractions are shortened as described in the package documentation.
// Value is designed to be safe for concurrent use by multiple goroutines.
type Value struct {
	dec *apd.Decimal // nil means zero, never mutated after construction
}

// workContext returns a fresh arithmetic context with the given precision.
func workContext(prec uint32) *apd.Context {
	return &apd.Context{
		Precision:   prec,
		Rounding:    apd.RoundHalfUp,
		MaxExponent: apd.MaxExponent,
		MinExponent: apd.MinExponent,
		Traps:       apd.DefaultTraps,
	}
}

// New returns a (possibly rounded) value equal to coef / 10^scale.
//
// New returns an error if the scale is outside of [-2 * MaxExp, 2 * MaxExp]
// or if the result overflows.
func New(coef int64, scale int) (Value, error) {
	if scale < -2*MaxExp || scale > 2*MaxExp {
		return Value{}, fmt.Errorf("converting coefficient: %w", errScaleRange)
	}
	v, err := canonical(apd.New(coef, int32(-scale))) //nolint:gosec
	if err != nil {
		return Value{}, fmt.Errorf("converting coefficient: %w", err)
	}
	return v, nil
}

// MustNew is like [New] but panics if the value cannot be constructed.
// It simplifies safe initialization of global variables holding values.
func MustNew(coef int64, scale int) Value {
	v, err := New(coef, scale)
	if err != nil {
		panic(fmt.Sprintf("New(%v, %v) failed: %v", coef, scale, err))
	}
	return v
}

// Parse converts a string to a (possibly rounded) value.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.000001234
//	1.83e5
//	0.22e-9
//
// Parse returns an error if the string is not a finite decimal number
// or if the result overflows.
func Parse(s string) (Value, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return Value{}, fmt.Errorf("parsing value: %w", err)
	}
	if d.Form != apd.Finite {
		return Value{}, fmt.Errorf("parsing value: %w: %q", errInvalidValue, s)
	}
	v, err := canonical(d)
	if err != nil {
		return Value{}, fmt.Errorf("parsing value: %w", err)
	}
	return v, nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding values.
func MustParse(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", s, err))
	}
	return v
}

// canonical rounds x to WorkPrec digits and reduces it to its shortest form.
// While the plain text of the value has a fractional part and is longer than
// WorkPrec+1 characters, the value is re-rounded from the WorkPrec-digit result
// with one fewer significant digit, but never below guardPrec digits.
func canonical(x *apd.Decimal) (Value, error) {
	if x.Form != apd.Finite {
		return Value{}, ErrInvalidInput
	}
	base := new(apd.Decimal)
	if cond, err := workContext(WorkPrec).Round(base, x); err != nil {
		return Value{}, conditionFault(cond, err)
	}
	if base.IsZero() {
		return Value{}, nil
	}
	d := new(apd.Decimal)
	d.Reduce(base)
	for d.Exponent < 0 && plainLen(d) > WorkPrec+1 {
		prec := d.NumDigits() - 1
		if prec < guardPrec {
			break
		}
		r := new(apd.Decimal)
		if cond, err := workContext(uint32(prec)).Round(r, base); err != nil { //nolint:gosec
			return Value{}, conditionFault(cond, err)
		}
		d.Reduce(r)
	}
	if !withinRange(d) {
		return Value{}, ErrOverflow
	}
	return Value{dec: d}, nil
}

// plainLen returns the length of the non-exponential text of |d|.
func plainLen(d *apd.Decimal) int64 {
	n, s := d.NumDigits(), -int64(d.Exponent)
	switch {
	case s <= 0:
		return n - s
	case n > s:
		return n + 1
	default:
		return s + 2
	}
}

// adjusted returns the exponent of the leading digit of d.
func adjusted(d *apd.Decimal) int64 {
	return int64(d.Exponent) + d.NumDigits() - 1
}

func withinRange(d *apd.Decimal) bool {
	if d.IsZero() {
		return true
	}
	adj := adjusted(d)
	return adj >= -MaxExp && adj <= MaxExp
}

// conditionFault maps an apd condition to the matching fault.
func conditionFault(cond apd.Condition, err error) error {
	switch {
	case cond.DivisionUndefined():
		return ErrUndefined
	case cond.DivisionByZero():
		return ErrDivisionByZero
	case cond.Overflow(), cond.Underflow():
		return ErrOverflow
	case cond.InvalidOperation():
		return ErrInvalidInput
	}
	return err
}

// compute runs op with a WorkPrec context and canonicalizes its result.
func compute(op func(ctx *apd.Context, d *apd.Decimal) (apd.Condition, error)) (Value, error) {
	d := new(apd.Decimal)
	cond, err := op(workContext(WorkPrec), d)
	if err != nil {
		return Value{}, conditionFault(cond, err)
	}
	return canonical(d)
}

func (v Value) decimal() *apd.Decimal {
	if v.dec == nil {
		return new(apd.Decimal)
	}
	return v.dec
}

// Sign returns:
//
//	-1 if v < 0
//	 0 if v = 0
//	+1 if v > 0
func (v Value) Sign() int {
	return v.decimal().Sign()
}

// IsZero returns:
//
//	true  if v = 0
//	false otherwise
func (v Value) IsZero() bool {
	return v.Sign() == 0
}

// IsNeg returns:
//
//	true  if v < 0
//	false otherwise
func (v Value) IsNeg() bool {
	return v.Sign() < 0
}

// Scale returns the number of digits after the decimal point.
// Large integers without trailing digits, such as 1E+20, have a negative scale.
func (v Value) Scale() int {
	if v.IsZero() {
		return 0
	}
	return -int(v.dec.Exponent)
}

// Prec returns the number of significant digits of the value.
// The precision of zero is 0.
func (v Value) Prec() int {
	if v.IsZero() {
		return 0
	}
	return int(v.dec.NumDigits())
}

// Cmp compares values and returns:
//
//	-1 if v < w
//	 0 if v = w
//	+1 if v > w
func (v Value) Cmp(w Value) int {
	return v.decimal().Cmp(w.decimal())
}

// Equal returns true if both values are numerically equal.
func (v Value) Equal(w Value) bool {
	return v.Cmp(w) == 0
}

// Neg returns a value with the opposite sign.
// Negation of zero is zero.
func (v Value) Neg() Value {
	if v.IsZero() {
		return Value{}
	}
	return Value{dec: new(apd.Decimal).Neg(v.dec)}
}

// Abs returns the absolute value of v.
func (v Value) Abs() Value {
	if !v.IsNeg() {
		return v
	}
	return v.Neg()
}

// Add returns the (possibly rounded) sum of values v and w.
//
// Add returns an error if the result overflows.
func (v Value) Add(w Value) (Value, error) {
	u, err := v.add(w)
	if err != nil {
		return Value{}, fmt.Errorf("computing [%v + %v]: %w", v, w, err)
	}
	return u, nil
}

func (v Value) add(w Value) (Value, error) {
	return compute(func(ctx *apd.Context, d *apd.Decimal) (apd.Condition, error) {
		return ctx.Add(d, v.decimal(), w.decimal())
	})
}

// Sub returns the (possibly rounded) difference between values v and w.
//
// Sub returns an error if the result overflows.
func (v Value) Sub(w Value) (Value, error) {
	u, err := v.sub(w)
	if err != nil {
		return Value{}, fmt.Errorf("computing [%v - %v]: %w", v, w, err)
	}
	return u, nil
}

func (v Value) sub(w Value) (Value, error) {
	return compute(func(ctx *apd.Context, d *apd.Decimal) (apd.Condition, error) {
		return ctx.Sub(d, v.decimal(), w.decimal())
	})
}

// Mul returns the (possibly rounded) product of values v and w.
//
// Mul returns an error if the result overflows.
func (v Value) Mul(w Value) (Value, error) {
	u, err := v.mul(w)
	if err != nil {
		return Value{}, fmt.Errorf("computing [%v * %v]: %w", v, w, err)
	}
	return u, nil
}

func (v Value) mul(w Value) (Value, error) {
	return compute(func(ctx *apd.Context, d *apd.Decimal) (apd.Condition, error) {
		return ctx.Mul(d, v.decimal(), w.decimal())
	})
}

// Quo returns the (possibly rounded) quotient of values v and w.
//
// Quo returns an error if:
//   - both v and w are zero ([ErrUndefined]);
//   - w is zero and v is not ([ErrDivisionByZero]);
//   - the result overflows ([ErrOverflow]).
func (v Value) Quo(w Value) (Value, error) {
	u, err := v.quo(w)
	if err != nil {
		return Value{}, fmt.Errorf("computing [%v / %v]: %w", v, w, err)
	}
	return u, nil
}

func (v Value) quo(w Value) (Value, error) {
	// Special case: zero divisor
	if w.IsZero() {
		if v.IsZero() {
			return Value{}, ErrUndefined
		}
		return Value{}, ErrDivisionByZero
	}
	return compute(func(ctx *apd.Context, d *apd.Decimal) (apd.Condition, error) {
		return ctx.Quo(d, v.decimal(), w.decimal())
	})
}

// Sqrt returns the (possibly rounded) square root of v.
// The square root of zero is zero.
//
// Sqrt returns [ErrInvalidInput] if v is negative.
func (v Value) Sqrt() (Value, error) {
	u, err := v.sqrt()
	if err != nil {
		return Value{}, fmt.Errorf("computing [√%v]: %w", v, err)
	}
	return u, nil
}

func (v Value) sqrt() (Value, error) {
	switch v.Sign() {
	case -1:
		return Value{}, ErrInvalidInput
	case 0:
		return Value{}, nil
	}
	return compute(func(ctx *apd.Context, d *apd.Decimal) (apd.Condition, error) {
		return ctx.Sqrt(d, v.decimal())
	})
}

// Sqr returns the (possibly rounded) square of v.
//
// Sqr returns an error if the result overflows.
func (v Value) Sqr() (Value, error) {
	u, err := v.mul(v)
	if err != nil {
		return Value{}, fmt.Errorf("computing [%v²]: %w", v, err)
	}
	return u, nil
}

// Inv returns the (possibly rounded) reciprocal of v.
//
// Inv returns [ErrDivisionByZero] if v is zero.
func (v Value) Inv() (Value, error) {
	u, err := Value{dec: apd.New(1, 0)}.quo(v)
	if err != nil {
		return Value{}, fmt.Errorf("computing [1 / %v]: %w", v, err)
	}
	return u, nil
}

// Hundredth returns v / 100.
//
// Hundredth returns an error if the result overflows.
func (v Value) Hundredth() (Value, error) {
	u, err := v.hundredth()
	if err != nil {
		return Value{}, fmt.Errorf("computing [%v / 100]: %w", v, err)
	}
	return u, nil
}

func (v Value) hundredth() (Value, error) {
	if v.IsZero() {
		return Value{}, nil
	}
	d := new(apd.Decimal).Set(v.dec)
	d.Exponent -= 2
	return canonical(d)
}

// PercentOf returns the (possibly rounded) value of p percent of v,
// that is v * (p / 100).
//
// PercentOf returns an error if the result overflows.
func (v Value) PercentOf(p Value) (Value, error) {
	u, err := v.percentOf(p)
	if err != nil {
		return Value{}, fmt.Errorf("computing [%v%% of %v]: %w", p, v, err)
	}
	return u, nil
}

func (v Value) percentOf(p Value) (Value, error) {
	h, err := p.hundredth()
	if err != nil {
		return Value{}, err
	}
	return v.mul(h)
}

// String implements the [fmt.Stringer] interface and returns a plain
// representation of the value, such as "-1234.5".
// Values with a large exponent use scientific notation, such as "1E+40".
// See also [Format] for the text shown on the calculator display.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (v Value) String() string {
	if v.IsZero() {
		return "0"
	}
	if adj := adjusted(v.dec); adj < -WorkPrec || adj > WorkPrec {
		return v.dec.String()
	}
	return v.dec.Text('f')
}
