package calc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/govalues/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// MaxDisplayDigits is the number of significant digits shown on the display.
	MaxDisplayDigits = 16
	// MaxInputLength is the longest display text, without the sign, that
	// can be typed.
	MaxInputLength = 21
)

// Format returns the display text of a committed value, such as a result
// or a recalled memory value.
//
// The value is rounded half up to [MaxDisplayDigits] significant digits and
// shown in fixed-point notation with thousands separators:
//
//	1,234,567.89
//	0.0005
//
// Scientific notation is used when the integer part is longer than
// [MaxDisplayDigits] digits, or when a value smaller than 0.001 has more than
// [MaxDisplayDigits] fractional digits.
// The mantissa always carries a decimal point:
//
//	1.E+16
//	1.234E-17
//
// Format returns [ErrOverflow] if the rounded value is out of range.
func Format(v Value) (string, error) {
	return format(v, 0)
}

// FormatEntry is like [Format], but for an operand that is being typed with
// the given number of fractional digits.
// Trailing zeros removed from the value are shown again, as long as the
// total number of digits does not exceed [MaxDisplayDigits]:
//
//	FormatEntry(MustParse("3"), 2) = "3.00"
func FormatEntry(v Value, scale int) (string, error) {
	return format(v, scale)
}

// sciThreshold is the magnitude below which long fractions switch to
// scientific notation.
var sciThreshold = apd.New(1, -3)

func format(v Value, scale int) (string, error) {
	x := v.decimal()

	// Rule for small values is checked before rounding
	sci := false
	if !x.IsZero() && v.Scale() > MaxDisplayDigits {
		abs := new(apd.Decimal).Abs(x)
		sci = abs.Cmp(sciThreshold) < 0
	}

	// Display rounding
	r := new(apd.Decimal)
	if cond, err := workContext(MaxDisplayDigits).Round(r, x); err != nil {
		return "", conditionFault(cond, err)
	}
	d := new(apd.Decimal)
	if !r.IsZero() {
		d.Reduce(r)
	}
	if !withinRange(d) {
		return "", ErrOverflow
	}

	if sci || (!d.IsZero() && adjusted(d) >= MaxDisplayDigits) {
		return scientific(d), nil
	}
	return fixed(d, scale)
}

// scientific returns d as "d.dddE±n", where d has no trailing zeros.
func scientific(d *apd.Decimal) string {
	digits := d.Coeff.String()
	exp := adjusted(d)

	var b strings.Builder
	if d.Negative {
		b.WriteByte('-')
	}
	b.WriteString(digits[:1])
	b.WriteByte('.')
	b.WriteString(digits[1:])
	b.WriteByte('E')
	if exp >= 0 {
		b.WriteByte('+')
	}
	b.WriteString(strconv.FormatInt(exp, 10))
	return b.String()
}

// fixed returns d in grouped fixed-point notation.
// Here d has at most MaxDisplayDigits significant digits, so it always fits
// into a decimal.Decimal.
func fixed(d *apd.Decimal, scale int) (string, error) {
	f, err := decimal.Parse(d.Text('f'))
	if err != nil {
		return "", fmt.Errorf("formatting %v: %w", d, err)
	}
	if scale > f.Scale() {
		f = f.Pad(min(scale, f.Scale()+MaxDisplayDigits-f.Prec()))
	}
	whole, frac, ok := f.Abs().Int64(f.Scale())
	if !ok {
		return "", fmt.Errorf("formatting %v: %w", f, ErrOverflow)
	}

	var b strings.Builder
	if f.IsNeg() {
		b.WriteByte('-')
	}
	b.WriteString(group(whole))
	if f.Scale() > 0 {
		b.WriteByte('.')
		fmt.Fprintf(&b, "%0*d", f.Scale(), frac)
	}
	return b.String(), nil
}

// group returns n with thousands separators.
// A printer is created for every call, so formatting keeps no shared state.
func group(n int64) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("%d", n)
}
