/*
Package calc implements the engine of a desktop calculator: decimal arithmetic,
the display formatter, and the input state machine that turns key presses
into display text and an expression trail.
It leverages the [apd] package for arbitrary-precision arithmetic and the
[decimal] package for the fixed-point display.

# Features

  - Immutable decimal values with 32-digit working precision
  - Error taxonomy that matches the messages shown by the calculator
  - Display text with thousands separators and scientific notation
  - Session with operator chaining, repeated equals, percent, and memory
  - Expression trail that mirrors the key presses, such as "5 + √( 9 ) ="

# Representation

A [Value] is a signed decimal number of arbitrary precision.
After every operation the result is rounded half up to [WorkPrec]
significant digits and its trailing zeros are removed.
While the plain text of a result has a fractional part and is longer than
WorkPrec+1 characters, the result is rounded again with one fewer digit,
so 1/3 is kept as 0.3333333333333333333333333333333.
The shortening stops at [MaxDisplayDigits]+1 digits.

# Supported Ranges

The adjusted exponent of a value, that is the exponent of its leading digit,
must be within [-MaxExp, MaxExp].
Results outside of this range are reported as [ErrOverflow].
The check is repeated after display rounding, since rounding
9.99...E+10000 to [MaxDisplayDigits] digits leaves the range.

# Display

[Format] rounds a value half up to 16 significant digits and uses fixed-point
notation, such as 1,234,567.5, unless the integer part is longer than 16
digits or a value below 0.001 has more than 16 fractional digits.
Scientific notation always carries a decimal point in the mantissa, as in 1.E+16.
[FormatEntry] shows the trailing zeros of an operand that is being typed.

# Sessions

A [Session] is in one of four states:

  - [Left], while the left operand is typed;
  - [Transient], after an operator is chosen;
  - [Right], while the right operand is typed;
  - [After], when a result or an error is shown.

Each key press returns the display text, and [Session.Formula] returns the
expression trail.
Pressing an operator in the Right state evaluates the pending operation first.
Pressing equals again repeats the last operation with the same right operand.

# Errors

Arithmetic methods return a [Fault] wrapped with the failed computation.
A session latches the fault, shows its [Fault.Message], and ignores every key
except [Session.Clear].
*/
package calc
