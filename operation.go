package calc

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

//go:generate go run scripts/operation/codegen.go

// Operation type represents a calculator operation.
// The zero value is [NoOp], which indicates that no operator is pending.
//
// Operation is implemented as an integer index into in-memory arrays that
// store the properties of each operation, such as its code, display symbol,
// and arity class.
//
// When persisting an operation, use the code returned by the [Operation.Code]
// method rather than the integer index, as the mapping between index and
// a particular operation may change in future versions.
type Operation uint8

// Class type represents the arity class of an operation.
type Class uint8

const (
	ClassNone    Class = iota // No operands
	ClassUnary                // Applied to the displayed operand
	ClassBinary               // Combines the left and right operands
	ClassPercent              // Derives the right operand from the left one
	ClassMemory               // Acts on the memory cell
)

var classNames = [...]string{
	ClassNone:    "none",
	ClassUnary:   "unary",
	ClassBinary:  "binary",
	ClassPercent: "percent",
	ClassMemory:  "memory",
}

// String method implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Class) String() string {
	if int(c) >= len(classNames) {
		return fmt.Sprintf("Class(%d)", c)
	}
	return classNames[c]
}

var errInvalidOperation = errors.New("invalid operation")

// ParseOp converts a string to an operation.
// The input string must be a code, a display symbol, or a keyboard alias:
//
//	add
//	ADD
//	+
//	*
//	1/x
//
// ParseOp returns an error if the string does not represent a valid operation.
func ParseOp(op string) (Operation, error) {
	o, ok := opLookup[op]
	if !ok {
		return NoOp, fmt.Errorf("%w %q", errInvalidOperation, op)
	}
	return o, nil
}

// MustParseOp is like [ParseOp] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding operations.
func MustParseOp(op string) Operation {
	o, err := ParseOp(op)
	if err != nil {
		panic(fmt.Sprintf("ParseOp(%q) failed: %v", op, err))
	}
	return o
}

// String method implements the [fmt.Stringer] interface and returns
// the code of the operation.
// See also method [Operation.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (o Operation) String() string {
	return o.Code()
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [ParseOp].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (o *Operation) UnmarshalText(text []byte) error {
	var err error
	*o, err = ParseOp(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", NoOp, err)
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
// MarshalText always returns the operation code.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (o Operation) MarshalText() ([]byte, error) {
	return []byte(o.Code()), nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example | Description    |
//	| ------ | ------- | -------------- |
//	| %s, %v | div     | Code           |
//	| %q     | "div"   | Quoted code    |
//	| %c     | ÷       | Display symbol |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (o Operation) Format(state fmt.State, verb rune) {
	text := o.Code()
	if verb == 'c' {
		text = o.Symbol()
	}

	// Opening and closing quotes
	if verb == 'q' || verb == 'Q' {
		text = `"` + text + `"`
	}

	// Calculating padding
	lspaces, tspaces := 0, 0
	if w, ok := state.Width(); ok {
		if n := utf8.RuneCountInString(text); w > n {
			switch {
			case state.Flag('-'):
				tspaces = w - n
			default:
				lspaces = w - n
			}
		}
	}

	buf := make([]byte, 0, lspaces+len(text)+tspaces)
	for range lspaces {
		buf = append(buf, ' ')
	}
	buf = append(buf, text...)
	for range tspaces {
		buf = append(buf, ' ')
	}

	// Writing result
	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'c', 'C':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(calc.Operation="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

// Code returns the identifier of the operation, such as "add" or "sqrt".
// This method always returns a valid code.
func (o Operation) Code() string {
	if int(o) >= len(codeLookup) {
		return codeLookup[NoOp]
	}
	return codeLookup[o]
}

// Symbol returns the text used for the operation in a formula trail,
// such as "+" or "√".
// Percent operations and [NoOp] have no symbol.
func (o Operation) Symbol() string {
	if int(o) >= len(symbolLookup) {
		return ""
	}
	return symbolLookup[o]
}

// Class returns the arity class of the operation.
func (o Operation) Class() Class {
	if int(o) >= len(classLookup) {
		return ClassNone
	}
	return classLookup[o]
}
