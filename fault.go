package calc

// Fault represents one of the four arithmetic failures a calculator can show.
// The zero value is not a valid fault and indicates that no error occurred.
//
// Fault implements the error interface, so arithmetic methods can wrap it with
// context while callers still classify the failure using [errors.As] or
// [errors.Is].
type Fault uint8

const (
	// ErrOverflow is returned when the adjusted exponent of a result
	// exceeds [MaxExp] in magnitude.
	ErrOverflow Fault = iota + 1
	// ErrDivisionByZero is returned when a nonzero value is divided by zero.
	ErrDivisionByZero
	// ErrUndefined is returned when zero is divided by zero.
	ErrUndefined
	// ErrInvalidInput is returned for the square root of a negative value.
	ErrInvalidInput
)

var (
	faultErrorLookup = [...]string{
		ErrOverflow:       "overflow",
		ErrDivisionByZero: "division by zero",
		ErrUndefined:      "result is undefined",
		ErrInvalidInput:   "invalid input",
	}
	faultMessageLookup = [...]string{
		ErrOverflow:       "Overflow",
		ErrDivisionByZero: "Cannot divide by zero",
		ErrUndefined:      "Result is undefined",
		ErrInvalidInput:   "Invalid input",
	}
)

// Error implements the error interface.
func (f Fault) Error() string {
	if !f.valid() {
		return "no fault"
	}
	return faultErrorLookup[f]
}

// Message returns the text shown on the calculator display when the fault
// is latched, for example "Cannot divide by zero".
func (f Fault) Message() string {
	if !f.valid() {
		return ""
	}
	return faultMessageLookup[f]
}

func (f Fault) valid() bool {
	return f >= ErrOverflow && f <= ErrInvalidInput
}
