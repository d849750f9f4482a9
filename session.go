package calc

import (
	"errors"
	"strings"
)

// State type represents the input state of a [Session].
type State uint8

const (
	Left      State = iota // Typing the left operand
	Transient              // Operator chosen, right operand not typed yet
	Right                  // Typing the right operand
	After                  // Result or error shown
)

var stateNames = [...]string{
	Left:      "LEFT",
	Transient: "TRANSIENT",
	Right:     "RIGHT",
	After:     "AFTER",
}

// String method implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (s State) String() string {
	if int(s) >= len(stateNames) {
		return "UNKNOWN"
	}
	return stateNames[s]
}

// phase holds the operands that are meaningful in a state.
type phase interface {
	state() State
}

type leftPhase struct{}

type transientPhase struct {
	left Value
	op   Operation
}

type rightPhase struct {
	left Value
	op   Operation
}

// afterPhase keeps op and right for repeated equals.
// The op is NoOp when there is nothing to repeat.
type afterPhase struct {
	left  Value
	op    Operation
	right Value
}

func (leftPhase) state() State      { return Left }
func (transientPhase) state() State { return Transient }
func (rightPhase) state() State     { return Right }
func (afterPhase) state() State     { return After }

// entry is the operand shown on the display.
// A typed entry keeps the characters entered so far, such as "-12.30".
// A computed entry holds a result and is replaced by the next digit.
type entry struct {
	text  string
	value Value
}

func (e entry) typed() bool {
	return e.text != ""
}

func (e entry) number() Value {
	if !e.typed() {
		return e.value
	}
	v, err := Parse(strings.TrimSuffix(e.text, "."))
	if err != nil {
		return Value{}
	}
	return v
}

// render returns the display text of the entry.
func (e entry) render() (string, error) {
	if !e.typed() {
		return Format(e.value)
	}
	body, neg := strings.CutPrefix(e.text, "-")
	point := strings.HasSuffix(body, ".")
	scale := 0
	if i := strings.IndexByte(body, '.'); i >= 0 {
		scale = len(body) - i - 1
	}
	v, err := Parse(strings.TrimSuffix(body, "."))
	if err != nil {
		return "", err
	}
	s, err := FormatEntry(v, scale)
	if err != nil {
		return "", err
	}
	if point {
		s += "."
	}
	if neg {
		s = "-" + s
	}
	return s, nil
}

// Session type represents one calculator instance: its input state,
// the displayed operand, the memory cell, and the formula trail.
// The zero value is a cleared calculator showing "0".
//
// A Session processes one key press at a time and is not safe for
// concurrent use. Callers that receive events from several goroutines
// must serialize them.
type Session struct {
	phase   phase
	entry   entry
	memory  Memory
	fault   Fault
	formula Formula
	display string
}

// NewSession returns a cleared calculator.
func NewSession() *Session {
	s := &Session{}
	s.Clear()
	return s
}

func (s *Session) current() phase {
	if s.phase == nil {
		return afterPhase{}
	}
	return s.phase
}

// operand returns the value of the displayed operand.
func (s *Session) operand() Value {
	return s.entry.number()
}

// refresh renders the entry and latches a display overflow.
func (s *Session) refresh() string {
	text, err := s.entry.render()
	if err != nil {
		return s.latch(err)
	}
	s.display = text
	return text
}

// latch stores the fault behind err, shows its message and settles in
// the After state. The left operand is kept as it was; nothing can be
// repeated until the session is cleared.
func (s *Session) latch(err error) string {
	var f Fault
	if !errors.As(err, &f) {
		f = ErrInvalidInput
	}
	var left Value
	switch p := s.current().(type) {
	case transientPhase:
		left = p.left
	case rightPhase:
		left = p.left
	case afterPhase:
		left = p.left
	}
	s.phase = afterPhase{left: left}
	s.fault = f
	s.display = f.Message()
	return s.display
}

// trail returns the formula text of a committed value.
func trail(v Value) string {
	text, err := Format(v)
	if err != nil {
		return v.String()
	}
	return text
}

// Display returns the text currently shown on the display.
func (s *Session) Display() string {
	if s.display == "" {
		return "0"
	}
	return s.display
}

// Formula returns the expression trail, such as "5 + 3 =".
func (s *Session) Formula() string {
	return s.formula.String()
}

// State returns the input state.
func (s *Session) State() State {
	return s.current().state()
}

// Fault returns the latched fault, or zero if no fault is latched.
func (s *Session) Fault() Fault {
	return s.fault
}

// ErrorLatched returns true if an error is shown and only [Session.Clear]
// is accepted.
func (s *Session) ErrorLatched() bool {
	return s.fault != 0
}

// MemoryEmpty returns true if the memory cell is empty.
func (s *Session) MemoryEmpty() bool {
	return s.memory.IsEmpty()
}

// Memory returns the memory cell.
func (s *Session) Memory() Memory {
	return s.memory
}

// CanBackspace returns true if [Session.Backspace] would change the entry.
func (s *Session) CanBackspace() bool {
	if s.ErrorLatched() || !s.entry.typed() {
		return false
	}
	switch s.current().(type) {
	case leftPhase, rightPhase:
		return true
	}
	return false
}

// Digit enters a digit or the decimal point r and returns the display text.
// Other runes are ignored.
//
// In the After state a new left operand is started, and in the Transient
// state the right operand is started. A digit replaces a computed entry.
// Input stops at [MaxDisplayDigits] digits or [MaxInputLength] characters.
func (s *Session) Digit(r rune) string {
	if s.ErrorLatched() || (r != '.' && (r < '0' || r > '9')) {
		return s.Display()
	}
	switch p := s.current().(type) {
	case afterPhase:
		s.phase = leftPhase{}
		s.entry = entry{}
		s.formula = Formula{}
	case transientPhase:
		s.phase = rightPhase(p)
		s.entry = entry{}
		s.formula = s.formula.Discard()
	default:
		if !s.entry.typed() {
			s.entry = entry{}
			s.formula = s.formula.Discard()
		}
	}
	s.entry.text = appendRune(s.entry.text, r)
	return s.refresh()
}

// appendRune returns text with r appended, or text itself if r does not fit.
func appendRune(text string, r rune) string {
	if text == "" {
		text = "0"
	}
	body, neg := strings.CutPrefix(text, "-")
	switch {
	case r == '.':
		if strings.Contains(body, ".") {
			return text
		}
		body += "."
	case body == "0":
		body = string(r)
	default:
		if inputDigits(body) >= MaxDisplayDigits {
			return text
		}
		body += string(r)
	}
	if inputLength(body) > MaxInputLength {
		return text
	}
	if neg {
		return unsignZero("-" + body)
	}
	return body
}

// inputDigits returns the number of typed digits, not counting a leading
// integer zero.
func inputDigits(body string) int {
	n := 0
	for _, r := range body {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	if strings.HasPrefix(body, "0") {
		n--
	}
	return n
}

// inputLength returns the length of the displayed body including
// thousands separators.
func inputLength(body string) int {
	whole, _, _ := strings.Cut(body, ".")
	return len(body) + (len(whole)-1)/3
}

// Operator enters a binary operator and returns the display text.
//
// In the Right state the pending operation is evaluated first, so the
// display shows its result and op applies to the next right operand.
// In the Transient state op replaces the pending operator.
func (s *Session) Operator(op Operation) string {
	if s.ErrorLatched() || op.Class() != ClassBinary {
		return s.Display()
	}
	x := s.operand()
	switch p := s.current().(type) {
	case leftPhase:
		s.formula = s.formula.Binary(trail(x), op)
		s.phase = transientPhase{left: x, op: op}
		s.entry = entry{value: x}
	case transientPhase:
		s.formula = s.formula.ReplaceOperator(op)
		s.phase = transientPhase{left: p.left, op: op}
		s.entry = entry{value: p.left}
	case rightPhase:
		s.formula = s.formula.Binary(trail(x), op)
		res, err := Eval(p.op, p.left, x)
		if err != nil {
			return s.latch(err)
		}
		s.phase = transientPhase{left: res, op: op}
		s.entry = entry{value: res}
	case afterPhase:
		f := s.formula
		if f.Closed() || f.Pending() {
			f = Formula{}
		}
		s.formula = f.Binary(trail(x), op)
		s.phase = transientPhase{left: x, op: op}
		s.entry = entry{value: x}
	}
	return s.refresh()
}

// Unary applies a unary operation to the displayed operand and returns
// the display text.
//
// Negate changes the sign of a typed operand in place. Other results
// replace the displayed operand; in the Transient state the result becomes
// the right operand, and in the After state it becomes the left operand
// of a repeated equals.
func (s *Session) Unary(op Operation) string {
	if s.ErrorLatched() || op.Class() != ClassUnary {
		return s.Display()
	}
	if op == Negate && s.entry.typed() {
		s.entry.text = toggleSign(s.entry.text)
		return s.refresh()
	}
	x := s.operand()
	f := s.formula
	if _, ok := s.current().(afterPhase); ok && (f.Closed() || f.Pending()) {
		f = Formula{}
	}
	s.formula = f.Unary(op, trail(x))
	res, err := Eval(op, x, Value{})
	if err != nil {
		return s.latch(err)
	}
	s.entry = entry{value: res}
	switch p := s.current().(type) {
	case transientPhase:
		if op != Negate {
			s.phase = rightPhase(p)
		}
	case afterPhase:
		s.phase = afterPhase{left: res, op: p.op, right: p.right}
	}
	return s.refresh()
}

// toggleSign flips the sign of a typed operand. Zero has no sign.
func toggleSign(text string) string {
	if body, ok := strings.CutPrefix(text, "-"); ok {
		return body
	}
	if strings.Trim(text, "0.") == "" {
		return text
	}
	return "-" + text
}

// Percent derives the right operand from the displayed value as a
// percentage and returns the display text.
//
// With a pending addition or subtraction the result is the displayed
// percentage of the left operand; with a pending multiplication or
// division it is the displayed value divided by 100.
// Without a pending operator the display shows 0.
//
// In the Transient state the result becomes the right operand. In the
// Right state the session settles in the After state, so [Session.Equals]
// applies the pending operation to the derived right operand.
func (s *Session) Percent() string {
	if s.ErrorLatched() {
		return s.Display()
	}
	x := s.operand()
	var left Value
	var op Operation
	switch p := s.current().(type) {
	case transientPhase:
		left, op = p.left, p.op
	case rightPhase:
		left, op = p.left, p.op
	case afterPhase:
		left, op = p.left, p.op
	}
	if op == NoOp {
		s.entry = entry{}
		return s.refresh()
	}
	res, err := Percent(op, left, x)
	if err != nil {
		return s.latch(err)
	}
	s.entry = entry{value: res}
	switch s.current().(type) {
	case transientPhase:
		s.phase = rightPhase{left: left, op: op}
		s.formula = s.formula.Set(trail(res))
	case rightPhase:
		s.phase = afterPhase{left: left, op: op, right: res}
		s.formula = s.formula.Set(trail(res))
	case afterPhase:
		s.phase = afterPhase{left: left, op: op, right: res}
		s.formula = Formula{}.Binary(trail(left), op).Set(trail(res))
	}
	return s.refresh()
}

// Equals evaluates the pending operation and returns the display text.
//
// In the Transient state the displayed value is used as the right operand,
// except for division, which divides the left operand by itself.
// In the After state the last operation is repeated with the same right
// operand against the previous result.
func (s *Session) Equals() string {
	if s.ErrorLatched() {
		return s.Display()
	}
	x := s.operand()
	var left, right Value
	var op Operation
	switch p := s.current().(type) {
	case transientPhase:
		left, op, right = p.left, p.op, x
		if op == Divide {
			right = p.left
		}
	case rightPhase:
		left, op, right = p.left, p.op, x
	case afterPhase:
		left, op, right = p.left, p.op, p.right
	}

	// No pending operator
	if op == NoOp {
		f := s.formula
		if f.Closed() {
			f = Formula{}
		}
		s.formula = f.Equals(trail(x))
		s.phase = afterPhase{left: x}
		s.entry = entry{value: x}
		return s.refresh()
	}

	f := s.formula
	if _, ok := s.current().(afterPhase); ok {
		switch {
		case f.Closed():
			f = Formula{}.Binary(trail(left), op)
		case !f.Pending():
			f = f.Binary(trail(left), op)
		}
	}
	s.formula = f.Equals(trail(right))

	res, err := Eval(op, left, right)
	if err != nil {
		return s.latch(err)
	}
	s.phase = afterPhase{left: res, op: op, right: right}
	s.entry = entry{value: res}
	return s.refresh()
}

// Clear resets the operands, the pending operator, the formula, and a
// latched error, and returns "0". The memory cell is kept.
func (s *Session) Clear() string {
	s.phase = afterPhase{}
	s.entry = entry{}
	s.fault = 0
	s.formula = Formula{}
	s.display = "0"
	return s.display
}

// ClearEntry resets the displayed operand to 0 and returns the display text.
// The pending operator and the state are kept.
func (s *Session) ClearEntry() string {
	if s.ErrorLatched() {
		return s.Display()
	}
	switch p := s.current().(type) {
	case leftPhase, rightPhase:
		s.entry = entry{text: "0"}
		s.formula = s.formula.Discard()
	case transientPhase:
		s.entry = entry{}
		s.formula = s.formula.Discard()
	case afterPhase:
		s.phase = afterPhase{op: p.op, right: p.right}
		s.entry = entry{}
		s.formula = Formula{}
	}
	return s.refresh()
}

// Backspace removes the last typed character and returns the display text.
// Removing the last digit leaves 0.
// See also method [Session.CanBackspace].
func (s *Session) Backspace() string {
	if !s.CanBackspace() {
		return s.Display()
	}
	text := s.entry.text[:len(s.entry.text)-1]
	if text == "" || text == "-" {
		text = "0"
	}
	s.entry.text = unsignZero(text)
	return s.refresh()
}

// unsignZero drops the sign of a typed operand that has no nonzero digits,
// such as "-0.".
func unsignZero(text string) string {
	if body, ok := strings.CutPrefix(text, "-"); ok && strings.Trim(body, "0.") == "" {
		return body
	}
	return text
}

// MemorySave stores the displayed value in the memory cell.
func (s *Session) MemorySave() {
	if s.ErrorLatched() {
		return
	}
	s.memory = s.memory.Save(s.operand())
}

// MemoryAdd adds the displayed value to the memory cell.
// An overflow is latched like an arithmetic error.
func (s *Session) MemoryAdd() {
	s.memoryApply(MemoryAdd)
}

// MemorySub subtracts the displayed value from the memory cell.
// An overflow is latched like an arithmetic error.
func (s *Session) MemorySub() {
	s.memoryApply(MemorySub)
}

// MemoryClear empties the memory cell.
func (s *Session) MemoryClear() {
	s.memoryApply(MemoryClear)
}

func (s *Session) memoryApply(op Operation) {
	if s.ErrorLatched() {
		return
	}
	m, err := s.memory.Apply(op, s.operand())
	if err != nil {
		s.latch(err)
		return
	}
	s.memory = m
}

// MemoryRecall shows the stored value as a computed operand and returns the
// display text. It is ignored if the memory cell is empty.
//
// In the After state the value becomes a new left operand, and in the
// Transient state it becomes the right operand.
func (s *Session) MemoryRecall() string {
	if s.ErrorLatched() {
		return s.Display()
	}
	v, ok := s.memory.Value()
	if !ok {
		return s.Display()
	}
	switch p := s.current().(type) {
	case afterPhase:
		s.phase = leftPhase{}
		s.formula = Formula{}
	case transientPhase:
		s.phase = rightPhase(p)
		s.formula = s.formula.Discard()
	default:
		s.formula = s.formula.Discard()
	}
	s.entry = entry{value: v}
	return s.refresh()
}

// Apply dispatches an operation by its class and returns the display text.
// Percent operations behave like [Session.Percent].
func (s *Session) Apply(op Operation) string {
	switch op.Class() {
	case ClassBinary:
		return s.Operator(op)
	case ClassUnary:
		return s.Unary(op)
	case ClassPercent:
		return s.Percent()
	case ClassMemory:
		switch op {
		case MemorySave:
			s.MemorySave()
		case MemoryAdd:
			s.MemoryAdd()
		case MemorySub:
			s.MemorySub()
		case MemoryClear:
			s.MemoryClear()
		}
	}
	return s.Display()
}
