package calc

import (
	"strings"
	"testing"
)

// press sends space-separated keys to the session and returns the last
// display text. Digit groups such as "200" are typed one rune at a time.
func press(s *Session, keys string) string {
	out := s.Display()
	for _, k := range strings.Fields(keys) {
		switch k {
		case "=":
			out = s.Equals()
		case "%":
			out = s.Percent()
		case "C":
			out = s.Clear()
		case "CE":
			out = s.ClearEntry()
		case "<":
			out = s.Backspace()
		case "MR":
			out = s.MemoryRecall()
		default:
			if op, err := ParseOp(k); err == nil {
				out = s.Apply(op)
				continue
			}
			for _, r := range k {
				out = s.Digit(r)
			}
		}
	}
	return out
}

func TestSession_ZeroValue(t *testing.T) {
	var s Session
	if got := s.Display(); got != "0" {
		t.Errorf("Session{}.Display() = %q, want %q", got, "0")
	}
	if got := s.State(); got != After {
		t.Errorf("Session{}.State() = %v, want %v", got, After)
	}
	if got := press(&s, "5 + 3 ="); got != "8" {
		t.Errorf("Session{} after \"5 + 3 =\" = %q, want %q", got, "8")
	}
}

func TestNewSession(t *testing.T) {
	s := NewSession()
	if got := s.Display(); got != "0" {
		t.Errorf("Display() = %q, want %q", got, "0")
	}
	if s.Formula() != "" || s.ErrorLatched() || !s.MemoryEmpty() || s.CanBackspace() {
		t.Errorf("NewSession() is not cleared")
	}
}

func TestSession_Keys(t *testing.T) {
	tests := []struct {
		keys    string
		display string
		formula string
		state   State
	}{
		// Binary operations
		{"5 + 3 =", "8", "5 + 3 =", After},
		{"5 + 3 = =", "11", "8 + 3 =", After},
		{"5 + = =", "15", "10 + 5 =", After},
		{"2 + 3 ×", "5", "2 + 3 ×", Transient},
		{"2 + 3 × 4 =", "20", "2 + 3 × 4 =", After},
		{"5 + ×", "5", "5 ×", Transient},
		{"8 ÷ =", "1", "8 ÷ 8 =", After},
		{"6 × =", "36", "6 × 6 =", After},
		{"7 - 10 =", "-3", "7 - 10 =", After},
		{"5 + 3 = - 1 =", "7", "8 - 1 =", After},
		{"123.45 + 6.789 = - 6.789 =", "123.45", "130.239 - 6.789 =", After},
		{"1 ÷ 3 =", "0.3333333333333333", "1 ÷ 3 =", After},
		{"1 ÷ 3 = × 3 =", "1", "0.3333333333333333 × 3 =", After},
		{"5 =", "5", "5 =", After},
		{"5 = =", "5", "5 =", After},
		{"=", "0", "0 =", After},

		// Percent
		{"200 + 2 %", "4", "200 + 4", After},
		{"200 + 2 % =", "204", "200 + 4 =", After},
		{"200 - 10 % =", "180", "200 - 20 =", After},
		{"10 × 50 %", "0.5", "10 × 0.5", After},
		{"10 × 50 % =", "5", "10 × 0.5 =", After},
		{"50 + %", "25", "50 + 25", Right},
		{"50 + % %", "12.5", "50 + 12.5", After},
		{"200 + 2 % %", "8", "200 + 8", After},
		{"200 + 2 % = =", "208", "204 + 4 =", After},
		{"200 + 2 % ×", "4", "4 ×", Transient},
		{"200 + 2 % sqr", "16", "sqr( 4 )", After},
		{"200 + 2 % 5", "5", "", Left},
		{"5 %", "0", "", Left},
		{"200 + 2 % = %", "416.16", "204 + 416.16", After},
		{"200 + 2 % = % =", "620.16", "204 + 416.16 =", After},

		// Unary operations
		{"9 √", "3", "√( 9 )", Left},
		{"4 √ sqr", "4", "sqr( √( 4 ) )", Left},
		{"4 √ sqr =", "4", "sqr( √( 4 ) ) =", After},
		{"5 + 9 √", "3", "5 + √( 9 )", Right},
		{"5 + 9 √ =", "8", "5 + √( 9 ) =", After},
		{"5 + √", "2.23606797749979", "5 + √( 5 )", Right},
		{"8 1/x", "0.125", "1/( 8 )", Left},
		{"5 + 3 = sqr", "64", "sqr( 8 )", After},
		{"5 + 3 = sqr =", "67", "sqr( 8 ) + 3 =", After},
		{"9 √ 2", "2", "", Left},

		// Negate
		{"5 ±", "-5", "", Left},
		{"5 ± ±", "5", "", Left},
		{"0 ±", "0", "", Left},
		{"0.5 ±", "-0.5", "", Left},
		{"5 ± + 3 =", "-2", "-5 + 3 =", After},
		{"5 + 3 = ±", "-8", "negate( 8 )", After},
		{"5 + 3 = ± =", "-5", "negate( 8 ) + 3 =", After},
		{"5 + ±", "-5", "5 + negate( 5 )", Transient},
		{"5 + ± =", "0", "5 + negate( 5 ) =", After},
		{"5 + 3 ±", "-3", "5 +", Right},
		{"5 + 3 ± =", "2", "5 + -3 =", After},

		// Digit entry
		{"1.50", "1.50", "", Left},
		{".5", "0.5", "", Left},
		{"1..", "1.", "", Left},
		{"000", "0", "", Left},
		{"10000", "10,000", "", Left},
		{"12345678901234567", "1,234,567,890,123,456", "", Left},
		{"0.00000000000000001", "0.0000000000000000", "", Left},
		{"1234567890123456.", "1,234,567,890,123,456", "", Left},
		{"5 + 3 = 2", "2", "", Left},
		{"5 + 3", "3", "5 +", Right},

		// Clear and backspace
		{"123 < <", "1", "", Left},
		{"123 < < <", "0", "", Left},
		{"1.5 <", "1.", "", Left},
		{"5 ± <", "0", "", Left},
		{"0.5 ± <", "0.", "", Left},
		{"0.5 ± < 0", "0.0", "", Left},
		{"1.5 ± < <", "-1", "", Left},
		{"5 + 3 = <", "8", "5 + 3 =", After},
		{"5 + <", "5", "5 +", Transient},
		{"5 + 3 CE", "0", "5 +", Right},
		{"5 + 3 CE 4 =", "9", "5 + 4 =", After},
		{"5 + 3 CE =", "5", "5 + 0 =", After},
		{"5 + CE =", "5", "5 + 0 =", After},
		{"5 + 3 = CE", "0", "", After},
		{"5 + 3 = C", "0", "", After},

		// Memory
		{"9 MS C MR", "9", "", Left},
		{"9 MS C MR + 1 =", "10", "9 + 1 =", After},
		{"9 MS + MR =", "18", "9 + 9 =", After},
		{"MR", "0", "", After},
		{"5 M- C MR", "-5", "", Left},
		{"5 M+ M+ C MR", "10", "", Left},
		{"5 MS MC C MR", "0", "", After},

		// Errors
		{"0 1/x", "Cannot divide by zero", "1/( 0 )", After},
		{"7 ÷ 0 =", "Cannot divide by zero", "7 ÷ 0 =", After},
		{"0 ÷ 0 =", "Result is undefined", "0 ÷ 0 =", After},
		{"4 ± √", "Invalid input", "√( -4 )", After},
		{"7 ÷ 0 = 5", "Cannot divide by zero", "7 ÷ 0 =", After},
		{"7 ÷ 0 = CE", "Cannot divide by zero", "7 ÷ 0 =", After},
		{"7 ÷ 0 = MS", "Cannot divide by zero", "7 ÷ 0 =", After},
		{"7 ÷ 0 = C", "0", "", After},
		{"7 ÷ 0 = C 2 + 2 =", "4", "2 + 2 =", After},
		{"7 ÷ 0 ×", "Cannot divide by zero", "7 ÷ 0 ×", After},
	}
	for _, tt := range tests {
		t.Run(tt.keys, func(t *testing.T) {
			s := NewSession()
			got := press(s, tt.keys)
			if got != tt.display {
				t.Errorf("press(%q) = %q, want %q", tt.keys, got, tt.display)
			}
			if got := s.Display(); got != tt.display {
				t.Errorf("press(%q).Display() = %q, want %q", tt.keys, got, tt.display)
			}
			if got := s.Formula(); got != tt.formula {
				t.Errorf("press(%q).Formula() = %q, want %q", tt.keys, got, tt.formula)
			}
			if got := s.State(); got != tt.state {
				t.Errorf("press(%q).State() = %v, want %v", tt.keys, got, tt.state)
			}
		})
	}
}

func TestSession_Overflow(t *testing.T) {
	s := NewSession()
	press(s, "1000000000000000")
	for i := 1; i < 10; i++ {
		s.Unary(Square)
	}
	if got := s.Display(); got != "1.E+7680" {
		t.Errorf("Display() = %q, want %q", got, "1.E+7680")
	}
	if s.ErrorLatched() {
		t.Fatalf("ErrorLatched() = true, want false")
	}
	if got := s.Unary(Square); got != "Overflow" {
		t.Errorf("Unary(Square) = %q, want %q", got, "Overflow")
	}
	if got := s.Fault(); got != ErrOverflow {
		t.Errorf("Fault() = %v, want %v", got, ErrOverflow)
	}
	if got := s.State(); got != After {
		t.Errorf("State() = %v, want %v", got, After)
	}
}

func TestSession_DisplayOverflow(t *testing.T) {
	s := NewSession()
	s.memory = Memory{}.Save(MustParse("9.99999999999999999E+10000"))
	if got := s.MemoryRecall(); got != "Overflow" {
		t.Errorf("MemoryRecall() = %q, want %q", got, "Overflow")
	}
	if !s.ErrorLatched() {
		t.Errorf("ErrorLatched() = false, want true")
	}
	if got := s.State(); got != After {
		t.Errorf("State() = %v, want %v", got, After)
	}
}

func TestSession_MemoryOverflow(t *testing.T) {
	s := NewSession()
	s.memory = Memory{}.Save(MustParse("9.9999999999999999999999999999999E+10000"))
	s.entry = entry{value: MustParse("1E+9969")}
	s.MemoryAdd()
	if got := s.Fault(); got != ErrOverflow {
		t.Errorf("Fault() = %v, want %v", got, ErrOverflow)
	}
	if got := s.Display(); got != "Overflow" {
		t.Errorf("Display() = %q, want %q", got, "Overflow")
	}
	if s.MemoryEmpty() {
		t.Errorf("MemoryEmpty() = true, want false")
	}
	s.Clear()
	if s.MemoryEmpty() {
		t.Errorf("Clear() emptied the memory")
	}
}

func TestSession_CanBackspace(t *testing.T) {
	tests := []struct {
		keys string
		want bool
	}{
		{"", false},
		{"5", true},
		{"5 +", false},
		{"5 + 3", true},
		{"5 + 3 =", false},
		{"9 √", false},
		{"9 MS C MR", false},
		{"0 1/x", false},
		{"5 + 3 CE", true},
	}
	for _, tt := range tests {
		s := NewSession()
		press(s, tt.keys)
		if got := s.CanBackspace(); got != tt.want {
			t.Errorf("press(%q).CanBackspace() = %v, want %v", tt.keys, got, tt.want)
		}
	}
}

func TestSession_MemoryEmpty(t *testing.T) {
	s := NewSession()
	press(s, "5 MS")
	if s.MemoryEmpty() {
		t.Errorf("MemoryEmpty() after MS = true, want false")
	}
	press(s, "MC")
	if !s.MemoryEmpty() {
		t.Errorf("MemoryEmpty() after MC = false, want true")
	}
	press(s, "C 3 M+")
	if v, ok := s.Memory().Value(); !ok || v.String() != "3" {
		t.Errorf("Memory() after M+ = %v, %v, want 3, true", v, ok)
	}
}

func TestSession_ChainLaw(t *testing.T) {
	tests := []struct {
		a, b string
	}{
		{"1", "2"},
		{"0.1", "0.2"},
		{"123456789", "0.000001"},
		{"3.14159", "2.71828"},
	}
	for _, tt := range tests {
		s := NewSession()
		want := press(s, tt.a)
		keys := tt.a + " + " + tt.b + " = - " + tt.b + " ="
		s = NewSession()
		if got := press(s, keys); got != want {
			t.Errorf("press(%q) = %q, want %q", keys, got, want)
		}
	}
}

func TestSession_IgnoredInput(t *testing.T) {
	s := NewSession()
	press(s, "12")
	if got := s.Digit('x'); got != "12" {
		t.Errorf("Digit('x') = %q, want %q", got, "12")
	}
	if got := s.Operator(SquareRoot); got != "12" {
		t.Errorf("Operator(SquareRoot) = %q, want %q", got, "12")
	}
	if got := s.Unary(Add); got != "12" {
		t.Errorf("Unary(Add) = %q, want %q", got, "12")
	}
	if got := s.Apply(NoOp); got != "12" {
		t.Errorf("Apply(NoOp) = %q, want %q", got, "12")
	}
	if got := s.State(); got != Left {
		t.Errorf("State() = %v, want %v", got, Left)
	}
}

func TestState_String(t *testing.T) {
	tests := []struct {
		s    State
		want string
	}{
		{Left, "LEFT"},
		{Transient, "TRANSIENT"},
		{Right, "RIGHT"},
		{After, "AFTER"},
		{State(7), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}
