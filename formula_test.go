package calc

import "testing"

func TestFormula_ZeroValue(t *testing.T) {
	var f Formula
	if got := f.String(); got != "" {
		t.Errorf("Formula{}.String() = %q, want %q", got, "")
	}
	if f.Closed() || f.Pending() {
		t.Errorf("Formula{} is closed or pending")
	}
}

func TestFormula_String(t *testing.T) {
	tests := []struct {
		name string
		f    Formula
		want string
	}{
		{"binary", Formula{}.Binary("5", Add), "5 +"},
		{"equals", Formula{}.Binary("5", Add).Equals("3"), "5 + 3 ="},
		{"equals without operator", Formula{}.Equals("5"), "5 ="},
		{"chain", Formula{}.Binary("5", Add).Binary("3", Multiply), "5 + 3 ×"},
		{"replace", Formula{}.Binary("5", Add).ReplaceOperator(Divide), "5 ÷"},
		{"replace empty", Formula{}.ReplaceOperator(Divide), ""},
		{"unary", Formula{}.Unary(SquareRoot, "9"), "√( 9 )"},
		{"nested unary", Formula{}.Unary(SquareRoot, "4").Unary(Square, "2"), "sqr( √( 4 ) )"},
		{"unary right", Formula{}.Binary("5", Add).Unary(SquareRoot, "9").Equals("3"), "5 + √( 9 ) ="},
		{"unary left", Formula{}.Unary(Reciprocal, "4").Binary("0.25", Subtract), "1/( 4 ) -"},
		{"negate", Formula{}.Binary("5", Add).Unary(Negate, "5"), "5 + negate( 5 )"},
		{"percent", Formula{}.Binary("200", Add).Set("4"), "200 + 4"},
		{"percent equals", Formula{}.Binary("200", Add).Set("4").Equals("4"), "200 + 4 ="},
		{"discard", Formula{}.Binary("5", Add).Unary(SquareRoot, "9").Discard(), "5 +"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormula_Immutable(t *testing.T) {
	base := Formula{}.Binary("1", Add)
	a := base.Binary("2", Multiply)
	b := base.Binary("3", Subtract)
	if got := a.String(); got != "1 + 2 ×" {
		t.Errorf("a.String() = %q, want %q", got, "1 + 2 ×")
	}
	if got := b.String(); got != "1 + 3 -" {
		t.Errorf("b.String() = %q, want %q", got, "1 + 3 -")
	}
	c := a.ReplaceOperator(Divide)
	if got := a.String(); got != "1 + 2 ×" {
		t.Errorf("a.String() after ReplaceOperator = %q, want %q", got, "1 + 2 ×")
	}
	if got := c.String(); got != "1 + 2 ÷" {
		t.Errorf("c.String() = %q, want %q", got, "1 + 2 ÷")
	}
	if got := base.String(); got != "1 +" {
		t.Errorf("base.String() = %q, want %q", got, "1 +")
	}
}

func TestFormula_State(t *testing.T) {
	f := Formula{}.Binary("5", Add)
	if !f.Pending() || f.Closed() {
		t.Errorf("%q: Pending() = %v, Closed() = %v", f, f.Pending(), f.Closed())
	}
	f = f.Equals("3")
	if f.Pending() || !f.Closed() {
		t.Errorf("%q: Pending() = %v, Closed() = %v", f, f.Pending(), f.Closed())
	}
}
