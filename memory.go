package calc

import "fmt"

// Memory type represents the memory cell of a calculator.
// Its zero value is an empty cell.
//
// An empty cell is different from a cell holding zero: only an empty cell
// is reported by [Memory.IsEmpty]. Accumulating into an empty cell treats it
// as zero.
// Memory is designed to be safe for concurrent use by multiple goroutines.
type Memory struct {
	value Value
	valid bool
}

// IsEmpty returns true if no value is stored in the cell.
func (m Memory) IsEmpty() bool {
	return !m.valid
}

// Value returns the stored value and true, or zero and false if the
// cell is empty.
func (m Memory) Value() (Value, bool) {
	return m.value, m.valid
}

// Save returns a cell holding v.
func (m Memory) Save(v Value) Memory {
	return Memory{value: v, valid: true}
}

// Clear returns an empty cell.
func (m Memory) Clear() Memory {
	return Memory{}
}

// Add returns a cell holding the sum of the stored value and v.
//
// Add returns an error if the sum overflows.
func (m Memory) Add(v Value) (Memory, error) {
	u, err := m.value.Add(v)
	if err != nil {
		return m, err
	}
	return m.Save(u), nil
}

// Sub returns a cell holding the stored value minus v.
// Subtracting from an empty cell stores -v.
//
// Sub returns an error if the difference overflows.
func (m Memory) Sub(v Value) (Memory, error) {
	u, err := m.value.Sub(v)
	if err != nil {
		return m, err
	}
	return m.Save(u), nil
}

// Apply performs a memory operation with operand v.
// [MemoryClear] ignores the operand.
func (m Memory) Apply(op Operation, v Value) (Memory, error) {
	switch op {
	case MemoryAdd:
		return m.Add(v)
	case MemorySub:
		return m.Sub(v)
	case MemorySave:
		return m.Save(v), nil
	case MemoryClear:
		return m.Clear(), nil
	}
	return m, fmt.Errorf("applying %v to memory: %w", op, errNotEvaluable)
}

// String method implements the [fmt.Stringer] interface and returns
// the stored value, or an empty string if the cell is empty.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m Memory) String() string {
	if !m.valid {
		return ""
	}
	return m.value.String()
}
