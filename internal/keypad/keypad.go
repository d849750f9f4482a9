// Package keypad maps key names, as typed on a terminal or sent by a tool
// client, to calculator session events.
//
// A key is a digit run such as "200", an operation accepted by
// [calc.ParseOp], or one of the command keys:
//
//	=    equals
//	%    percent
//	C    clear
//	CE   clear entry
//	<    backspace (also "back")
//	MR   memory recall
package keypad

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/govalues/calc"
)

// ErrUnknownKey is returned when a key names no digit, operation or command.
var ErrUnknownKey = errors.New("unknown key")

// commands are the keys that are not operations.
var commands = []string{"=", "%", "C", "CE", "<", "back", "MR"}

// compact holds the keys that can be written without surrounding spaces,
// longest first.
var compact = compactKeys()

func compactKeys() []string {
	keys := append([]string{"*", "/", "x²"}, commands...)
	for o := calc.Add; o <= calc.MemoryClear; o++ {
		for _, k := range []string{o.Code(), strings.ToUpper(o.Code()), o.Symbol()} {
			if k == "" || isDigit(k[0]) {
				continue
			}
			keys = append(keys, k)
		}
	}
	sort.SliceStable(keys, func(i, j int) bool {
		return len(keys[i]) > len(keys[j])
	})
	return keys
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9' || b == '.'
}

// digitRun returns the length of the leading run of digits and points in s.
func digitRun(s string) int {
	n := 0
	for n < len(s) && isDigit(s[n]) {
		n++
	}
	return n
}

func isNumber(s string) bool {
	return s != "" && digitRun(s) == len(s)
}

func isKey(s string) bool {
	if isNumber(s) {
		return true
	}
	for _, c := range commands {
		if s == c {
			return true
		}
	}
	op, err := calc.ParseOp(s)
	return err == nil && op != calc.NoOp
}

// Split breaks a line into keys.
// Fields separated by white space are kept whole when they name a key.
// Other fields are scanned left to right for digit runs and the longest
// matching symbol or name, so "5+3==" gives "5", "+", "3", "=", "=".
// Unrecognized characters are returned as single-rune keys.
func Split(line string) []string {
	var keys []string
	for _, field := range strings.Fields(line) {
		if isKey(field) {
			keys = append(keys, field)
			continue
		}
		for field != "" {
			n := digitRun(field)
			if n == 0 {
				n = prefix(field)
			}
			keys = append(keys, field[:n])
			field = field[n:]
		}
	}
	return keys
}

// prefix returns the length of the longest compact key at the start of s,
// or the length of its first rune.
func prefix(s string) int {
	for _, k := range compact {
		if strings.HasPrefix(s, k) {
			return len(k)
		}
	}
	_, size := utf8.DecodeRuneInString(s)
	return size
}

// Press sends one key to the session.
// A digit run is entered one character at a time.
func Press(s *calc.Session, key string) error {
	switch key {
	case "=":
		s.Equals()
	case "%":
		s.Percent()
	case "C":
		s.Clear()
	case "CE":
		s.ClearEntry()
	case "<", "back":
		s.Backspace()
	case "MR":
		s.MemoryRecall()
	default:
		if isNumber(key) {
			for _, r := range key {
				s.Digit(r)
			}
			return nil
		}
		op, err := calc.ParseOp(key)
		if err != nil || op == calc.NoOp {
			return ErrUnknownKey
		}
		s.Apply(op)
	}
	return nil
}

// Run presses every key of line in order.
// It stops at the first unknown key; the keys before it stay applied.
func Run(s *calc.Session, line string) error {
	for _, key := range Split(line) {
		if err := Press(s, key); err != nil {
			return fmt.Errorf("press %q: %w", key, err)
		}
	}
	return nil
}
