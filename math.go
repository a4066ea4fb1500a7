package aoc

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Digit returns the digit value of the rune.
func Digit(r rune) int {
	if r < '0' || r > '9' {
		panic(fmt.Sprintf("not a digit: %q", r))
	}
	return int(r - '0')
}

// IsDigit reports whether b is an ASCII decimal digit.
func IsDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// Int returns the int value of the string.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

// LeadingInt parses the run of decimal digits at the start of s, ignoring
// whatever follows it ("12:" is 12). It reports false if s does not start
// with a digit.
func LeadingInt(s string) (int, bool) {
	n := 0
	for n < len(s) && IsDigit(s[n]) {
		n++
	}
	if n == 0 {
		return 0, false
	}
	v, err := strconv.Atoi(s[:n])
	if err != nil {
		return 0, false
	}
	return v, true
}

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Max returns the larger of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Fold reduces in to a single value, starting from defVal.
func Fold[T any, R any](in []T, f func(R, T) R, defVal R) R {
	out := defVal
	for _, v := range in {
		out = f(out, v)
	}
	return out
}
