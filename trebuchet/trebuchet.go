// Package trebuchet recovers calibration values from lines of text: the
// first and last digit of each line, spelled with a numeral or, optionally,
// as an English word.
package trebuchet

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/aocsolve/aoc2023"
)

// ErrNoDigits is returned for a line in which no digit token occurs.
var ErrNoDigits = errors.New("no digit in line")

// Token is a piece of text that stands for a digit.
type Token struct {
	Text  string
	Value int
}

var words = [...]string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// catalog holds the ten numerals followed by the ten words.
var catalog = func() []Token {
	var toks []Token
	for _, r := range "0123456789" {
		toks = append(toks, Token{Text: string(r), Value: aoc.Digit(r)})
	}
	for v, w := range words {
		toks = append(toks, Token{Text: w, Value: v})
	}
	return toks
}()

// Tokens returns the tokens to look for: only the numerals, or the
// numerals and the words if considerWords is set. The result must not be
// modified.
func Tokens(considerWords bool) []Token {
	if considerWords {
		return catalog
	}
	return catalog[:10]
}

// Occurrence is a digit found at a byte offset in a line.
type Occurrence struct {
	Value  int
	Offset int
}

// Occurrences returns the first and last occurrence of every active token
// in line, ordered by offset. Each token is searched for independently, so
// overlapping tokens ("eightwo") are both found.
func Occurrences(line string, considerWords bool) []Occurrence {
	var occs []Occurrence
	for _, tok := range Tokens(considerWords) {
		first := strings.Index(line, tok.Text)
		if first == -1 {
			continue
		}
		occs = append(occs, Occurrence{Value: tok.Value, Offset: first})
		if last := strings.LastIndex(line, tok.Text); last != first {
			occs = append(occs, Occurrence{Value: tok.Value, Offset: last})
		}
	}
	slices.SortStableFunc(occs, func(a, b Occurrence) int {
		return a.Offset - b.Offset
	})
	return occs
}

// LineValue returns the two-digit number made of the first and last digit
// of line. A line with a single digit uses it twice.
func LineValue(line string, considerWords bool) (int, error) {
	occs := Occurrences(line, considerWords)
	if len(occs) == 0 {
		return 0, fmt.Errorf("%q: %w", line, ErrNoDigits)
	}
	return occs[0].Value*10 + occs[len(occs)-1].Value, nil
}

// CalibrationSum returns the sum of the values of all lines.
func CalibrationSum(lines []string, considerWords bool) (int, error) {
	sum := 0
	for i, line := range lines {
		v, err := LineValue(line, considerWords)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		sum += v
	}
	return sum, nil
}
