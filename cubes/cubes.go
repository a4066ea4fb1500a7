// Package cubes parses records of games in which cubes are drawn from a
// bag, and scores them.
//
// A record looks like
//
//	Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
//
// Each semicolon-separated clause is one Set of cubes revealed together.
package cubes

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aocsolve/aoc2023"
)

var (
	// ErrBadID is returned when a record does not start with a game number.
	ErrBadID = errors.New("bad game id")
	// ErrUnknownToken is returned for a word that is neither a number nor a
	// color.
	ErrUnknownToken = errors.New("unknown token")
	// ErrIDMismatch is returned by LoadGames when a game's id is not its
	// line number.
	ErrIDMismatch = errors.New("game id does not match line number")
)

// Set is the number of cubes of each color revealed at once.
type Set struct {
	Red, Green, Blue int
}

// DefaultBag is the bag the first part asks about.
var DefaultBag = Set{Red: 12, Green: 13, Blue: 14}

// Possible reports whether s could have been drawn from bag.
func (s Set) Possible(bag Set) bool {
	return s.Red <= bag.Red && s.Green <= bag.Green && s.Blue <= bag.Blue
}

// Power is the product of the three counts.
func (s Set) Power() int {
	return s.Red * s.Green * s.Blue
}

// Game is one parsed record.
type Game struct {
	ID   int
	Sets []Set
}

// MinPossibleSet returns the fewest cubes of each color the bag must have
// held for every set of g to be possible.
func (g Game) MinPossibleSet() Set {
	return aoc.Fold(g.Sets, func(acc Set, s Set) Set {
		return Set{
			Red:   aoc.Max(acc.Red, s.Red),
			Green: aoc.Max(acc.Green, s.Green),
			Blue:  aoc.Max(acc.Blue, s.Blue),
		}
	}, Set{})
}

// colors maps the color names to the Set field they count. Tokens are
// matched by substring so that trailing punctuation stays attached.
var colors = []struct {
	name  string
	field func(*Set) *int
}{
	{"red", func(s *Set) *int { return &s.Red }},
	{"green", func(s *Set) *int { return &s.Green }},
	{"blue", func(s *Set) *int { return &s.Blue }},
}

// ParseGame parses one record. The line is split on single spaces and each
// word is taken, in order of preference, as the "Game" marker, the game
// number, a count, or a color that the last count applies to. A word ending
// in ';' closes the current set.
func ParseGame(line string) (Game, error) {
	g := Game{Sets: []Set{{}}}
	haveID := false
	pending := 0
	for _, tok := range strings.Split(line, " ") {
		set := &g.Sets[len(g.Sets)-1]
		switch {
		case tok == "Game":
			continue
		case !haveID:
			id, ok := aoc.LeadingInt(tok)
			if !ok {
				return Game{}, fmt.Errorf("%q: %w", tok, ErrBadID)
			}
			g.ID, haveID = id, true
		case tok != "" && aoc.IsDigit(tok[0]):
			n, _ := aoc.LeadingInt(tok)
			pending = n
		default:
			field := colorField(set, tok)
			if field == nil {
				return Game{}, fmt.Errorf("%q: %w", tok, ErrUnknownToken)
			}
			*field = pending
		}
		if strings.HasSuffix(tok, ";") {
			g.Sets = append(g.Sets, Set{})
		}
	}
	return g, nil
}

func colorField(s *Set, tok string) *int {
	for _, c := range colors {
		if strings.Contains(tok, c.name) {
			return c.field(s)
		}
	}
	return nil
}

// LoadGames parses every line, requiring the games to be numbered 1, 2, 3...
// in order.
func LoadGames(lines []string) ([]Game, error) {
	games := make([]Game, 0, len(lines))
	for i, line := range lines {
		g, err := ParseGame(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		games = append(games, g)
		if g.ID != len(games) {
			return nil, fmt.Errorf("line %d: id %d: %w", i+1, g.ID, ErrIDMismatch)
		}
	}
	return games, nil
}

// ScorePartOne returns the sum of the ids of the games that were possible
// with bag.
func ScorePartOne(games []Game, bag Set) int {
	return aoc.Fold(games, func(sum int, g Game) int {
		for _, s := range g.Sets {
			if !s.Possible(bag) {
				return sum
			}
		}
		return sum + g.ID
	}, 0)
}

// ScorePartTwo returns the sum of the powers of each game's minimum
// possible set.
func ScorePartTwo(games []Game) int {
	powers := make([]int, len(games))
	for i, g := range games {
		powers[i] = g.MinPossibleSet().Power()
	}
	return aoc.Sum(powers...)
}
