package cubes

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tailscale.com/util/deephash"

	"github.com/aocsolve/aoc2023"
)

func loadSample(t *testing.T) []Game {
	t.Helper()
	lines, err := aoc.ReadLines("testdata/test.txt")
	require.NoError(t, err)
	games, err := LoadGames(lines)
	require.NoError(t, err)
	return games
}

func TestParseGame(t *testing.T) {
	tests := []struct {
		line string
		want Game
	}{
		{
			line: "Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green",
			want: Game{ID: 1, Sets: []Set{
				{Red: 4, Blue: 3},
				{Red: 1, Green: 2, Blue: 6},
				{Green: 2},
			}},
		},
		{
			line: "Game 12: 20 red",
			want: Game{ID: 12, Sets: []Set{{Red: 20}}},
		},
		{
			// A trailing ';' still opens a new, empty set.
			line: "Game 7: 1 green;",
			want: Game{ID: 7, Sets: []Set{{Green: 1}, {}}},
		},
		{
			line: "Game 3:",
			want: Game{ID: 3, Sets: []Set{{}}},
		},
	}
	for _, tt := range tests {
		got, err := ParseGame(tt.line)
		if err != nil {
			t.Errorf("ParseGame(%q): %v", tt.line, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("ParseGame(%q) mismatch (-want +got):\n%s", tt.line, diff)
		}
	}
}

func TestParseGameErrors(t *testing.T) {
	tests := []struct {
		line string
		want error
	}{
		{"Game x: 1 red", ErrBadID},
		{"", ErrBadID},
		{"Game 1: 3 purple", ErrUnknownToken},
		{"Game 1: 3  red", ErrUnknownToken},
	}
	for _, tt := range tests {
		_, err := ParseGame(tt.line)
		assert.ErrorIs(t, err, tt.want, "ParseGame(%q)", tt.line)
	}
}

func TestSetsPerClause(t *testing.T) {
	lines, err := aoc.ReadLines("testdata/test.txt")
	require.NoError(t, err)
	for _, line := range lines {
		g, err := ParseGame(line)
		require.NoError(t, err)
		assert.Len(t, g.Sets, strings.Count(line, ";")+1, line)
	}
}

func TestLoadGamesIDMismatch(t *testing.T) {
	_, err := LoadGames([]string{
		"Game 1: 1 red",
		"Game 3: 1 red",
	})
	require.ErrorIs(t, err, ErrIDMismatch)
	assert.Contains(t, err.Error(), "line 2")
}

func TestSet(t *testing.T) {
	assert.True(t, Set{Red: 12, Green: 13, Blue: 14}.Possible(DefaultBag))
	assert.False(t, Set{Red: 20, Green: 8, Blue: 6}.Possible(DefaultBag))
	assert.False(t, Set{Blue: 15}.Possible(DefaultBag))
	assert.Equal(t, 48, Set{Red: 4, Green: 2, Blue: 6}.Power())
}

func TestMinPossibleSet(t *testing.T) {
	games := loadSample(t)
	want := []Set{
		{Red: 4, Green: 2, Blue: 6},
		{Red: 1, Green: 3, Blue: 4},
		{Red: 20, Green: 13, Blue: 6},
		{Red: 14, Green: 3, Blue: 15},
		{Red: 6, Green: 3, Blue: 2},
	}
	var got []Set
	for _, g := range games {
		got = append(got, g.MinPossibleSet())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MinPossibleSet mismatch (-want +got):\n%s", diff)
	}
}

func TestScore(t *testing.T) {
	games := loadSample(t)
	assert.Equal(t, 8, ScorePartOne(games, DefaultBag))
	assert.Equal(t, 2286, ScorePartTwo(games))
}

func TestScoreEmptyGame(t *testing.T) {
	games := []Game{{ID: 1}, {ID: 2, Sets: []Set{{Red: 99}}}}
	assert.Equal(t, 1, ScorePartOne(games, DefaultBag))
	assert.Equal(t, 0, ScorePartTwo(games))
}

func TestLoadGamesIdempotent(t *testing.T) {
	a := loadSample(t)
	b := loadSample(t)
	assert.Equal(t, deephash.Hash(&a), deephash.Hash(&b))
	assert.Equal(t, ScorePartTwo(a), ScorePartTwo(b))
}
