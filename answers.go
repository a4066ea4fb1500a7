package aoc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Answers holds the known answers for a year's real inputs, keyed by day
// and then by part name ("1", "2").
type Answers struct {
	Year int                       `yaml:"year"`
	Days map[int]map[string]string `yaml:"days"`
}

// Want returns the known answer for day/part, if there is one.
func (a *Answers) Want(day int, part string) (string, bool) {
	if a == nil {
		return "", false
	}
	want, ok := a.Days[day][part]
	return want, ok && want != ""
}

// ParseAnswers decodes an answers file.
func ParseAnswers(b []byte) (*Answers, error) {
	var a Answers
	if err := yaml.Unmarshal(b, &a); err != nil {
		return nil, fmt.Errorf("parsing answers: %w", err)
	}
	return &a, nil
}

// LoadAnswers reads the answers file at path. A missing file is not an
// error; it returns a nil *Answers, which knows no answers.
func LoadAnswers(path string) (*Answers, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	a, err := ParseAnswers(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}
