// Package aoc is a small harness for solving Advent of Code puzzles. It
// finds solver methods named D{day}p{part}, checks each one against the
// sample in its doc comment and then runs it on the real input.
package aoc

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"tailscale.com/util/deephash"
)

// ErrAnswerMismatch is returned when a solver disagrees with a known
// answer, either the want= of its sample or the answers file.
var ErrAnswerMismatch = errors.New("answer mismatch")

var logger = zap.NewNop().Sugar()

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	passStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  strings.TrimSpace(m[1]),
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples returns the sample of every documented func in src, keyed
// by func name. A sample without input reuses the input of the one before.
func extractSamples(src []byte) (map[string]sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "main.go", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[fd.Name.Name] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples, nil
}

// SplitLines splits a whole input into its lines. A final newline ends the
// last line rather than starting an empty one.
func SplitLines(data []byte) []string {
	s := strings.TrimSuffix(string(data), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// ReadLines reads the file at path and splits it with SplitLines.
func ReadLines(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return SplitLines(b), nil
}

// Puzzle is embedded in a solver struct and gives each part access to its
// input.
type Puzzle struct {
	day        day
	SampleMode bool

	inputDir string
	input    []byte

	solver  partSolver
	samples map[string]sample
}

// InputPath is where the real input of the puzzle's day lives.
func (p *Puzzle) InputPath() string {
	return filepath.Join(p.inputDir, fmt.Sprintf("%02d", p.day.day), "real.txt")
}

func (p *Puzzle) readInput() ([]byte, error) {
	if p.input != nil {
		return p.input, nil
	}
	b, err := os.ReadFile(p.InputPath())
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	p.input = b
	return b, nil
}

// Input returns the sample input in sample mode and the real input
// otherwise.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	return MustGet(p.readInput())
}

// Lines returns the input split into lines.
func (p *Puzzle) Lines() []string {
	return SplitLines(p.Input())
}

func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	for y, line := range p.Lines() {
		onLine(y, line)
	}
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

func (p *Puzzle) Debug(v ...any) {
	logger.Debug(v...)
}

func (p *Puzzle) Debugf(format string, args ...any) {
	if p.SampleMode {
		logger.Debugf(format, args...)
	}
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		panic(fmt.Sprintf("no sample found for %v", p.solver.Name))
	}
	return sample
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods finds the methods named D{day}p{part} on the struct x
// points to, grouped by day with parts in order.
func extractMethods(x any) (map[int]day, error) {
	rv := reflect.ValueOf(x)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("got solver %T; want pointer to struct", x)
	}
	v := rv.Elem()
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m, ok := v.Method(i).Interface().(func() any)
		if !ok {
			return nil, fmt.Errorf("%s is %v; want func() any", mn, vt.Method(i).Type)
		}
		d := Int(matches[1])
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: matches[2],
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days, nil
}

type options struct {
	day        int
	part       string
	debug      bool
	onlySample bool
	skipSample bool
	verify     bool
	inputDir   string
}

type runner struct {
	w       io.Writer
	slvr    reflect.Value // the solver's embedded *Puzzle field
	samples map[string]sample
	answers *Answers
	opts    options
}

func (r *runner) runDay(d day) error {
	p := &Puzzle{
		day:      d,
		samples:  r.samples,
		inputDir: r.opts.inputDir,
	}
	fmt.Fprintln(r.w, headerStyle.Render(fmt.Sprint("Running day ", d.day)))
	r.slvr.Set(reflect.ValueOf(p))
	for _, ps := range d.parts {
		if r.opts.part != "" && ps.Part != r.opts.part {
			continue
		}
		p.solver = ps
		for _, sm := range []bool{true, false} {
			if !sm && r.opts.onlySample {
				continue
			} else if sm && r.opts.skipSample {
				continue
			}
			p.SampleMode = sm
			if err := r.runPart(p, ps); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *runner) runPart(p *Puzzle, ps partSolver) error {
	label := "part " + ps.Part
	var want string
	var haveWant bool
	if p.SampleMode {
		label += " sample"
		s, ok := p.samples[ps.Name]
		if !ok {
			return fmt.Errorf("no sample found for %v", ps.Name)
		}
		want, haveWant = s.want, true
	} else {
		// Prime the input.
		if _, err := p.readInput(); err != nil {
			return err
		}
		want, haveWant = r.answers.Want(p.day.day, ps.Part)
	}

	t0 := time.Now()
	got := ps.fn()
	took := faintStyle.Render(fmt.Sprintf("(took %v)", time.Since(t0).Round(time.Microsecond)))
	logger.Debugw("solved", "day", p.day.day, "part", ps.Part, "sample", p.SampleMode, "got", got)

	if r.opts.verify {
		again := ps.fn()
		if deephash.Hash(&got) != deephash.Hash(&again) {
			return fmt.Errorf("day %d %s: second run gave %v, first gave %v", p.day.day, label, again, got)
		}
	}

	switch {
	case !haveWant:
		fmt.Fprintf(r.w, "%s: %v %s\n", label, got, took)
	case fmt.Sprint(got) != want:
		fmt.Fprintf(r.w, "%s: %v %s; want %v\n", label, got, failStyle.Render("❌"), want)
		return fmt.Errorf("day %d %s: got %v, want %v: %w", p.day.day, label, got, want, ErrAnswerMismatch)
	default:
		fmt.Fprintf(r.w, "%s: %v %s %s\n", label, got, passStyle.Render("✅"), took)
	}
	return nil
}

func run(w io.Writer, year int, src []byte, slvr any, opts options) error {
	samples, err := extractSamples(src)
	if err != nil {
		return err
	}
	days, err := extractMethods(slvr)
	if err != nil {
		return err
	}
	field := reflect.ValueOf(slvr).Elem().FieldByName("Puzzle")
	if !field.IsValid() || field.Type() != reflect.TypeOf((*Puzzle)(nil)) {
		return fmt.Errorf("solver %T does not embed *aoc.Puzzle", slvr)
	}
	answers, err := LoadAnswers(filepath.Join(opts.inputDir, "answers.yaml"))
	if err != nil {
		return err
	}
	if answers != nil && answers.Year != 0 && answers.Year != year {
		logger.Warnw("ignoring answers for another year", "year", answers.Year, "want", year)
		answers = nil
	}

	r := &runner{
		w:       w,
		slvr:    field,
		samples: samples,
		answers: answers,
		opts:    opts,
	}
	if opts.day != -1 {
		d, ok := days[opts.day]
		if !ok {
			return fmt.Errorf("no day %d", opts.day)
		}
		return r.runDay(d)
	}

	dayNums := make([]int, 0, len(days))
	for d := range days {
		dayNums = append(dayNums, d)
	}
	slices.Sort(dayNums)
	for i, d := range dayNums {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if err := r.runDay(days[d]); err != nil {
			return err
		}
	}
	return nil
}

func initLogger(debug bool) error {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	logger = l.Sugar()
	return nil
}

// Command returns the command that runs the solvers of slvr. src is the
// source of the file declaring them, from which samples are read.
func Command(year int, src []byte, slvr any) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:          fmt.Sprintf("aoc%d", year),
		Short:        fmt.Sprintf("Run the Advent of Code %d solvers", year),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initLogger(opts.debug)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), year, src, slvr, opts)
		},
	}
	f := cmd.Flags()
	f.IntVar(&opts.day, "day", -1, "day to run")
	f.StringVar(&opts.part, "part", "", "part to run")
	f.BoolVar(&opts.onlySample, "sample", false, "only run sample")
	f.BoolVar(&opts.skipSample, "skip-sample", false, "skip sample")
	f.BoolVar(&opts.debug, "debug", false, "debug mode")
	f.BoolVar(&opts.verify, "verify", false, "run every part twice and check both runs agree")
	f.StringVar(&opts.inputDir, "input-dir", "data", "directory holding DD/real.txt inputs and answers.yaml")
	return cmd
}

// Run runs the solvers of slvr, exiting non-zero if any of them fails.
func Run(year int, src []byte, slvr any) {
	if err := Command(year, src, slvr).Execute(); err != nil {
		os.Exit(1)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}
