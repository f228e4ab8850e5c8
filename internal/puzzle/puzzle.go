// Package puzzle holds the registry that maps a day and part to a solver,
// along with the input helpers and errors shared by the day packages.
package puzzle

import (
	"fmt"
	"sort"
)

const (
	FirstDay = 1
	LastDay  = 25
)

// Solver answers both parts of one day's puzzle.
type Solver interface {
	Part1(input string) (string, error)
	Part2(input string) (string, error)
}

// SolveFunc answers a single part.
type SolveFunc func(input string) (string, error)

// Example is a published sample input with its expected answers.
// An empty Part1 or Part2 means the sample has no answer for that part.
type Example struct {
	Name  string
	Input string
	Part1 string
	Part2 string
}

// Want returns the expected answer for part.
func (e Example) Want(part int) string {
	if part == 1 {
		return e.Part1
	}
	return e.Part2
}

type Entry struct {
	Day      int
	Title    string
	Solver   Solver
	Examples []Example
}

// Part returns the SolveFunc for part 1 or 2.
func (e Entry) Part(part int) SolveFunc {
	if part == 1 {
		return e.Solver.Part1
	}
	return e.Solver.Part2
}

type Registry struct {
	entries map[int]Entry
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[int]Entry)}
}

// Register adds a solver for day. Registering the same day twice replaces
// the earlier solver.
func (r *Registry) Register(day int, title string, solver Solver, examples ...Example) {
	if day < FirstDay || day > LastDay {
		panic(fmt.Sprintf("puzzle: register day %d out of range", day))
	}
	r.entries[day] = Entry{
		Day:      day,
		Title:    title,
		Solver:   solver,
		Examples: examples,
	}
}

// Validate checks the day and part numbers without consulting the registry.
func Validate(day, part int) error {
	if day < FirstDay || day > LastDay {
		return fmt.Errorf("%w: day %d, want %d-%d", ErrOutOfRange, day, FirstDay, LastDay)
	}
	if part != 1 && part != 2 {
		return fmt.Errorf("%w: part %d, want 1 or 2", ErrOutOfRange, part)
	}
	return nil
}

func (r *Registry) Entry(day int) (Entry, bool) {
	e, ok := r.entries[day]
	return e, ok
}

func (r *Registry) Lookup(day, part int) (SolveFunc, error) {
	if err := Validate(day, part); err != nil {
		return nil, err
	}
	e, ok := r.entries[day]
	if !ok {
		return nil, fmt.Errorf("%w: day %d part %d", ErrUnsupported, day, part)
	}
	return e.Part(part), nil
}

// Days returns the registered entries ordered by day.
func (r *Registry) Days() []Entry {
	days := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		days = append(days, e)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Day < days[j].Day })
	return days
}
