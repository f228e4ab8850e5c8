// Package day05 solves "Supply Stacks" by simulating the crane that
// rearranges crates between stacks.
package day05

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/povarna/aoc2022/internal/puzzle"
)

var moveRx = regexp.MustCompile(`^move (\d+) from (\d+) to (\d+)$`)

type move struct {
	amount int
	from   int
	to     int
}

func parseMove(line string) (move, error) {
	m := moveRx.FindStringSubmatch(line)
	if m == nil {
		return move{}, puzzle.Invalidf("invalid move: %q", line)
	}
	var fields [3]int
	for i, raw := range m[1:] {
		n, err := puzzle.Atoi(raw)
		if err != nil {
			return move{}, err
		}
		fields[i] = n
	}
	return move{amount: fields[0], from: fields[1], to: fields[2]}, nil
}

// dock holds the stacks. The last byte of each stack is its top crate.
type dock struct {
	stacks [][]byte
}

func parseDock(drawing string) dock {
	var d dock
	lines := strings.Split(drawing, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := lines[i]
		for col, offset := 0, 1; offset < len(line); col, offset = col+1, offset+4 {
			ch := rune(line[offset])
			if unicode.IsDigit(ch) {
				break
			}
			if unicode.IsLetter(ch) {
				d.push(col, line[offset])
			}
		}
	}
	return d
}

func (d *dock) push(col int, crate byte) {
	for len(d.stacks) <= col {
		d.stacks = append(d.stacks, nil)
	}
	d.stacks[col] = append(d.stacks[col], crate)
}

// take removes the top n crates of the source stack and returns them
// bottom first. Moving nothing is a no-op whatever the columns say.
func (d *dock) take(m move) ([]byte, error) {
	if m.amount == 0 {
		return nil, nil
	}
	if m.from < 1 || m.from > len(d.stacks) {
		return nil, puzzle.Invalidf("invalid from column: %d", m.from)
	}
	if m.to < 1 || m.to > len(d.stacks) {
		return nil, puzzle.Invalidf("invalid to column: %d", m.to)
	}

	src := d.stacks[m.from-1]
	if m.amount > len(src) {
		return nil, puzzle.Invalidf("not enough crates: want %d from column %d, have %d", m.amount, m.from, len(src))
	}

	cut := len(src) - m.amount
	block := append([]byte(nil), src[cut:]...)
	d.stacks[m.from-1] = src[:cut]
	return block, nil
}

// exec9000 moves crates one at a time, reversing their order.
func (d *dock) exec9000(m move) error {
	block, err := d.take(m)
	if err != nil {
		return err
	}
	if len(block) == 0 {
		return nil
	}
	for i := len(block) - 1; i >= 0; i-- {
		d.stacks[m.to-1] = append(d.stacks[m.to-1], block[i])
	}
	return nil
}

// exec9001 moves crates as one block, keeping their order.
func (d *dock) exec9001(m move) error {
	block, err := d.take(m)
	if err != nil {
		return err
	}
	if len(block) == 0 {
		return nil
	}
	d.stacks[m.to-1] = append(d.stacks[m.to-1], block...)
	return nil
}

// code is the top crate of every non-empty stack.
func (d *dock) code() string {
	var sb strings.Builder
	for _, stack := range d.stacks {
		if len(stack) > 0 {
			sb.WriteByte(stack[len(stack)-1])
		}
	}
	return sb.String()
}

type Solver struct{}

func New() *Solver {
	return &Solver{}
}

func (s *Solver) Part1(input string) (string, error) {
	return run(input, (*dock).exec9000)
}

func (s *Solver) Part2(input string) (string, error) {
	return run(input, (*dock).exec9001)
}

func run(input string, exec func(*dock, move) error) (string, error) {
	d, moves, err := parseNotes(input)
	if err != nil {
		return "", err
	}
	for _, m := range moves {
		if err := exec(&d, m); err != nil {
			return "", err
		}
	}
	return d.code(), nil
}

func parseNotes(input string) (dock, []move, error) {
	drawing, procedure, ok := strings.Cut(puzzle.Normalize(input), "\n\n")
	if !ok {
		return dock{}, nil, puzzle.Invalidf("missing blank line between drawing and moves")
	}

	var moves []move
	for _, line := range puzzle.Lines(procedure) {
		m, err := parseMove(line)
		if err != nil {
			return dock{}, nil, err
		}
		moves = append(moves, m)
	}
	return parseDock(drawing), moves, nil
}
