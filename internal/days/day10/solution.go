// Package day10 solves "Cathode-Ray Tube": run a two-instruction CPU and
// draw its sprite on a small CRT.
package day10

import (
	"strconv"
	"strings"

	"github.com/povarna/aoc2022/internal/puzzle"
)

const (
	screenWidth  = 40
	screenHeight = 6
)

var checkpoints = []int{20, 60, 100, 140, 180, 220}

// trace runs the program and returns the X register during each cycle.
// trace[i] is the value during cycle i+1.
func trace(input string) ([]int, error) {
	x := 1
	var xs []int
	for _, line := range puzzle.Lines(input) {
		op, arg, _ := strings.Cut(line, " ")
		switch op {
		case "noop":
			xs = append(xs, x)
		case "addx":
			v, err := puzzle.Atoi(arg)
			if err != nil {
				return nil, err
			}
			xs = append(xs, x, x)
			x += v
		default:
			return nil, puzzle.Invalidf("unknown instruction: %q", line)
		}
	}
	return xs, nil
}

type Solver struct{}

func New() *Solver {
	return &Solver{}
}

func (s *Solver) Part1(input string) (string, error) {
	xs, err := trace(input)
	if err != nil {
		return "", err
	}

	sum := 0
	for _, cycle := range checkpoints {
		if cycle > len(xs) {
			break
		}
		sum += cycle * xs[cycle-1]
	}
	return strconv.Itoa(sum), nil
}

// Part2 draws the screen as rows of '#' and '.' separated by newlines.
func (s *Solver) Part2(input string) (string, error) {
	xs, err := trace(input)
	if err != nil {
		return "", err
	}

	rows := make([]string, screenHeight)
	for r := range rows {
		var sb strings.Builder
		for c := 0; c < screenWidth; c++ {
			cycle := r*screenWidth + c
			if cycle < len(xs) && puzzle.Abs(xs[cycle]-c) <= 1 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		rows[r] = sb.String()
	}
	return strings.Join(rows, "\n"), nil
}
