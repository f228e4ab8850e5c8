// Package day09 solves "Rope Bridge" by simulating a rope of knots.
package day09

import (
	"strconv"
	"strings"

	"github.com/povarna/aoc2022/internal/puzzle"
)

type Params struct {
	// Knots is the rope length used by part 2.
	Knots int
}

func DefaultParams() Params {
	return Params{Knots: 10}
}

type point struct {
	x, y int
}

// follow moves p one step toward head unless the two already touch.
func (p point) follow(head point) point {
	dx, dy := head.x-p.x, head.y-p.y
	if puzzle.Abs(dx) <= 1 && puzzle.Abs(dy) <= 1 {
		return p
	}
	return point{p.x + puzzle.Sign(dx), p.y + puzzle.Sign(dy)}
}

var steps = map[string]point{
	"U": {0, 1},
	"D": {0, -1},
	"L": {-1, 0},
	"R": {1, 0},
}

type motion struct {
	step  point
	count int
}

func parseMotion(line string) (motion, error) {
	dir, n, ok := strings.Cut(line, " ")
	if !ok {
		return motion{}, puzzle.Invalidf("bad motion: %q", line)
	}
	step, ok := steps[dir]
	if !ok {
		return motion{}, puzzle.Invalidf("bad direction: %q", line)
	}
	count, err := puzzle.Atoi(n)
	if err != nil {
		return motion{}, err
	}
	if count < 0 {
		return motion{}, puzzle.Invalidf("negative step count: %q", line)
	}
	return motion{step: step, count: count}, nil
}

type Solver struct {
	knots int
}

func New(p Params) *Solver {
	return &Solver{knots: p.Knots}
}

func (s *Solver) Part1(input string) (string, error) {
	return simulate(input, 2)
}

func (s *Solver) Part2(input string) (string, error) {
	return simulate(input, s.knots)
}

// simulate counts the positions visited by the last knot.
func simulate(input string, knots int) (string, error) {
	if knots < 1 {
		return "", puzzle.Invalidf("rope needs at least one knot, got %d", knots)
	}

	rope := make([]point, knots)
	visited := map[point]struct{}{rope[knots-1]: {}}

	for _, line := range puzzle.Lines(input) {
		m, err := parseMotion(line)
		if err != nil {
			return "", err
		}
		for range m.count {
			rope[0] = point{rope[0].x + m.step.x, rope[0].y + m.step.y}
			for i := 1; i < len(rope); i++ {
				rope[i] = rope[i].follow(rope[i-1])
			}
			visited[rope[knots-1]] = struct{}{}
		}
	}
	return strconv.Itoa(len(visited)), nil
}
