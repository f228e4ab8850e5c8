// Package day04 solves "Camp Cleanup": compare pairs of section assignments.
package day04

import (
	"strconv"
	"strings"

	"github.com/povarna/aoc2022/internal/puzzle"
)

// assignment is an inclusive range of section IDs.
type assignment struct {
	first int
	last  int
}

func (a assignment) contains(other assignment) bool {
	return a.first <= other.first && a.last >= other.last
}

func (a assignment) overlaps(other assignment) bool {
	return a.first <= other.last && other.first <= a.last
}

func parseAssignment(s string) (assignment, error) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return assignment{}, puzzle.Invalidf("bad range: %q", s)
	}
	first, err := puzzle.Atoi(lo)
	if err != nil {
		return assignment{}, err
	}
	last, err := puzzle.Atoi(hi)
	if err != nil {
		return assignment{}, err
	}
	return assignment{first: first, last: last}, nil
}

type pair [2]assignment

type Solver struct{}

func New() *Solver {
	return &Solver{}
}

func (s *Solver) Part1(input string) (string, error) {
	return count(input, func(p pair) bool {
		return p[0].contains(p[1]) || p[1].contains(p[0])
	})
}

func (s *Solver) Part2(input string) (string, error) {
	return count(input, func(p pair) bool {
		return p[0].overlaps(p[1])
	})
}

func count(input string, match func(pair) bool) (string, error) {
	pairs, err := readPairs(input)
	if err != nil {
		return "", err
	}

	n := 0
	for _, p := range pairs {
		if match(p) {
			n++
		}
	}
	return strconv.Itoa(n), nil
}

func readPairs(input string) ([]pair, error) {
	var pairs []pair
	for _, line := range puzzle.Lines(input) {
		left, right, ok := strings.Cut(line, ",")
		if !ok {
			return nil, puzzle.Invalidf("bad line: %q", line)
		}
		a, err := parseAssignment(left)
		if err != nil {
			return nil, err
		}
		b, err := parseAssignment(right)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, pair{a, b})
	}
	return pairs, nil
}
