// Package day01 solves "Calorie Counting": find the elves carrying the most
// food calories.
package day01

import (
	"slices"
	"strconv"
	"strings"

	"github.com/povarna/aoc2022/internal/puzzle"
)

type Params struct {
	// TopCount is how many of the largest inventories part 2 adds up.
	TopCount int
}

func DefaultParams() Params {
	return Params{TopCount: 3}
}

type Solver struct {
	topCount int
}

func New(p Params) *Solver {
	return &Solver{topCount: p.TopCount}
}

type elf struct {
	calories []int
}

func (e elf) total() int {
	sum := 0
	for _, c := range e.calories {
		sum += c
	}
	return sum
}

func (s *Solver) Part1(input string) (string, error) {
	totals, err := readTotals(input)
	if err != nil {
		return "", err
	}
	if len(totals) == 0 {
		return "", puzzle.Invalidf("no elves")
	}
	return strconv.Itoa(slices.Max(totals)), nil
}

func (s *Solver) Part2(input string) (string, error) {
	totals, err := readTotals(input)
	if err != nil {
		return "", err
	}

	slices.SortFunc(totals, func(a, b int) int { return b - a })

	sum := 0
	for i := 0; i < s.topCount && i < len(totals); i++ {
		sum += totals[i]
	}
	return strconv.Itoa(sum), nil
}

func readTotals(input string) ([]int, error) {
	elves, err := readElves(input)
	if err != nil {
		return nil, err
	}
	totals := make([]int, len(elves))
	for i, e := range elves {
		totals[i] = e.total()
	}
	return totals, nil
}

func readElves(input string) ([]elf, error) {
	var elves []elf
	for _, block := range puzzle.Blocks(input) {
		var e elf
		for _, line := range strings.Split(block, "\n") {
			cal, err := strconv.Atoi(strings.TrimSpace(line))
			if err != nil {
				return nil, puzzle.Invalidf("invalid line: %q", line)
			}
			e.calories = append(e.calories, cal)
		}
		elves = append(elves, e)
	}
	return elves, nil
}
