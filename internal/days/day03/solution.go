// Package day03 solves "Rucksack Reorganization".
package day03

import (
	"strconv"

	"github.com/povarna/aoc2022/internal/puzzle"
)

const groupSize = 3

type item byte

func (i item) priority() int {
	switch {
	case i >= 'a' && i <= 'z':
		return int(i-'a') + 1
	case i >= 'A' && i <= 'Z':
		return int(i-'A') + 27
	}
	return 0
}

type itemSet map[item]struct{}

func newItemSet(s string) itemSet {
	set := make(itemSet, len(s))
	for i := 0; i < len(s); i++ {
		set[item(s[i])] = struct{}{}
	}
	return set
}

func (s itemSet) intersect(other itemSet) itemSet {
	out := make(itemSet)
	for it := range s {
		if _, ok := other[it]; ok {
			out[it] = struct{}{}
		}
	}
	return out
}

// only returns the single member of s.
func (s itemSet) only() item {
	for it := range s {
		return it
	}
	return 0
}

type rucksack struct {
	first  string
	second string
}

func (r rucksack) items() itemSet {
	return newItemSet(r.first + r.second)
}

func parseRucksack(line string) (rucksack, error) {
	if len(line)%2 != 0 {
		return rucksack{}, puzzle.Invalidf("uneven number of items in rucksack: %q", line)
	}
	half := len(line) / 2
	return rucksack{first: line[:half], second: line[half:]}, nil
}

type Solver struct{}

func New() *Solver {
	return &Solver{}
}

func (s *Solver) Part1(input string) (string, error) {
	rucksacks, err := readRucksacks(input)
	if err != nil {
		return "", err
	}

	sum := 0
	for _, r := range rucksacks {
		common := newItemSet(r.first).intersect(newItemSet(r.second))
		if len(common) != 1 {
			return "", puzzle.Invalidf("compartments do not share exactly one item: %q", r.first+r.second)
		}
		sum += common.only().priority()
	}
	return strconv.Itoa(sum), nil
}

func (s *Solver) Part2(input string) (string, error) {
	rucksacks, err := readRucksacks(input)
	if err != nil {
		return "", err
	}

	sum := 0
	for start := 0; start < len(rucksacks); start += groupSize {
		end := min(start+groupSize, len(rucksacks))

		common := rucksacks[start].items()
		for _, r := range rucksacks[start+1 : end] {
			common = common.intersect(r.items())
		}
		if len(common) != 1 {
			return "", puzzle.Invalidf("expected a single common item but got %d", len(common))
		}
		sum += common.only().priority()
	}
	return strconv.Itoa(sum), nil
}

func readRucksacks(input string) ([]rucksack, error) {
	lines := puzzle.Lines(input)
	rucksacks := make([]rucksack, 0, len(lines))
	for _, line := range lines {
		r, err := parseRucksack(line)
		if err != nil {
			return nil, err
		}
		rucksacks = append(rucksacks, r)
	}
	return rucksacks, nil
}
