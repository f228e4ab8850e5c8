// Package day06 solves "Tuning Trouble": locate start markers in a
// datastream.
package day06

import (
	"strconv"
	"strings"

	"github.com/povarna/aoc2022/internal/puzzle"
)

type Params struct {
	PacketMarker  int
	MessageMarker int
}

func DefaultParams() Params {
	return Params{PacketMarker: 4, MessageMarker: 14}
}

type Solver struct {
	params Params
}

func New(p Params) *Solver {
	return &Solver{params: p}
}

func (s *Solver) Part1(input string) (string, error) {
	return detect(input, s.params.PacketMarker)
}

func (s *Solver) Part2(input string) (string, error) {
	return detect(input, s.params.MessageMarker)
}

func detect(input string, width int) (string, error) {
	pos, err := markerEnd(strings.TrimSpace(input), width)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(pos), nil
}

// markerEnd returns the number of bytes consumed once the last width bytes
// are pairwise distinct.
func markerEnd(stream string, width int) (int, error) {
	if width < 1 {
		return 0, puzzle.Invalidf("marker width must be positive, got %d", width)
	}

	var counts [256]int
	dupes := 0
	for i := 0; i < len(stream); i++ {
		counts[stream[i]]++
		if counts[stream[i]] == 2 {
			dupes++
		}
		if i >= width {
			old := stream[i-width]
			if counts[old] == 2 {
				dupes--
			}
			counts[old]--
		}
		if i >= width-1 && dupes == 0 {
			return i + 1, nil
		}
	}
	return 0, puzzle.Invalidf("no unique %d character sequence found", width)
}
