package day03

import (
	"errors"
	"testing"

	"github.com/povarna/aoc2022/internal/puzzle"
)

func TestExamples(t *testing.T) {
	s := New()
	for _, ex := range Examples {
		t.Run(ex.Name, func(t *testing.T) {
			got, err := s.Part1(ex.Input)
			if err != nil || got != ex.Part1 {
				t.Errorf("Part1 = %q, %v; want %q", got, err, ex.Part1)
			}
			got, err = s.Part2(ex.Input)
			if err != nil || got != ex.Part2 {
				t.Errorf("Part2 = %q, %v; want %q", got, err, ex.Part2)
			}
		})
	}
}

func TestPriority(t *testing.T) {
	tests := []struct {
		item item
		want int
	}{
		{'a', 1},
		{'p', 16},
		{'z', 26},
		{'A', 27},
		{'L', 38},
		{'Z', 52},
		{'1', 0},
	}

	for _, tt := range tests {
		if got := tt.item.priority(); got != tt.want {
			t.Errorf("priority(%q) = %d, want %d", tt.item, got, tt.want)
		}
	}
}

func TestInvalidInput(t *testing.T) {
	s := New()
	tests := []struct {
		name  string
		input string
		part  int
	}{
		{name: "odd length", input: "abc", part: 1},
		{name: "no shared item", input: "abcd", part: 1},
		{name: "two shared items", input: "abab", part: 1},
		{name: "group without badge", input: "aa\nbb\ncc", part: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			solve := s.Part1
			if tt.part == 2 {
				solve = s.Part2
			}
			if _, err := solve(tt.input); !errors.Is(err, puzzle.ErrInvalidInput) {
				t.Errorf("error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestPart2_ShortLastGroup(t *testing.T) {
	s := New()
	input := Examples[0].Input + "xQ\nQy\n"
	got, err := s.Part2(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 70 from the sample plus Q (43).
	if got != "113" {
		t.Errorf("Part2 = %q, want 113", got)
	}
}
