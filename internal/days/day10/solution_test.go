package day10

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
				t.Errorf("Part2 =\n%s\n%v; want\n%s", got, err, ex.Part2)
			}
		})
	}
}

func TestTrace(t *testing.T) {
	xs, err := trace("noop\naddx 3\naddx -5\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []int{1, 1, 1, 4, 4}
	if len(xs) != len(want) {
		t.Fatalf("got %d cycles, want %d", len(xs), len(want))
	}
	for i := range want {
		if xs[i] != want[i] {
			t.Errorf("cycle %d: X = %d, want %d", i+1, xs[i], want[i])
		}
	}
}

func TestPart1_ShortProgram(t *testing.T) {
	got, err := New().Part1("noop\naddx 3\naddx -5\n")
	if err != nil || got != "0" {
		t.Errorf("Part1 = %q, %v; want 0", got, err)
	}
}

func TestInvalidInput(t *testing.T) {
	s := New()
	for _, input := range []string{"jmp 3", "addx", "addx x"} {
		if _, err := s.Part1(input); !errors.Is(err, puzzle.ErrInvalidInput) {
			t.Errorf("Part1(%q) error = %v, want ErrInvalidInput", input, err)
		}
	}
}
