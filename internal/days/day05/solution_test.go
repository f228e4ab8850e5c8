package day05

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

func TestParseDock(t *testing.T) {
	// Short lines without trailing padding still parse.
	d := parseDock("    [D]\n[N] [C]\n[Z] [M] [P]\n 1   2   3")

	want := []string{"ZN", "MCD", "P"}
	if len(d.stacks) != len(want) {
		t.Fatalf("got %d stacks, want %d", len(d.stacks), len(want))
	}
	for i, w := range want {
		if string(d.stacks[i]) != w {
			t.Errorf("stack %d = %q, want %q", i+1, d.stacks[i], w)
		}
	}
}

func TestCode_SkipsEmptyStacks(t *testing.T) {
	d := dock{stacks: [][]byte{[]byte("AB"), nil, []byte("C")}}
	if got := d.code(); got != "BC" {
		t.Errorf("code = %q, want BC", got)
	}
}

func TestZeroAmountMove(t *testing.T) {
	s := New()
	input := Examples[0].Input + "move 0 from 9 to 1\n"
	got, err := s.Part1(input)
	if err != nil || got != Examples[0].Part1 {
		t.Errorf("Part1 = %q, %v; want %q", got, err, Examples[0].Part1)
	}
	got, err = s.Part2(input)
	if err != nil || got != Examples[0].Part2 {
		t.Errorf("Part2 = %q, %v; want %q", got, err, Examples[0].Part2)
	}
}

func TestInvalidInput(t *testing.T) {
	s := New()
	drawing := "[A] [B]\n 1   2 \n\n"
	tests := []struct {
		name  string
		input string
	}{
		{name: "no separator", input: "[A]\n 1 \nmove 1 from 1 to 1"},
		{name: "malformed move", input: drawing + "move one from 1 to 2"},
		{name: "bad from column", input: drawing + "move 1 from 3 to 2"},
		{name: "zero from column", input: drawing + "move 1 from 0 to 2"},
		{name: "bad to column", input: drawing + "move 1 from 1 to 9"},
		{name: "not enough crates", input: drawing + "move 2 from 1 to 2"},
		{name: "amount overflows int", input: drawing + "move 99999999999999999999 from 1 to 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.Part1(tt.input); !errors.Is(err, puzzle.ErrInvalidInput) {
				t.Errorf("Part1 error = %v, want ErrInvalidInput", err)
			}
			if _, err := s.Part2(tt.input); !errors.Is(err, puzzle.ErrInvalidInput) {
				t.Errorf("Part2 error = %v, want ErrInvalidInput", err)
			}
		})
	}
}
