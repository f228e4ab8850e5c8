package days

import (
	"errors"
	"testing"

	"github.com/povarna/aoc2022/internal/puzzle"
)

func TestRegister_AllExamplesPass(t *testing.T) {
	reg := puzzle.NewRegistry()
	Register(reg, nil)

	if got := len(reg.Days()); got != 11 {
		t.Fatalf("expected 11 registered days, got %d", got)
	}

	for _, res := range reg.Check(0) {
		if !res.OK() {
			t.Errorf("day %d part %d example %q: got %q, %v; want %q", res.Day, res.Part, res.Example, res.Got, res.Err, res.Want)
		}
	}
}

func TestRegister_LaterDaysUnsupported(t *testing.T) {
	reg := puzzle.NewRegistry()
	Register(reg, nil)

	for day := 12; day <= puzzle.LastDay; day++ {
		if _, err := reg.Lookup(day, 1); !errors.Is(err, puzzle.ErrUnsupported) {
			t.Errorf("day %d: expected ErrUnsupported, got %v", day, err)
		}
	}
}
