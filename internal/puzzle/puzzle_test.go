package puzzle

import (
	"errors"
	"testing"
)

type stubSolver struct{}

func (stubSolver) Part1(input string) (string, error) { return "one:" + input, nil }
func (stubSolver) Part2(input string) (string, error) { return "two:" + input, nil }

func TestRegistry_Lookup(t *testing.T) {
	r := NewRegistry()
	r.Register(3, "Stub", stubSolver{})

	tests := []struct {
		name    string
		day     int
		part    int
		want    string
		wantErr error
	}{
		{name: "part 1", day: 3, part: 1, want: "one:x"},
		{name: "part 2", day: 3, part: 2, want: "two:x"},
		{name: "day zero", day: 0, part: 1, wantErr: ErrOutOfRange},
		{name: "day 26", day: 26, part: 1, wantErr: ErrOutOfRange},
		{name: "part 3", day: 3, part: 3, wantErr: ErrOutOfRange},
		{name: "unregistered day", day: 25, part: 1, wantErr: ErrUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, err := r.Lookup(tt.day, tt.part)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Lookup(%d, %d) error = %v, want %v", tt.day, tt.part, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Lookup(%d, %d) unexpected error: %v", tt.day, tt.part, err)
			}
			got, _ := fn("x")
			if got != tt.want {
				t.Errorf("answer = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRegistry_DaysSorted(t *testing.T) {
	r := NewRegistry()
	r.Register(7, "Seven", stubSolver{})
	r.Register(1, "One", stubSolver{})
	r.Register(4, "Four", stubSolver{})

	days := r.Days()
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}
	for i, want := range []int{1, 4, 7} {
		if days[i].Day != want {
			t.Errorf("days[%d] = %d, want %d", i, days[i].Day, want)
		}
	}
}

func TestRegister_PanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for day 26")
		}
	}()
	NewRegistry().Register(26, "Nope", stubSolver{})
}

func TestInvalidf(t *testing.T) {
	err := Invalidf("bad line: %q", "x y z")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if err.Error() != `invalid input: bad line: "x y z"` {
		t.Errorf("unexpected message: %s", err)
	}
}
