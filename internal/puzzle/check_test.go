package puzzle

import "testing"

func TestRegistry_Check(t *testing.T) {
	r := NewRegistry()
	r.Register(1, "Stub", stubSolver{},
		Example{Name: "good", Input: "a", Part1: "one:a", Part2: "two:a"},
		Example{Name: "bad", Input: "b", Part1: "one:x"},
	)
	r.Register(2, "Other", stubSolver{}, Example{Name: "only part 2", Input: "c", Part2: "two:c"})

	results := r.Check(0)
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}

	var failed []CheckResult
	for _, res := range results {
		if !res.OK() {
			failed = append(failed, res)
		}
	}
	if len(failed) != 1 || failed[0].Example != "bad" || failed[0].Got != "one:b" {
		t.Errorf("failed = %+v, want only the bad example", failed)
	}

	if got := r.Check(2); len(got) != 1 || got[0].Part != 2 {
		t.Errorf("Check(2) = %+v, want one part 2 result", got)
	}
	if got := r.Check(9); len(got) != 0 {
		t.Errorf("Check(9) = %+v, want none", got)
	}
}
