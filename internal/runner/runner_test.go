package runner

import (
	"context"
	"errors"
	"testing"

	"github.com/povarna/aoc2022/internal/models"
	"github.com/povarna/aoc2022/internal/puzzle"
	"github.com/povarna/aoc2022/internal/runner/mocks"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

// countingSolver answers with the input length and counts calls.
type countingSolver struct {
	calls int
	err   error
}

func (s *countingSolver) Part1(input string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return "p1:" + input, nil
}

func (s *countingSolver) Part2(input string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return "p2:" + input, nil
}

func newTestRegistry(s puzzle.Solver) *puzzle.Registry {
	reg := puzzle.NewRegistry()
	reg.Register(1, "Test", s)
	return reg
}

func TestRunner_Solve_CacheMiss_StoresAndRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockCache(ctrl)
	mockRecorder := mocks.NewMockRecorder(ctrl)

	key := CacheKey(1, 2, InputDigest("abc"))
	mockCache.EXPECT().Get(gomock.Any(), key).Return("", false, nil)
	mockCache.EXPECT().Set(gomock.Any(), key, "p2:abc").Return(nil)
	mockRecorder.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, run models.Run) error {
		if run.Status != models.RunStatusSolved || run.Answer != "p2:abc" {
			t.Errorf("recorded run = %+v, want solved with answer p2:abc", run)
		}
		if run.InputHash != InputDigest("abc") {
			t.Errorf("recorded hash = %s, want %s", run.InputHash, InputDigest("abc"))
		}
		return nil
	})

	solver := &countingSolver{}
	r := NewRunner(newTestRegistry(solver), mockCache, mockRecorder, newTestLogger())

	result, err := r.Solve(context.Background(), models.SolveRequest{RequestID: "req-1", Day: 1, Part: 2, Input: "abc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Answer != "p2:abc" || result.Cached {
		t.Errorf("result = %+v, want fresh answer p2:abc", result)
	}
	if result.RequestID != "req-1" {
		t.Errorf("expected request ID req-1, got %s", result.RequestID)
	}
	if solver.calls != 1 {
		t.Errorf("expected 1 solver call, got %d", solver.calls)
	}
}

func TestRunner_Solve_CacheHit_SkipsSolver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockCache(ctrl)
	mockRecorder := mocks.NewMockRecorder(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), CacheKey(1, 1, InputDigest("abc"))).Return("cached", true, nil)

	solver := &countingSolver{}
	r := NewRunner(newTestRegistry(solver), mockCache, mockRecorder, newTestLogger())

	result, err := r.Solve(context.Background(), models.SolveRequest{Day: 1, Part: 1, Input: "abc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Answer != "cached" || !result.Cached {
		t.Errorf("result = %+v, want cached answer", result)
	}
	if solver.calls != 0 {
		t.Errorf("expected solver to be skipped, got %d calls", solver.calls)
	}
}

func TestRunner_Solve_CacheAndRecorderFailures_DoNotFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockCache(ctrl)
	mockRecorder := mocks.NewMockRecorder(ctrl)

	boom := errors.New("connection refused")
	mockCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return("", false, boom)
	mockCache.EXPECT().Set(gomock.Any(), gomock.Any(), "p1:x").Return(boom)
	mockRecorder.EXPECT().Record(gomock.Any(), gomock.Any()).Return(boom)

	r := NewRunner(newTestRegistry(&countingSolver{}), mockCache, mockRecorder, newTestLogger())

	result, err := r.Solve(context.Background(), models.SolveRequest{Day: 1, Part: 1, Input: "x"})
	if err != nil {
		t.Fatalf("expected cache and recorder failures to be swallowed, got %v", err)
	}
	if result.Answer != "p1:x" {
		t.Errorf("expected answer p1:x, got %s", result.Answer)
	}
}

func TestRunner_Solve_SolverError_RecordedAndReturned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockCache(ctrl)
	mockRecorder := mocks.NewMockRecorder(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return("", false, nil)
	mockRecorder.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, run models.Run) error {
		if run.Status != models.RunStatusFailed || run.Error == "" {
			t.Errorf("recorded run = %+v, want failed with error", run)
		}
		return nil
	})

	solver := &countingSolver{err: puzzle.Invalidf("bad line")}
	r := NewRunner(newTestRegistry(solver), mockCache, mockRecorder, newTestLogger())

	_, err := r.Solve(context.Background(), models.SolveRequest{Day: 1, Part: 1, Input: "x"})
	if !errors.Is(err, puzzle.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRunner_Solve_LookupErrors(t *testing.T) {
	tests := []struct {
		name string
		day  int
		part int
		want error
	}{
		{"day out of range", 26, 1, puzzle.ErrOutOfRange},
		{"part out of range", 1, 3, puzzle.ErrOutOfRange},
		{"unsupported day", 12, 1, puzzle.ErrUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			// No cache or recorder calls are expected.
			r := NewRunner(newTestRegistry(&countingSolver{}), mocks.NewMockCache(ctrl), mocks.NewMockRecorder(ctrl), newTestLogger())

			_, err := r.Solve(context.Background(), models.SolveRequest{Day: tt.day, Part: tt.part})
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestRunner_Solve_NilCollaborators(t *testing.T) {
	r := NewRunner(newTestRegistry(&countingSolver{}), nil, nil, newTestLogger())

	result, err := r.Solve(context.Background(), models.SolveRequest{Day: 1, Part: 1, Input: "y"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Answer != "p1:y" {
		t.Errorf("expected answer p1:y, got %s", result.Answer)
	}
}

func TestCacheKey(t *testing.T) {
	got := CacheKey(7, 2, InputDigest(""))
	want := "answer:7:2:ef46db3751d8e999"
	if got != want {
		t.Errorf("CacheKey = %s, want %s", got, want)
	}
}
