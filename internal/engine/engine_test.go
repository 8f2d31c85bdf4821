package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/charlieanna/idlecampus-engine/internal/config"
	"github.com/charlieanna/idlecampus-engine/internal/practice"
	"github.com/charlieanna/idlecampus-engine/internal/session"
)

var testNow = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(context.Background(), Options{Config: config.Default()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func TestHandlePracticeAttempt_LazilyInitializesConcepts(t *testing.T) {
	e := newTestEngine(t)
	att := practice.Attempt{
		ProblemID:          "p1",
		ConceptIDs:         []string{"two-pointers"},
		Success:            true,
		SubmissionAttempts: 1,
	}

	if err := e.HandlePracticeAttempt(context.Background(), att, testNow); err != nil {
		t.Fatalf("HandlePracticeAttempt: %v", err)
	}

	rec, err := e.Concepts().Record("two-pointers")
	if err != nil {
		t.Fatalf("concept not initialized: %v", err)
	}
	if rec.LearningSequence != 1 {
		t.Errorf("LearningSequence = %d, want 1", rec.LearningSequence)
	}
	if rec.PracticeCount != 1 || rec.SuccessCount != 1 {
		t.Errorf("counters = %d/%d, want 1/1", rec.PracticeCount, rec.SuccessCount)
	}
	// First success on a fresh concept: urgency 100 -> 85.
	if rec.BaseUrgency != 85 {
		t.Errorf("BaseUrgency = %v, want 85", rec.BaseUrgency)
	}
}

func TestHandlePracticeAttempt_CreatesProblemRecordOnSuccess(t *testing.T) {
	e := newTestEngine(t)
	att := practice.Attempt{ProblemID: "p1", Success: true, SubmissionAttempts: 1, Difficulty: practice.Medium}

	if err := e.HandlePracticeAttempt(context.Background(), att, testNow); err != nil {
		t.Fatal(err)
	}
	if _, err := e.Problems().Record("p1"); err != nil {
		t.Errorf("problem record not created: %v", err)
	}
}

func TestHandlePracticeAttempt_FailureWithoutRecordSkipsProblem(t *testing.T) {
	e := newTestEngine(t)
	att := practice.Attempt{ProblemID: "p1", ConceptIDs: []string{"c1"}, Success: false, SubmissionAttempts: 1}

	if err := e.HandlePracticeAttempt(context.Background(), att, testNow); err != nil {
		t.Fatal(err)
	}
	if _, err := e.Problems().Record("p1"); err == nil {
		t.Error("failure before first success should not create a problem record")
	}
	// The concept still took the hit.
	rec, err := e.Concepts().Record("c1")
	if err != nil {
		t.Fatal(err)
	}
	if rec.FailureCount != 1 {
		t.Errorf("FailureCount = %d, want 1", rec.FailureCount)
	}
}

func TestHandlePracticeAttempt_RejectsInvalidInput(t *testing.T) {
	e := newTestEngine(t)

	err := e.HandlePracticeAttempt(context.Background(), practice.Attempt{}, testNow)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("empty problem id error = %v, want ErrInvalidInput", err)
	}

	err = e.HandlePracticeAttempt(context.Background(),
		practice.Attempt{ProblemID: "p1", TimeSpentSeconds: -1}, testNow)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative time error = %v, want ErrInvalidInput", err)
	}
}

func TestHandlePracticeAttempt_RecoversOwnerModule(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	for i, id := range []string{"mod-a", "mod-b", "mod-c"} {
		ev := practice.ModuleCompleted{ModuleID: id, ModuleName: id, InitialScore: 70}
		if err := e.HandleModuleCompleted(ctx, ev, testNow.AddDate(0, 0, i)); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := e.TeachConcept("c1", "Concept One", "mod-a"); err != nil {
		t.Fatal(err)
	}

	before, _ := e.Modules().Record("mod-a")
	decayBefore := before.DecayFactor
	if decayBefore == 0 {
		t.Fatal("setup: mod-a should have decayed")
	}

	att := practice.Attempt{ProblemID: "p1", ConceptIDs: []string{"c1"}, Success: true, SubmissionAttempts: 1}
	if err := e.HandlePracticeAttempt(ctx, att, testNow.AddDate(0, 0, 5)); err != nil {
		t.Fatal(err)
	}

	after, _ := e.Modules().Record("mod-a")
	if after.DecayFactor >= decayBefore {
		t.Errorf("practice did not recover module decay: %v -> %v", decayBefore, after.DecayFactor)
	}
}

func TestHandleModuleCompleted_RejectsEmptyID(t *testing.T) {
	e := newTestEngine(t)
	err := e.HandleModuleCompleted(context.Background(), practice.ModuleCompleted{}, testNow)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}

func TestPrioritizedConcepts_AnnotatesDecayedModules(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	// Complete mod-old weakly, then bury it under enough modules to fade.
	ev := practice.ModuleCompleted{ModuleID: "mod-old", ModuleName: "Arrays Intro", InitialScore: 40}
	if err := e.HandleModuleCompleted(ctx, ev, testNow); err != nil {
		t.Fatal(err)
	}
	for i := 1; i <= 6; i++ {
		ev := practice.ModuleCompleted{ModuleID: fmt.Sprintf("mod-%d", i), ModuleName: "later", InitialScore: 70}
		if err := e.HandleModuleCompleted(ctx, ev, testNow.AddDate(0, 0, i)); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := e.TeachConcept("c1", "Concept One", "mod-old"); err != nil {
		t.Fatal(err)
	}

	ranked := e.PrioritizedConcepts()
	if len(ranked) != 1 {
		t.Fatalf("ranked %d concepts, want 1", len(ranked))
	}
	if !strings.Contains(ranked[0].Reason, "Arrays Intro") {
		t.Errorf("Reason %q should mention the decayed owner module", ranked[0].Reason)
	}
}

func TestReviewRecommendations_EmptyState(t *testing.T) {
	e := newTestEngine(t)
	if got := e.ReviewRecommendations(testNow, 10); len(got) != 0 {
		t.Errorf("ReviewRecommendations returned %d entries, want 0", len(got))
	}
}

func TestProblemReviewStatus_UnknownProblemIsHardError(t *testing.T) {
	e := newTestEngine(t)
	_, _, err := e.ProblemReviewStatus("ghost", testNow)
	if !errors.Is(err, ErrProblemNotFound) {
		t.Errorf("error = %v, want ErrProblemNotFound", err)
	}
}

func TestBuildSession_MergesReviewsAndFrontier(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	// A solved problem, now past its review date.
	att := practice.Attempt{
		ProblemID: "solved", ConceptIDs: []string{"arrays"},
		Success: true, SubmissionAttempts: 1, Difficulty: practice.Medium,
	}
	if err := e.HandlePracticeAttempt(ctx, att, testNow.AddDate(0, 0, -10)); err != nil {
		t.Fatal(err)
	}

	catalog := mapCatalog{
		"arrays": {
			{ID: "solved", ConceptTag: "arrays"},
			{ID: "fresh-1", ConceptTag: "arrays"},
			{ID: "fresh-2", ConceptTag: "arrays"},
		},
	}
	req := practice.SessionRequest{TargetCount: 3}
	plan := e.BuildSession(req, catalog, rand.New(rand.NewSource(1)), testNow)

	if len(plan.Slots) != 3 {
		t.Fatalf("plan has %d slots, want 3", len(plan.Slots))
	}
	if plan.Slots[0].Category != session.CategoryReview || plan.Slots[0].ProblemID != "solved" {
		t.Errorf("first slot = %+v, want the due review of solved", plan.Slots[0])
	}
	seen := make(map[string]bool)
	for _, slot := range plan.Slots {
		if seen[slot.ProblemID] {
			t.Fatalf("duplicate problem %s in plan", slot.ProblemID)
		}
		seen[slot.ProblemID] = true
	}
}

func TestReset_WipesAllModels(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	if err := e.HandleModuleCompleted(ctx, practice.ModuleCompleted{ModuleID: "m1", InitialScore: 70}, testNow); err != nil {
		t.Fatal(err)
	}
	att := practice.Attempt{ProblemID: "p1", ConceptIDs: []string{"c1"}, Success: true, SubmissionAttempts: 1}
	if err := e.HandlePracticeAttempt(ctx, att, testNow); err != nil {
		t.Fatal(err)
	}

	e.Reset()

	if e.Concepts().Len() != 0 || e.Modules().Len() != 0 || e.Problems().Len() != 0 {
		t.Errorf("state after reset: %d concepts, %d modules, %d problems",
			e.Concepts().Len(), e.Modules().Len(), e.Problems().Len())
	}
}

// mapCatalog is a minimal in-memory catalog for session tests.
type mapCatalog map[string][]session.Problem

func (c mapCatalog) ProblemsForConcept(tag string) []session.Problem {
	return c[tag]
}
