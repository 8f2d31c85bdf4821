package session

import (
	"math/rand"
	"testing"
	"time"

	"github.com/charlieanna/idlecampus-engine/internal/practice"
)

var testNow = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

// mapCatalog is a minimal in-memory Catalog for tests.
type mapCatalog map[string][]Problem

func (c mapCatalog) ProblemsForConcept(tag string) []Problem {
	return c[tag]
}

// mapHistory records prior results keyed by problem ID.
type mapHistory map[string]struct {
	score float64
	at    time.Time
}

func (h mapHistory) LastResult(problemID string) (float64, time.Time, bool) {
	r, ok := h[problemID]
	return r.score, r.at, ok
}

func testSelector(catalog Catalog, history History) *Selector {
	return NewSelector(catalog, history, DefaultConfig(), rand.New(rand.NewSource(1)), nil)
}

// picks wraps concept tags without a difficulty preference.
func picks(tags ...string) []ConceptPick {
	out := make([]ConceptPick, len(tags))
	for i, t := range tags {
		out[i] = ConceptPick{Tag: t}
	}
	return out
}

func TestBuild_EmptyCatalogYieldsEmptyPlan(t *testing.T) {
	sel := testSelector(mapCatalog{}, mapHistory{})
	plan := sel.Build(practice.SessionRequest{TargetCount: 5}, nil, picks("arrays", "graphs"), testNow)

	if len(plan.Slots) != 0 {
		t.Errorf("plan has %d slots, want 0", len(plan.Slots))
	}
	if plan.ID == "" {
		t.Error("plan should still carry an ID")
	}
}

func TestBuild_ZeroTarget(t *testing.T) {
	catalog := mapCatalog{"arrays": {{ID: "p1", ConceptTag: "arrays"}}}
	sel := testSelector(catalog, mapHistory{})
	plan := sel.Build(practice.SessionRequest{TargetCount: 0}, nil, picks("arrays"), testNow)
	if len(plan.Slots) != 0 {
		t.Errorf("plan has %d slots, want 0", len(plan.Slots))
	}
}

func TestBuild_PrefersUnseenProblems(t *testing.T) {
	catalog := mapCatalog{
		"arrays": {
			{ID: "seen", ConceptTag: "arrays"},
			{ID: "unseen", ConceptTag: "arrays"},
		},
	}
	history := mapHistory{"seen": {score: 30, at: testNow.AddDate(0, 0, -40)}}
	sel := testSelector(catalog, history)

	plan := sel.Build(practice.SessionRequest{TargetCount: 1}, nil, picks("arrays"), testNow)
	if len(plan.Slots) != 1 {
		t.Fatalf("plan has %d slots, want 1", len(plan.Slots))
	}
	if plan.Slots[0].ProblemID != "unseen" {
		t.Errorf("selected %s, want the unseen problem despite the weak seen one", plan.Slots[0].ProblemID)
	}
	if !plan.Slots[0].IsNew {
		t.Error("unseen slot should be marked new")
	}
}

func TestBuild_SeenFallbackPicksWeakestOldest(t *testing.T) {
	catalog := mapCatalog{
		"arrays": {
			{ID: "strong-recent", ConceptTag: "arrays"},
			{ID: "weak-old", ConceptTag: "arrays"},
		},
	}
	history := mapHistory{
		"strong-recent": {score: 95, at: testNow.AddDate(0, 0, -1)},
		"weak-old":      {score: 40, at: testNow.AddDate(0, 0, -10)},
	}
	sel := testSelector(catalog, history)

	plan := sel.Build(practice.SessionRequest{TargetCount: 1}, nil, picks("arrays"), testNow)
	if len(plan.Slots) != 1 {
		t.Fatalf("plan has %d slots, want 1", len(plan.Slots))
	}
	slot := plan.Slots[0]
	if slot.ProblemID != "weak-old" {
		t.Errorf("selected %s, want weak-old", slot.ProblemID)
	}
	if slot.IsNew {
		t.Error("seen slot should not be marked new")
	}
	if slot.PreviousScore == nil || *slot.PreviousScore != 40 {
		t.Errorf("PreviousScore = %v, want 40", slot.PreviousScore)
	}
	if slot.DaysSinceLastAttempt == nil || *slot.DaysSinceLastAttempt != 10 {
		t.Errorf("DaysSinceLastAttempt = %v, want 10", slot.DaysSinceLastAttempt)
	}
}

func TestBuild_ReviewsClaimReservedSlots(t *testing.T) {
	catalog := mapCatalog{
		"arrays": {
			{ID: "a1", ConceptTag: "arrays"},
			{ID: "a2", ConceptTag: "arrays"},
			{ID: "a3", ConceptTag: "arrays"},
		},
		"graphs": {
			{ID: "g1", ConceptTag: "graphs"},
			{ID: "g2", ConceptTag: "graphs"},
		},
	}
	reviews := []ReviewItem{
		{ProblemID: "due-1"},
		{ProblemID: "due-2"},
		{ProblemID: "due-3"},
	}
	sel := testSelector(catalog, mapHistory{})

	plan := sel.Build(practice.SessionRequest{TargetCount: 10}, reviews, picks("arrays", "graphs"), testNow)

	// round(10 * 0.30) = 3 reserved review slots, leading the plan.
	for i := 0; i < 3; i++ {
		if plan.Slots[i].Category != CategoryReview {
			t.Errorf("slot %d category = %s, want review", i, plan.Slots[i].Category)
		}
	}
	for i := 3; i < len(plan.Slots); i++ {
		if plan.Slots[i].Category != CategoryFrontier {
			t.Errorf("slot %d category = %s, want frontier", i, plan.Slots[i].Category)
		}
	}
}

func TestBuild_NoReviewsMeansNoReservedSlots(t *testing.T) {
	catalog := mapCatalog{"arrays": {{ID: "a1", ConceptTag: "arrays"}}}
	sel := testSelector(catalog, mapHistory{})

	plan := sel.Build(practice.SessionRequest{TargetCount: 3}, nil, picks("arrays"), testNow)
	for _, slot := range plan.Slots {
		if slot.Category == CategoryReview {
			t.Error("plan contains a review slot with no due reviews")
		}
	}
}

func TestBuild_NoDuplicateProblems(t *testing.T) {
	catalog := mapCatalog{
		"arrays": {
			{ID: "shared", ConceptTag: "arrays"},
			{ID: "a2", ConceptTag: "arrays"},
		},
		"graphs": {
			{ID: "shared", ConceptTag: "graphs"},
		},
	}
	reviews := []ReviewItem{{ProblemID: "shared"}}
	sel := testSelector(catalog, mapHistory{})

	plan := sel.Build(practice.SessionRequest{TargetCount: 6}, reviews, picks("arrays", "graphs"), testNow)

	seen := make(map[string]bool)
	for _, slot := range plan.Slots {
		if seen[slot.ProblemID] {
			t.Fatalf("problem %s appears twice in one plan", slot.ProblemID)
		}
		seen[slot.ProblemID] = true
	}
}

func TestBuild_RoundRobinFillsFromThinConcepts(t *testing.T) {
	catalog := mapCatalog{
		"arrays": {
			{ID: "a1", ConceptTag: "arrays"},
			{ID: "a2", ConceptTag: "arrays"},
			{ID: "a3", ConceptTag: "arrays"},
			{ID: "a4", ConceptTag: "arrays"},
		},
		"graphs": {{ID: "g1", ConceptTag: "graphs"}},
	}
	sel := testSelector(catalog, mapHistory{})

	plan := sel.Build(practice.SessionRequest{TargetCount: 5}, nil, picks("arrays", "graphs"), testNow)
	if len(plan.Slots) != 5 {
		t.Errorf("plan has %d slots, want 5 (round-robin should drain arrays)", len(plan.Slots))
	}
}

func TestBuild_ShortPlanWhenCatalogExhausted(t *testing.T) {
	catalog := mapCatalog{"arrays": {{ID: "a1", ConceptTag: "arrays"}}}
	sel := testSelector(catalog, mapHistory{})

	plan := sel.Build(practice.SessionRequest{TargetCount: 8}, nil, picks("arrays"), testNow)
	if len(plan.Slots) != 1 {
		t.Errorf("plan has %d slots, want 1 (catalog only holds one problem)", len(plan.Slots))
	}
}

func TestBuild_PreferredDifficultyWinsAmongUnseen(t *testing.T) {
	catalog := mapCatalog{
		"arrays": {
			{ID: "easy-1", ConceptTag: "arrays", Difficulty: practice.Easy},
			{ID: "hard-1", ConceptTag: "arrays", Difficulty: practice.Hard},
			{ID: "hard-2", ConceptTag: "arrays", Difficulty: practice.Hard},
		},
	}
	sel := testSelector(catalog, mapHistory{})

	ranked := []ConceptPick{{Tag: "arrays", Preferred: practice.Easy}}
	plan := sel.Build(practice.SessionRequest{TargetCount: 1}, nil, ranked, testNow)
	if len(plan.Slots) != 1 {
		t.Fatalf("plan has %d slots, want 1", len(plan.Slots))
	}
	if plan.Slots[0].ProblemID != "easy-1" {
		t.Errorf("selected %s, want the problem at the preferred difficulty", plan.Slots[0].ProblemID)
	}
}

func TestBuild_PreferredDifficultyFallsBackWhenUnavailable(t *testing.T) {
	catalog := mapCatalog{
		"arrays": {{ID: "hard-1", ConceptTag: "arrays", Difficulty: practice.Hard}},
	}
	sel := testSelector(catalog, mapHistory{})

	ranked := []ConceptPick{{Tag: "arrays", Preferred: practice.Easy}}
	plan := sel.Build(practice.SessionRequest{TargetCount: 1}, nil, ranked, testNow)
	if len(plan.Slots) != 1 {
		t.Fatalf("plan has %d slots, want 1", len(plan.Slots))
	}
	if plan.Slots[0].ProblemID != "hard-1" {
		t.Errorf("selected %s, want the only available problem", plan.Slots[0].ProblemID)
	}
}

func TestBuild_ConceptTagFilter(t *testing.T) {
	catalog := mapCatalog{
		"arrays": {{ID: "a1", ConceptTag: "arrays"}},
		"graphs": {{ID: "g1", ConceptTag: "graphs"}},
	}
	sel := testSelector(catalog, mapHistory{})

	req := practice.SessionRequest{TargetCount: 5, ConceptTags: []string{"graphs"}}
	plan := sel.Build(req, nil, picks("arrays", "graphs"), testNow)

	for _, slot := range plan.Slots {
		if slot.ConceptTag != "graphs" {
			t.Errorf("slot for concept %s leaked past the tag filter", slot.ConceptTag)
		}
	}
	if len(plan.Slots) != 1 {
		t.Errorf("plan has %d slots, want 1", len(plan.Slots))
	}
}
