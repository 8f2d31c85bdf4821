package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	lastPracticed := "2026-03-15T10:00:00Z"
	data := SnapshotData{
		Version: 1,
		Concepts: map[string]*ConceptRecordData{
			"two-pointers": {
				ConceptID:        "two-pointers",
				DisplayName:      "Two Pointers",
				LearningSequence: 3,
				BaseUrgency:      85,
				WeaknessScore:    28,
				PracticeCount:    2,
				SuccessCount:     2,
				LastPracticedAt:  &lastPracticed,
				ModuleID:         "mod-arrays",
			},
		},
		Modules: &ModuleSnapshotData{
			CurrentSequence: 2,
			Modules: map[string]*ModuleRecordData{
				"mod-arrays": {
					ModuleID:       "mod-arrays",
					ModuleName:     "Arrays",
					SequenceNumber: 1,
					CompletedAt:    "2026-03-01T09:00:00Z",
					InitialScore:   82.5,
					PracticeCount:  1,
					ProblemCount:   12,
				},
			},
		},
		Problems: map[string]*ProblemMasteryData{
			"p1": {
				ProblemID:      "p1",
				Difficulty:     "hard",
				EaseFactor:     2.36,
				IntervalDays:   6,
				Repetitions:    2,
				FirstSolvedAt:  "2026-03-10T10:00:00Z",
				LastReviewedAt: "2026-03-14T10:00:00Z",
				NextReviewAt:   "2026-03-20T10:00:00Z",
				TotalAttempts:  3,
				MasteryScore:   87.25,
				DecayRate:      0.07,
				History: []AttemptRecordData{
					{At: "2026-03-14T10:00:00Z", Success: true, Quality: 4, Hints: 1, Attempts: 1},
				},
			},
		},
	}

	now := time.Now().UTC().Truncate(time.Second)
	if err := repo.Save(ctx, &Snapshot{Sequence: 42, Timestamp: now, Data: data}); err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}

	c := snap.Data.Concepts["two-pointers"]
	if c == nil {
		t.Fatal("concept record lost in round trip")
	}
	if c.BaseUrgency != 85 || c.WeaknessScore != 28 {
		t.Errorf("concept scores = %v/%v, want 85/28", c.BaseUrgency, c.WeaknessScore)
	}
	if c.LastPracticedAt == nil || *c.LastPracticedAt != lastPracticed {
		t.Errorf("LastPracticedAt = %v, want %q", c.LastPracticedAt, lastPracticed)
	}

	if snap.Data.Modules == nil || snap.Data.Modules.CurrentSequence != 2 {
		t.Fatalf("module snapshot = %+v, want CurrentSequence 2", snap.Data.Modules)
	}
	m := snap.Data.Modules.Modules["mod-arrays"]
	if m == nil || m.InitialScore != 82.5 {
		t.Errorf("module record = %+v, want InitialScore 82.5", m)
	}

	p := snap.Data.Problems["p1"]
	if p == nil {
		t.Fatal("problem record lost in round trip")
	}
	if p.EaseFactor != 2.36 || p.MasteryScore != 87.25 || p.DecayRate != 0.07 {
		t.Errorf("problem numerics = %v/%v/%v, want 2.36/87.25/0.07",
			p.EaseFactor, p.MasteryScore, p.DecayRate)
	}
	if len(p.History) != 1 || p.History[0].Quality != 4 {
		t.Errorf("history = %+v, want one entry with quality 4", p.History)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if seq != int64(i+1) {
			t.Errorf("seq = %d, want %d", seq, i+1)
		}
	}

	last, err := s.seq.Last(ctx)
	if err != nil {
		t.Fatalf("last: %v", err)
	}
	if last != 5 {
		t.Errorf("last = %d, want 5", last)
	}
}

func TestAttemptEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// No events yet.
	ts, err := repo.LatestAttemptTime(ctx, "p1")
	if err != nil {
		t.Fatalf("latest attempt time (empty): %v", err)
	}
	if !ts.IsZero() {
		t.Errorf("expected zero time, got %v", ts)
	}

	attempts := []AttemptEventData{
		{ProblemID: "p1", ConceptIDs: []string{"arrays"}, Success: true, SubmissionAttempts: 1, TimeSpentSecs: 30, Difficulty: "medium"},
		{ProblemID: "p1", ConceptIDs: []string{"arrays"}, Success: false, SubmissionAttempts: 2, TimeSpentSecs: 90, Difficulty: "medium"},
		{ProblemID: "p2", ConceptIDs: []string{"arrays", "two-pointers"}, Success: true, SubmissionAttempts: 1, TimeSpentSecs: 40, Difficulty: "hard"},
	}
	for i, a := range attempts {
		if err := repo.AppendAttemptEvent(ctx, a); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	ts, err = repo.LatestAttemptTime(ctx, "p1")
	if err != nil {
		t.Fatalf("latest attempt time: %v", err)
	}
	if ts.IsZero() {
		t.Error("expected non-zero latest attempt time")
	}

	// All three events carry arrays as their primary concept; two succeeded.
	acc, n, err := repo.RecentAttemptAccuracy(ctx, "arrays", 10)
	if err != nil {
		t.Fatalf("recent accuracy: %v", err)
	}
	if n != 3 {
		t.Errorf("attempt count = %d, want 3", n)
	}
	if acc < 0.66 || acc > 0.67 {
		t.Errorf("accuracy = %v, want 2/3", acc)
	}

	last, err := repo.LastSequence(ctx)
	if err != nil {
		t.Fatalf("last sequence: %v", err)
	}
	if last != 3 {
		t.Errorf("last sequence = %d, want 3", last)
	}
}

func TestModuleEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendModuleEvent(ctx, ModuleEventData{
		ModuleID:       "mod-arrays",
		ModuleName:     "Arrays",
		SequenceNumber: 1,
		InitialScore:   82.5,
		ProblemCount:   12,
	})
	if err != nil {
		t.Fatalf("append module event: %v", err)
	}

	count, err := s.Client().ModuleEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("module events = %d, want 1", count)
	}
}
