package practice

import (
	"errors"
	"testing"
)

func TestAttempt_Validate(t *testing.T) {
	tests := []struct {
		name    string
		att     Attempt
		wantErr bool
	}{
		{"valid minimal", Attempt{ProblemID: "p1"}, false},
		{"valid full", Attempt{ProblemID: "p1", Success: true, HintsUsed: 2, SubmissionAttempts: 3, TimeSpentSeconds: 120, ExpectedTimeSeconds: 90, Difficulty: Hard}, false},
		{"unrated difficulty allowed", Attempt{ProblemID: "p1", Difficulty: ""}, false},
		{"negative time spent", Attempt{ProblemID: "p1", TimeSpentSeconds: -1}, true},
		{"negative expected time", Attempt{ProblemID: "p1", ExpectedTimeSeconds: -1}, true},
		{"negative hints", Attempt{ProblemID: "p1", HintsUsed: -1}, true},
		{"negative attempts", Attempt{ProblemID: "p1", SubmissionAttempts: -1}, true},
		{"unknown difficulty", Attempt{ProblemID: "p1", Difficulty: "brutal"}, true},
	}
	for _, tt := range tests {
		err := tt.att.Validate()
		if tt.wantErr && !errors.Is(err, ErrInvalidAttempt) {
			t.Errorf("%s: error = %v, want ErrInvalidAttempt", tt.name, err)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
		}
	}
}

func TestDifficulty_Valid(t *testing.T) {
	for _, d := range []Difficulty{Easy, Medium, Hard} {
		if !d.Valid() {
			t.Errorf("%s should be valid", d)
		}
	}
	if Difficulty("").Valid() || Difficulty("extreme").Valid() {
		t.Error("unknown difficulties should be invalid")
	}
}
