package concept

import (
	"math"
	"time"

	"github.com/charlieanna/idlecampus-engine/internal/practice"
)

// Weakness deltas applied on top of the base success/failure movement.
// These are behavioral constants of the model rather than deployment
// tunables, so they live here instead of Config.
const (
	successBaseDelta       = -5.0
	firstTryBonus          = -10.0
	secondTryBonus         = -5.0
	thirdTryBonus          = -2.0
	fastSolveBonus         = -2.0
	noHintsBonus           = -3.0
	hardSolveBonus         = -2.0
	fastSolveRatio         = 0.8
	failureBaseDelta       = 10.0
	failureAttemptStep     = 3.0
	failureAttemptCap      = 20.0
	failureManyHintsDelta  = 5.0
	failureEasyDelta       = 3.0
	failureManyHintsAbove  = 2
)

// Apply updates rec in place for one graded attempt. The attempt is
// validated first; on error the record is untouched. All score movement
// clamps to [0,100].
func Apply(rec *Record, att practice.Attempt, now time.Time, cfg Config) error {
	if err := att.Validate(); err != nil {
		return err
	}

	rec.BaseUrgency = clamp(rec.BaseUrgency-urgencyDrop(rec, att.Success, cfg), 0, 100)
	rec.WeaknessScore = clamp(rec.WeaknessScore+weaknessDelta(att), 0, 100)

	rec.AverageSolveTimeSecs = rollingAverage(rec.AverageSolveTimeSecs, rec.PracticeCount, att.TimeSpentSeconds)
	rec.PracticeCount++
	if att.Success {
		rec.SuccessCount++
	} else {
		rec.FailureCount++
	}
	rec.TotalHintsUsed += att.HintsUsed
	t := now
	rec.LastPracticedAt = &t
	return nil
}

// urgencyDrop returns how much baseUrgency falls for this attempt.
// The first practice applies a fixed drop; afterwards the drop shrinks
// with sqrt(urgency/100) so an already-low urgency is harder to reduce.
func urgencyDrop(rec *Record, success bool, cfg Config) float64 {
	if rec.PracticeCount == 0 {
		if success {
			return cfg.FirstSuccessDrop
		}
		return cfg.FirstFailureDrop
	}
	base := cfg.FailureDecay
	if success {
		base = cfg.SuccessDecay
	}
	return base * math.Sqrt(rec.BaseUrgency/100)
}

// weaknessDelta returns the signed weakness movement for one attempt.
func weaknessDelta(att practice.Attempt) float64 {
	if att.Success {
		delta := successBaseDelta
		switch att.SubmissionAttempts {
		case 1:
			delta += firstTryBonus
		case 2:
			delta += secondTryBonus
		case 3:
			delta += thirdTryBonus
		}
		if att.ExpectedTimeSeconds > 0 && att.TimeSpentSeconds < fastSolveRatio*att.ExpectedTimeSeconds {
			delta += fastSolveBonus
		}
		if att.HintsUsed == 0 {
			delta += noHintsBonus
		}
		if att.Difficulty == practice.Hard {
			delta += hardSolveBonus
		}
		return delta
	}

	delta := failureBaseDelta + math.Min(float64(att.SubmissionAttempts)*failureAttemptStep, failureAttemptCap)
	if att.HintsUsed > failureManyHintsAbove {
		delta += failureManyHintsDelta
	}
	// Failing an easy problem is a stronger weakness signal.
	if att.Difficulty == practice.Easy {
		delta += failureEasyDelta
	}
	return delta
}

func rollingAverage(avg float64, count int, next float64) float64 {
	return (avg*float64(count) + next) / float64(count+1)
}
