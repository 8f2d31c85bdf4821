package spacedrep

import (
	"math"
	"time"

	"github.com/charlieanna/idlecampus-engine/internal/practice"
)

// NewMastery creates the record for a problem's first successful solve.
// The initial score starts at 100 and loses up to 30 points each for hint
// reliance and extra submission attempts, with a difficulty adjustment and
// a floor of 40 for any success.
func NewMastery(problemID string, difficulty practice.Difficulty, hintsUsed, attemptNumber int, now time.Time, cfg Config) *ProblemMastery {
	score := 100.0
	score -= math.Min(30, float64(hintsUsed)*10)
	extraAttempts := attemptNumber - 1
	if extraAttempts < 0 {
		extraAttempts = 0
	}
	score -= math.Min(30, float64(extraAttempts)*10)
	switch difficulty {
	case practice.Hard:
		score += 10
	case practice.Easy:
		score -= 5
	}
	score = clamp(score, 40, 100)

	decay := cfg.BaseDecayRate *
		difficultyDecayMultiplier(string(difficulty)) *
		(1 + float64(hintsUsed)*0.15) *
		(1 + float64(extraAttempts)*0.10)
	decay = clamp(decay, cfg.MinDecayRate, cfg.MaxDecayRate)

	pm := &ProblemMastery{
		ProblemID:      problemID,
		Difficulty:     difficulty,
		EaseFactor:     cfg.MaxEaseFactor,
		IntervalDays:   1,
		Repetitions:    1,
		FirstSolvedAt:  now,
		LastReviewedAt: now,
		NextReviewAt:   now.AddDate(0, 0, 1),
		MasteryScore:   score,
		DecayRate:      decay,
	}
	pm.recordAttempt(AttemptRecord{
		At:       now,
		Success:  true,
		Quality:  qualityFor(true, hintsUsed, attemptNumber),
		Hints:    hintsUsed,
		Attempts: attemptNumber,
	}, cfg.HistoryLimit)
	return pm
}

// Review applies one post-creation attempt (success or failure) to the
// record: SM-2 interval/ease update, score boost or penalty, and a decay
// rate recomputed from the all-time success rate.
func Review(pm *ProblemMastery, success bool, hintsUsed, attemptNumber int, difficulty practice.Difficulty, now time.Time, cfg Config) {
	if difficulty.Valid() {
		pm.Difficulty = difficulty
	}
	quality := qualityFor(success, hintsUsed, attemptNumber)

	applySM2(pm, quality, cfg)

	if success {
		extraAttempts := attemptNumber - 1
		if extraAttempts < 0 {
			extraAttempts = 0
		}
		boost := math.Max(5, 20-float64(hintsUsed)*5-float64(extraAttempts)*5)
		pm.MasteryScore = clamp(pm.MasteryScore+boost, 0, 100)
	} else {
		pm.MasteryScore = clamp(pm.MasteryScore-20, 0, 100)
	}

	pm.recordAttempt(AttemptRecord{
		At:       now,
		Success:  success,
		Quality:  quality,
		Hints:    hintsUsed,
		Attempts: attemptNumber,
	}, cfg.HistoryLimit)

	// Higher all-time success rate means slower future decay.
	decayModifier := 1.5 - pm.SuccessRate()
	decay := cfg.BaseDecayRate * difficultyDecayMultiplier(string(pm.Difficulty)) * decayModifier
	pm.DecayRate = clamp(decay, cfg.MinDecayRate, cfg.MaxDecayRate)

	pm.LastReviewedAt = now
	pm.NextReviewAt = now.AddDate(0, 0, pm.IntervalDays)
}

// qualityFor converts a boolean outcome into an SM-2 quality score 0-5.
// Failures score 1; successes start at 5 and lose a point per hint and
// per extra submission attempt, floored at 0.
func qualityFor(success bool, hintsUsed, attemptNumber int) int {
	if !success {
		return 1
	}
	extraAttempts := attemptNumber - 1
	if extraAttempts < 0 {
		extraAttempts = 0
	}
	q := 5 - hintsUsed - extraAttempts
	if q < 0 {
		q = 0
	}
	return q
}

// applySM2 runs the SuperMemo 2 interval and ease update.
// Quality < 3 resets the repetition chain; otherwise the interval follows
// 1 -> 6 -> interval*easeFactor, capped at MaxIntervalDays.
func applySM2(pm *ProblemMastery, quality int, cfg Config) {
	if quality < 3 {
		pm.Repetitions = 0
		pm.IntervalDays = 1
	} else {
		switch pm.Repetitions {
		case 0:
			pm.IntervalDays = 1
		case 1:
			pm.IntervalDays = 6
		default:
			pm.IntervalDays = int(math.Round(float64(pm.IntervalDays) * pm.EaseFactor))
		}
		pm.IntervalDays = clampInt(pm.IntervalDays, 1, cfg.MaxIntervalDays)
		pm.Repetitions++
	}

	// EF' = EF + (0.1 - (5-q)*(0.08 + (5-q)*0.02))
	q := float64(quality)
	pm.EaseFactor += 0.1 - (5-q)*(0.08+(5-q)*0.02)
	pm.EaseFactor = clamp(pm.EaseFactor, cfg.MinEaseFactor, cfg.MaxEaseFactor)
}
