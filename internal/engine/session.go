package engine

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/charlieanna/idlecampus-engine/internal/concept"
	"github.com/charlieanna/idlecampus-engine/internal/practice"
	"github.com/charlieanna/idlecampus-engine/internal/session"
)

// problemHistory adapts the spaced repetition records to the selector's
// History interface. "Last score" is the score as of the last review,
// not the live decayed value: the selector wants to know how the learner
// did, the decay since is captured by the days-since term.
type problemHistory struct {
	e *Engine
}

func (h problemHistory) LastResult(problemID string) (float64, time.Time, bool) {
	pm, err := h.e.problems.Record(problemID)
	if err != nil {
		return 0, time.Time{}, false
	}
	return pm.MasteryScore, pm.LastReviewedAt, true
}

// BuildSession assembles one practice session: due reviews claim the
// reserved share of slots, the rest fill from the prioritized concept
// list against the caller's catalog. A sparse catalog yields a short
// plan, never an error.
func (e *Engine) BuildSession(req practice.SessionRequest, catalog session.Catalog, rng *rand.Rand, now time.Time) session.Plan {
	reviews := make([]session.ReviewItem, 0)
	for _, rc := range e.problems.DueReviews(now, 0) {
		reviews = append(reviews, session.ReviewItem{ProblemID: rc.ProblemID})
	}

	ranked := e.PrioritizedConcepts()
	totalLearned := e.concepts.MaxSequence()
	picks := make([]session.ConceptPick, 0, len(ranked))
	for _, r := range ranked {
		pick := session.ConceptPick{Tag: r.ConceptID}
		if rec, err := e.concepts.Record(r.ConceptID); err == nil {
			pick.Preferred = concept.RecommendedDifficulty(rec, totalLearned, e.concepts.Config())
		}
		picks = append(picks, pick)
	}

	sel := session.NewSelector(catalog, problemHistory{e}, e.sessionCfg, rng, e.log)
	plan := sel.Build(req, reviews, picks, now)

	e.log.Info("session built",
		zap.String("plan_id", plan.ID),
		zap.Int("target", req.TargetCount),
		zap.Int("slots", len(plan.Slots)))
	return plan
}
