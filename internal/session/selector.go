package session

import (
	"math"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/charlieanna/idlecampus-engine/internal/practice"
)

// ReviewItem is one due-review handed in by the aggregator, already in
// review-priority order.
type ReviewItem struct {
	ProblemID  string
	ConceptTag string
}

// ConceptPick is one ranked concept to draw frontier problems from.
// Preferred, when set, biases unseen picks toward that difficulty.
type ConceptPick struct {
	Tag       string
	Preferred practice.Difficulty
}

// Selector builds session plans. It holds no learner state of its own;
// everything it needs arrives through the Catalog, History, and the
// per-call ranked inputs.
type Selector struct {
	catalog Catalog
	history History
	cfg     Config
	rng     *rand.Rand
	log     *zap.Logger
}

// NewSelector wires a selector. A nil rng gets a time-seeded one; tests
// pass a fixed seed for determinism. A nil logger is replaced with a nop.
func NewSelector(catalog Catalog, history History, cfg Config, rng *rand.Rand, log *zap.Logger) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Selector{catalog: catalog, history: history, cfg: cfg, rng: rng, log: log}
}

// Build assembles one session plan. Reviews fill the reserved share of
// slots first, then concepts are walked in ranked order; if the target
// is still short, the concepts are cycled round-robin a bounded number
// of times. Problems never repeat within a plan.
func (s *Selector) Build(req practice.SessionRequest, reviews []ReviewItem, rankedConcepts []ConceptPick, now time.Time) Plan {
	plan := newPlan(now)
	if req.TargetCount <= 0 {
		return plan
	}

	concepts := filterConcepts(rankedConcepts, req.ConceptTags)
	used := make(map[string]bool)

	reserved := 0
	if len(reviews) > 0 {
		reserved = int(math.Round(float64(req.TargetCount) * s.cfg.ReviewShare))
		if reserved < 1 {
			reserved = 1
		}
		if reserved > req.TargetCount {
			reserved = req.TargetCount
		}
	}
	for _, rv := range reviews {
		if len(plan.Slots) >= reserved {
			break
		}
		if used[rv.ProblemID] {
			continue
		}
		used[rv.ProblemID] = true
		plan.Slots = append(plan.Slots, s.slotFor(rv.ProblemID, rv.ConceptTag, CategoryReview, now))
	}

	// First pass: one problem per ranked concept, highest priority first.
	for _, c := range concepts {
		if len(plan.Slots) >= req.TargetCount {
			break
		}
		if p, ok := s.pickForConcept(c, used, now); ok {
			used[p.ID] = true
			plan.Slots = append(plan.Slots, s.slotFor(p.ID, c.Tag, CategoryFrontier, now))
		}
	}

	// Round-robin fill, bounded so a thin catalog terminates.
	maxAttempts := s.cfg.FallbackAttemptsFactor * len(concepts)
	for attempts := 0; len(plan.Slots) < req.TargetCount && attempts < maxAttempts; attempts++ {
		c := concepts[attempts%len(concepts)]
		if p, ok := s.pickForConcept(c, used, now); ok {
			used[p.ID] = true
			plan.Slots = append(plan.Slots, s.slotFor(p.ID, c.Tag, CategoryFrontier, now))
		}
	}

	if len(plan.Slots) < req.TargetCount {
		s.log.Debug("session plan short of target",
			zap.Int("target", req.TargetCount),
			zap.Int("filled", len(plan.Slots)))
	}
	return plan
}

// pickForConcept chooses one not-yet-used problem for a concept: a
// uniform-random unseen problem (at the preferred difficulty when any
// match) if unseen problems remain, otherwise the seen problem scoring
// highest on (100 - lastScore) + daysSince*10.
func (s *Selector) pickForConcept(c ConceptPick, used map[string]bool, now time.Time) (Problem, bool) {
	var unseen, seen []Problem
	for _, p := range s.catalog.ProblemsForConcept(c.Tag) {
		if used[p.ID] {
			continue
		}
		if _, _, ok := s.history.LastResult(p.ID); ok {
			seen = append(seen, p)
		} else {
			unseen = append(unseen, p)
		}
	}
	if len(unseen) > 0 {
		if c.Preferred != "" {
			var matched []Problem
			for _, p := range unseen {
				if p.Difficulty == c.Preferred {
					matched = append(matched, p)
				}
			}
			if len(matched) > 0 {
				unseen = matched
			}
		}
		return unseen[s.rng.Intn(len(unseen))], true
	}
	if len(seen) == 0 {
		return Problem{}, false
	}
	best := seen[0]
	bestScore := s.retryPriority(best.ID, now)
	for _, p := range seen[1:] {
		if sc := s.retryPriority(p.ID, now); sc > bestScore {
			best, bestScore = p, sc
		}
	}
	return best, true
}

func (s *Selector) retryPriority(problemID string, now time.Time) float64 {
	score, at, ok := s.history.LastResult(problemID)
	if !ok {
		return 0
	}
	days := now.Sub(at).Hours() / 24
	if days < 0 {
		days = 0
	}
	return (100 - score) + days*10
}

func (s *Selector) slotFor(problemID, tag string, cat SlotCategory, now time.Time) Slot {
	slot := Slot{ProblemID: problemID, ConceptTag: tag, Category: cat, IsNew: true}
	if score, at, ok := s.history.LastResult(problemID); ok {
		days := now.Sub(at).Hours() / 24
		if days < 0 {
			days = 0
		}
		slot.IsNew = false
		slot.PreviousScore = &score
		slot.DaysSinceLastAttempt = &days
	}
	return slot
}

// filterConcepts keeps ranked order while restricting to the request's
// available tags; an empty restriction keeps everything.
func filterConcepts(ranked []ConceptPick, available []string) []ConceptPick {
	if len(available) == 0 {
		return ranked
	}
	allowed := make(map[string]bool, len(available))
	for _, t := range available {
		allowed[t] = true
	}
	out := make([]ConceptPick, 0, len(ranked))
	for _, c := range ranked {
		if allowed[c.Tag] {
			out = append(out, c)
		}
	}
	return out
}
