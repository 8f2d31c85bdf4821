package store

import (
	"context"
	"fmt"
	"time"

	"github.com/charlieanna/idlecampus-engine/ent"
	"github.com/charlieanna/idlecampus-engine/ent/attemptevent"
)

func (r *eventRepo) AppendAttemptEvent(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	primary := ""
	if len(data.ConceptIDs) > 0 {
		primary = data.ConceptIDs[0]
	}

	builder := r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetProblemID(data.ProblemID).
		SetPrimaryConcept(primary).
		SetSuccess(data.Success).
		SetHintsUsed(data.HintsUsed).
		SetSubmissionAttempts(data.SubmissionAttempts).
		SetTimeSpentSecs(data.TimeSpentSecs).
		SetExpectedTimeSecs(data.ExpectedTimeSecs).
		SetDifficulty(data.Difficulty)

	if len(data.ConceptIDs) > 0 {
		builder = builder.SetConceptIds(data.ConceptIDs)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) LatestAttemptTime(ctx context.Context, problemID string) (time.Time, error) {
	ae, err := r.client.AttemptEvent.Query().
		Where(attemptevent.ProblemID(problemID)).
		Order(ent.Desc(attemptevent.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("query latest attempt time: %w", err)
	}
	return ae.Timestamp, nil
}

func (r *eventRepo) RecentAttemptAccuracy(ctx context.Context, conceptID string, lastN int) (float64, int, error) {
	events, err := r.client.AttemptEvent.Query().
		Where(attemptevent.PrimaryConcept(conceptID)).
		Order(ent.Desc(attemptevent.FieldSequence)).
		Limit(lastN).
		All(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("query concept attempts: %w", err)
	}

	count := len(events)
	if count == 0 {
		return 0, 0, nil
	}

	correct := 0
	for _, e := range events {
		if e.Success {
			correct++
		}
	}

	return float64(correct) / float64(count), count, nil
}
