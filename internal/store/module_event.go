package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendModuleEvent(ctx context.Context, data ModuleEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ModuleEvent.Create().
		SetSequence(seqNum).
		SetModuleID(data.ModuleID).
		SetModuleName(data.ModuleName).
		SetSequenceNumber(data.SequenceNumber).
		SetInitialScore(data.InitialScore).
		SetProblemCount(data.ProblemCount).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save module event: %w", err)
	}
	return nil
}
