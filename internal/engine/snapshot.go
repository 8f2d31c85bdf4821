package engine

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/charlieanna/idlecampus-engine/internal/store"
)

// snapshotVersion tags the persisted state shape.
const snapshotVersion = 1

// snapshotsToKeep bounds snapshot history in the database.
const snapshotsToKeep = 10

// SnapshotData exports the full current state as a record-of-records.
// Only decay inputs leave the engine; every derived value is recomputed
// on the next load.
func (e *Engine) SnapshotData() store.SnapshotData {
	return store.SnapshotData{
		Version:  snapshotVersion,
		Concepts: e.concepts.SnapshotData(),
		Modules:  e.modules.SnapshotData(),
		Problems: e.problems.SnapshotData(),
	}
}

// SaveSnapshot persists the current state and prunes old snapshots.
// The stored sequence marks the event-log position this state reflects.
func (e *Engine) SaveSnapshot(ctx context.Context, now time.Time) error {
	if e.snapshots == nil {
		return fmt.Errorf("save snapshot: no snapshot repo configured")
	}

	var seq int64
	if e.events != nil {
		var err error
		seq, err = e.events.LastSequence(ctx)
		if err != nil {
			return fmt.Errorf("read event sequence: %w", err)
		}
	}

	snap := &store.Snapshot{
		Sequence:  seq,
		Timestamp: now,
		Data:      e.SnapshotData(),
	}
	if err := e.snapshots.Save(ctx, snap); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	if err := e.snapshots.Prune(ctx, snapshotsToKeep); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}

	e.log.Debug("snapshot saved",
		zap.Int64("sequence", seq),
		zap.Int("concepts", e.concepts.Len()),
		zap.Int("modules", e.modules.Len()),
		zap.Int("problems", e.problems.Len()))
	return nil
}
