package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Snapshot stores one serialized copy of the engine's decay inputs:
// concept scores, module completion records, and problem mastery state.
// Restoring from the newest snapshot replaces replaying attempt and
// module events from the beginning.
type Snapshot struct {
	ent.Schema
}

func (Snapshot) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Comment("Last event sequence folded into this state"),
		field.Time("timestamp").
			Default(time.Now).
			Comment("Capture time"),
		field.JSON("data", map[string]any{}).
			Comment("Serialized engine state (decay inputs only, derived values recomputed on load)"),
	}
}

func (Snapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
		index.Fields("sequence"),
	}
}
