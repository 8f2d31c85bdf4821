package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one graded practice attempt.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("problem_id").
			NotEmpty().
			Comment("Problem that was attempted"),
		field.String("primary_concept").
			Comment("First concept tag, denormalized for indexed accuracy queries"),
		field.JSON("concept_ids", []string{}).
			Optional().
			Comment("All concept tags the problem exercises"),
		field.Bool("success").
			Comment("Whether the attempt passed grading"),
		field.Int("hints_used").
			Comment("Hints requested before submission"),
		field.Int("submission_attempts").
			Comment("Which submission this was (1-based)"),
		field.Float("time_spent_secs").
			Comment("Seconds spent on the attempt"),
		field.Float("expected_time_secs").
			Comment("Authored expected solve time, 0 if unknown"),
		field.String("difficulty").
			Comment("easy, medium, or hard; empty if unrated"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("problem_id"),
		index.Fields("primary_concept"),
		index.Fields("success"),
	}
}
