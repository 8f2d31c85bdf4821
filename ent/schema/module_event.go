package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ModuleEvent records a module completion.
type ModuleEvent struct {
	ent.Schema
}

func (ModuleEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ModuleEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("module_id").
			NotEmpty().
			Comment("Module that was completed"),
		field.String("module_name").
			Comment("Display name at completion time"),
		field.Int("sequence_number").
			Comment("Position in the learner's completion order"),
		field.Float("initial_score").
			Comment("Score the module was completed with"),
		field.Int("problem_count").
			Comment("Problems in the module at completion"),
	}
}

func (ModuleEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("module_id"),
	}
}
