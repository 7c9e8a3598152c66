package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records a scored attempt at a lesson step.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("lesson_id").NotEmpty(),
		field.String("step_id").NotEmpty(),
		field.Float("score").Min(0).Max(1),
		field.Bool("passed"),
		field.Int("duration_secs").NonNegative().Default(0),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lesson_id"),
		index.Fields("lesson_id", "step_id"),
	}
}
