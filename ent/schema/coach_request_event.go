package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CoachRequestEvent records a call to an AI coach provider.
type CoachRequestEvent struct {
	ent.Schema
}

func (CoachRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (CoachRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").NotEmpty(),
		field.String("model").NotEmpty(),
		field.String("purpose").NotEmpty(),
		field.Int("input_tokens").NonNegative(),
		field.Int("output_tokens").NonNegative(),
		field.Int64("latency_ms").NonNegative(),
		field.Bool("success"),
		field.String("error_message").Optional(),
	}
}

func (CoachRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider"),
		index.Fields("purpose"),
	}
}
