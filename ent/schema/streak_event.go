package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StreakEvent records a change to the practice streak.
type StreakEvent struct {
	ent.Schema
}

func (StreakEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (StreakEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("action").NotEmpty().
			Comment("extend, reset or milestone"),
		field.Int("days").NonNegative(),
	}
}

func (StreakEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("action"),
	}
}
