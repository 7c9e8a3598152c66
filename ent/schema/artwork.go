package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Artwork is a piece imported into the learner's gallery.
type Artwork struct {
	ent.Schema
}

func (Artwork) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("title").NotEmpty(),
		field.String("lesson_id").Optional(),
		field.String("path").NotEmpty().
			Comment("File path inside the managed gallery directory"),
		field.Time("imported_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Artwork) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lesson_id"),
		index.Fields("imported_at"),
	}
}
