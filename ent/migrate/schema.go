// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ArtworksColumns holds the columns for the "artworks" table.
	ArtworksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString, Nullable: true},
		{Name: "path", Type: field.TypeString},
		{Name: "imported_at", Type: field.TypeTime},
	}
	// ArtworksTable holds the schema information for the "artworks" table.
	ArtworksTable = &schema.Table{
		Name:       "artworks",
		Columns:    ArtworksColumns,
		PrimaryKey: []*schema.Column{ArtworksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "artwork_lesson_id",
				Unique:  false,
				Columns: []*schema.Column{ArtworksColumns[2]},
			},
			{
				Name:    "artwork_imported_at",
				Unique:  false,
				Columns: []*schema.Column{ArtworksColumns[4]},
			},
		},
	}
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "step_id", Type: field.TypeString},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "passed", Type: field.TypeBool},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
			{
				Name:    "attemptevent_lesson_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3]},
			},
			{
				Name:    "attemptevent_lesson_id_step_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3], AttemptEventsColumns[4]},
			},
		},
	}
	// BadgeEventsColumns holds the columns for the "badge_events" table.
	BadgeEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "badge_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "xp_reward", Type: field.TypeInt},
	}
	// BadgeEventsTable holds the schema information for the "badge_events" table.
	BadgeEventsTable = &schema.Table{
		Name:       "badge_events",
		Columns:    BadgeEventsColumns,
		PrimaryKey: []*schema.Column{BadgeEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "badgeevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{BadgeEventsColumns[1]},
			},
			{
				Name:    "badgeevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{BadgeEventsColumns[2]},
			},
			{
				Name:    "badgeevent_badge_id",
				Unique:  false,
				Columns: []*schema.Column{BadgeEventsColumns[3]},
			},
		},
	}
	// CoachRequestEventsColumns holds the columns for the "coach_request_events" table.
	CoachRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt},
		{Name: "output_tokens", Type: field.TypeInt},
		{Name: "latency_ms", Type: field.TypeInt64},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// CoachRequestEventsTable holds the schema information for the "coach_request_events" table.
	CoachRequestEventsTable = &schema.Table{
		Name:       "coach_request_events",
		Columns:    CoachRequestEventsColumns,
		PrimaryKey: []*schema.Column{CoachRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "coachrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{CoachRequestEventsColumns[1]},
			},
			{
				Name:    "coachrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{CoachRequestEventsColumns[2]},
			},
			{
				Name:    "coachrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{CoachRequestEventsColumns[3]},
			},
			{
				Name:    "coachrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{CoachRequestEventsColumns[5]},
			},
		},
	}
	// LessonEventsColumns holds the columns for the "lesson_events" table.
	LessonEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "lesson_title", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "xp_awarded", Type: field.TypeInt},
	}
	// LessonEventsTable holds the schema information for the "lesson_events" table.
	LessonEventsTable = &schema.Table{
		Name:       "lesson_events",
		Columns:    LessonEventsColumns,
		PrimaryKey: []*schema.Column{LessonEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lessonevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[1]},
			},
			{
				Name:    "lessonevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[2]},
			},
			{
				Name:    "lessonevent_lesson_id",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[3]},
			},
			{
				Name:    "lessonevent_category",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[5]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// StreakEventsColumns holds the columns for the "streak_events" table.
	StreakEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "action", Type: field.TypeString},
		{Name: "days", Type: field.TypeInt},
	}
	// StreakEventsTable holds the schema information for the "streak_events" table.
	StreakEventsTable = &schema.Table{
		Name:       "streak_events",
		Columns:    StreakEventsColumns,
		PrimaryKey: []*schema.Column{StreakEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "streakevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{StreakEventsColumns[1]},
			},
			{
				Name:    "streakevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{StreakEventsColumns[2]},
			},
			{
				Name:    "streakevent_action",
				Unique:  false,
				Columns: []*schema.Column{StreakEventsColumns[3]},
			},
		},
	}
	// XpEventsColumns holds the columns for the "xp_events" table.
	XpEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "amount", Type: field.TypeInt},
		{Name: "total", Type: field.TypeInt},
		{Name: "source", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString, Nullable: true},
	}
	// XpEventsTable holds the schema information for the "xp_events" table.
	XpEventsTable = &schema.Table{
		Name:       "xp_events",
		Columns:    XpEventsColumns,
		PrimaryKey: []*schema.Column{XpEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "xpevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{XpEventsColumns[1]},
			},
			{
				Name:    "xpevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{XpEventsColumns[2]},
			},
			{
				Name:    "xpevent_source",
				Unique:  false,
				Columns: []*schema.Column{XpEventsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ArtworksTable,
		AttemptEventsTable,
		BadgeEventsTable,
		CoachRequestEventsTable,
		LessonEventsTable,
		SnapshotsTable,
		StreakEventsTable,
		XpEventsTable,
	}
)

func init() {
}
