package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionRecord is one completed game in the session log. The record itself
// is kept as JSON in payload; the other columns exist for ordering and
// lookups without decoding it.
type SessionRecord struct {
	ent.Schema
}

func (SessionRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("collection").
			NotEmpty().
			Comment("Log the record belongs to"),
		field.String("session_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("UUID of the game"),
		field.String("game_mode").
			NotEmpty(),
		field.Time("started_at").
			Immutable(),
		field.Time("ended_at").
			Optional().
			Nillable().
			Comment("Unset for a game abandoned before completion"),
		field.Int("score").
			Default(0),
		field.Float("accuracy").
			Default(0).
			Comment("Percent of questions answered correctly"),
		field.Text("payload").
			Comment("JSON encoded session record"),
	}
}

func (SessionRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("collection"),
		index.Fields("started_at"),
	}
}
