package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Run holds one save slot's adaptive practice run. The progression state
// itself lives in the versioned payload document; the columns pulled out
// here are the ones the slot list queries on.
type Run struct {
	ent.Schema
}

func (Run) Fields() []ent.Field {
	return []ent.Field{
		field.String("save_id").
			Unique().
			Immutable().
			Comment("User-facing save slot name"),
		field.Time("updated_at").
			Default(time.Now).
			Comment("Stamped on every write; drives most-recent-first listing"),
		field.JSON("payload", map[string]any{}).
			Comment("Versioned run document (see store.runPayload)"),
	}
}

func (Run) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("save_id"),
		index.Fields("updated_at"),
	}
}
