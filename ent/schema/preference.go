package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Preference is a single-device key/value setting such as the UI theme.
type Preference struct {
	ent.Schema
}

func (Preference) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			MaxLen(64).
			Unique().
			Immutable(),
		field.String("value"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
