package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type Driver struct{ ent.Schema }

func (Driver) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "drivers"},
	}
}

func (Driver) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Driver) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("loads", Load.Type),
		edge.To("expenses", Expense.Type),
		edge.To("documents", Document.Type),
		edge.To("jobs", ExtractJob.Type),
	}
}
