package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Expense struct{ ent.Schema }

func (Expense) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "expenses"},
	}
}

func (Expense) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("driver_id", uuid.UUID{}),
		field.UUID("load_id", uuid.UUID{}).Optional().Nillable(),
		field.String("category").NotEmpty(),
		field.Float("amount").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Time("incurred_at").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("note").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Expense) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("driver", Driver.Type).
			Ref("expenses").
			Field("driver_id").
			Required().
			Unique(),
		edge.From("load", Load.Type).
			Ref("expenses").
			Field("load_id").
			Unique(),
	}
}

func (Expense) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("driver_id", "incurred_at"),
		index.Fields("load_id"),
	}
}
