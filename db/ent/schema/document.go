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

	"github.com/haulboard/haulboard/constants"
	"github.com/haulboard/haulboard/db/ent/schema/utils"
	"github.com/google/uuid"
)

type Document struct {
	ent.Schema
}

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FKs so we can define a composite unique index
		field.UUID("driver_id", uuid.UUID{}),
		field.UUID("load_id", uuid.UUID{}).Optional().Nillable(),
		field.String("doc_type").NotEmpty().
			Validate(utils.EnumValidator(constants.DocumentTypes...)),
		field.String("source_path").NotEmpty(),
		field.Bytes("content_hash").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.String("filename").NotEmpty(),
		field.String("file_ext").NotEmpty(),
		field.String("mime_type").Optional().Nillable(),
		field.Int("file_size").NonNegative(),
		field.String("label").Optional().Nillable(),
		field.Time("uploaded_at").Default(time.Now),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY documents -> ONE driver
		edge.From("driver", Driver.Type).
			Ref("documents").
			Field("driver_id").
			Required().
			Unique(),
		// OPTIONAL: MANY documents -> ONE load
		edge.From("load", Load.Type).
			Ref("documents").
			Field("load_id").
			Unique(),
		// ONE document -> MANY jobs
		edge.To("jobs", ExtractJob.Type),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		// re-uploading the same bytes for the same driver is a no-op
		index.Fields("driver_id", "content_hash").Unique(),
		index.Fields("driver_id", "uploaded_at"),
		index.Fields("load_id"),
	}
}
