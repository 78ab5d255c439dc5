package schema

import (
	"encoding/json"
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

type ExtractJob struct{ ent.Schema }

func (ExtractJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extract_job"},
	}
}

func (ExtractJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("document_id", uuid.UUID{}),
		field.UUID("driver_id", uuid.UUID{}),
		field.UUID("load_id", uuid.UUID{}).Optional().Nillable(),
		field.String("format").NotEmpty().
			Validate(utils.EnumValidator(constants.FileTypes...)),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
		field.String("status").Optional().Nillable(),
		field.String("error_message").Optional().Nillable(),
		field.Float32("extraction_confidence").Optional().Nillable(),
		field.Bool("needs_review").Default(false),
		field.String("ocr_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("ocr_method").Optional().Nillable(),
		field.Int("pages").Optional().Nillable(),
		field.JSON("extracted_json", json.RawMessage{}).
			Optional(),
		field.JSON("field_spans", json.RawMessage{}).
			Optional(),
		field.String("suggested_label").Optional().Nillable(),
	}
}

func (ExtractJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("jobs").
			Field("document_id").
			Unique().
			Required(),
		edge.From("driver", Driver.Type).
			Ref("jobs").
			Field("driver_id").
			Unique().
			Required(),
		edge.From("load", Load.Type).
			Ref("jobs").
			Field("load_id").
			Unique(),
	}
}

func (ExtractJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("driver_id", "status", "started_at"),
		index.Fields("document_id"),
		index.Fields("load_id"),
	}
}
