package schema

import (
	"errors"
	"regexp"
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

var (
	reStateCode     = regexp.MustCompile(`^[A-Z]{2}$`)
	errBadStateCode = errors.New("invalid state code")
)

func stateCodeValidator(s string) error {
	if s == "" || reStateCode.MatchString(s) {
		return nil
	}
	return errBadStateCode
}

type Load struct{ ent.Schema }

func (Load) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "loads"},
	}
}

func (Load) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("driver_id", uuid.UUID{}),
		field.String("label").NotEmpty(),
		field.String("status").Default(string(constants.LoadStatusPlanned)).
			Validate(utils.EnumValidator(constants.LoadStatuses...)),
		field.Float("gross_pay").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Int("miles").Optional().Nillable().NonNegative(),
		field.Time("pickup_date").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("delivery_date").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("origin").Optional().Nillable(),
		field.String("destination").Optional().Nillable(),
		field.String("pickup_state").Optional().Nillable().
			Validate(stateCodeValidator),
		field.String("drop_state").Optional().Nillable().
			Validate(stateCodeValidator),
		field.String("bol_number").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Load) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY loads -> ONE driver (FK: loads.driver_id)
		edge.From("driver", Driver.Type).
			Ref("loads").
			Field("driver_id").
			Required().
			Unique(),
		// ONE load -> MANY expenses / documents / jobs
		edge.To("expenses", Expense.Type),
		edge.To("documents", Document.Type),
		edge.To("jobs", ExtractJob.Type),
	}
}

func (Load) Indexes() []ent.Index {
	return []ent.Index{
		// natural signature used by the extraction upsert: one row per
		// driver + pickup date + lane
		index.Fields("driver_id", "pickup_date", "origin", "destination").Unique(),
		index.Fields("driver_id", "status", "pickup_date"),
	}
}
