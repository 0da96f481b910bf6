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

	"github.com/qbankhq/qbank/constants"
	"github.com/qbankhq/qbank/db/ent/schema/utils"
)

type PageOutcome struct{ ent.Schema }

func (PageOutcome) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "page_outcome"},
	}
}

func (PageOutcome) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("job_id", uuid.UUID{}),
		field.Int("page_number").Positive(),
		field.String("status").NotEmpty().
			Validate(utils.EnumValidator(constants.PageStatuses...)),
		field.Int("question_count").Default(0),
		field.String("error").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now),
	}
}

func (PageOutcome) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", ExtractionJob.Type).
			Ref("pages").
			Field("job_id").
			Unique().
			Required(),
	}
}

func (PageOutcome) Indexes() []ent.Index {
	return []ent.Index{
		// one terminal outcome per page within a job
		index.Fields("job_id", "page_number").Unique(),
	}
}
