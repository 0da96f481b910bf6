package schema

import (
	"strconv"
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

type Question struct{ ent.Schema }

func (Question) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "question"},
	}
}

func (Question) Fields() []ent.Field {
	fields := []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("job_id", uuid.UUID{}),
		field.String("dedup_key").NotEmpty().MaxLen(64),
		field.String("file_name").NotEmpty(),
		field.String("subject_name").NotEmpty(),
		field.String("lesson_title").Optional(),
		field.String("class_name").Optional().Nillable(),
		field.String("specialization").Optional().Nillable(),
		field.String("question").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("question_type").Optional().Nillable().
			Validate(utils.EnumValidator(constants.QuestionTypeStrings()...)),
		field.String("question_difficulty").Optional().Nillable().
			Validate(utils.EnumValidator(constants.DifficultyStrings()...)),
		field.Int("page_number").Positive(),
		field.String("answer_steps").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("correct_answer").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("uploaded_by").NotEmpty(),
		field.String("updated_by").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
	// option1..option6 keep the supplied slot order; absent slots stay NULL.
	for _, name := range optionFieldNames() {
		fields = append(fields, field.String(name).Optional().Nillable())
	}
	return fields
}

func optionFieldNames() []string {
	names := make([]string, 0, constants.MaxOptions)
	for i := 1; i <= constants.MaxOptions; i++ {
		names = append(names, "option"+strconv.Itoa(i))
	}
	return names
}

func (Question) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", ExtractionJob.Type).
			Ref("questions").
			Field("job_id").
			Unique().
			Required(),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		// dedup identity: insert-if-absent races resolve at the database
		index.Fields("job_id", "dedup_key").Unique(),
		index.Fields("subject_name", "question_type"),
	}
}
