// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExtractionJobColumns holds the columns for the "extraction_job" table.
	ExtractionJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "file_name", Type: field.TypeString},
		{Name: "subject_name", Type: field.TypeString},
		{Name: "class_name", Type: field.TypeString, Nullable: true},
		{Name: "specialization", Type: field.TypeString, Nullable: true},
		{Name: "uploaded_by", Type: field.TypeString},
		{Name: "total_pages", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeString, Default: "RUNNING"},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "model_name", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
	}
	// ExtractionJobTable holds the schema information for the "extraction_job" table.
	ExtractionJobTable = &schema.Table{
		Name:       "extraction_job",
		Columns:    ExtractionJobColumns,
		PrimaryKey: []*schema.Column{ExtractionJobColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "extractionjob_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractionJobColumns[7], ExtractionJobColumns[10]},
			},
			{
				Name:    "extractionjob_subject_name",
				Unique:  false,
				Columns: []*schema.Column{ExtractionJobColumns[2]},
			},
		},
	}
	// PageOutcomeColumns holds the columns for the "page_outcome" table.
	PageOutcomeColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "page_number", Type: field.TypeInt},
		{Name: "status", Type: field.TypeString},
		{Name: "question_count", Type: field.TypeInt, Default: 0},
		{Name: "error", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeUUID},
	}
	// PageOutcomeTable holds the schema information for the "page_outcome" table.
	PageOutcomeTable = &schema.Table{
		Name:       "page_outcome",
		Columns:    PageOutcomeColumns,
		PrimaryKey: []*schema.Column{PageOutcomeColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "page_outcome_extraction_job_pages",
				Columns:    []*schema.Column{PageOutcomeColumns[6]},
				RefColumns: []*schema.Column{ExtractionJobColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "pageoutcome_job_id_page_number",
				Unique:  true,
				Columns: []*schema.Column{PageOutcomeColumns[6], PageOutcomeColumns[1]},
			},
		},
	}
	// QuestionColumns holds the columns for the "question" table.
	QuestionColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "dedup_key", Type: field.TypeString, Size: 64},
		{Name: "file_name", Type: field.TypeString},
		{Name: "subject_name", Type: field.TypeString},
		{Name: "lesson_title", Type: field.TypeString, Nullable: true},
		{Name: "class_name", Type: field.TypeString, Nullable: true},
		{Name: "specialization", Type: field.TypeString, Nullable: true},
		{Name: "question", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "question_type", Type: field.TypeString, Nullable: true},
		{Name: "question_difficulty", Type: field.TypeString, Nullable: true},
		{Name: "page_number", Type: field.TypeInt},
		{Name: "answer_steps", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "correct_answer", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "uploaded_by", Type: field.TypeString},
		{Name: "updated_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "option1", Type: field.TypeString, Nullable: true},
		{Name: "option2", Type: field.TypeString, Nullable: true},
		{Name: "option3", Type: field.TypeString, Nullable: true},
		{Name: "option4", Type: field.TypeString, Nullable: true},
		{Name: "option5", Type: field.TypeString, Nullable: true},
		{Name: "option6", Type: field.TypeString, Nullable: true},
		{Name: "job_id", Type: field.TypeUUID},
	}
	// QuestionTable holds the schema information for the "question" table.
	QuestionTable = &schema.Table{
		Name:       "question",
		Columns:    QuestionColumns,
		PrimaryKey: []*schema.Column{QuestionColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "question_extraction_job_questions",
				Columns:    []*schema.Column{QuestionColumns[23]},
				RefColumns: []*schema.Column{ExtractionJobColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "question_job_id_dedup_key",
				Unique:  true,
				Columns: []*schema.Column{QuestionColumns[23], QuestionColumns[1]},
			},
			{
				Name:    "question_subject_name_question_type",
				Unique:  false,
				Columns: []*schema.Column{QuestionColumns[3], QuestionColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExtractionJobTable,
		PageOutcomeTable,
		QuestionTable,
	}
)

func init() {
	ExtractionJobTable.Annotation = &entsql.Annotation{
		Table: "extraction_job",
	}
	PageOutcomeTable.ForeignKeys[0].RefTable = ExtractionJobTable
	PageOutcomeTable.Annotation = &entsql.Annotation{
		Table: "page_outcome",
	}
	QuestionTable.ForeignKeys[0].RefTable = ExtractionJobTable
	QuestionTable.Annotation = &entsql.Annotation{
		Table: "question",
	}
}
