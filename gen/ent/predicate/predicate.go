// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ExtractionJob is the predicate function for extractionjob builders.
type ExtractionJob func(*sql.Selector)

// PageOutcome is the predicate function for pageoutcome builders.
type PageOutcome func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)
