// Package query builds role scoped job filters. A FilterSpec is storage
// neutral: the PostgreSQL store translates it to SQL and the memory store
// evaluates it with Match.
package query

import (
	"strings"

	"github.com/google/uuid"

	"campusjobs-backend/internal/model"
)

// Field is a filterable job attribute
type Field string

// Filterable fields
const (
	FieldStatus         Field = "status"
	FieldPostedBy       Field = "posted_by_id"
	FieldTitle          Field = "title"
	FieldCompany        Field = "company"
	FieldLocation       Field = "location"
	FieldEmploymentType Field = "employment_type"
	FieldMode           Field = "mode"
	FieldRequiredSkills Field = "required_skills"
)

// Op is a comparison operator
type Op string

// Operators. OpContainsFold is a case insensitive substring match,
// OpOverlaps matches when the array field shares an element with the value.
const (
	OpEqual        Op = "eq"
	OpContainsFold Op = "contains_fold"
	OpOverlaps     Op = "overlaps"
)

// Condition compares one field against a value
type Condition struct {
	Field Field
	Op    Op
	Value interface{}
}

// Clause is satisfied when any of its conditions is
type Clause struct {
	AnyOf []Condition
}

// FilterSpec is a conjunction of clauses plus paging. Results are ordered by
// creation time, newest first.
type FilterSpec struct {
	Clauses []Clause
	Page    int
	Limit   int
}

// Offset is the number of rows to skip for the page.
func (s FilterSpec) Offset() int {
	if s.Page < 1 {
		return 0
	}
	return (s.Page - 1) * s.Limit
}

// Match evaluates the spec against a job.
func (s FilterSpec) Match(job *model.Job) bool {
	for _, c := range s.Clauses {
		if !c.match(job) {
			return false
		}
	}
	return true
}

func (c Clause) match(job *model.Job) bool {
	for _, cond := range c.AnyOf {
		if cond.match(job) {
			return true
		}
	}
	return false
}

func (c Condition) match(job *model.Job) bool {
	switch c.Field {
	case FieldRequiredSkills:
		want, _ := c.Value.([]string)
		return c.Op == OpOverlaps && overlaps(job.RequiredSkills, want)
	case FieldPostedBy:
		id, _ := c.Value.(uuid.UUID)
		return c.Op == OpEqual && job.PostedByID == id
	}

	field, ok := stringField(job, c.Field)
	if !ok {
		return false
	}
	value, _ := c.Value.(string)
	switch c.Op {
	case OpEqual:
		return field == value
	case OpContainsFold:
		return strings.Contains(strings.ToLower(field), strings.ToLower(value))
	}
	return false
}

func stringField(job *model.Job, f Field) (string, bool) {
	switch f {
	case FieldStatus:
		return string(job.Status), true
	case FieldTitle:
		return job.Title, true
	case FieldCompany:
		return job.Company, true
	case FieldLocation:
		return job.Location, true
	case FieldEmploymentType:
		return job.EmploymentType, true
	case FieldMode:
		return job.Mode, true
	}
	return "", false
}

func overlaps(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}
