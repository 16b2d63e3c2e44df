package query

import (
	"strings"

	"github.com/google/uuid"

	"campusjobs-backend/internal/apperror"
	"campusjobs-backend/internal/model"
	"campusjobs-backend/internal/skill"
)

// Paging defaults and bounds
const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 50
)

// Criteria is a job listing request. Zero values mean "not given".
type Criteria struct {
	Search         string
	EmploymentType string
	Mode           string
	Location       string
	RequiredSkills []string
	// PostedBy restricts the result to jobs of a single owner.
	PostedBy uuid.UUID

	Role        model.Role
	RequesterID uuid.UUID

	Page  int
	Limit int
}

// BuildFilter turns criteria into a filter. The role visibility clause always
// comes first and every clause is combined with AND. Within the skills clause
// a job matches when it requires at least one of the given skills.
func BuildFilter(c Criteria) (FilterSpec, error) {
	page, limit, err := paging(c.Page, c.Limit)
	if err != nil {
		return FilterSpec{}, err
	}

	spec := FilterSpec{Page: page, Limit: limit}
	if v, ok := visibility(c.Role, c.RequesterID); ok {
		spec.Clauses = append(spec.Clauses, v)
	}

	if c.PostedBy != uuid.Nil {
		spec.Clauses = append(spec.Clauses, one(FieldPostedBy, OpEqual, c.PostedBy))
	}

	if search := strings.TrimSpace(c.Search); search != "" {
		spec.Clauses = append(spec.Clauses, Clause{AnyOf: []Condition{
			{Field: FieldTitle, Op: OpContainsFold, Value: search},
			{Field: FieldCompany, Op: OpContainsFold, Value: search},
		}})
	}

	if c.EmploymentType != "" {
		if !contains(model.EmploymentTypes, c.EmploymentType) {
			return FilterSpec{}, apperror.BadRequest("Invalid employment type")
		}
		spec.Clauses = append(spec.Clauses, one(FieldEmploymentType, OpEqual, c.EmploymentType))
	}

	if c.Mode != "" {
		if !contains(model.Modes, c.Mode) {
			return FilterSpec{}, apperror.BadRequest("Invalid mode")
		}
		spec.Clauses = append(spec.Clauses, one(FieldMode, OpEqual, c.Mode))
	}

	if location := strings.TrimSpace(c.Location); location != "" {
		spec.Clauses = append(spec.Clauses, one(FieldLocation, OpContainsFold, location))
	}

	if skills := skill.NormalizeSet(c.RequiredSkills); len(skills) > 0 {
		spec.Clauses = append(spec.Clauses, one(FieldRequiredSkills, OpOverlaps, skills))
	}

	return spec, nil
}

// visibility returns the clause limiting what role may see. Admins see
// everything, unknown roles get the student view.
func visibility(role model.Role, requester uuid.UUID) (Clause, bool) {
	open := Condition{Field: FieldStatus, Op: OpEqual, Value: string(model.JobStatusOpen)}
	switch role {
	case model.RoleAdmin:
		return Clause{}, false
	case model.RoleAlumni, model.RoleFaculty:
		return Clause{AnyOf: []Condition{
			open,
			{Field: FieldPostedBy, Op: OpEqual, Value: requester},
		}}, true
	default:
		return Clause{AnyOf: []Condition{open}}, true
	}
}

func paging(page, limit int) (int, int, error) {
	if page == 0 {
		page = DefaultPage
	}
	if limit == 0 {
		limit = DefaultLimit
	}
	if page < 1 {
		return 0, 0, apperror.BadRequest("page must be greater than or equal to 1")
	}
	if limit < 1 || limit > MaxLimit {
		return 0, 0, apperror.BadRequest("limit must be between 1 and 50")
	}
	return page, limit, nil
}

func one(f Field, op Op, v interface{}) Clause {
	return Clause{AnyOf: []Condition{{Field: f, Op: op, Value: v}}}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
