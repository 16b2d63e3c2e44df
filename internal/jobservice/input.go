package jobservice

import (
	"strings"
	"time"

	"campusjobs-backend/internal/apperror"
	"campusjobs-backend/internal/model"
	"campusjobs-backend/internal/skill"
)

// SalaryInput is the salary range of a new job
type SalaryInput struct {
	Min      float64 `json:"min" binding:"gte=0"`
	Max      float64 `json:"max" binding:"gte=0"`
	Currency string  `json:"currency" binding:"omitempty,min=3,max=3"`
}

// JobInput is the request body of a new job. The binding tags are checked by
// the HTTP layer, PostJob repeats the checks that need normalized values.
type JobInput struct {
	Title           string       `json:"title" binding:"required,min=3,max=120"`
	Company         string       `json:"company" binding:"required,min=2,max=120"`
	CompanyLogo     string       `json:"company_logo" binding:"omitempty,url"`
	Location        string       `json:"location" binding:"required,min=2,max=120"`
	EmploymentType  string       `json:"employment_type" binding:"omitempty,oneof=Full-Time Internship Part-Time Contract Freelance"`
	Mode            string       `json:"mode" binding:"omitempty,oneof=Onsite Remote Hybrid"`
	ExperienceLevel string       `json:"experience_level" binding:"omitempty,oneof=Entry Mid Senior Lead"`
	Category        string       `json:"category" binding:"omitempty,max=60"`
	Description     string       `json:"description" binding:"required,min=20,max=5000"`
	RequiredSkills  []string     `json:"required_skills" binding:"required,min=1,max=30,dive,required,max=50"`
	OptionalSkills  []string     `json:"optional_skills" binding:"omitempty,max=30,dive,max=50"`
	SalaryRange     *SalaryInput `json:"salary_range"`
	ApplyLink       string       `json:"apply_link" binding:"omitempty,url"`
	Deadline        *time.Time   `json:"deadline"`
}

// toJob validates in and builds the job with defaults applied.
func (in JobInput) toJob(now time.Time) (*model.Job, error) {
	title := strings.TrimSpace(in.Title)
	company := strings.TrimSpace(in.Company)
	location := strings.TrimSpace(in.Location)
	description := strings.TrimSpace(in.Description)

	switch {
	case len(title) < 3 || len(title) > 120:
		return nil, apperror.BadRequest("title must be between 3 and 120 characters")
	case len(company) < 2 || len(company) > 120:
		return nil, apperror.BadRequest("company must be between 2 and 120 characters")
	case len(location) < 2 || len(location) > 120:
		return nil, apperror.BadRequest("location must be between 2 and 120 characters")
	case len(description) < 20 || len(description) > 5000:
		return nil, apperror.BadRequest("description must be between 20 and 5000 characters")
	}

	required := skill.NormalizeSet(in.RequiredSkills)
	optional := skill.NormalizeSet(in.OptionalSkills)
	if len(required) == 0 {
		return nil, apperror.BadRequest("At least one required skill is needed")
	}
	if len(required) > 30 || len(optional) > 30 {
		return nil, apperror.BadRequest("A job can list at most 30 skills of each kind")
	}
	for _, s := range append(append([]string{}, required...), optional...) {
		if len(s) > skill.MaxLength {
			return nil, apperror.BadRequest("skills must be at most 50 characters")
		}
	}

	job := &model.Job{
		Title:           title,
		Company:         company,
		CompanyLogo:     orDefault(in.CompanyLogo, model.DefaultCompanyLogo),
		Location:        location,
		EmploymentType:  orDefault(in.EmploymentType, model.EmploymentFullTime),
		Mode:            orDefault(in.Mode, model.ModeOnsite),
		ExperienceLevel: orDefault(in.ExperienceLevel, model.ExperienceEntry),
		Category:        orDefault(strings.TrimSpace(in.Category), model.DefaultCategory),
		Description:     description,
		RequiredSkills:  required,
		OptionalSkills:  optional,
		SalaryRange:     model.SalaryRange{Currency: model.DefaultCurrency},
		ApplyLink:       strings.TrimSpace(in.ApplyLink),
	}
	if !contains(model.EmploymentTypes, job.EmploymentType) {
		return nil, apperror.BadRequest("Invalid employment type")
	}
	if !contains(model.Modes, job.Mode) {
		return nil, apperror.BadRequest("Invalid mode")
	}

	if in.SalaryRange != nil {
		if in.SalaryRange.Min < 0 || in.SalaryRange.Max < in.SalaryRange.Min {
			return nil, apperror.BadRequest("salary_range.max must be greater than or equal to salary_range.min")
		}
		job.SalaryRange.Min = in.SalaryRange.Min
		job.SalaryRange.Max = in.SalaryRange.Max
		if c := strings.TrimSpace(in.SalaryRange.Currency); c != "" {
			job.SalaryRange.Currency = strings.ToUpper(c)
		}
	}

	if in.Deadline != nil {
		if !in.Deadline.After(now) {
			return nil, apperror.BadRequest("deadline must be in the future")
		}
		d := in.Deadline.UTC()
		job.Deadline = &d
	}

	return job, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
