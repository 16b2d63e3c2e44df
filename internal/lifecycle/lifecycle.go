// Package lifecycle holds the rules of the job lifecycle: who may create a
// job and with which status, who may move it between statuses, who may apply
// and who may look at applicants.
//
// Every check is synchronous and returns a classified apperror on the first
// violated rule.
package lifecycle

import (
	"github.com/google/uuid"

	"campusjobs-backend/internal/apperror"
	"campusjobs-backend/internal/model"
)

// Actor is the authenticated user an operation runs on behalf of
type Actor struct {
	ID     uuid.UUID
	Role   model.Role
	Skills []string
}

// ActorFromUser builds the actor of a loaded user.
func ActorFromUser(u model.User) *Actor {
	return &Actor{ID: u.ID, Role: u.Role, Skills: u.Skills}
}

func (a *Actor) valid() bool {
	return a != nil && a.ID != uuid.Nil && a.Role != ""
}

// IsAdmin reports whether the actor is an admin.
func (a *Actor) IsAdmin() bool {
	return a != nil && a.Role == model.RoleAdmin
}

// RequireActor fails with Unauthorized when there is no usable actor.
func RequireActor(a *Actor) error {
	if !a.valid() {
		return apperror.Unauthorized("Invalid user context")
	}
	return nil
}

var posterRoles = map[model.Role]bool{
	model.RoleAlumni:  true,
	model.RoleFaculty: true,
	model.RoleAdmin:   true,
}

// CheckCreate allows alumni, faculty and admin to post jobs.
func CheckCreate(a *Actor) error {
	if err := RequireActor(a); err != nil {
		return err
	}
	if !posterRoles[a.Role] {
		return apperror.Forbidden("You are not allowed to post jobs")
	}
	return nil
}

// InitialStatus is the status of a new job. Admin jobs skip the review.
func InitialStatus(role model.Role) model.JobStatus {
	if role == model.RoleAdmin {
		return model.JobStatusOpen
	}
	return model.JobStatusPending
}

// ParseJobStatus accepts the statuses an admin may set.
func ParseJobStatus(raw string) (model.JobStatus, bool) {
	switch s := model.JobStatus(raw); s {
	case model.JobStatusDraft, model.JobStatusPending, model.JobStatusOpen, model.JobStatusClosed:
		return s, true
	}
	return "", false
}

// CheckStatusUpdate allows only admins to change the status of a job. Any
// target in draft, pending, open and closed is accepted regardless of the
// current status.
func CheckStatusUpdate(a *Actor, target string) (model.JobStatus, error) {
	if err := RequireActor(a); err != nil {
		return "", err
	}
	if !a.IsAdmin() {
		return "", apperror.Forbidden("Only admin can update job status")
	}
	status, ok := ParseJobStatus(target)
	if !ok {
		return "", apperror.BadRequest("Invalid job status")
	}
	return status, nil
}

// CheckApplyRole allows only students to apply. It runs before the job is
// loaded.
func CheckApplyRole(a *Actor) error {
	if err := RequireActor(a); err != nil {
		return err
	}
	if a.Role != model.RoleStudent {
		return apperror.Forbidden("Only students can apply for jobs")
	}
	return nil
}

// CheckApply admits an application of a to job. The job must be open and a
// must not have applied yet, job applicants must be loaded.
func CheckApply(a *Actor, job *model.Job) error {
	if err := CheckApplyRole(a); err != nil {
		return err
	}
	if job.Status != model.JobStatusOpen {
		return apperror.InvalidState("Job is not open for applications")
	}
	if job.HasApplicant(a.ID) {
		return apperror.InvalidState("You have already applied for this job")
	}
	return nil
}

// CheckView allows any authenticated actor to see job details.
func CheckView(a *Actor) error {
	return RequireActor(a)
}

// CanManage reports whether a owns the job or is an admin.
func CanManage(a *Actor, owner model.OwnerRef) bool {
	return a.valid() && (a.IsAdmin() || owner.Is(a.ID))
}

// CheckViewApplicants allows the job owner and admins to list applicants.
func CheckViewApplicants(a *Actor, owner model.OwnerRef) error {
	if err := RequireActor(a); err != nil {
		return err
	}
	if !CanManage(a, owner) {
		return apperror.Forbidden("You are not allowed to view applicants")
	}
	return nil
}

// CheckApplicantStatusUpdate allows the job owner and admins to move an
// applicant to one of the applicant statuses.
func CheckApplicantStatusUpdate(a *Actor, owner model.OwnerRef, target string) (model.ApplicantStatus, error) {
	if err := RequireActor(a); err != nil {
		return "", err
	}
	if !CanManage(a, owner) {
		return "", apperror.Forbidden("You are not allowed to update applicants of this job")
	}
	status := model.ApplicantStatus(target)
	if !status.Valid() {
		return "", apperror.BadRequest("Invalid applicant status")
	}
	return status, nil
}
