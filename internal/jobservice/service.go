// Package jobservice runs the job board operations. It combines the lifecycle
// rules, the query planner and the ranker with a Store and sends the
// resulting notifications.
package jobservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"campusjobs-backend/internal/match"
	"campusjobs-backend/internal/model"
	"campusjobs-backend/internal/notification"
	"campusjobs-backend/internal/query"
)

// Store is the persistence the service needs. Lookups of missing records
// return apperror NotFound errors.
type Store interface {
	CreateJob(ctx context.Context, job *model.Job) error
	FindJobs(ctx context.Context, spec query.FilterSpec) ([]model.Job, error)
	CountJobs(ctx context.Context, spec query.FilterSpec) (int64, error)
	// FindJobByID loads the job together with its owner record when the
	// owner still exists.
	FindJobByID(ctx context.Context, id uint) (*model.Job, error)
	IncrementViews(ctx context.Context, id uint) error
	HasApplied(ctx context.Context, jobID uint, userID uuid.UUID) (bool, error)
	// AppendApplicant atomically admits an application of userID. admit sees
	// the current job with the existing application of userID loaded, if
	// any. The applicant it returns is stored and applicants_count is
	// incremented in the same step.
	AppendApplicant(ctx context.Context, jobID uint, userID uuid.UUID, admit func(*model.Job) (model.Applicant, error)) (*model.Job, error)
	UpdateJobStatus(ctx context.Context, id uint, status model.JobStatus) (*model.Job, error)
	FindApplicants(ctx context.Context, jobID uint) ([]model.Applicant, error)
	UpdateApplicantStatus(ctx context.Context, jobID uint, userID uuid.UUID, status model.ApplicantStatus, by uuid.UUID, at time.Time) (*model.Applicant, error)
}

// Notifier delivers a notification to a user.
type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, e notification.Event) error
}

// JobView is a job as returned to a requester
type JobView struct {
	match.RankedJob
	PostedBy  *model.UserSummary `json:"posted_by,omitempty"`
	UserApply *bool              `json:"user_apply,omitempty"`
}

// ListResult is one page of a job listing
type ListResult struct {
	Count int       `json:"count"`
	Total int64     `json:"total"`
	Page  int       `json:"page"`
	Limit int       `json:"limit"`
	Data  []JobView `json:"data"`
}

// ApplicantView is an application with the public part of its user
type ApplicantView struct {
	model.Applicant
	User *model.UserSummary `json:"user"`
}

// JobRef identifies a job in an applicants listing
type JobRef struct {
	ID      uint   `json:"id"`
	Title   string `json:"title"`
	Company string `json:"company"`
}

// ApplicantsView lists the applicants of one job
type ApplicantsView struct {
	Job        JobRef          `json:"job"`
	Applicants []ApplicantView `json:"applicants"`
}

type Service struct {
	store    Store
	notifier Notifier
	logger   *zap.Logger
	policy   *bluemonday.Policy
	now      func() time.Time
}

// New creates the job service. notifier may be nil.
func New(store Store, notifier Notifier, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:    store,
		notifier: notifier,
		logger:   logger,
		policy:   bluemonday.UGCPolicy(),
		now:      time.Now,
	}
}

// notify sends a notification without blocking the caller. Failures are
// only logged.
func (s *Service) notify(ctx context.Context, userID uuid.UUID, e notification.Event) {
	if s.notifier == nil || userID == uuid.Nil {
		return
	}
	ctx = context.WithoutCancel(ctx)
	go func() {
		if err := s.notifier.Notify(ctx, userID, e); err != nil {
			s.logger.Error("failed to send notification",
				zap.String("user_id", userID.String()),
				zap.String("title", e.Title),
				zap.Error(err),
			)
		}
	}()
}

func toView(r match.RankedJob) JobView {
	v := JobView{RankedJob: r}
	if owner := r.Owner(); owner.Expanded() {
		sum := owner.Record().Summary()
		v.PostedBy = &sum
	}
	return v
}
