package jobservice

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"campusjobs-backend/internal/apperror"
	"campusjobs-backend/internal/lifecycle"
	"campusjobs-backend/internal/match"
	"campusjobs-backend/internal/model"
	"campusjobs-backend/internal/notification"
	"campusjobs-backend/internal/query"
)

// MyPostedLimit is the page size of the posted jobs dashboard
const MyPostedLimit = 50

// PostJob creates a job owned by the actor. Jobs of admins are open right
// away, every other job waits for approval.
func (s *Service) PostJob(ctx context.Context, actor *lifecycle.Actor, in JobInput) (*model.Job, error) {
	if err := lifecycle.CheckCreate(actor); err != nil {
		return nil, err
	}

	job, err := in.toJob(s.now())
	if err != nil {
		return nil, err
	}
	job.Description = strings.TrimSpace(s.policy.Sanitize(job.Description))
	if job.Description == "" {
		return nil, apperror.BadRequest("description must not be empty")
	}

	job.PostedByID = actor.ID
	job.PostedByRole = actor.Role
	job.Status = lifecycle.InitialStatus(actor.Role)

	if err := s.store.CreateJob(ctx, job); err != nil {
		return nil, errors.Wrap(err, "create job")
	}
	return job, nil
}

// ListJobs returns the jobs visible to the actor that match the criteria,
// newest first. Students get the page reordered by match score.
func (s *Service) ListJobs(ctx context.Context, actor *lifecycle.Actor, c query.Criteria) (*ListResult, error) {
	if err := lifecycle.RequireActor(actor); err != nil {
		return nil, err
	}
	c.Role = actor.Role
	c.RequesterID = actor.ID

	spec, err := query.BuildFilter(c)
	if err != nil {
		return nil, err
	}

	var (
		jobs  []model.Job
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		jobs, err = s.store.FindJobs(gctx, spec)
		return errors.Wrap(err, "find jobs")
	})
	g.Go(func() error {
		var err error
		total, err = s.store.CountJobs(gctx, spec)
		return errors.Wrap(err, "count jobs")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var ranked []match.RankedJob
	if actor.Role == model.RoleStudent {
		ranked = match.Rank(jobs, actor.Skills)
	} else {
		ranked = match.Unranked(jobs)
	}

	data := make([]JobView, 0, len(ranked))
	for _, r := range ranked {
		data = append(data, toView(r))
	}
	return &ListResult{
		Count: len(data),
		Total: total,
		Page:  spec.Page,
		Limit: spec.Limit,
		Data:  data,
	}, nil
}

// MyPostedJobs lists the jobs the actor posted, whatever their status.
func (s *Service) MyPostedJobs(ctx context.Context, actor *lifecycle.Actor) (*ListResult, error) {
	if err := lifecycle.CheckCreate(actor); err != nil {
		return nil, err
	}
	return s.ListJobs(ctx, actor, query.Criteria{PostedBy: actor.ID, Page: 1, Limit: MyPostedLimit})
}

// GetJobDetails returns a job and counts the view. Students also get their
// match against the job and whether they already applied.
func (s *Service) GetJobDetails(ctx context.Context, actor *lifecycle.Actor, id uint) (*JobView, error) {
	if err := lifecycle.CheckView(actor); err != nil {
		return nil, err
	}

	if err := s.store.IncrementViews(ctx, id); err != nil {
		return nil, err
	}
	job, err := s.store.FindJobByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ranked := match.RankedJob{Job: *job}
	if actor.Role == model.RoleStudent {
		res := match.Score(actor.Skills, job.RequiredSkills, job.OptionalSkills)
		ranked.Recommendation = &res
	}
	view := toView(ranked)

	applied, err := s.store.HasApplied(ctx, id, actor.ID)
	if err != nil {
		return nil, errors.Wrap(err, "check application")
	}
	view.UserApply = &applied
	return &view, nil
}

// ApplyJob records an application of the actor. The status and duplicate
// checks run inside the store's atomic append. The job owner is notified.
func (s *Service) ApplyJob(ctx context.Context, actor *lifecycle.Actor, id uint, resume string) (*model.Job, error) {
	if err := lifecycle.CheckApplyRole(actor); err != nil {
		return nil, err
	}

	var resumeRef *string
	if resume = strings.TrimSpace(resume); resume != "" {
		if u, err := url.ParseRequestURI(resume); err != nil || u.Scheme == "" || u.Host == "" {
			return nil, apperror.BadRequest("resume must be a valid URL")
		}
		resumeRef = &resume
	}

	job, err := s.store.AppendApplicant(ctx, id, actor.ID, func(job *model.Job) (model.Applicant, error) {
		if err := lifecycle.CheckApply(actor, job); err != nil {
			return model.Applicant{}, err
		}

		var aiScore *int
		if len(actor.Skills) > 0 {
			score := match.Score(actor.Skills, job.RequiredSkills, job.OptionalSkills).MatchScore
			aiScore = &score
		}
		return model.Applicant{
			UserID:    actor.ID,
			Resume:    resumeRef,
			Status:    model.ApplicantStatusApplied,
			AppliedAt: s.now(),
			AIScore:   aiScore,
		}, nil
	})
	if err != nil {
		return nil, err
	}

	sender := actor.ID
	s.notify(ctx, job.PostedByID, notification.Event{
		SenderID:    &sender,
		Type:        model.NotificationJob,
		Title:       "New applicant",
		Message:     fmt.Sprintf("Someone applied to %q", job.Title),
		RedirectURL: fmt.Sprintf("/jobs/%d/applicants", job.ID),
		Metadata:    map[string]interface{}{"job_id": job.ID, "applicant_id": actor.ID.String()},
	})
	return job, nil
}

// GetApplicants lists the applicants of a job to its owner or an admin.
func (s *Service) GetApplicants(ctx context.Context, actor *lifecycle.Actor, id uint) (*ApplicantsView, error) {
	if err := lifecycle.RequireActor(actor); err != nil {
		return nil, err
	}

	job, err := s.store.FindJobByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := lifecycle.CheckViewApplicants(actor, job.Owner()); err != nil {
		return nil, err
	}

	applicants, err := s.store.FindApplicants(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "find applicants")
	}

	views := make([]ApplicantView, 0, len(applicants))
	for _, a := range applicants {
		v := ApplicantView{Applicant: a}
		if a.User != nil {
			sum := a.User.Summary()
			v.User = &sum
		}
		views = append(views, v)
	}
	return &ApplicantsView{
		Job:        JobRef{ID: job.ID, Title: job.Title, Company: job.Company},
		Applicants: views,
	}, nil
}

// UpdateJobStatus moves a job to another status. Only admins may do this.
func (s *Service) UpdateJobStatus(ctx context.Context, actor *lifecycle.Actor, id uint, target string) (*model.Job, error) {
	status, err := lifecycle.CheckStatusUpdate(actor, target)
	if err != nil {
		return nil, err
	}

	job, err := s.store.UpdateJobStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	if job.PostedByID != actor.ID {
		sender := actor.ID
		s.notify(ctx, job.PostedByID, notification.Event{
			SenderID:    &sender,
			Type:        model.NotificationJob,
			Title:       "Job status updated",
			Message:     fmt.Sprintf("Your job %q is now %s", job.Title, job.Status),
			RedirectURL: fmt.Sprintf("/jobs/%d", job.ID),
			Metadata:    map[string]interface{}{"job_id": job.ID, "status": string(job.Status)},
		})
	}
	return job, nil
}

// UpdateApplicantStatus changes the review status of one application and
// notifies the applicant.
func (s *Service) UpdateApplicantStatus(ctx context.Context, actor *lifecycle.Actor, jobID uint, userID uuid.UUID, target string) (*model.Applicant, error) {
	if err := lifecycle.RequireActor(actor); err != nil {
		return nil, err
	}

	job, err := s.store.FindJobByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	status, err := lifecycle.CheckApplicantStatusUpdate(actor, job.Owner(), target)
	if err != nil {
		return nil, err
	}

	applicant, err := s.store.UpdateApplicantStatus(ctx, jobID, userID, status, actor.ID, s.now())
	if err != nil {
		return nil, err
	}

	sender := actor.ID
	s.notify(ctx, userID, notification.Event{
		SenderID:    &sender,
		Type:        model.NotificationJob,
		Title:       "Application status updated",
		Message:     fmt.Sprintf("Your application to %q is now %s", job.Title, status),
		RedirectURL: fmt.Sprintf("/jobs/%d", job.ID),
		Metadata:    map[string]interface{}{"job_id": job.ID, "status": string(status)},
	})
	return applicant, nil
}
