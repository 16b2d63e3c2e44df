// Package memstore is an in-memory implementation of the job board stores.
// It backs the service when STORE=memory and is used by the service and
// handler tests. All records are copied on the way in and out.
package memstore

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"campusjobs-backend/internal/apperror"
	"campusjobs-backend/internal/model"
	"campusjobs-backend/internal/query"
)

type Store struct {
	mu sync.RWMutex

	users     map[uuid.UUID]model.User
	usernames map[string]uuid.UUID

	jobs      map[uint]*model.Job
	nextJobID uint

	notifications map[uuid.UUID]model.Notification
}

func New() *Store {
	return &Store{
		users:         make(map[uuid.UUID]model.User),
		usernames:     make(map[string]uuid.UUID),
		jobs:          make(map[uint]*model.Job),
		notifications: make(map[uuid.UUID]model.Notification),
	}
}

func (s *Store) Ping(context.Context) error {
	return nil
}

// Health reports the store as up together with its record counts.
func (s *Store) Health() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[string]string{
		"status":        "up",
		"message":       "in-memory store",
		"users":         strconv.Itoa(len(s.users)),
		"jobs":          strconv.Itoa(len(s.jobs)),
		"notifications": strconv.Itoa(len(s.notifications)),
	}
}

func (s *Store) CreateUser(_ context.Context, u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.usernames[u.Username]; taken {
		return apperror.InvalidState("Username already taken")
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	now := time.Now()
	u.CreatedAt, u.UpdatedAt = now, now

	s.users[u.ID] = copyUser(*u)
	s.usernames[u.Username] = u.ID
	return nil
}

func (s *Store) FindUserByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, apperror.NotFound("User not found")
	}
	out := copyUser(u)
	return &out, nil
}

func (s *Store) FindUserByUsername(_ context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.usernames[username]
	if !ok {
		return nil, apperror.NotFound("User not found")
	}
	out := copyUser(s.users[id])
	return &out, nil
}

func (s *Store) UpdateUserSkills(_ context.Context, id uuid.UUID, skills []string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, apperror.NotFound("User not found")
	}
	u.Skills = append([]string{}, skills...)
	u.UpdatedAt = time.Now()
	s.users[id] = u

	out := copyUser(u)
	return &out, nil
}

func (s *Store) CreateJob(_ context.Context, job *model.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextJobID++
	job.ID = s.nextJobID
	now := time.Now()
	if job.CreatedAt.IsZero() {
		job.CreatedAt = now
	}
	job.UpdatedAt = now
	job.Applicants = nil
	job.ApplicantsCount = 0

	stored := copyJob(job)
	stored.PostedBy = nil
	s.jobs[job.ID] = stored
	return nil
}

// FindJobs returns the requested page of matching jobs, newest first.
func (s *Store) FindJobs(_ context.Context, spec query.FilterSpec) ([]model.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := s.match(spec)
	start := spec.Offset()
	if start >= len(matched) {
		return []model.Job{}, nil
	}
	end := len(matched)
	if spec.Limit > 0 && start+spec.Limit < end {
		end = start + spec.Limit
	}

	out := make([]model.Job, 0, end-start)
	for _, j := range matched[start:end] {
		out = append(out, *s.withOwner(j))
	}
	return out, nil
}

func (s *Store) CountJobs(_ context.Context, spec query.FilterSpec) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.match(spec))), nil
}

func (s *Store) match(spec query.FilterSpec) []*model.Job {
	var out []*model.Job
	for _, j := range s.jobs {
		if spec.Match(j) {
			out = append(out, j)
		}
	}
	sort.Slice(out, func(a, b int) bool {
		if !out[a].CreatedAt.Equal(out[b].CreatedAt) {
			return out[a].CreatedAt.After(out[b].CreatedAt)
		}
		return out[a].ID > out[b].ID
	})
	return out
}

func (s *Store) FindJobByID(_ context.Context, id uint) (*model.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	j, ok := s.jobs[id]
	if !ok {
		return nil, apperror.NotFound("Job not found")
	}
	return s.withOwner(j), nil
}

func (s *Store) IncrementViews(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	j, ok := s.jobs[id]
	if !ok {
		return apperror.NotFound("Job not found")
	}
	j.ViewsCount++
	return nil
}

func (s *Store) HasApplied(_ context.Context, jobID uint, userID uuid.UUID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	j, ok := s.jobs[jobID]
	if !ok {
		return false, apperror.NotFound("Job not found")
	}
	return j.HasApplicant(userID), nil
}

// AppendApplicant runs admit and appends the admitted applicant while holding
// the write lock, so no other append can interleave between the check and
// the counter increment.
func (s *Store) AppendApplicant(_ context.Context, jobID uint, userID uuid.UUID, admit func(*model.Job) (model.Applicant, error)) (*model.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	j, ok := s.jobs[jobID]
	if !ok {
		return nil, apperror.NotFound("Job not found")
	}

	view := copyJob(j)
	applicant, err := admit(view)
	if err != nil {
		return nil, err
	}
	applicant.JobID = jobID
	applicant.UserID = userID
	if j.HasApplicant(userID) {
		return nil, apperror.InvalidState("You have already applied for this job")
	}
	if applicant.AppliedAt.IsZero() {
		applicant.AppliedAt = time.Now()
	}
	if applicant.Status == "" {
		applicant.Status = model.ApplicantStatusApplied
	}
	j.Applicants = append(j.Applicants, applicant)
	j.ApplicantsCount++
	j.UpdatedAt = time.Now()

	return s.withOwner(j), nil
}

func (s *Store) UpdateJobStatus(_ context.Context, id uint, status model.JobStatus) (*model.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	j, ok := s.jobs[id]
	if !ok {
		return nil, apperror.NotFound("Job not found")
	}
	j.Status = status
	j.UpdatedAt = time.Now()
	return s.withOwner(j), nil
}

// FindApplicants returns the applicants of a job in application order with
// their user records.
func (s *Store) FindApplicants(_ context.Context, jobID uint) ([]model.Applicant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	j, ok := s.jobs[jobID]
	if !ok {
		return nil, apperror.NotFound("Job not found")
	}

	out := make([]model.Applicant, 0, len(j.Applicants))
	for _, a := range j.Applicants {
		if u, ok := s.users[a.UserID]; ok {
			cp := copyUser(u)
			a.User = &cp
		}
		out = append(out, a)
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].AppliedAt.Before(out[b].AppliedAt)
	})
	return out, nil
}

func (s *Store) UpdateApplicantStatus(_ context.Context, jobID uint, userID uuid.UUID, status model.ApplicantStatus, by uuid.UUID, at time.Time) (*model.Applicant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	j, ok := s.jobs[jobID]
	if !ok {
		return nil, apperror.NotFound("Job not found")
	}
	for i := range j.Applicants {
		a := &j.Applicants[i]
		if a.UserID != userID {
			continue
		}
		a.Status = status
		a.StatusUpdatedAt = &at
		a.StatusUpdatedBy = &by
		out := *a
		return &out, nil
	}
	return nil, apperror.NotFound("Applicant not found")
}

// withOwner copies j and attaches the owner record when it is known.
func (s *Store) withOwner(j *model.Job) *model.Job {
	out := copyJob(j)
	if u, ok := s.users[j.PostedByID]; ok {
		cp := copyUser(u)
		out.PostedBy = &cp
	}
	return out
}

func copyJob(j *model.Job) *model.Job {
	out := *j
	out.RequiredSkills = append([]string(nil), j.RequiredSkills...)
	out.OptionalSkills = append([]string(nil), j.OptionalSkills...)
	out.Applicants = append([]model.Applicant(nil), j.Applicants...)
	if j.Deadline != nil {
		d := *j.Deadline
		out.Deadline = &d
	}
	return &out
}

func copyUser(u model.User) model.User {
	u.Skills = append([]string(nil), u.Skills...)
	return u
}
