package memstore

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusjobs-backend/internal/apperror"
	"campusjobs-backend/internal/model"
	"campusjobs-backend/internal/query"
)

func newJob(owner uuid.UUID, status model.JobStatus, created time.Time) *model.Job {
	return &model.Job{
		Title:          "Backend Intern",
		Company:        "TechNova",
		Location:       "Bangkok",
		Description:    "Work on the backend of our platform.",
		RequiredSkills: []string{"go"},
		PostedByID:     owner,
		PostedByRole:   model.RoleAlumni,
		Status:         status,
		CreatedAt:      created,
	}
}

func TestCreateUser_duplicateUsername(t *testing.T) {
	s := New()
	ctx := context.Background()

	u := &model.User{Username: "alice", Role: model.RoleStudent}
	require.NoError(t, s.CreateUser(ctx, u))
	assert.NotEqual(t, uuid.Nil, u.ID)

	err := s.CreateUser(ctx, &model.User{Username: "alice", Role: model.RoleAlumni})
	assert.True(t, apperror.Is(err, apperror.KindInvalidState))

	found, err := s.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)

	_, err = s.FindUserByID(ctx, uuid.New())
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestFindJobs_orderAndPaging(t *testing.T) {
	s := New()
	ctx := context.Background()
	owner := uuid.New()
	base := time.Now()

	for i := 0; i < 5; i++ {
		require.NoError(t, s.CreateJob(ctx, newJob(owner, model.JobStatusOpen, base.Add(time.Duration(i)*time.Minute))))
	}
	require.NoError(t, s.CreateJob(ctx, newJob(owner, model.JobStatusPending, base.Add(time.Hour))))

	spec, err := query.BuildFilter(query.Criteria{Role: model.RoleStudent, Limit: 2, Page: 1})
	require.NoError(t, err)

	page, err := s.FindJobs(ctx, spec)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, uint(5), page[0].ID)
	assert.Equal(t, uint(4), page[1].ID)

	total, err := s.CountJobs(ctx, spec)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)

	spec.Page = 3
	page, err = s.FindJobs(ctx, spec)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, uint(1), page[0].ID)

	spec.Page = 10
	page, err = s.FindJobs(ctx, spec)
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestFindJobByID_copies(t *testing.T) {
	s := New()
	ctx := context.Background()
	owner := &model.User{Username: "owner", Role: model.RoleAlumni, Name: "Owner"}
	require.NoError(t, s.CreateUser(ctx, owner))

	job := newJob(owner.ID, model.JobStatusOpen, time.Now())
	require.NoError(t, s.CreateJob(ctx, job))

	got, err := s.FindJobByID(ctx, job.ID)
	require.NoError(t, err)
	require.NotNil(t, got.PostedBy)
	assert.Equal(t, "Owner", got.PostedBy.Name)
	assert.True(t, got.Owner().Expanded())

	got.RequiredSkills[0] = "changed"
	again, err := s.FindJobByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, "go", again.RequiredSkills[0])

	_, err = s.FindJobByID(ctx, 999)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestIncrementViews(t *testing.T) {
	s := New()
	ctx := context.Background()
	job := newJob(uuid.New(), model.JobStatusOpen, time.Now())
	require.NoError(t, s.CreateJob(ctx, job))

	for i := 0; i < 3; i++ {
		require.NoError(t, s.IncrementViews(ctx, job.ID))
	}
	got, err := s.FindJobByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ViewsCount)

	assert.True(t, apperror.Is(s.IncrementViews(ctx, 42), apperror.KindNotFound))
}

func TestAppendApplicant_concurrent(t *testing.T) {
	s := New()
	ctx := context.Background()
	job := newJob(uuid.New(), model.JobStatusOpen, time.Now())
	require.NoError(t, s.CreateJob(ctx, job))

	const n = 50
	user := uuid.New()
	admit := func(j *model.Job) (model.Applicant, error) {
		if j.HasApplicant(user) {
			return model.Applicant{}, apperror.InvalidState("You have already applied for this job")
		}
		return model.Applicant{UserID: user}, nil
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.AppendApplicant(ctx, job.ID, user, admit); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	got, err := s.FindJobByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ApplicantsCount)
}

func TestAppendApplicant_distinctUsers(t *testing.T) {
	s := New()
	ctx := context.Background()
	job := newJob(uuid.New(), model.JobStatusOpen, time.Now())
	require.NoError(t, s.CreateJob(ctx, job))

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := uuid.New()
			_, err := s.AppendApplicant(ctx, job.ID, id, func(*model.Job) (model.Applicant, error) {
				return model.Applicant{}, nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := s.FindJobByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(n), got.ApplicantsCount)

	applicants, err := s.FindApplicants(ctx, job.ID)
	require.NoError(t, err)
	assert.Len(t, applicants, n)
	for _, a := range applicants {
		assert.Equal(t, model.ApplicantStatusApplied, a.Status)
		assert.False(t, a.AppliedAt.IsZero())
	}
}

func TestAppendApplicant_admitRejects(t *testing.T) {
	s := New()
	ctx := context.Background()
	job := newJob(uuid.New(), model.JobStatusClosed, time.Now())
	require.NoError(t, s.CreateJob(ctx, job))

	_, err := s.AppendApplicant(ctx, job.ID, uuid.New(), func(*model.Job) (model.Applicant, error) {
		return model.Applicant{}, apperror.InvalidState("Job is not open for applications")
	})
	assert.True(t, apperror.Is(err, apperror.KindInvalidState))

	got, err := s.FindJobByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Zero(t, got.ApplicantsCount)
}

func TestUpdateApplicantStatus(t *testing.T) {
	s := New()
	ctx := context.Background()
	job := newJob(uuid.New(), model.JobStatusOpen, time.Now())
	require.NoError(t, s.CreateJob(ctx, job))

	student := uuid.New()
	_, err := s.AppendApplicant(ctx, job.ID, student, func(*model.Job) (model.Applicant, error) {
		return model.Applicant{}, nil
	})
	require.NoError(t, err)

	by := uuid.New()
	at := time.Now()
	a, err := s.UpdateApplicantStatus(ctx, job.ID, student, model.ApplicantStatusHired, by, at)
	require.NoError(t, err)
	assert.Equal(t, model.ApplicantStatusHired, a.Status)
	assert.Equal(t, by, *a.StatusUpdatedBy)

	_, err = s.UpdateApplicantStatus(ctx, job.ID, uuid.New(), model.ApplicantStatusHired, by, at)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestNotifications_scopedToRecipient(t *testing.T) {
	s := New()
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()
	base := time.Now()

	for i := 0; i < 3; i++ {
		require.NoError(t, s.CreateNotification(ctx, &model.Notification{
			UserID: alice, Type: model.NotificationJob, Title: "hi", CreatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}
	bobs := &model.Notification{UserID: bob, Type: model.NotificationJob, Title: "bob"}
	require.NoError(t, s.CreateNotification(ctx, bobs))

	items, err := s.FindNotifications(ctx, alice, 0, 2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.True(t, items[0].CreatedAt.After(items[1].CreatedAt))

	_, err = s.MarkNotificationRead(ctx, alice, bobs.ID, time.Now())
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
	assert.True(t, apperror.Is(s.DeleteNotification(ctx, alice, bobs.ID), apperror.KindNotFound))

	changed, err := s.MarkAllNotificationsRead(ctx, alice, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(3), changed)

	unread, err := s.CountNotifications(ctx, bob, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)
}

func TestHealth(t *testing.T) {
	s := New()
	require.NoError(t, s.Ping(context.Background()))
	require.NoError(t, s.CreateUser(context.Background(), &model.User{Username: "someone", Role: model.RoleStudent}))

	h := s.Health()
	assert.Equal(t, "up", h["status"])
	assert.Equal(t, "1", h["users"])
	assert.Equal(t, "0", h["jobs"])
}
