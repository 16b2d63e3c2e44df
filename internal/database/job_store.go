package database

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"campusjobs-backend/internal/apperror"
	"campusjobs-backend/internal/model"
	"campusjobs-backend/internal/query"
)

var newestFirst = []clause.OrderByColumn{
	{Column: clause.Column{Table: "jobs", Name: "created_at"}, Desc: true},
	{Column: clause.Column{Table: "jobs", Name: "id"}, Desc: true},
}

func (d *DBinstanceStruct) CreateJob(ctx context.Context, job *model.Job) error {
	if err := d.WithContext(ctx).Omit("PostedBy", "Applicants").Create(job).Error; err != nil {
		return errors.Wrap(err, "insert job")
	}
	return nil
}

func (d *DBinstanceStruct) FindJobs(ctx context.Context, spec query.FilterSpec) ([]model.Job, error) {
	tx, err := applyFilter(d.WithContext(ctx).Model(&model.Job{}), spec)
	if err != nil {
		return nil, err
	}

	for _, o := range newestFirst {
		tx = tx.Order(o)
	}

	jobs := []model.Job{}
	if err := tx.Preload("PostedBy").
		Offset(spec.Offset()).
		Limit(spec.Limit).
		Find(&jobs).Error; err != nil {
		return nil, errors.Wrap(err, "select jobs")
	}
	return jobs, nil
}

func (d *DBinstanceStruct) CountJobs(ctx context.Context, spec query.FilterSpec) (int64, error) {
	tx, err := applyFilter(d.WithContext(ctx).Model(&model.Job{}), spec)
	if err != nil {
		return 0, err
	}

	var n int64
	if err := tx.Count(&n).Error; err != nil {
		return 0, errors.Wrap(err, "count jobs")
	}
	return n, nil
}

func (d *DBinstanceStruct) FindJobByID(ctx context.Context, id uint) (*model.Job, error) {
	var job model.Job
	if err := d.WithContext(ctx).Preload("PostedBy").First(&job, id).Error; err != nil {
		return nil, notFound(err, "Job not found", "select job")
	}
	return &job, nil
}

// IncrementViews bumps views_count in a single UPDATE.
func (d *DBinstanceStruct) IncrementViews(ctx context.Context, id uint) error {
	res := d.WithContext(ctx).Model(&model.Job{}).
		Where("id = ?", id).
		UpdateColumn("views_count", gorm.Expr("views_count + 1"))
	if res.Error != nil {
		return errors.Wrap(res.Error, "increment views")
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound("Job not found")
	}
	return nil
}

func (d *DBinstanceStruct) HasApplied(ctx context.Context, jobID uint, userID uuid.UUID) (bool, error) {
	var n int64
	if err := d.WithContext(ctx).Model(&model.Applicant{}).
		Where("job_id = ? AND user_id = ?", jobID, userID).
		Count(&n).Error; err != nil {
		return false, errors.Wrap(err, "count applicants")
	}
	return n > 0, nil
}

// AppendApplicant locks the job row, runs admit, inserts the applicant and
// increments applicants_count in one transaction. The (job_id, user_id)
// primary key rejects a duplicate that slipped past admit.
func (d *DBinstanceStruct) AppendApplicant(ctx context.Context, jobID uint, userID uuid.UUID, admit func(*model.Job) (model.Applicant, error)) (*model.Job, error) {
	var out model.Job
	err := d.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var job model.Job
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&job, jobID).Error; err != nil {
			return notFound(err, "Job not found", "lock job")
		}
		if err := tx.Where("job_id = ? AND user_id = ?", jobID, userID).Find(&job.Applicants).Error; err != nil {
			return errors.Wrap(err, "select applicant")
		}

		applicant, err := admit(&job)
		if err != nil {
			return err
		}
		applicant.JobID = jobID
		applicant.UserID = userID
		applicant.User = nil

		if err := tx.Create(&applicant).Error; err != nil {
			if isUniqueViolation(err) {
				return apperror.Wrap(apperror.KindInvalidState, "You have already applied for this job", err)
			}
			return errors.Wrap(err, "insert applicant")
		}

		if err := tx.Model(&model.Job{}).Where("id = ?", jobID).
			UpdateColumns(map[string]interface{}{
				"applicants_count": gorm.Expr("applicants_count + 1"),
				"updated_at":       time.Now(),
			}).Error; err != nil {
			return errors.Wrap(err, "increment applicants")
		}

		return tx.Preload("PostedBy").First(&out, jobID).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (d *DBinstanceStruct) UpdateJobStatus(ctx context.Context, id uint, status model.JobStatus) (*model.Job, error) {
	res := d.WithContext(ctx).Model(&model.Job{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()})
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "update job status")
	}
	if res.RowsAffected == 0 {
		return nil, apperror.NotFound("Job not found")
	}
	return d.FindJobByID(ctx, id)
}

// FindApplicants returns the applicants of a job in application order.
func (d *DBinstanceStruct) FindApplicants(ctx context.Context, jobID uint) ([]model.Applicant, error) {
	applicants := []model.Applicant{}
	if err := d.WithContext(ctx).
		Preload("User").
		Where("job_id = ?", jobID).
		Order("applied_at ASC").
		Find(&applicants).Error; err != nil {
		return nil, errors.Wrap(err, "select applicants")
	}
	return applicants, nil
}

func (d *DBinstanceStruct) UpdateApplicantStatus(ctx context.Context, jobID uint, userID uuid.UUID, status model.ApplicantStatus, by uuid.UUID, at time.Time) (*model.Applicant, error) {
	res := d.WithContext(ctx).Model(&model.Applicant{}).
		Where("job_id = ? AND user_id = ?", jobID, userID).
		Updates(map[string]interface{}{
			"status":            status,
			"status_updated_at": at,
			"status_updated_by": by,
		})
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "update applicant status")
	}
	if res.RowsAffected == 0 {
		return nil, apperror.NotFound("Applicant not found")
	}

	var a model.Applicant
	if err := d.WithContext(ctx).Where("job_id = ? AND user_id = ?", jobID, userID).First(&a).Error; err != nil {
		return nil, notFound(err, "Applicant not found", "select applicant")
	}
	return &a, nil
}
