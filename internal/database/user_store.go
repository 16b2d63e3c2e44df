package database

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"campusjobs-backend/internal/apperror"
	"campusjobs-backend/internal/model"
)

func (d *DBinstanceStruct) CreateUser(ctx context.Context, u *model.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Skills == nil {
		u.Skills = pq.StringArray{}
	}
	if err := d.WithContext(ctx).Create(u).Error; err != nil {
		if isUniqueViolation(err) {
			return apperror.Wrap(apperror.KindInvalidState, "Username already taken", err)
		}
		return errors.Wrap(err, "insert user")
	}
	return nil
}

func (d *DBinstanceStruct) FindUserByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var u model.User
	if err := d.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, notFound(err, "User not found", "select user")
	}
	return &u, nil
}

func (d *DBinstanceStruct) FindUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	if err := d.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, notFound(err, "User not found", "select user")
	}
	return &u, nil
}

func (d *DBinstanceStruct) UpdateUserSkills(ctx context.Context, id uuid.UUID, skills []string) (*model.User, error) {
	res := d.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"skills": pq.StringArray(skills), "updated_at": time.Now()})
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "update skills")
	}
	if res.RowsAffected == 0 {
		return nil, apperror.NotFound("User not found")
	}
	return d.FindUserByID(ctx, id)
}
