package database

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"campusjobs-backend/internal/apperror"
	"campusjobs-backend/internal/model"
)

func (d *DBinstanceStruct) CreateNotification(ctx context.Context, n *model.Notification) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if err := d.WithContext(ctx).Create(n).Error; err != nil {
		return errors.Wrap(err, "insert notification")
	}
	return nil
}

func (d *DBinstanceStruct) FindNotifications(ctx context.Context, userID uuid.UUID, offset, limit int) ([]model.Notification, error) {
	items := []model.Notification{}
	if err := d.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, errors.Wrap(err, "select notifications")
	}
	return items, nil
}

func (d *DBinstanceStruct) CountNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool) (int64, error) {
	tx := d.WithContext(ctx).Model(&model.Notification{}).Where("user_id = ?", userID)
	if unreadOnly {
		tx = tx.Where("is_read = ?", false)
	}

	var n int64
	if err := tx.Count(&n).Error; err != nil {
		return 0, errors.Wrap(err, "count notifications")
	}
	return n, nil
}

func (d *DBinstanceStruct) MarkNotificationRead(ctx context.Context, userID, id uuid.UUID, at time.Time) (*model.Notification, error) {
	res := d.WithContext(ctx).Model(&model.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{"is_read": true, "read_at": at})
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "mark notification read")
	}
	if res.RowsAffected == 0 {
		return nil, apperror.NotFound("Notification not found")
	}

	var n model.Notification
	if err := d.WithContext(ctx).Where("id = ?", id).First(&n).Error; err != nil {
		return nil, notFound(err, "Notification not found", "select notification")
	}
	return &n, nil
}

func (d *DBinstanceStruct) MarkAllNotificationsRead(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error) {
	res := d.WithContext(ctx).Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": at})
	if res.Error != nil {
		return 0, errors.Wrap(res.Error, "mark notifications read")
	}
	return res.RowsAffected, nil
}

func (d *DBinstanceStruct) DeleteNotification(ctx context.Context, userID, id uuid.UUID) error {
	res := d.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.Notification{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete notification")
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound("Notification not found")
	}
	return nil
}
