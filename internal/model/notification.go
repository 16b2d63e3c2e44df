package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Notification types
const (
	NotificationJob       = "job"
	NotificationEvent     = "event"
	NotificationCommunity = "community"
	NotificationChat      = "chat"
	NotificationDonation  = "donation"
	NotificationAdmin     = "admin"
	NotificationAI        = "ai"
	NotificationSystem    = "system"
)

// Notification is a message delivered to a single user
type Notification struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID         `gorm:"type:uuid;not null;index:idx_notifications_inbox,priority:1" json:"user"`
	SenderID    *uuid.UUID        `gorm:"type:uuid" json:"sender"`
	Type        string            `gorm:"type:text;not null;check:type IN ('job','event','community','chat','donation','admin','ai','system')" json:"type"`
	Title       string            `gorm:"type:text;not null" json:"title"`
	Message     string            `gorm:"type:text" json:"message"`
	RedirectURL string            `gorm:"type:text" json:"redirect_url"`
	Metadata    datatypes.JSONMap `gorm:"type:jsonb" json:"metadata"`
	IsRead      bool              `gorm:"default:false;index:idx_notifications_inbox,priority:2" json:"is_read"`
	ReadAt      *time.Time        `gorm:"type:timestamp" json:"read_at"`
	CreatedAt   time.Time         `gorm:"index:idx_notifications_inbox,priority:3,sort:desc" json:"created_at"`
}
