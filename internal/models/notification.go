package models

import "time"

// NotificationAudienceAll is the sentinel user ID addressing every user.
const NotificationAudienceAll = "all"

// NotificationType severities shown in the notification center.
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationAlert   NotificationType = "alert"
	NotificationSuccess NotificationType = "success"
)

// Notification is addressed to one user or to the "all" audience.
type Notification struct {
	ID      string           `db:"id" json:"id"`
	UserID  string           `db:"user_id" json:"userId"`
	Title   string           `db:"title" json:"title"`
	Message string           `db:"message" json:"message"`
	Date    time.Time        `db:"date" json:"date"`
	Read    bool             `db:"read" json:"read"`
	Type    NotificationType `db:"type" json:"type"`
}
