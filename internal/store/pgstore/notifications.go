package pgstore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/isfdyt26/portal-api/internal/models"
)

const notificationColumns = `id, user_id, title, message, date, read, type`

func (p *PG) NotificationsFor(ctx context.Context, userID string) ([]models.Notification, error) {
	query := fmt.Sprintf(`SELECT %s FROM notifications WHERE user_id = $1 OR user_id = $2 ORDER BY date DESC`, notificationColumns)

	var notifications []models.Notification
	if err := p.db.SelectContext(ctx, &notifications, query, userID, models.NotificationAudienceAll); err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}

func (p *PG) UnreadNotificationCount(ctx context.Context, userID string) (int, error) {
	const query = `SELECT COUNT(*) FROM notifications WHERE (user_id = $1 OR user_id = $2) AND read = FALSE`

	var count int
	if err := p.db.GetContext(ctx, &count, query, userID, models.NotificationAudienceAll); err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return count, nil
}

func (p *PG) AddNotification(ctx context.Context, n models.Notification) (*models.Notification, error) {
	n.ID = uuid.NewString()
	n.Date = time.Now().UTC()
	n.Read = false

	const query = `INSERT INTO notifications (id, user_id, title, message, date, read, type) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := p.db.ExecContext(ctx, query, n.ID, n.UserID, n.Title, n.Message, n.Date, n.Read, string(n.Type)); err != nil {
		return nil, fmt.Errorf("insert notification: %w", err)
	}
	return &n, nil
}

func (p *PG) MarkNotificationRead(ctx context.Context, id string) error {
	if _, err := p.db.ExecContext(ctx, `UPDATE notifications SET read = TRUE WHERE id = $1`, id); err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}

func (p *PG) MarkAllNotificationsRead(ctx context.Context, userID string) error {
	const query = `UPDATE notifications SET read = TRUE WHERE user_id = $1 OR user_id = $2`
	if _, err := p.db.ExecContext(ctx, query, userID, models.NotificationAudienceAll); err != nil {
		return fmt.Errorf("mark all notifications read: %w", err)
	}
	return nil
}

func (p *PG) DeleteNotification(ctx context.Context, id string) error {
	if _, err := p.db.ExecContext(ctx, `DELETE FROM notifications WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	return nil
}
