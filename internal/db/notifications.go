package db

import (
	"github.com/rs/zerolog/log"

	"github.com/Luxview-Media/luxview/internal/model"
)

func CreateNotification(n model.Notification) (model.Notification, error) {
	var out model.Notification
	q := `
	INSERT INTO notifications (category, title, message, is_read, created_at)
	VALUES ($1, $2, $3, false, now())
	RETURNING id, category, title, message, is_read, created_at;`
	if err := DB.Get(&out, q, n.Category, n.Title, n.Message); err != nil {
		log.Error().Err(err).Str("category", n.Category).Msg("CreateNotification failed")
		return model.Notification{}, err
	}
	return out, nil
}

func ListNotifications(unreadOnly bool) ([]model.Notification, error) {
	var out []model.Notification
	q := `
	SELECT id, category, title, message, is_read, created_at
	  FROM notifications
	 WHERE ($1 = false OR is_read = false)
	 ORDER BY created_at DESC
	 LIMIT 200;`
	if err := DB.Select(&out, q, unreadOnly); err != nil {
		log.Error().Err(err).Msg("ListNotifications failed")
		return nil, err
	}
	return out, nil
}

func MarkNotificationRead(id int) error {
	_, err := DB.Exec(`UPDATE notifications SET is_read = true WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("notification_id", id).Msg("MarkNotificationRead failed")
	}
	return err
}

// RecentConflictNotificationExists reports whether a matching conflict
// notification was raised within the last 24 hours. The health check uses it
// to avoid re-alerting on the same pair every sweep.
func RecentConflictNotificationExists(title string) (bool, error) {
	var count int
	q := `
	SELECT COUNT(*) FROM notifications
	 WHERE category = $1
	   AND title = $2
	   AND created_at > now() - interval '24 hours';`
	if err := DB.Get(&count, q, model.NotificationScheduleConflict, title); err != nil {
		log.Error().Err(err).Msg("RecentConflictNotificationExists failed")
		return false, err
	}
	return count > 0, nil
}
