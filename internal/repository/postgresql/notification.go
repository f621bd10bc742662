package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/filmsfather/woodiefilmcampus-payroll/internal/domain/notification"
	"github.com/filmsfather/woodiefilmcampus-payroll/internal/pkg/database"
)

type notificationRepository struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) notification.Repository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) CreateBatch(ctx context.Context, notifications []*notification.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO notifications (id, recipient_id, sender_id, type, title, message, data)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	for _, n := range notifications {
		var dataJSON []byte
		if n.Data != nil {
			var err error
			dataJSON, err = json.Marshal(n.Data)
			if err != nil {
				return fmt.Errorf("failed to marshal notification data: %w", err)
			}
		}

		if _, err := q.Exec(ctx, query,
			n.ID, n.RecipientID, n.SenderID, n.Type, n.Title, n.Message, dataJSON,
		); err != nil {
			return fmt.Errorf("failed to insert notification: %w", err)
		}
	}

	return nil
}

func (r *notificationRepository) GetByRecipientID(ctx context.Context, recipientID string, page, pageSize int, unreadOnly bool) ([]*notification.Notification, int, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := `FROM notifications WHERE recipient_id = $1`
	args := []interface{}{recipientID}
	if unreadOnly {
		baseQuery += ` AND is_read = false`
	}

	var total int
	if err := q.QueryRow(ctx, "SELECT COUNT(*) "+baseQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	if pageSize <= 0 {
		pageSize = 20
	}
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * pageSize

	selectQuery := fmt.Sprintf(`
		SELECT id, recipient_id, sender_id, type, title, message, data, is_read, read_at, created_at
		%s
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, baseQuery)

	rows, err := q.Query(ctx, selectQuery, recipientID, pageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*notification.Notification
	for rows.Next() {
		var n notification.Notification
		var dataBytes []byte
		if err := rows.Scan(
			&n.ID, &n.RecipientID, &n.SenderID, &n.Type, &n.Title, &n.Message,
			&dataBytes, &n.IsRead, &n.ReadAt, &n.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan notification: %w", err)
		}
		if len(dataBytes) > 0 {
			_ = json.Unmarshal(dataBytes, &n.Data)
		}
		notifications = append(notifications, &n)
	}

	return notifications, total, nil
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, ids []string, recipientID string) error {
	if len(ids) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE notifications
		SET is_read = true, read_at = NOW()
		WHERE id = ANY($1) AND recipient_id = $2 AND is_read = false
	`

	if _, err := q.Exec(ctx, query, ids, recipientID); err != nil {
		return fmt.Errorf("failed to mark notifications as read: %w", err)
	}

	return nil
}
