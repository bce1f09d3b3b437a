package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/BloggingApp/social-service/internal/model"
	"github.com/BloggingApp/social-service/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type notificationRepo struct {
	db *pgxpool.Pool
}

func newNotificationRepo(db *pgxpool.Pool) repository.Notification {
	return &notificationRepo{
		db: db,
	}
}

func (r *notificationRepo) Create(ctx context.Context, n *model.Notification) (*model.Notification, error) {
	if err := r.db.QueryRow(
		ctx,
		"INSERT INTO notifications(receiver_id, message, type) VALUES($1, $2, $3) RETURNING id, read, created_at",
		n.ReceiverID, n.Message, n.Type,
	).Scan(&n.ID, &n.Read, &n.CreatedAt); err != nil {
		return nil, err
	}

	return n, nil
}

func (r *notificationRepo) FindByID(ctx context.Context, id int64) (*model.Notification, error) {
	var n model.Notification
	if err := r.db.QueryRow(
		ctx,
		"SELECT n.id, n.receiver_id, n.message, n.type, n.read, n.created_at FROM notifications n WHERE n.id = $1",
		id,
	).Scan(&n.ID, &n.ReceiverID, &n.Message, &n.Type, &n.Read, &n.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &n, nil
}

func (r *notificationRepo) FindByReceiverID(ctx context.Context, receiverID uuid.UUID) ([]*model.Notification, error) {
	return r.findMany(
		ctx,
		`
		SELECT n.id, n.receiver_id, n.message, n.type, n.read, n.created_at
		FROM notifications n
		WHERE n.receiver_id = $1
		ORDER BY n.created_at DESC
		`,
		receiverID,
	)
}

func (r *notificationRepo) FindUnreadByReceiverID(ctx context.Context, receiverID uuid.UUID) ([]*model.Notification, error) {
	return r.findMany(
		ctx,
		`
		SELECT n.id, n.receiver_id, n.message, n.type, n.read, n.created_at
		FROM notifications n
		WHERE n.receiver_id = $1 AND n.read = false
		ORDER BY n.created_at DESC
		`,
		receiverID,
	)
}

func (r *notificationRepo) findMany(ctx context.Context, query string, args ...interface{}) ([]*model.Notification, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []*model.Notification
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.ReceiverID, &n.Message, &n.Type, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}

		notifications = append(notifications, &n)
	}

	return notifications, rows.Err()
}

func (r *notificationRepo) CountUnreadByReceiverID(ctx context.Context, receiverID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.QueryRow(
		ctx,
		"SELECT COUNT(*) FROM notifications WHERE receiver_id = $1 AND read = false",
		receiverID,
	).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *notificationRepo) MarkAsRead(ctx context.Context, id int64) (*model.Notification, error) {
	var n model.Notification
	if err := r.db.QueryRow(
		ctx,
		"UPDATE notifications SET read = true WHERE id = $1 RETURNING id, receiver_id, message, type, read, created_at",
		id,
	).Scan(&n.ID, &n.ReceiverID, &n.Message, &n.Type, &n.Read, &n.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &n, nil
}

func (r *notificationRepo) DeleteByID(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, "DELETE FROM notifications WHERE id = $1", id)
	return err
}

func (r *notificationRepo) DeleteReadOlderThan(ctx context.Context, age time.Duration) error {
	_, err := r.db.Exec(
		ctx,
		"DELETE FROM notifications WHERE read = true AND created_at < NOW() - MAKE_INTERVAL(secs => $1)",
		age.Seconds(),
	)
	return err
}
