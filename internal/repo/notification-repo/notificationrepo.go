package notificationrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/koquifi/lottoframe/internal/domain"
	"github.com/koquifi/lottoframe/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Save(ctx context.Context, n *domain.Notification) error {
	query := `
        INSERT INTO notifications (id, owner_fid, kind, payload, status, read, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	_, err := r.db.Exec(ctx, query, n.ID, n.OwnerFID, n.Kind, n.Payload, n.Status, n.Read, n.CreatedAt)
	if err != nil {
		zap.L().Error("can't save notification", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByOwner(ctx context.Context, ownerFID string, limit int) ([]domain.Notification, error) {
	query := `
        SELECT id, owner_fid, kind, payload, status, read, created_at, sent_at
        FROM notifications
        WHERE owner_fid = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, ownerFID, limit)
	if err != nil {
		zap.L().Error("can't get notifications by owner", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return scanNotifications(rows)
}

func (r *Repository) FindPending(ctx context.Context, limit int) ([]domain.Notification, error) {
	query := `
        SELECT id, owner_fid, kind, payload, status, read, created_at, sent_at
        FROM notifications
        WHERE status = 'pending'
        ORDER BY created_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't get pending notifications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return scanNotifications(rows)
}

func (r *Repository) MarkSent(ctx context.Context, id string) error {
	query := `
        UPDATE notifications
        SET status = 'sent', sent_at = $2
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, id, time.Now())
	if err != nil {
		zap.L().Error("can't mark notification sent", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) MarkFailed(ctx context.Context, id string) error {
	query := `
        UPDATE notifications
        SET status = 'failed'
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't mark notification failed", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) MarkRead(ctx context.Context, ownerFID, id string) (bool, error) {
	query := `
        UPDATE notifications
        SET read = TRUE
        WHERE id = $1 AND owner_fid = $2
    `
	tag, err := r.db.Exec(ctx, query, id, ownerFID)
	if err != nil {
		zap.L().Error("can't mark notification read", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) DeleteAll(ctx context.Context) error {
	query := `DELETE FROM notifications`

	_, err := r.db.Exec(ctx, query)
	if err != nil {
		zap.L().Error("can't delete notifications", zap.Error(err))
		return err
	}
	return nil
}

func scanNotifications(rows pgx.Rows) ([]domain.Notification, error) {
	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		err := rows.Scan(&n.ID, &n.OwnerFID, &n.Kind, &n.Payload, &n.Status, &n.Read, &n.CreatedAt, &n.SentAt)
		if err != nil {
			zap.L().Error("can't scan notification row", zap.Error(err))
			return nil, err
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return notifications, nil
}
