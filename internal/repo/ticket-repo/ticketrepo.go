package ticketrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/koquifi/lottoframe/internal/domain"
	"github.com/koquifi/lottoframe/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) Save(ctx context.Context, ticket *domain.Ticket) error {
	query := `
        INSERT INTO tickets (id, owner_fid, numbers, week, status, purchased_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, ticket.ID, ticket.OwnerFID, ticket.Numbers, ticket.Week, ticket.Status, ticket.PurchasedAt)
		if err != nil {
			zap.L().Error("can't save ticket", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) FindByOwner(ctx context.Context, ownerFID string) ([]domain.Ticket, error) {
	query := `
        SELECT id, owner_fid, numbers, week, status, purchased_at
        FROM tickets
        WHERE owner_fid = $1
        ORDER BY purchased_at ASC
    `
	rows, err := r.db.Query(ctx, query, ownerFID)
	if err != nil {
		zap.L().Error("can't get tickets by owner", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return scanTickets(rows)
}

func (r *Repository) FindActiveByWeek(ctx context.Context, week int) ([]domain.Ticket, error) {
	query := `
        SELECT id, owner_fid, numbers, week, status, purchased_at
        FROM tickets
        WHERE week = $1 AND status = 'active'
        ORDER BY purchased_at ASC
    `
	rows, err := r.db.Query(ctx, query, week)
	if err != nil {
		zap.L().Error("can't get active tickets for week", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return scanTickets(rows)
}

// SettleWeek flips every active ticket of the week to settled. Runs on
// the caller's transaction when one is in flight.
func (r *Repository) SettleWeek(ctx context.Context, week int) error {
	query := `
        UPDATE tickets
        SET status = 'settled'
        WHERE week = $1 AND status = 'active'
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, week)
		if err != nil {
			zap.L().Error("can't settle tickets for week", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) CountAll(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM tickets`

	var count int
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		zap.L().Error("can't count tickets", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) CountOwners(ctx context.Context) (int, error) {
	query := `SELECT COUNT(DISTINCT owner_fid) FROM tickets`

	var count int
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		zap.L().Error("can't count ticket owners", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) DeleteAll(ctx context.Context) error {
	query := `DELETE FROM tickets`

	_, err := r.db.Exec(ctx, query)
	if err != nil {
		zap.L().Error("can't delete tickets", zap.Error(err))
		return err
	}
	return nil
}

func scanTickets(rows pgx.Rows) ([]domain.Ticket, error) {
	var tickets []domain.Ticket
	for rows.Next() {
		var ticket domain.Ticket
		err := rows.Scan(&ticket.ID, &ticket.OwnerFID, &ticket.Numbers, &ticket.Week, &ticket.Status, &ticket.PurchasedAt)
		if err != nil {
			zap.L().Error("can't scan ticket row", zap.Error(err))
			return nil, err
		}
		tickets = append(tickets, ticket)
	}
	if err := rows.Err(); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return tickets, nil
}
