package drawrepo

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

// Save persists the draw record and its winners as one transaction.
func (r *Repository) Save(ctx context.Context, record *domain.DrawRecord) error {
	drawQuery := `
        INSERT INTO draws (id, week, drawn_at, winning_numbers, tickets_considered, total_prize_pool)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	winnerQuery := `
        INSERT INTO draw_winners (draw_id, tier, ticket_id, owner_fid, match_count, prize)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, drawQuery, record.ID, record.Week, record.DrawnAt, record.WinningNumbers, record.TicketsConsidered, record.TotalPrizePool)
		if err != nil {
			zap.L().Error("can't save draw record", zap.Error(err))
			return err
		}
		for tier, winners := range record.Winners {
			for _, winner := range winners {
				_, err := r.db.Exec(ctx, winnerQuery, record.ID, tier, winner.TicketID, winner.OwnerFID, winner.MatchCount, winner.Prize)
				if err != nil {
					zap.L().Error("can't save draw winner", zap.Error(err))
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) FindByWeek(ctx context.Context, week int) (*domain.DrawRecord, error) {
	query := `
        SELECT id, week, drawn_at, winning_numbers, tickets_considered, total_prize_pool
        FROM draws
        WHERE week = $1
    `
	row := r.db.QueryRow(ctx, query, week)

	var record domain.DrawRecord
	err := row.Scan(&record.ID, &record.Week, &record.DrawnAt, &record.WinningNumbers, &record.TicketsConsidered, &record.TotalPrizePool)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find draw for week", zap.Error(err))
		return nil, err
	}

	if record.Winners, err = r.findWinners(ctx, record.ID); err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *Repository) FindRecent(ctx context.Context, limit int) ([]domain.DrawRecord, error) {
	query := `
        SELECT id, week, drawn_at, winning_numbers, tickets_considered, total_prize_pool
        FROM draws
        ORDER BY drawn_at DESC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't get recent draws", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var records []domain.DrawRecord
	for rows.Next() {
		var record domain.DrawRecord
		err := rows.Scan(&record.ID, &record.Week, &record.DrawnAt, &record.WinningNumbers, &record.TicketsConsidered, &record.TotalPrizePool)
		if err != nil {
			zap.L().Error("can't scan draw row", zap.Error(err))
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range records {
		if records[i].Winners, err = r.findWinners(ctx, records[i].ID); err != nil {
			return nil, err
		}
	}
	return records, nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM draws`

	var count int
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		zap.L().Error("can't count draws", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) DeleteAll(ctx context.Context) error {
	query := `DELETE FROM draws`

	_, err := r.db.Exec(ctx, query)
	if err != nil {
		zap.L().Error("can't delete draws", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) findWinners(ctx context.Context, drawID string) (map[int][]domain.Winner, error) {
	query := `
        SELECT tier, ticket_id, owner_fid, match_count, prize
        FROM draw_winners
        WHERE draw_id = $1
        ORDER BY tier ASC, id ASC
    `
	rows, err := r.db.Query(ctx, query, drawID)
	if err != nil {
		zap.L().Error("can't get draw winners", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	winners := make(map[int][]domain.Winner)
	for rows.Next() {
		var tier int
		var winner domain.Winner
		err := rows.Scan(&tier, &winner.TicketID, &winner.OwnerFID, &winner.MatchCount, &winner.Prize)
		if err != nil {
			zap.L().Error("can't scan draw winner row", zap.Error(err))
			return nil, err
		}
		winners[tier] = append(winners[tier], winner)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return winners, nil
}
