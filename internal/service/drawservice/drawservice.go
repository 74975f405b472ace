package drawservice

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/koquifi/lottoframe/internal/domain"
	"github.com/koquifi/lottoframe/internal/pg"
	"github.com/koquifi/lottoframe/internal/rng"
	"go.uber.org/zap"
)

type Ledger interface {
	ActiveForWeek(ctx context.Context, week int) ([]domain.Ticket, error)
	Settle(ctx context.Context, week int) error
	Purchase(ctx context.Context, ownerFID string, numbers []int32) (*domain.Ticket, error)
	CurrentWeek() int
}

type Repo interface {
	Save(ctx context.Context, record *domain.DrawRecord) error
	FindByWeek(ctx context.Context, week int) (*domain.DrawRecord, error)
	FindRecent(ctx context.Context, limit int) ([]domain.DrawRecord, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

// PoolClient supplies the monetary pool total from the pricing
// collaborator. The value is opaque to the draw.
type PoolClient interface {
	Balance(ctx context.Context) (float64, error)
}

type Notifications interface {
	RecordDrawResult(ctx context.Context, ownerFID string, notice domain.DrawNotice) error
}

var (
	ErrNoTicketsForWeek = errors.New("no tickets for week")
	ErrWeekAlreadyDrawn = errors.New("week already drawn")
)

const defaultHistoryLimit = 10

type Service struct {
	ledger        Ledger
	repo          Repo
	pool          PoolClient
	notifications Notifications
	numbers       rng.Source
	txManager     pg.TXManager
	tiers         *Tiers
	basePool      float64
	ticketPrice   float64

	// Serializes draws so two admin calls can't settle the same week.
	mu sync.Mutex
}

func New(ledger Ledger, repo Repo, pool PoolClient, notifications Notifications, numbers rng.Source, txManager pg.TXManager, tiers *Tiers, basePool, ticketPrice float64) *Service {
	return &Service{
		ledger:        ledger,
		repo:          repo,
		pool:          pool,
		notifications: notifications,
		numbers:       numbers,
		txManager:     txManager,
		tiers:         tiers,
		basePool:      basePool,
		ticketPrice:   ticketPrice,
	}
}

// ExecuteDraw settles a week: draws winning numbers, scores every
// active ticket, and commits the record, the winner rows and the
// ticket settlement atomically. A week settles at most once.
func (s *Service) ExecuteDraw(ctx context.Context, week int) (*domain.DrawRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var record *domain.DrawRecord
	var tickets []domain.Ticket
	var results map[string]domain.TicketResult

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		existing, err := s.repo.FindByWeek(ctx, week)
		if err != nil {
			return err
		}
		if existing != nil {
			zap.L().Info("week already drawn", zap.Int("week", week))
			return ErrWeekAlreadyDrawn
		}

		tickets, err = s.ledger.ActiveForWeek(ctx, week)
		if err != nil {
			return err
		}
		if len(tickets) == 0 {
			zap.L().Info("no tickets for week", zap.Int("week", week))
			return ErrNoTicketsForWeek
		}

		winningNumbers := s.numbers.Draw()

		winners := make(map[int][]domain.Winner)
		results = make(map[string]domain.TicketResult, len(tickets))
		for _, ticket := range tickets {
			matches := CountMatches(ticket.Numbers, winningNumbers)
			results[ticket.ID] = domain.TicketResult{
				TicketID:   ticket.ID,
				MatchCount: matches,
				Prize:      s.tiers.PrizeForMatches(matches),
			}

			tier := s.tiers.Classify(matches)
			if tier == TierNone {
				continue
			}
			winners[tier] = append(winners[tier], domain.Winner{
				TicketID:   ticket.ID,
				OwnerFID:   ticket.OwnerFID,
				MatchCount: matches,
				Prize:      s.tiers.Prize(tier),
			})
		}

		record = &domain.DrawRecord{
			ID:                "DRAW-" + uuid.NewString(),
			Week:              week,
			DrawnAt:           time.Now(),
			WinningNumbers:    winningNumbers,
			TicketsConsidered: len(tickets),
			TotalPrizePool:    s.poolTotal(ctx, len(tickets)),
			Winners:           winners,
		}

		if err := s.repo.Save(ctx, record); err != nil {
			zap.L().Error("can't save draw record: ", zap.Error(err))
			return err
		}
		return s.ledger.Settle(ctx, week)
	})
	if err != nil {
		return nil, err
	}

	s.notifyOwners(ctx, record, tickets, results)
	return record, nil
}

// Simulate seeds ten random tickets when the current week is empty,
// then runs a normal draw. Testing aid for administrators.
func (s *Service) Simulate(ctx context.Context) (*domain.DrawRecord, error) {
	week := s.ledger.CurrentWeek()

	tickets, err := s.ledger.ActiveForWeek(ctx, week)
	if err != nil {
		return nil, err
	}
	if len(tickets) == 0 {
		for i := 0; i < 10; i++ {
			if _, err := s.ledger.Purchase(ctx, fmt.Sprintf("test_user_%d", i), nil); err != nil {
				return nil, fmt.Errorf("can't seed simulation ticket: %w", err)
			}
		}
	}

	return s.ExecuteDraw(ctx, week)
}

func (s *Service) History(ctx context.Context, limit int) ([]domain.DrawRecord, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	records, err := s.repo.FindRecent(ctx, limit)
	if err != nil {
		zap.L().Error("failed to get draw history", zap.Error(err))
		return nil, err
	}
	return records, nil
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

func (s *Service) Reset(ctx context.Context) error {
	return s.repo.DeleteAll(ctx)
}

// poolTotal asks the pricing collaborator for the pool balance. On
// failure the draw still settles, with base pool plus the week's
// ticket revenue as the best-effort total.
func (s *Service) poolTotal(ctx context.Context, ticketCount int) float64 {
	balance, err := s.pool.Balance(ctx)
	if err != nil {
		fallback := s.basePool + float64(ticketCount)*s.ticketPrice
		zap.L().Warn("pool balance unavailable, using fallback",
			zap.Error(err),
			zap.Float64("fallback", fallback),
		)
		return fallback
	}
	return balance
}

// notifyOwners emits the per-owner winnings payload for every owner
// touched by the draw, winners and non-winners alike. Failures are
// logged; the committed draw is never rolled back.
func (s *Service) notifyOwners(ctx context.Context, record *domain.DrawRecord, tickets []domain.Ticket, results map[string]domain.TicketResult) {
	byOwner := make(map[string][]domain.TicketResult)
	order := make([]string, 0)
	for _, ticket := range tickets {
		if _, ok := byOwner[ticket.OwnerFID]; !ok {
			order = append(order, ticket.OwnerFID)
		}
		byOwner[ticket.OwnerFID] = append(byOwner[ticket.OwnerFID], results[ticket.ID])
	}

	for _, ownerFID := range order {
		notice := domain.DrawNotice{
			Week:           record.Week,
			WinningNumbers: record.WinningNumbers,
			UserWinnings:   byOwner[ownerFID],
		}
		if err := s.notifications.RecordDrawResult(ctx, ownerFID, notice); err != nil {
			zap.L().Error("can't record draw notification",
				zap.String("owner_fid", ownerFID),
				zap.Error(err),
			)
		}
	}
}
