package ticketservice

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/koquifi/lottoframe/internal/domain"
	"github.com/koquifi/lottoframe/internal/rng"
	"github.com/koquifi/lottoframe/pkg/validate"
	"go.uber.org/zap"
)

type Repo interface {
	Save(ctx context.Context, ticket *domain.Ticket) error
	FindByOwner(ctx context.Context, ownerFID string) ([]domain.Ticket, error)
	FindActiveByWeek(ctx context.Context, week int) ([]domain.Ticket, error)
	SettleWeek(ctx context.Context, week int) error
	CountAll(ctx context.Context) (int, error)
	CountOwners(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

// Notifications records the purchase confirmation for the owner. A
// failure here never fails the purchase.
type Notifications interface {
	RecordTicketPurchase(ctx context.Context, ownerFID string, ticket *domain.Ticket) error
}

const (
	// ActiveTicketStatus marks a ticket waiting for its week's draw.
	ActiveTicketStatus string = "active"
	// SettledTicketStatus marks a ticket consumed by a committed draw.
	SettledTicketStatus string = "settled"
)

var ErrInvalidNumbers = errors.New("invalid ticket numbers")

type Service struct {
	repo          Repo
	numbers       rng.Source
	notifications Notifications
	price         float64
}

func New(repo Repo, numbers rng.Source, notifications Notifications, price float64) *Service {
	return &Service{
		repo:          repo,
		numbers:       numbers,
		notifications: notifications,
		price:         price,
	}
}

// Purchase creates a ticket for the owner in the current week's bucket.
// Nil numbers means a random combination; explicit numbers must be five
// unique integers in [1,50].
func (s *Service) Purchase(ctx context.Context, ownerFID string, numbers []int32) (*domain.Ticket, error) {
	if numbers == nil {
		numbers = s.numbers.Draw()
	} else {
		if !validate.Numbers(numbers) {
			zap.L().Info("rejected ticket numbers", zap.String("owner_fid", ownerFID))
			return nil, ErrInvalidNumbers
		}
		numbers = append([]int32(nil), numbers...)
		sort.Slice(numbers, func(i, j int) bool { return numbers[i] < numbers[j] })
	}

	now := time.Now()
	ticket := &domain.Ticket{
		ID:          "TKT-" + uuid.NewString(),
		OwnerFID:    ownerFID,
		Numbers:     numbers,
		Week:        WeekOf(now),
		Status:      ActiveTicketStatus,
		PurchasedAt: now,
	}

	if err := s.repo.Save(ctx, ticket); err != nil {
		zap.L().Error("can't save ticket: ", zap.Error(err))
		return nil, err
	}

	if err := s.notifications.RecordTicketPurchase(ctx, ownerFID, ticket); err != nil {
		zap.L().Error("can't record purchase notification", zap.Error(err))
	}

	return ticket, nil
}

func (s *Service) GetTickets(ctx context.Context, ownerFID string) ([]domain.Ticket, error) {
	tickets, err := s.repo.FindByOwner(ctx, ownerFID)
	if err != nil {
		zap.L().Error("failed to get tickets", zap.Error(err))
		return nil, err
	}
	return tickets, nil
}

func (s *Service) ActiveForWeek(ctx context.Context, week int) ([]domain.Ticket, error) {
	tickets, err := s.repo.FindActiveByWeek(ctx, week)
	if err != nil {
		zap.L().Error("failed to get active tickets for week", zap.Error(err))
		return nil, err
	}
	return tickets, nil
}

func (s *Service) Settle(ctx context.Context, week int) error {
	return s.repo.SettleWeek(ctx, week)
}

func (s *Service) Stats(ctx context.Context) (*domain.Stats, error) {
	total, err := s.repo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	owners, err := s.repo.CountOwners(ctx)
	if err != nil {
		return nil, err
	}
	week := s.CurrentWeek()
	weekTickets, err := s.repo.FindActiveByWeek(ctx, week)
	if err != nil {
		return nil, err
	}

	return &domain.Stats{
		TotalTickets:       total,
		CurrentWeekTickets: len(weekTickets),
		TotalOwners:        owners,
		CurrentWeek:        week,
		TotalRevenue:       float64(total) * s.price,
	}, nil
}

func (s *Service) Reset(ctx context.Context) error {
	return s.repo.DeleteAll(ctx)
}

func (s *Service) CurrentWeek() int {
	return WeekOf(time.Now())
}

// WeekOf buckets a timestamp into a draw week: completed days since
// January 1st divided by seven, one-indexed.
func WeekOf(t time.Time) int {
	return (t.YearDay()-1)/7 + 1
}
