package notificationservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/koquifi/lottoframe/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	Save(ctx context.Context, n *domain.Notification) error
	FindByOwner(ctx context.Context, ownerFID string, limit int) ([]domain.Notification, error)
	FindPending(ctx context.Context, limit int) ([]domain.Notification, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string) error
	MarkRead(ctx context.Context, ownerFID, id string) (bool, error)
	DeleteAll(ctx context.Context) error
}

const (
	// TicketPurchaseKind confirms a purchase to its owner.
	TicketPurchaseKind string = "ticket_purchase"
	// DrawResultKind carries the per-owner winnings payload of a draw.
	DrawResultKind string = "draw_result"

	// PendingStatus rows wait for the dispatcher; SentStatus and
	// FailedStatus are terminal.
	PendingStatus string = "pending"
	SentStatus    string = "sent"
	FailedStatus  string = "failed"
)

var ErrNotificationNotFound = errors.New("notification not found")

const defaultLimit = 10

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

type purchasePayload struct {
	TicketID    string    `json:"ticketId"`
	Numbers     []int32   `json:"numbers"`
	Week        int       `json:"week"`
	PurchasedAt time.Time `json:"purchasedAt"`
}

func (s *Service) RecordTicketPurchase(ctx context.Context, ownerFID string, ticket *domain.Ticket) error {
	payload := purchasePayload{
		TicketID:    ticket.ID,
		Numbers:     ticket.Numbers,
		Week:        ticket.Week,
		PurchasedAt: ticket.PurchasedAt,
	}
	return s.record(ctx, ownerFID, TicketPurchaseKind, payload)
}

func (s *Service) RecordDrawResult(ctx context.Context, ownerFID string, notice domain.DrawNotice) error {
	return s.record(ctx, ownerFID, DrawResultKind, notice)
}

func (s *Service) record(ctx context.Context, ownerFID, kind string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("can't marshal %s payload: %w", kind, err)
	}

	notification := &domain.Notification{
		ID:        "NTF-" + uuid.NewString(),
		OwnerFID:  ownerFID,
		Kind:      kind,
		Payload:   raw,
		Status:    PendingStatus,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Save(ctx, notification); err != nil {
		zap.L().Error("can't save notification: ", zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) UserNotifications(ctx context.Context, ownerFID string, limit int) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	notifications, err := s.repo.FindByOwner(ctx, ownerFID, limit)
	if err != nil {
		zap.L().Error("failed to get notifications", zap.Error(err))
		return nil, err
	}
	return notifications, nil
}

func (s *Service) MarkRead(ctx context.Context, ownerFID, id string) error {
	ok, err := s.repo.MarkRead(ctx, ownerFID, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotificationNotFound
	}
	return nil
}

func (s *Service) Reset(ctx context.Context) error {
	return s.repo.DeleteAll(ctx)
}
