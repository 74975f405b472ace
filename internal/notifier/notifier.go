// Package notifier delivers stored notifications to the external
// notification hub in the background.
package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/koquifi/lottoframe/internal/config"
	"github.com/koquifi/lottoframe/internal/domain"
	"github.com/koquifi/lottoframe/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var processingNotifications sync.Map

//go:generate mockgen -source=notifier.go -destination=mock_notifier.go -package=notifier
type Repo interface {
	FindPending(ctx context.Context, limit int) ([]domain.Notification, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string) error
}

type hubMessage struct {
	FID     string          `json:"fid"`
	Kind    string          `json:"kind"`
	Payload json.RawMessage `json:"payload"`
}

type Service struct {
	url            string
	repo           Repo
	client         clients.HTTPClientI
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(cfg *config.Config, repo Repo, client clients.HTTPClientI) *Service {
	return &Service{
		url:            cfg.NotifyAddress,
		repo:           repo,
		client:         client,
		limit:          1000,
		workerPool:     NewWorkerPool(10),
		updateInterval: time.Second * 5,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Notifier service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping notifier")
			return
		case <-ticker.C:
			s.processPending(ctx)
		}
	}
}

func (s *Service) processPending(ctx context.Context) {
	notifications, err := s.repo.FindPending(ctx, int(atomic.LoadUint32(&s.limit)))
	if err != nil {
		zap.L().Error("Failed to fetch pending notifications", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, notification := range notifications {
		notification := notification

		if _, loaded := processingNotifications.LoadOrStore(notification.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingNotifications.Delete(notification.ID)
				return s.deliver(ctx, notification)
			})
			if err != nil {
				processingNotifications.Delete(notification.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error delivering notifications", zap.Error(err))
	}
}

func (s *Service) deliver(ctx context.Context, notification domain.Notification) error {
	body, err := json.Marshal(hubMessage{
		FID:     notification.OwnerFID,
		Kind:    notification.Kind,
		Payload: notification.Payload,
	})
	if err != nil {
		return fmt.Errorf("failed to encode notification %s: %w", notification.ID, err)
	}

	url := s.url + "/api/notifications"
	var statusCode int
	var respHeaders http.Header

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			statusCode, _, respHeaders, err = s.client.Post(url, nil, body)
			if err != nil {
				if attempt < maxRetries {
					retryAfter := retryInterval * time.Duration(attempt)
					time.Sleep(retryAfter)
					continue
				}
				return s.markFailed(ctx, notification, fmt.Errorf("failed to deliver notification %s after %d retries: %w", notification.ID, maxRetries, err))
			}

			switch statusCode {
			case http.StatusTooManyRequests:
				s.handleRateLimit(notification, respHeaders, attempt)
				continue

			case http.StatusOK, http.StatusCreated, http.StatusAccepted:
				if err := s.repo.MarkSent(ctx, notification.ID); err != nil {
					return fmt.Errorf("failed to mark notification %s as sent: %w", notification.ID, err)
				}
				return nil

			default:
				zap.L().Error("Unexpected status code from notification hub", zap.Int("status", statusCode), zap.String("id", notification.ID))
				return s.markFailed(ctx, notification, fmt.Errorf("unexpected status code from notification hub: %d", statusCode))
			}
		}
	}
	return s.markFailed(ctx, notification, fmt.Errorf("failed to deliver notification %s after %d retries", notification.ID, maxRetries))
}

func (s *Service) markFailed(ctx context.Context, notification domain.Notification, cause error) error {
	if err := s.repo.MarkFailed(ctx, notification.ID); err != nil {
		zap.L().Error("Failed to mark notification as failed", zap.String("id", notification.ID), zap.Error(err))
	}
	return cause
}

func (s *Service) handleRateLimit(notification domain.Notification, respHeaders http.Header, attempt int) {
	retryAfterHeader := respHeaders.Get("Retry-After")
	retryAfter := retryInterval * time.Duration(attempt)

	if retryAfterHeader != "" {
		if seconds, err := strconv.Atoi(retryAfterHeader); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn(
		"Rate limit detected, retrying",
		zap.String("id", notification.ID),
		zap.Int("attempt", attempt),
		zap.Duration("retryAfter", retryAfter),
	)
	time.Sleep(retryAfter)
}
