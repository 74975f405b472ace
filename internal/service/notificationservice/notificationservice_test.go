package notificationservice

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/koquifi/lottoframe/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestRecordTicketPurchase(t *testing.T) {
	service, repo := NewMock(t)

	ticket := &domain.Ticket{
		ID:          "TKT-1",
		OwnerFID:    "100",
		Numbers:     []int32{1, 2, 3, 4, 5},
		Week:        10,
		PurchasedAt: time.Now(),
	}

	var saved *domain.Notification
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, n *domain.Notification) error {
			saved = n
			return nil
		},
	)

	err := service.RecordTicketPurchase(context.Background(), "100", ticket)

	assert.NoError(t, err)
	assert.NotNil(t, saved)
	assert.Equal(t, "100", saved.OwnerFID)
	assert.Equal(t, TicketPurchaseKind, saved.Kind)
	assert.Equal(t, PendingStatus, saved.Status)
	assert.Contains(t, saved.ID, "NTF-")

	var payload purchasePayload
	assert.NoError(t, json.Unmarshal(saved.Payload, &payload))
	assert.Equal(t, "TKT-1", payload.TicketID)
	assert.Equal(t, []int32{1, 2, 3, 4, 5}, payload.Numbers)
	assert.Equal(t, 10, payload.Week)
}

func TestRecordDrawResult(t *testing.T) {
	service, repo := NewMock(t)

	notice := domain.DrawNotice{
		Week:           10,
		WinningNumbers: []int32{1, 2, 3, 4, 5},
		UserWinnings: []domain.TicketResult{
			{TicketID: "TKT-1", MatchCount: 3, Prize: "20% del pool"},
		},
	}

	var saved *domain.Notification
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, n *domain.Notification) error {
			saved = n
			return nil
		},
	)

	err := service.RecordDrawResult(context.Background(), "100", notice)

	assert.NoError(t, err)
	assert.Equal(t, DrawResultKind, saved.Kind)

	var decoded domain.DrawNotice
	assert.NoError(t, json.Unmarshal(saved.Payload, &decoded))
	assert.Equal(t, notice, decoded)
}

func TestRecordDrawResult_SaveFails(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("some error"))

	err := service.RecordDrawResult(context.Background(), "100", domain.DrawNotice{})

	assert.Error(t, err)
}

func TestUserNotifications(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name        string
		limit       int
		prepareMock func()
		expectedLen int
	}{
		{
			name:  "Explicit limit",
			limit: 5,
			prepareMock: func() {
				repo.EXPECT().FindByOwner(gomock.Any(), "100", 5).Return([]domain.Notification{{}, {}}, nil)
			},
			expectedLen: 2,
		},
		{
			name:  "Default limit when zero",
			limit: 0,
			prepareMock: func() {
				repo.EXPECT().FindByOwner(gomock.Any(), "100", 10).Return([]domain.Notification{{}}, nil)
			},
			expectedLen: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			notifications, err := service.UserNotifications(context.Background(), "100", tt.limit)

			assert.NoError(t, err)
			assert.Len(t, notifications, tt.expectedLen)
		})
	}
}

func TestMarkRead(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Marks owned notification",
			prepareMock: func() {
				repo.EXPECT().MarkRead(gomock.Any(), "100", "NTF-1").Return(true, nil)
			},
		},
		{
			name: "Unknown notification",
			prepareMock: func() {
				repo.EXPECT().MarkRead(gomock.Any(), "100", "NTF-1").Return(false, nil)
			},
			expectedError: ErrNotificationNotFound,
		},
		{
			name: "Repo failure surfaces",
			prepareMock: func() {
				repo.EXPECT().MarkRead(gomock.Any(), "100", "NTF-1").Return(false, errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.MarkRead(context.Background(), "100", "NTF-1")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
