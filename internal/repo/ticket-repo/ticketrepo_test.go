package ticketrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/koquifi/lottoframe/internal/domain"
	"github.com/koquifi/lottoframe/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func TestRepository_Save(t *testing.T) {
	repo, mock, tx := NewMock(t)
	timeNow := time.Now()

	ticket := &domain.Ticket{
		ID:          "TKT-1",
		OwnerFID:    "12345",
		Numbers:     []int32{3, 17, 22, 41, 50},
		Week:        35,
		Status:      "active",
		PurchasedAt: timeNow,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Save ticket successfully",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO tickets (id, owner_fid, numbers, week, status, purchased_at) VALUES ($1, $2, $3, $4, $5, $6)`)).
						WithArgs("TKT-1", "12345", []int32{3, 17, 22, 41, 50}, 35, "active", timeNow).
						WillReturnResult(pgxmock.NewResult("INSERT", 1))
					return fn(ctx)
				})
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO tickets (id, owner_fid, numbers, week, status, purchased_at) VALUES ($1, $2, $3, $4, $5, $6)`)).
						WithArgs("TKT-1", "12345", []int32{3, 17, 22, 41, 50}, 35, "active", timeNow).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Save(context.Background(), ticket)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_FindByOwner(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()

	query := `SELECT id, owner_fid, numbers, week, status, purchased_at FROM tickets WHERE owner_fid = $1 ORDER BY purchased_at ASC`

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Tickets exist",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "owner_fid", "numbers", "week", "status", "purchased_at"}).
					AddRow("TKT-1", "12345", []int32{1, 2, 3, 4, 5}, 35, "active", timeNow).
					AddRow("TKT-2", "12345", []int32{6, 7, 8, 9, 10}, 35, "settled", timeNow)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("12345").
					WillReturnRows(rows)
			},
			count: 2,
		},
		{
			name: "No tickets",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "owner_fid", "numbers", "week", "status", "purchased_at"})
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("12345").
					WillReturnRows(rows)
			},
			count: 0,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("12345").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByOwner(context.Background(), "12345")
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, result, tt.count)
		})
	}
}

func TestRepository_FindActiveByWeek(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()

	query := `SELECT id, owner_fid, numbers, week, status, purchased_at FROM tickets WHERE week = $1 AND status = 'active' ORDER BY purchased_at ASC`

	rows := pgxmock.NewRows([]string{"id", "owner_fid", "numbers", "week", "status", "purchased_at"}).
		AddRow("TKT-1", "12345", []int32{1, 2, 3, 4, 5}, 35, "active", timeNow)
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(35).
		WillReturnRows(rows)

	result, err := repo.FindActiveByWeek(context.Background(), 35)
	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, "TKT-1", result[0].ID)
	assert.Equal(t, []int32{1, 2, 3, 4, 5}, result[0].Numbers)
}

func TestRepository_SettleWeek(t *testing.T) {
	repo, mock, tx := NewMock(t)

	query := `UPDATE tickets SET status = 'settled' WHERE week = $1 AND status = 'active'`

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Settle week successfully",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta(query)).
						WithArgs(35).
						WillReturnResult(pgxmock.NewResult("UPDATE", 3))
					return fn(ctx)
				})
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta(query)).
						WithArgs(35).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.SettleWeek(context.Background(), 35)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_CountAll(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM tickets`)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(42))

	count, err := repo.CountAll(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 42, count)
}

func TestRepository_CountOwners(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(DISTINCT owner_fid) FROM tickets`)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(12))

	count, err := repo.CountOwners(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 12, count)
}

func TestRepository_DeleteAll(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Delete all successfully",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM tickets`)).
					WillReturnResult(pgxmock.NewResult("DELETE", 42))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM tickets`)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.DeleteAll(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
