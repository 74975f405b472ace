package notificationrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/koquifi/lottoframe/internal/domain"
)

const (
	insertQuery  = `INSERT INTO notifications (id, owner_fid, kind, payload, status, read, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	byOwnerQuery = `SELECT id, owner_fid, kind, payload, status, read, created_at, sent_at FROM notifications WHERE owner_fid = $1 ORDER BY created_at DESC LIMIT $2`
	pendingQuery = `SELECT id, owner_fid, kind, payload, status, read, created_at, sent_at FROM notifications WHERE status = 'pending' ORDER BY created_at ASC LIMIT $1`
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	notification := &domain.Notification{
		ID:        "NTF-1",
		OwnerFID:  "12345",
		Kind:      "ticket_purchase",
		Payload:   []byte(`{"week":35}`),
		Status:    "pending",
		CreatedAt: timeNow,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Save notification successfully",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(insertQuery)).
					WithArgs("NTF-1", "12345", "ticket_purchase", []byte(`{"week":35}`), "pending", false, timeNow).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(insertQuery)).
					WithArgs("NTF-1", "12345", "ticket_purchase", []byte(`{"week":35}`), "pending", false, timeNow).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Save(context.Background(), notification)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_FindByOwner(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	rows := pgxmock.NewRows([]string{"id", "owner_fid", "kind", "payload", "status", "read", "created_at", "sent_at"}).
		AddRow("NTF-2", "12345", "draw_result", []byte(`{}`), "sent", false, timeNow, &timeNow).
		AddRow("NTF-1", "12345", "ticket_purchase", []byte(`{}`), "pending", true, timeNow, nil)
	mock.ExpectQuery(regexp.QuoteMeta(byOwnerQuery)).
		WithArgs("12345", 10).
		WillReturnRows(rows)

	result, err := repo.FindByOwner(context.Background(), "12345", 10)
	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "NTF-2", result[0].ID)
	assert.NotNil(t, result[0].SentAt)
	assert.Nil(t, result[1].SentAt)
}

func TestRepository_FindPending(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Pending notifications exist",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "owner_fid", "kind", "payload", "status", "read", "created_at", "sent_at"}).
					AddRow("NTF-1", "12345", "ticket_purchase", []byte(`{}`), "pending", false, timeNow, nil)
				mock.ExpectQuery(regexp.QuoteMeta(pendingQuery)).
					WithArgs(100).
					WillReturnRows(rows)
			},
			count: 1,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(pendingQuery)).
					WithArgs(100).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindPending(context.Background(), 100)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, result, tt.count)
		})
	}
}

func TestRepository_MarkSent(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE notifications SET status = 'sent', sent_at = $2 WHERE id = $1`)).
		WithArgs("NTF-1", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.MarkSent(context.Background(), "NTF-1")
	assert.NoError(t, err)
}

func TestRepository_MarkFailed(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE notifications SET status = 'failed' WHERE id = $1`)).
		WithArgs("NTF-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.MarkFailed(context.Background(), "NTF-1")
	assert.NoError(t, err)
}

func TestRepository_MarkRead(t *testing.T) {
	repo, mock := NewMock(t)

	query := `UPDATE notifications SET read = TRUE WHERE id = $1 AND owner_fid = $2`

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		updated   bool
	}{
		{
			name: "Row updated",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs("NTF-1", "12345").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			updated: true,
		},
		{
			name: "No matching row",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs("NTF-1", "12345").
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			updated: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs("NTF-1", "12345").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			updated, err := repo.MarkRead(context.Background(), "12345", "NTF-1")
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.updated, updated)
		})
	}
}

func TestRepository_DeleteAll(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM notifications`)).
		WillReturnResult(pgxmock.NewResult("DELETE", 5))

	err := repo.DeleteAll(context.Background())
	assert.NoError(t, err)
}
