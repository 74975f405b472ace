package drawrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/koquifi/lottoframe/internal/domain"
	"github.com/koquifi/lottoframe/internal/pg"
)

const (
	drawQuery    = `INSERT INTO draws (id, week, drawn_at, winning_numbers, tickets_considered, total_prize_pool) VALUES ($1, $2, $3, $4, $5, $6)`
	winnerQuery  = `INSERT INTO draw_winners (draw_id, tier, ticket_id, owner_fid, match_count, prize) VALUES ($1, $2, $3, $4, $5, $6)`
	byWeekQuery  = `SELECT id, week, drawn_at, winning_numbers, tickets_considered, total_prize_pool FROM draws WHERE week = $1`
	winnersQuery = `SELECT tier, ticket_id, owner_fid, match_count, prize FROM draw_winners WHERE draw_id = $1 ORDER BY tier ASC, id ASC`
	recentQuery  = `SELECT id, week, drawn_at, winning_numbers, tickets_considered, total_prize_pool FROM draws ORDER BY drawn_at DESC LIMIT $1`
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

	record := &domain.DrawRecord{
		ID:                "DRAW-1",
		Week:              35,
		DrawnAt:           timeNow,
		WinningNumbers:    []int32{3, 17, 22, 41, 50},
		TicketsConsidered: 10,
		TotalPrizePool:    11,
		Winners: map[int][]domain.Winner{
			1: {{TicketID: "TKT-1", OwnerFID: "100", MatchCount: 5, Prize: "50% del pool"}},
		},
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Save draw with winners successfully",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta(drawQuery)).
						WithArgs("DRAW-1", 35, timeNow, []int32{3, 17, 22, 41, 50}, 10, 11.0).
						WillReturnResult(pgxmock.NewResult("INSERT", 1))
					mock.ExpectExec(regexp.QuoteMeta(winnerQuery)).
						WithArgs("DRAW-1", 1, "TKT-1", "100", 5, "50% del pool").
						WillReturnResult(pgxmock.NewResult("INSERT", 1))
					return fn(ctx)
				})
			},
		},
		{
			name: "Draw insert fails",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta(drawQuery)).
						WithArgs("DRAW-1", 35, timeNow, []int32{3, 17, 22, 41, 50}, 10, 11.0).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
		{
			name: "Winner insert fails",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta(drawQuery)).
						WithArgs("DRAW-1", 35, timeNow, []int32{3, 17, 22, 41, 50}, 10, 11.0).
						WillReturnResult(pgxmock.NewResult("INSERT", 1))
					mock.ExpectExec(regexp.QuoteMeta(winnerQuery)).
						WithArgs("DRAW-1", 1, "TKT-1", "100", 5, "50% del pool").
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
			err := repo.Save(context.Background(), record)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_FindByWeek(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.DrawRecord
	}{
		{
			name: "Draw exists",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(byWeekQuery)).
					WithArgs(35).
					WillReturnRows(pgxmock.NewRows([]string{"id", "week", "drawn_at", "winning_numbers", "tickets_considered", "total_prize_pool"}).
						AddRow("DRAW-1", 35, timeNow, []int32{3, 17, 22, 41, 50}, 10, 11.0))
				mock.ExpectQuery(regexp.QuoteMeta(winnersQuery)).
					WithArgs("DRAW-1").
					WillReturnRows(pgxmock.NewRows([]string{"tier", "ticket_id", "owner_fid", "match_count", "prize"}).
						AddRow(3, "TKT-9", "200", 3, "20% del pool"))
			},
			result: &domain.DrawRecord{
				ID:                "DRAW-1",
				Week:              35,
				DrawnAt:           timeNow,
				WinningNumbers:    []int32{3, 17, 22, 41, 50},
				TicketsConsidered: 10,
				TotalPrizePool:    11,
				Winners: map[int][]domain.Winner{
					3: {{TicketID: "TKT-9", OwnerFID: "200", MatchCount: 3, Prize: "20% del pool"}},
				},
			},
		},
		{
			name: "Week not drawn",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(byWeekQuery)).
					WithArgs(35).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(byWeekQuery)).
					WithArgs(35).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByWeek(context.Background(), 35)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_FindRecent(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(recentQuery)).
		WithArgs(10).
		WillReturnRows(pgxmock.NewRows([]string{"id", "week", "drawn_at", "winning_numbers", "tickets_considered", "total_prize_pool"}).
			AddRow("DRAW-2", 36, timeNow, []int32{1, 2, 3, 4, 5}, 4, 10.4).
			AddRow("DRAW-1", 35, timeNow, []int32{6, 7, 8, 9, 10}, 2, 10.2))
	mock.ExpectQuery(regexp.QuoteMeta(winnersQuery)).
		WithArgs("DRAW-2").
		WillReturnRows(pgxmock.NewRows([]string{"tier", "ticket_id", "owner_fid", "match_count", "prize"}))
	mock.ExpectQuery(regexp.QuoteMeta(winnersQuery)).
		WithArgs("DRAW-1").
		WillReturnRows(pgxmock.NewRows([]string{"tier", "ticket_id", "owner_fid", "match_count", "prize"}))

	records, err := repo.FindRecent(context.Background(), 10)
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "DRAW-2", records[0].ID)
	assert.Equal(t, "DRAW-1", records[1].ID)
}

func TestRepository_Count(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM draws`)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.Count(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestRepository_DeleteAll(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM draws`)).
		WillReturnResult(pgxmock.NewResult("DELETE", 3))

	err := repo.DeleteAll(context.Background())
	assert.NoError(t, err)
}
