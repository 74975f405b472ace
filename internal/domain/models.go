package domain

import "time"

const (
	// NumbersPerTicket is how many numbers a ticket carries.
	NumbersPerTicket = 5
	// MinNumber and MaxNumber bound every ticket and winning number.
	MinNumber = 1
	MaxNumber = 50
)

type Ticket struct {
	ID          string    `db:"id"`
	OwnerFID    string    `db:"owner_fid"`
	Numbers     []int32   `db:"numbers"`
	Week        int       `db:"week"`
	Status      string    `db:"status"`
	PurchasedAt time.Time `db:"purchased_at"`
}

type DrawRecord struct {
	ID                string    `db:"id"`
	Week              int       `db:"week"`
	DrawnAt           time.Time `db:"drawn_at"`
	WinningNumbers    []int32   `db:"winning_numbers"`
	TicketsConsidered int       `db:"tickets_considered"`
	TotalPrizePool    float64   `db:"total_prize_pool"`
	// Winners maps a prize tier (1..3) to the winning entries of that tier.
	Winners map[int][]Winner
}

type Winner struct {
	TicketID   string `db:"ticket_id"`
	OwnerFID   string `db:"owner_fid"`
	MatchCount int    `db:"match_count"`
	Prize      string `db:"prize"`
}

// TicketResult is the per-ticket outcome reported to a ticket owner
// after a draw, winners and non-winners alike.
type TicketResult struct {
	TicketID   string `json:"ticketId"`
	MatchCount int    `json:"matchCount"`
	Prize      string `json:"prizeDescriptor"`
}

// DrawNotice is the per-owner winnings payload handed to the
// notification collaborator after a draw settles.
type DrawNotice struct {
	Week           int            `json:"week"`
	WinningNumbers []int32        `json:"winningNumbers"`
	UserWinnings   []TicketResult `json:"userWinnings"`
}

type Notification struct {
	ID        string     `db:"id"`
	OwnerFID  string     `db:"owner_fid"`
	Kind      string     `db:"kind"`
	Payload   []byte     `db:"payload"`
	Status    string     `db:"status"`
	Read      bool       `db:"read"`
	CreatedAt time.Time  `db:"created_at"`
	SentAt    *time.Time `db:"sent_at"`
}

type Stats struct {
	TotalTickets       int
	CurrentWeekTickets int
	TotalOwners        int
	CurrentWeek        int
	TotalRevenue       float64
}
