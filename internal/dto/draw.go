package dto

type ExecuteDrawRequestDTO struct {
	Week *int `json:"week,omitempty" example:"35"`
}

type WinnerDTO struct {
	TicketID   string `json:"ticket_id"`
	OwnerFID   string `json:"owner_fid"`
	MatchCount int    `json:"match_count" example:"4"`
	Prize      string `json:"prize" example:"30% del pool"`
}

type DrawResponseDTO struct {
	ID                string              `json:"id" example:"DRAW-1a2b3c"`
	Week              int                 `json:"week" example:"35"`
	DrawnAt           string              `json:"drawn_at"`
	WinningNumbers    []int32             `json:"winning_numbers" example:"3,17,22,41,50"`
	TicketsConsidered int                 `json:"tickets_considered" example:"42"`
	TotalPrizePool    float64             `json:"total_prize_pool" example:"14.2"`
	Winners           map[int][]WinnerDTO `json:"winners"`
}

type StatsResponseDTO struct {
	TotalTickets       int     `json:"total_tickets"`
	CurrentWeekTickets int     `json:"current_week_tickets"`
	TotalOwners        int     `json:"total_owners"`
	CurrentWeek        int     `json:"current_week"`
	TotalRevenue       float64 `json:"total_revenue"`
	TotalDraws         int     `json:"total_draws"`
}
