package dto

type PurchaseTicketRequestDTO struct {
	Numbers []int32 `json:"numbers,omitempty" example:"3,17,22,41,50"`
}

type TicketResponseDTO struct {
	ID          string  `json:"id" example:"TKT-1a2b3c"`
	Numbers     []int32 `json:"numbers" example:"3,17,22,41,50"`
	Week        int     `json:"week" example:"35"`
	Status      string  `json:"status" example:"active"`
	PurchasedAt string  `json:"purchased_at" example:"2020-12-09T16:09:57+03:00"`
}

type NotificationResponseDTO struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Payload   any    `json:"payload"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at"`
}
