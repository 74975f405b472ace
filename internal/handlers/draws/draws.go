package draws

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/koquifi/lottoframe/internal/domain"
	"github.com/koquifi/lottoframe/internal/dto"
	"github.com/koquifi/lottoframe/pkg/utils"
)

type Service interface {
	History(ctx context.Context, limit int) ([]domain.DrawRecord, error)
}

type DrawHandler struct {
	drawService Service
}

func New(drawService Service) *DrawHandler {
	return &DrawHandler{
		drawService: drawService,
	}
}

// GetHistory godoc
//
//	@Summary		Get draw history
//	@Description	Retrieve settled draws, most recent first.
//	@Tags			Draws
//	@Produce		json
//	@Param			limit	query	int	false	"Maximum draws to return, defaults to 10"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.DrawResponseDTO
//	@Failure		204	{object}	utils.Response	"No data available"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/draws [get]
func (h *DrawHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	records, err := h.drawService.History(r.Context(), limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if len(records) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}

	response := make([]dto.DrawResponseDTO, 0, len(records))
	for i := range records {
		response = append(response, ToDrawDTO(&records[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ToDrawDTO converts a draw record into its response shape.
func ToDrawDTO(record *domain.DrawRecord) dto.DrawResponseDTO {
	winners := make(map[int][]dto.WinnerDTO, len(record.Winners))
	for tier, entries := range record.Winners {
		tierWinners := make([]dto.WinnerDTO, 0, len(entries))
		for _, winner := range entries {
			tierWinners = append(tierWinners, dto.WinnerDTO{
				TicketID:   winner.TicketID,
				OwnerFID:   winner.OwnerFID,
				MatchCount: winner.MatchCount,
				Prize:      winner.Prize,
			})
		}
		winners[tier] = tierWinners
	}

	return dto.DrawResponseDTO{
		ID:                record.ID,
		Week:              record.Week,
		DrawnAt:           record.DrawnAt.Format(time.RFC3339),
		WinningNumbers:    record.WinningNumbers,
		TicketsConsidered: record.TicketsConsidered,
		TotalPrizePool:    record.TotalPrizePool,
		Winners:           winners,
	}
}
