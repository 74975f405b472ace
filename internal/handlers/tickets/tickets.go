package tickets

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/koquifi/lottoframe/internal/domain"
	"github.com/koquifi/lottoframe/internal/dto"

	ticketservice "github.com/koquifi/lottoframe/internal/service/ticketservice"
	"github.com/koquifi/lottoframe/pkg/auth"
	"github.com/koquifi/lottoframe/pkg/utils"
)

type Service interface {
	Purchase(ctx context.Context, ownerFID string, numbers []int32) (*domain.Ticket, error)
	GetTickets(ctx context.Context, ownerFID string) ([]domain.Ticket, error)
}

type TicketHandler struct {
	ticketService Service
}

func New(ticketService Service) *TicketHandler {
	return &TicketHandler{
		ticketService: ticketService,
	}
}

// Purchase godoc
//
//	@Summary		Buy a ticket
//	@Description	Buy a ticket for the current week, either with chosen numbers or a random quick pick when none are given.
//	@Tags			Tickets
//	@Accept			json
//	@Produce		json
//	@Param			body	body	dto.PurchaseTicketRequestDTO	false	"Chosen numbers, omit for a quick pick"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.TicketResponseDTO
//	@Failure		400	{object}	utils.Response	"Bad request"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		422	{object}	utils.Response	"Numbers outside range or not distinct"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/tickets [post]
func (h *TicketHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	ownerFID := r.Context().Value(auth.FIDKey).(string)

	var req dto.PurchaseTicketRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	ticket, err := h.ticketService.Purchase(r.Context(), ownerFID, req.Numbers)
	if err != nil {
		switch {
		case errors.Is(err, ticketservice.ErrInvalidNumbers):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, toTicketDTO(ticket))
}

// GetTickets godoc
//
//	@Summary		Get tickets list for user
//	@Description	Retrieve the tickets bought by the authorized user, oldest first.
//	@Tags			Tickets
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.TicketResponseDTO
//	@Failure		204	{object}	utils.Response	"No data available"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/tickets [get]
func (h *TicketHandler) GetTickets(w http.ResponseWriter, r *http.Request) {
	ownerFID := r.Context().Value(auth.FIDKey).(string)

	tickets, err := h.ticketService.GetTickets(r.Context(), ownerFID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if len(tickets) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}

	response := make([]dto.TicketResponseDTO, 0, len(tickets))
	for i := range tickets {
		response = append(response, toTicketDTO(&tickets[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toTicketDTO(ticket *domain.Ticket) dto.TicketResponseDTO {
	return dto.TicketResponseDTO{
		ID:          ticket.ID,
		Numbers:     ticket.Numbers,
		Week:        ticket.Week,
		Status:      ticket.Status,
		PurchasedAt: ticket.PurchasedAt.Format(time.RFC3339),
	}
}
