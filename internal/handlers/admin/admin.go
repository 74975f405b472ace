package admin

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/koquifi/lottoframe/internal/domain"
	"github.com/koquifi/lottoframe/internal/dto"
	drawshandlers "github.com/koquifi/lottoframe/internal/handlers/draws"
	drawservice "github.com/koquifi/lottoframe/internal/service/drawservice"
	"github.com/koquifi/lottoframe/pkg/utils"
)

type DrawService interface {
	ExecuteDraw(ctx context.Context, week int) (*domain.DrawRecord, error)
	Simulate(ctx context.Context) (*domain.DrawRecord, error)
	Count(ctx context.Context) (int, error)
	Reset(ctx context.Context) error
}

type TicketService interface {
	Stats(ctx context.Context) (*domain.Stats, error)
	CurrentWeek() int
	Reset(ctx context.Context) error
}

type NotificationService interface {
	Reset(ctx context.Context) error
}

type AdminHandler struct {
	drawService         DrawService
	ticketService       TicketService
	notificationService NotificationService
}

func New(drawService DrawService, ticketService TicketService, notificationService NotificationService) *AdminHandler {
	return &AdminHandler{
		drawService:         drawService,
		ticketService:       ticketService,
		notificationService: notificationService,
	}
}

// ExecuteDraw godoc
//
//	@Summary		Execute the weekly draw
//	@Description	Settle a week: draw winning numbers, score tickets and record winners. Defaults to the current week when no week is given.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			body	body	dto.ExecuteDrawRequestDTO	false	"Week to settle, omit for the current week"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.DrawResponseDTO
//	@Failure		400	{object}	utils.Response	"Bad request"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Caller is not an administrator"
//	@Failure		404	{object}	utils.Response	"No tickets for the week"
//	@Failure		409	{object}	utils.Response	"Week already drawn"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/draw/execute [post]
func (h *AdminHandler) ExecuteDraw(w http.ResponseWriter, r *http.Request) {
	var req dto.ExecuteDrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	week := h.ticketService.CurrentWeek()
	if req.Week != nil {
		if *req.Week <= 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid week")
			return
		}
		week = *req.Week
	}

	record, err := h.drawService.ExecuteDraw(r.Context(), week)
	if err != nil {
		h.respondDrawError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, drawshandlers.ToDrawDTO(record))
}

// SimulateDraw godoc
//
//	@Summary		Simulate a draw
//	@Description	Seed test tickets when the current week is empty, then run a normal draw.
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.DrawResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Caller is not an administrator"
//	@Failure		409	{object}	utils.Response	"Week already drawn"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/draw/simulate [post]
func (h *AdminHandler) SimulateDraw(w http.ResponseWriter, r *http.Request) {
	record, err := h.drawService.Simulate(r.Context())
	if err != nil {
		h.respondDrawError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, drawshandlers.ToDrawDTO(record))
}

// GetStats godoc
//
//	@Summary		Get system statistics
//	@Description	Retrieve ticket, owner, revenue and draw counters.
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.StatsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Caller is not an administrator"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/stats [get]
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.ticketService.Stats(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	draws, err := h.drawService.Count(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.StatsResponseDTO{
		TotalTickets:       stats.TotalTickets,
		CurrentWeekTickets: stats.CurrentWeekTickets,
		TotalOwners:        stats.TotalOwners,
		CurrentWeek:        stats.CurrentWeek,
		TotalRevenue:       stats.TotalRevenue,
		TotalDraws:         draws,
	})
}

// Reset godoc
//
//	@Summary		Reset all state
//	@Description	Delete every ticket, draw record and notification. Testing aid.
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Caller is not an administrator"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/reset [post]
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.drawService.Reset(r.Context()); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if err := h.ticketService.Reset(r.Context()); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if err := h.notificationService.Reset(r.Context()); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "State reset"})
}

func (h *AdminHandler) respondDrawError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, drawservice.ErrWeekAlreadyDrawn):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, drawservice.ErrNoTicketsForWeek):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
