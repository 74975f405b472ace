package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/koquifi/lottoframe/internal/domain"
	"github.com/koquifi/lottoframe/internal/dto"
	notificationservice "github.com/koquifi/lottoframe/internal/service/notificationservice"
	"github.com/koquifi/lottoframe/pkg/auth"
	"github.com/koquifi/lottoframe/pkg/utils"
)

type Service interface {
	UserNotifications(ctx context.Context, ownerFID string, limit int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, ownerFID, id string) error
}

type NotificationHandler struct {
	notificationService Service
}

func New(notificationService Service) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// GetNotifications godoc
//
//	@Summary		Get notifications for user
//	@Description	Retrieve the latest notifications for the authorized user, newest first.
//	@Tags			Notifications
//	@Produce		json
//	@Param			limit	query	int	false	"Maximum entries to return, defaults to 10"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.NotificationResponseDTO
//	@Failure		204	{object}	utils.Response	"No data available"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/notifications [get]
func (h *NotificationHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	ownerFID := r.Context().Value(auth.FIDKey).(string)

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	notifications, err := h.notificationService.UserNotifications(r.Context(), ownerFID, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if len(notifications) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}

	response := make([]dto.NotificationResponseDTO, 0, len(notifications))
	for _, notification := range notifications {
		var payload any
		if len(notification.Payload) > 0 {
			_ = json.Unmarshal(notification.Payload, &payload)
		}
		response = append(response, dto.NotificationResponseDTO{
			ID:        notification.ID,
			Kind:      notification.Kind,
			Payload:   payload,
			Read:      notification.Read,
			CreatedAt: notification.CreatedAt.Format(time.RFC3339),
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// MarkRead godoc
//
//	@Summary		Mark a notification as read
//	@Description	Mark one of the authorized user's notifications as read.
//	@Tags			Notifications
//	@Produce		json
//	@Param			id	path	string	true	"Notification ID"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Notification not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	ownerFID := r.Context().Value(auth.FIDKey).(string)
	id := chi.URLParam(r, "id")

	if err := h.notificationService.MarkRead(r.Context(), ownerFID, id); err != nil {
		switch {
		case errors.Is(err, notificationservice.ErrNotificationNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Notification marked as read"})
}
