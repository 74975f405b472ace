package auth

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/koquifi/lottoframe/internal/dto"
	"github.com/koquifi/lottoframe/pkg/utils"
)

const tokenTTL = time.Hour * 24

type Service interface {
	GenerateJWT(fid string, expirationTime time.Time) (string, error)
}

type AuthHandler struct {
	jwtService Service
}

func New(jwtService Service) *AuthHandler {
	return &AuthHandler{
		jwtService: jwtService,
	}
}

// IssueToken godoc
//
//	@Summary		Issue an access token
//	@Description	Exchange a verified Farcaster ID for a bearer token used on all other endpoints.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.TokenRequestDTO	true	"Verified Farcaster ID"
//	@Success		200		{object}	dto.TokenResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request payload"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/token [post]
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req dto.TokenRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.FID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "fid is required")
		return
	}

	token, err := h.jwtService.GenerateJWT(req.FID, time.Now().Add(tokenTTL))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.TokenResponseDTO{Token: token})
}
