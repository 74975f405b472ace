package dto

type TokenRequestDTO struct {
	FID string `json:"fid" example:"12345"`
}

type TokenResponseDTO struct {
	Token string `json:"token"`
}
