package dto

type MagicLinkRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type MagicLinkResponse struct {
	Message string `json:"message"`
}

type VerifyResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}
