package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"amparo-api/core/cache"
	"amparo-api/core/config"
	"amparo-api/core/constants"
	"amparo-api/core/errors"
	"amparo-api/core/logger"
	"amparo-api/core/utils"
	"amparo-api/core/worker"
	"amparo-api/modules/auth/dto"
)

// MagicLinkEnqueuer queues sign-in link delivery; worker.Client satisfies it.
type MagicLinkEnqueuer interface {
	EnqueueMagicLinkEmail(ctx context.Context, email, link string) error
}

var _ MagicLinkEnqueuer = (*worker.Client)(nil)

// AuthService implements passwordless email-link sign-in. A request stores a
// single-use token in the cache and mails a link; exchanging the token issues
// a session JWT. Logout blacklists the session token for its remaining life.
type AuthService struct {
	cache  cache.Cache
	worker MagicLinkEnqueuer
}

type AuthServiceInterface interface {
	RequestMagicLink(ctx context.Context, req *dto.MagicLinkRequest) (*dto.MagicLinkResponse, *errors.AppError)
	Verify(ctx context.Context, token string) (*dto.VerifyResponse, *errors.AppError)
	Logout(ctx context.Context, token string) *errors.AppError
}

func NewAuthService(cache cache.Cache, worker MagicLinkEnqueuer) AuthServiceInterface {
	return &AuthService{
		cache:  cache,
		worker: worker,
	}
}

func (s *AuthService) RequestMagicLink(ctx context.Context, req *dto.MagicLinkRequest) (*dto.MagicLinkResponse, *errors.AppError) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "A valid email address is required", err)
	}

	token, err := utils.GenerateToken(constants.MagicLinkTokenLength)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create sign-in token", err)
	}

	if err := s.cache.SetMagicLinkToken(ctx, token, email); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to store sign-in token", err)
	}

	link := fmt.Sprintf("%s/api/v1/auth/verify?token=%s", config.Get().Server.BaseURL, token)
	if err := s.worker.EnqueueMagicLinkEmail(ctx, email, link); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to queue the sign-in email", err)
	}

	logger.Info("AuthService:RequestMagicLink:Queued", "email", email)
	return &dto.MagicLinkResponse{
		Message: "If the address is valid, a sign-in link has been sent",
	}, nil
}

// Verify exchanges a single-use token for a session JWT. The cache delete and
// read are one operation, so a link cannot be exchanged twice.
func (s *AuthService) Verify(ctx context.Context, token string) (*dto.VerifyResponse, *errors.AppError) {
	if token == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Token is required", nil)
	}

	email, err := s.cache.ConsumeMagicLinkToken(ctx, token)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to verify the sign-in token", err)
	}
	if email == "" {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "The sign-in link is invalid or has expired", nil)
	}

	sessionToken, err := utils.GenerateSessionToken(email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to issue a session token", err)
	}

	logger.Info("AuthService:Verify:SignedIn", "email", email)
	return &dto.VerifyResponse{Token: sessionToken, Email: email}, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) *errors.AppError {
	claims, err := utils.ValidateAndParseToken(token)
	if err != nil {
		// An expired or invalid token needs no blacklisting.
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}

	if err := s.cache.BlacklistToken(ctx, token, ttl); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to revoke the session", err)
	}
	return nil
}
