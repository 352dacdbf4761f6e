package services

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	"github.com/elitecrew/elite-crew-backend/internal/apperrors"
	"github.com/elitecrew/elite-crew-backend/internal/core/domain"
	portssvc "github.com/elitecrew/elite-crew-backend/internal/core/ports/services"
	"github.com/elitecrew/elite-crew-backend/internal/platform/config"
)

// googleOAuthService implements the GoogleOAuthSvcFacade. It exchanges the
// authorization code sent by the frontend, validates the returned ID token
// and resolves the verified identity to a local account.
type googleOAuthService struct {
	BaseService
	cfg          *config.Config
	oauth2Config *oauth2.Config
	userService  portssvc.UserSvcFacade
}

// NewGoogleOAuthService creates a new instance of googleOAuthService.
func NewGoogleOAuthService(cfg *config.Config, userService portssvc.UserSvcFacade) portssvc.GoogleOAuthSvcFacade {
	return &googleOAuthService{
		cfg:         cfg,
		userService: userService,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

var _ portssvc.GoogleOAuthSvcFacade = (*googleOAuthService)(nil)

func (s *googleOAuthService) ExchangeCode(ctx context.Context, code string) (*domain.User, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		s.LogError(ctx, err, "Failed to exchange oauth code for token")
		return nil, apperrors.NewUnauthorizedError("failed to exchange authorization code")
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, apperrors.NewUnauthorizedError("id_token missing from token response")
	}

	payload, err := idtoken.Validate(ctx, rawIDToken, s.cfg.GoogleClientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to validate google id token")
		return nil, apperrors.NewUnauthorizedError("invalid id token")
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		return nil, apperrors.NewUnauthorizedError("email claim missing from id token")
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return nil, apperrors.NewUnauthorizedError("google account email is not verified")
	}

	user, err := s.userService.CreateOAuthUser(ctx, "google", payload.Subject, email, name)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve oauth user: %w", err)
	}

	return user, nil
}
