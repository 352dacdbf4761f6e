package services

import (
	"context"

	"github.com/elitecrew/elite-crew-backend/internal/core/domain"
)

// GoogleOAuthSvcFacade exchanges a Google authorization code for a verified
// identity and resolves it to a local user account.
type GoogleOAuthSvcFacade interface {
	ExchangeCode(ctx context.Context, code string) (*domain.User, error)
}
