package repositories

import (
	"context"

	"github.com/elitecrew/elite-crew-backend/internal/core/domain"
)

// ContactRepository persists contact form submissions.
type ContactRepository interface {
	SaveMessage(ctx context.Context, message domain.ContactMessage) error
}
