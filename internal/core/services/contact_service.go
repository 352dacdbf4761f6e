package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/elitecrew/elite-crew-backend/internal/core/domain"
	portsrepo "github.com/elitecrew/elite-crew-backend/internal/core/ports/repositories"
	portssvc "github.com/elitecrew/elite-crew-backend/internal/core/ports/services"
	"github.com/elitecrew/elite-crew-backend/internal/dto"
)

// contactServiceImpl implements the ContactSvcFacade interface
type contactServiceImpl struct {
	BaseService
	contactRepo portsrepo.ContactRepository
}

// NewContactService creates a new contact service.
func NewContactService(contactRepo portsrepo.ContactRepository) portssvc.ContactSvcFacade {
	return &contactServiceImpl{contactRepo: contactRepo}
}

var _ portssvc.ContactSvcFacade = (*contactServiceImpl)(nil)

func (s *contactServiceImpl) SubmitMessage(ctx context.Context, req dto.ContactRequest) error {
	message := domain.ContactMessage{
		MessageID: uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		CreatedAt: time.Now(),
	}

	if err := s.contactRepo.SaveMessage(ctx, message); err != nil {
		s.LogError(ctx, err, "Failed to save contact message")
		return err
	}

	s.LogInfo(ctx, "Contact message received")
	return nil
}
