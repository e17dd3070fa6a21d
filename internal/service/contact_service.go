package service

import (
	"context"
	"time"

	"fikrswap-academy-be/internal/dto"
	"fikrswap-academy-be/internal/entity"
	"fikrswap-academy-be/internal/pkg/logger"
	"fikrswap-academy-be/internal/repository/unitofwork"
	"fikrswap-academy-be/pkg/events"
	pktNats "fikrswap-academy-be/pkg/nats"

	"github.com/google/uuid"
)

type IContactService interface {
	Submit(ctx context.Context, req *dto.ContactRequest) error
}

type contactService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewContactService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher, log logger.ILogger) IContactService {
	return &contactService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

// Submit stores the message. Intake only; replies happen out of band.
func (s *contactService) Submit(ctx context.Context, req *dto.ContactRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	message := &entity.ContactMessage{
		Id:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Body:      req.Message,
		CreatedAt: time.Now(),
	}

	if err := uow.ContactRepository().Create(ctx, message); err != nil {
		return err
	}

	if s.eventPublisher != nil {
		event := events.New(events.TypeContactSubmitted, map[string]interface{}{
			"name":    req.Name,
			"email":   req.Email,
			"subject": req.Subject,
		})
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.logger.Warn("ContactService", "Failed to publish CONTACT_SUBMITTED event", map[string]interface{}{"error": err.Error()})
		}
	}

	return nil
}
