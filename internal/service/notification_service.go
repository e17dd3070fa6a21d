package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"fikrswap-academy-be/internal/model"
	"fikrswap-academy-be/internal/pkg/logger"
	"fikrswap-academy-be/internal/repository"
	"fikrswap-academy-be/pkg/events"
	pktNats "fikrswap-academy-be/pkg/nats"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationDelivery defines how to push real-time updates.
// Typically implemented by the WebSocket Hub.
type NotificationDelivery interface {
	Send(userID uuid.UUID, notification model.Notification)
	Broadcast(notification model.Notification)
}

type NotificationService struct {
	repo       repository.NotificationRepository
	subscriber *pktNats.Subscriber
	delivery   NotificationDelivery
	logger     logger.ILogger
}

func NewNotificationService(repo repository.NotificationRepository, sub *pktNats.Subscriber, delivery NotificationDelivery, log logger.ILogger) *NotificationService {
	return &NotificationService{
		repo:       repo,
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start begins listening to the event bus with a durable consumer.
func (s *NotificationService) Start() {
	err := s.subscriber.Subscribe("events.>", "notif-service-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NotificationService", "Notification service started, listening to events.>", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	// The NATS subject carries the stream prefix; the registry stores
	// bare codes.
	typeCode := strings.TrimPrefix(event.EventType(), "events.")

	config, err := s.repo.GetNotificationTypeByCode(ctx, typeCode)
	if err != nil {
		s.logger.Warn("NotificationService", fmt.Sprintf("Config not found for code: '%s'", typeCode), map[string]interface{}{"error": err.Error()})
		return nil
	}
	if !config.IsActive {
		return nil
	}

	if config.TargetType == "BROADCAST" {
		// Push only; broadcast rows are not persisted per inbox.
		notif := s.buildNotification(uuid.Nil, config, event)
		if s.delivery != nil {
			s.delivery.Broadcast(notif)
		}
		return nil
	}

	recipients, err := s.resolveRecipients(ctx, config, event)
	if err != nil {
		s.logger.Error("NotificationService", fmt.Sprintf("Error resolving recipients for %s", typeCode), map[string]interface{}{"error": err})
		return err // NATS retries on error
	}

	for _, userID := range recipients {
		notif := s.buildNotification(userID, config, event)

		if err := s.repo.CreateNotification(ctx, &notif); err != nil {
			s.logger.Error("NotificationService", fmt.Sprintf("Error saving notification for user %s", userID), map[string]interface{}{"error": err})
			continue
		}

		if s.delivery != nil {
			s.delivery.Send(userID, notif)
		}
	}

	return nil
}

func (s *NotificationService) resolveRecipients(ctx context.Context, config *model.NotificationType, event events.Event) ([]uuid.UUID, error) {
	var userIDs []uuid.UUID

	switch config.TargetType {
	case "SELF":
		// Convention: self-targeted events carry "user_id" in the payload.
		if uidStr, ok := event.Payload()["user_id"].(string); ok {
			uid, err := uuid.Parse(uidStr)
			if err == nil {
				userIDs = append(userIDs, uid)
			}
		} else {
			s.logger.Warn("NotificationService", fmt.Sprintf("TargetType SELF but no user_id found in payload for event %s", event.EventType()), nil)
		}

	case "ROLE":
		users, err := s.repo.GetUsersByRole(ctx, config.TargetRole)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			userIDs = append(userIDs, u.Id)
		}
	}

	return userIDs, nil
}

func (s *NotificationService) buildNotification(userID uuid.UUID, config *model.NotificationType, event events.Event) model.Notification {
	// Simple template engine: payload keys substitute {key} placeholders.
	msg := config.Template
	payload := event.Payload()

	for k, v := range payload {
		placeholder := fmt.Sprintf("{%s}", k)
		valStr := fmt.Sprintf("%v", v)
		msg = strings.ReplaceAll(msg, placeholder, valStr)
	}

	metaMap := make(map[string]interface{})
	for k, v := range payload {
		metaMap[k] = v
	}
	metaJSON, _ := json.Marshal(metaMap)

	return model.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		TypeCode:  config.Code,
		Title:     config.DisplayName,
		Message:   msg,
		Metadata:  datatypes.JSON(metaJSON),
		CreatedAt: time.Now(),
		IsRead:    false,
	}
}

// GetNotifications fetches notifications for a user.
func (s *NotificationService) GetNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.Notification, int64, error) {
	return s.repo.GetNotificationsByUserID(ctx, userID, limit, offset)
}

// GetUnreadCount fetches unread count.
func (s *NotificationService) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.GetUnreadCount(ctx, userID)
}

// MarkAsRead marks a notification as read.
func (s *NotificationService) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	return s.repo.MarkAsRead(ctx, id)
}

// MarkAllAsRead marks all notifications as read for a user.
func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}
