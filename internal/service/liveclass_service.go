package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"fikrswap-academy-be/internal/dto"
	"fikrswap-academy-be/internal/entity"
	"fikrswap-academy-be/internal/liveclass"
	"fikrswap-academy-be/internal/model"
	"fikrswap-academy-be/internal/pkg/logger"
	"fikrswap-academy-be/internal/pkg/notifier"
	"fikrswap-academy-be/internal/repository/memory"
	"fikrswap-academy-be/internal/repository/specification"
	"fikrswap-academy-be/internal/repository/unitofwork"
	"fikrswap-academy-be/internal/websocket"
	"fikrswap-academy-be/pkg/events"
	pktNats "fikrswap-academy-be/pkg/nats"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

var (
	ErrClassNotFound = errors.New("live class not found")
	ErrNotInClass    = errors.New("not currently in a class")
)

type ILiveClassService interface {
	ListUpcoming(ctx context.Context) ([]dto.LiveClassResponse, error)
	ListByCategory(ctx context.Context, category string) ([]dto.LiveClassResponse, error)
	Join(ctx context.Context, userId uuid.UUID, displayName string, classId uuid.UUID) (*dto.SessionStateResponse, error)
	Leave(ctx context.Context, userId uuid.UUID) error
	Toggle(ctx context.Context, userId uuid.UUID, control string) (*dto.SessionStateResponse, error)
	HandleFullscreenChange(ctx context.Context, userId uuid.UUID, active bool) error
	DispatchKey(ctx context.Context, userId uuid.UUID, event liveclass.KeyEvent) error
	SendChatMessage(ctx context.Context, userId uuid.UUID, text string) (*dto.ChatMessageResponse, error)
	GetSessionState(ctx context.Context, userId uuid.UUID) *dto.SessionStateResponse
}

type liveClassService struct {
	uowFactory     unitofwork.RepositoryFactory
	sessions       *memory.LiveSessionRepository
	hub            *websocket.Hub
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewLiveClassService(
	uowFactory unitofwork.RepositoryFactory,
	sessions *memory.LiveSessionRepository,
	hub *websocket.Hub,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) ILiveClassService {
	return &liveClassService{
		uowFactory:     uowFactory,
		sessions:       sessions,
		hub:            hub,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

// ListUpcoming returns classes that have not started yet, soonest first.
func (s *liveClassService) ListUpcoming(ctx context.Context) ([]dto.LiveClassResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	classes, err := uow.LiveClassRepository().FindAll(ctx,
		specification.StartingAfter{Time: time.Now()},
		specification.OrderBy{Field: "start_time", Desc: false},
	)
	if err != nil {
		return nil, err
	}
	return toLiveClassResponses(classes), nil
}

// ListByCategory applies the pure category filter to the full listing.
func (s *liveClassService) ListByCategory(ctx context.Context, category string) ([]dto.LiveClassResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	classes, err := uow.LiveClassRepository().FindAll(ctx,
		specification.OrderBy{Field: "start_time", Desc: false},
	)
	if err != nil {
		return nil, err
	}
	return toLiveClassResponses(liveclass.FilterByCategory(classes, category)), nil
}

func (s *liveClassService) Join(ctx context.Context, userId uuid.UUID, displayName string, classId uuid.UUID) (*dto.SessionStateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	class, err := uow.LiveClassRepository().FindOne(ctx, specification.ByID{ID: classId})
	if err != nil {
		return nil, err
	}
	if class == nil {
		return nil, ErrClassNotFound
	}

	session, found := s.sessions.Get(userId.String())
	if !found {
		session = liveclass.NewLearnerSession(s.notifierFor(userId), s.logger, liveclass.NopFullscreen{}, displayName)
		s.sessions.Save(userId.String(), session)
	}

	if session.Machine.InClass() {
		// Leaving first keeps the rejoin-resets-to-defaults guarantee.
		session.Machine.Leave()
	}
	session.Machine.Join(classId.String())

	if err := uow.LiveClassRepository().IncrementAttendees(ctx, classId, 1); err != nil {
		s.logger.Warn("LiveClassService", "Failed to bump attendee count", map[string]interface{}{"error": err.Error()})
	}

	s.publishEvent(ctx, events.TypeClassJoined, map[string]interface{}{
		"user_id":     userId.String(),
		"class_id":    classId.String(),
		"class_title": class.Title,
	})

	return s.stateResponse(session), nil
}

func (s *liveClassService) Leave(ctx context.Context, userId uuid.UUID) error {
	session, found := s.sessions.Get(userId.String())
	if !found || !session.Machine.InClass() {
		return ErrNotInClass
	}

	state := session.Machine.State()
	session.Machine.Leave()
	s.sessions.Delete(userId.String())

	classId, err := uuid.Parse(state.ClassId)
	if err == nil {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		if err := uow.LiveClassRepository().IncrementAttendees(ctx, classId, -1); err != nil {
			s.logger.Warn("LiveClassService", "Failed to drop attendee count", map[string]interface{}{"error": err.Error()})
		}
	}

	s.publishEvent(ctx, events.TypeClassLeft, map[string]interface{}{
		"user_id":  userId.String(),
		"class_id": state.ClassId,
	})

	return nil
}

func (s *liveClassService) Toggle(ctx context.Context, userId uuid.UUID, control string) (*dto.SessionStateResponse, error) {
	session, found := s.sessions.Get(userId.String())
	if !found || !session.Machine.InClass() {
		return nil, ErrNotInClass
	}

	switch control {
	case "audio":
		session.Machine.ToggleAudio()
	case "video":
		session.Machine.ToggleVideo()
	case "screen_share":
		session.Machine.ToggleScreenShare()
	case "hand_raise":
		session.Machine.ToggleHandRaise()
	case "participants_panel":
		session.Machine.ToggleParticipantsPanel()
	case "chat_panel":
		session.Machine.ToggleChatPanel()
	case "fullscreen":
		session.Machine.ToggleFullscreen()
	default:
		return nil, errors.New("unknown control: " + control)
	}

	return s.stateResponse(session), nil
}

func (s *liveClassService) HandleFullscreenChange(ctx context.Context, userId uuid.UUID, active bool) error {
	session, found := s.sessions.Get(userId.String())
	if !found {
		return ErrNotInClass
	}
	session.Machine.HandleFullscreenChange(active)
	return nil
}

func (s *liveClassService) DispatchKey(ctx context.Context, userId uuid.UUID, event liveclass.KeyEvent) error {
	session, found := s.sessions.Get(userId.String())
	if !found {
		// Shortcuts are inert outside a class.
		return nil
	}
	session.Keys.Dispatch(event)
	return nil
}

func (s *liveClassService) SendChatMessage(ctx context.Context, userId uuid.UUID, text string) (*dto.ChatMessageResponse, error) {
	session, found := s.sessions.Get(userId.String())
	if !found || !session.Machine.InClass() {
		return nil, ErrNotInClass
	}

	msg := session.Machine.SendChatMessage(text)
	if msg == nil {
		// Whitespace-only input is dropped silently.
		return nil, nil
	}

	state := session.Machine.State()
	classId, err := uuid.Parse(state.ClassId)
	if err == nil {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		record := &entity.ClassChatMessage{
			Id:          msg.Id,
			LiveClassId: classId,
			UserId:      userId,
			AuthorName:  msg.Author,
			Body:        msg.Body,
			CreatedAt:   msg.Timestamp,
		}
		if err := uow.LiveClassRepository().CreateChatMessage(ctx, record); err != nil {
			s.logger.Warn("LiveClassService", "Failed to persist chat message", map[string]interface{}{"error": err.Error()})
		}
	}

	resp := &dto.ChatMessageResponse{
		Id:        msg.Id,
		Author:    msg.Author,
		Body:      msg.Body,
		Timestamp: msg.Timestamp,
		IsSelf:    msg.IsSelf,
	}

	if s.hub != nil {
		s.hub.BroadcastToRoom(state.ClassId, resp)
	}

	return resp, nil
}

func (s *liveClassService) GetSessionState(ctx context.Context, userId uuid.UUID) *dto.SessionStateResponse {
	session, found := s.sessions.Get(userId.String())
	if !found {
		return &dto.SessionStateResponse{InClass: false}
	}
	return s.stateResponse(session)
}

func (s *liveClassService) stateResponse(session *liveclass.LearnerSession) *dto.SessionStateResponse {
	state := session.Machine.State()
	return &dto.SessionStateResponse{
		InClass: state != nil,
		State:   state,
	}
}

// notifierFor delivers a machine's notices to the learner's own
// websocket stream.
func (s *liveClassService) notifierFor(userId uuid.UUID) notifier.Notifier {
	return notifier.Func(func(notice notifier.Notice) {
		if s.hub == nil {
			return
		}
		meta, _ := json.Marshal(notice)
		s.hub.Send(userId, model.Notification{
			ID:        uuid.New(),
			UserID:    userId,
			TypeCode:  "LIVE_SESSION",
			Title:     notice.Title,
			Message:   notice.Description,
			Metadata:  datatypes.JSON(meta),
			CreatedAt: time.Now(),
		})
	})
}

func (s *liveClassService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, events.New(eventType, data)); err != nil {
		s.logger.Warn("LiveClassService", "Failed to publish event", map[string]interface{}{
			"type":  eventType,
			"error": err.Error(),
		})
	}
}

func toLiveClassResponses(classes []*entity.LiveClass) []dto.LiveClassResponse {
	out := make([]dto.LiveClassResponse, 0, len(classes))
	for _, c := range classes {
		out = append(out, dto.LiveClassResponse{
			Id:          c.Id,
			CourseId:    c.CourseId,
			Title:       c.Title,
			Instructor:  c.Instructor,
			Category:    c.Category,
			Description: c.Description,
			Topics:      c.Topics,
			StartTime:   c.StartTime,
			Duration:    c.Duration,
			Attendees:   c.Attendees,
			CoverImage:  c.CoverImage,
		})
	}
	return out
}
