package contract

import (
	"context"

	"fikrswap-academy-be/internal/entity"
	"fikrswap-academy-be/internal/repository/specification"

	"github.com/google/uuid"
)

type LiveClassRepository interface {
	Create(ctx context.Context, class *entity.LiveClass) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LiveClass, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LiveClass, error)
	IncrementAttendees(ctx context.Context, id uuid.UUID, delta int) error

	CreateChatMessage(ctx context.Context, message *entity.ClassChatMessage) error
	FindChatMessages(ctx context.Context, specs ...specification.Specification) ([]*entity.ClassChatMessage, error)
}
