package implementation

import (
	"context"
	"errors"

	"fikrswap-academy-be/internal/entity"
	"fikrswap-academy-be/internal/mapper"
	"fikrswap-academy-be/internal/model"
	"fikrswap-academy-be/internal/repository/contract"
	"fikrswap-academy-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LiveClassRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LiveClassMapper
}

func NewLiveClassRepository(db *gorm.DB) contract.LiveClassRepository {
	return &LiveClassRepositoryImpl{
		db:     db,
		mapper: mapper.NewLiveClassMapper(),
	}
}

func (r *LiveClassRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *LiveClassRepositoryImpl) Create(ctx context.Context, class *entity.LiveClass) error {
	modelClass := r.mapper.ToModel(class)
	if err := r.db.WithContext(ctx).Create(modelClass).Error; err != nil {
		return err
	}
	*class = *r.mapper.ToEntity(modelClass)
	return nil
}

func (r *LiveClassRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LiveClass, error) {
	var modelClass model.LiveClass
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelClass).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelClass), nil
}

func (r *LiveClassRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LiveClass, error) {
	var modelClasses []*model.LiveClass
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelClasses).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelClasses), nil
}

func (r *LiveClassRepositoryImpl) IncrementAttendees(ctx context.Context, id uuid.UUID, delta int) error {
	return r.db.WithContext(ctx).Model(&model.LiveClass{}).
		Where("id = ?", id).
		Update("attendees", gorm.Expr("GREATEST(attendees + ?, 0)", delta)).Error
}

func (r *LiveClassRepositoryImpl) CreateChatMessage(ctx context.Context, message *entity.ClassChatMessage) error {
	modelMessage := r.mapper.ChatMessageToModel(message)
	if err := r.db.WithContext(ctx).Create(modelMessage).Error; err != nil {
		return err
	}
	*message = *r.mapper.ChatMessageToEntity(modelMessage)
	return nil
}

func (r *LiveClassRepositoryImpl) FindChatMessages(ctx context.Context, specs ...specification.Specification) ([]*entity.ClassChatMessage, error) {
	var modelMessages []*model.ClassChatMessage
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelMessages).Error; err != nil {
		return nil, err
	}

	out := make([]*entity.ClassChatMessage, 0, len(modelMessages))
	for _, mo := range modelMessages {
		out = append(out, r.mapper.ChatMessageToEntity(mo))
	}
	return out, nil
}
