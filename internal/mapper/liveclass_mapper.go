package mapper

import (
	"fikrswap-academy-be/internal/entity"
	"fikrswap-academy-be/internal/model"

	"gorm.io/datatypes"
)

type LiveClassMapper struct{}

func NewLiveClassMapper() *LiveClassMapper {
	return &LiveClassMapper{}
}

func (m *LiveClassMapper) ToModel(e *entity.LiveClass) *model.LiveClass {
	if e == nil {
		return nil
	}
	return &model.LiveClass{
		Id:          e.Id,
		CourseId:    e.CourseId,
		Title:       e.Title,
		Instructor:  e.Instructor,
		Category:    e.Category,
		Description: e.Description,
		Topics:      datatypes.JSONSlice[string](e.Topics),
		StartTime:   e.StartTime,
		Duration:    e.Duration,
		Attendees:   e.Attendees,
		CoverImage:  e.CoverImage,
		CreatedAt:   e.CreatedAt,
	}
}

func (m *LiveClassMapper) ToEntity(mo *model.LiveClass) *entity.LiveClass {
	if mo == nil {
		return nil
	}
	return &entity.LiveClass{
		Id:          mo.Id,
		CourseId:    mo.CourseId,
		Title:       mo.Title,
		Instructor:  mo.Instructor,
		Category:    mo.Category,
		Description: mo.Description,
		Topics:      []string(mo.Topics),
		StartTime:   mo.StartTime,
		Duration:    mo.Duration,
		Attendees:   mo.Attendees,
		CoverImage:  mo.CoverImage,
		CreatedAt:   mo.CreatedAt,
	}
}

func (m *LiveClassMapper) ToEntities(models []*model.LiveClass) []*entity.LiveClass {
	out := make([]*entity.LiveClass, 0, len(models))
	for _, mo := range models {
		out = append(out, m.ToEntity(mo))
	}
	return out
}

func (m *LiveClassMapper) ChatMessageToModel(e *entity.ClassChatMessage) *model.ClassChatMessage {
	if e == nil {
		return nil
	}
	return &model.ClassChatMessage{
		Id:          e.Id,
		LiveClassId: e.LiveClassId,
		UserId:      e.UserId,
		AuthorName:  e.AuthorName,
		Body:        e.Body,
		CreatedAt:   e.CreatedAt,
	}
}

func (m *LiveClassMapper) ChatMessageToEntity(mo *model.ClassChatMessage) *entity.ClassChatMessage {
	if mo == nil {
		return nil
	}
	return &entity.ClassChatMessage{
		Id:          mo.Id,
		LiveClassId: mo.LiveClassId,
		UserId:      mo.UserId,
		AuthorName:  mo.AuthorName,
		Body:        mo.Body,
		CreatedAt:   mo.CreatedAt,
	}
}
