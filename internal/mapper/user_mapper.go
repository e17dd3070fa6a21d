package mapper

import (
	"encoding/json"

	"fikrswap-academy-be/internal/entity"
	"fikrswap-academy-be/internal/model"

	"gorm.io/datatypes"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToModel(e *entity.User) *model.User {
	if e == nil {
		return nil
	}

	var meta datatypes.JSON
	if e.Metadata != nil {
		if raw, err := json.Marshal(e.Metadata); err == nil {
			meta = datatypes.JSON(raw)
		}
	}

	return &model.User{
		Id:              e.Id,
		Email:           e.Email,
		PasswordHash:    e.PasswordHash,
		FullName:        e.FullName,
		Role:            string(e.Role),
		Status:          string(e.Status),
		EmailVerified:   e.EmailVerified,
		EmailVerifiedAt: e.EmailVerifiedAt,
		AvatarURL:       e.AvatarURL,
		Metadata:        meta,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func (m *UserMapper) ToEntity(mo *model.User) *entity.User {
	if mo == nil {
		return nil
	}

	var meta map[string]interface{}
	if len(mo.Metadata) > 0 {
		_ = json.Unmarshal(mo.Metadata, &meta)
	}

	return &entity.User{
		Id:              mo.Id,
		Email:           mo.Email,
		PasswordHash:    mo.PasswordHash,
		FullName:        mo.FullName,
		Role:            entity.UserRole(mo.Role),
		Status:          entity.UserStatus(mo.Status),
		EmailVerified:   mo.EmailVerified,
		EmailVerifiedAt: mo.EmailVerifiedAt,
		AvatarURL:       mo.AvatarURL,
		Metadata:        meta,
		CreatedAt:       mo.CreatedAt,
		UpdatedAt:       mo.UpdatedAt,
	}
}

func (m *UserMapper) ToEntities(models []*model.User) []*entity.User {
	out := make([]*entity.User, 0, len(models))
	for _, mo := range models {
		out = append(out, m.ToEntity(mo))
	}
	return out
}
