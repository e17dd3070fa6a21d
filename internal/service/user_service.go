package service

import (
	"context"
	"errors"

	"fikrswap-academy-be/internal/dto"
	"fikrswap-academy-be/internal/repository/specification"
	"fikrswap-academy-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{uowFactory: uowFactory}
}

func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	var avatarURL string
	if user.AvatarURL != nil {
		avatarURL = *user.AvatarURL
	}

	return &dto.UserProfileResponse{
		Id:        user.Id,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      string(user.Role),
		Status:    string(user.Status),
		AvatarURL: avatarURL,
		Metadata:  user.Metadata,
		CreatedAt: user.CreatedAt,
	}, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := uow.UserRepository().UpdateProfile(ctx, userId, req.FullName, req.AvatarURL, req.Metadata); err != nil {
		return nil, err
	}

	return s.GetProfile(ctx, userId)
}
