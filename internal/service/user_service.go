package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/models"
	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/repository"
)

type UserService interface {
	GetUserInfo(ctx context.Context, id int64) (*models.User, error)
	IsAdmin(ctx context.Context, id int64) (bool, error)
	ListClients(ctx context.Context) ([]*models.User, error)
	RemoveUser(ctx context.Context, userID int64) error
}

type userService struct {
	u repository.UserRepository
}

func NewUserService(u repository.UserRepository) UserService {
	return &userService{
		u: u,
	}
}

func (s *userService) GetUserInfo(ctx context.Context, id int64) (*models.User, error) {
	user, isExist, err := s.u.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("Error getting user info")
	}

	if !isExist {
		err = errors.New("User not found")
		slog.Info(err.Error())
		return nil, fmt.Errorf("User doesn't exist")
	}

	return user, nil
}

func (s *userService) IsAdmin(ctx context.Context, id int64) (bool, error) {
	user, isExist, err := s.u.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if !isExist {
		return false, nil
	}
	return user.Role == models.RoleAdmin, nil
}

func (s *userService) ListClients(ctx context.Context) ([]*models.User, error) {
	return s.u.ListByRole(ctx, models.RoleUser)
}

func (s *userService) RemoveUser(ctx context.Context, userID int64) error {
	return s.u.Remove(ctx, userID)
}
