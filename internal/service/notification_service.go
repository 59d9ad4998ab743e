package service

import (
	"context"

	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/models"
	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/repository"
)

type NotificationService interface {
	List(ctx context.Context, userID int64) ([]*models.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID int64) error
}

type notificationService struct {
	nr repository.NotificationRepository
}

func NewNotificationService(nr repository.NotificationRepository) NotificationService {
	return &notificationService{nr: nr}
}

func (s *notificationService) List(ctx context.Context, userID int64) ([]*models.Notification, error) {
	return s.nr.ListByUserID(ctx, userID)
}

func (s *notificationService) MarkRead(ctx context.Context, userID, notificationID int64) error {
	return s.nr.MarkRead(ctx, notificationID, userID)
}
