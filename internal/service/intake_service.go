package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/models"
	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/repository"
	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/transfer"
	"github.com/adamn1225/nextnoetics-gorm-sub000/pkg/utils"
)

type IntakeService interface {
	Submit(ctx context.Context, is *transfer.IntakeSubmission) (string, error)
	ListAll(ctx context.Context) ([]*models.ProjectIntake, error)
}

type intakeService struct {
	ir repository.IntakeRepository
	ur repository.UserRepository
	nr repository.NotificationRepository
}

func NewIntakeService(
	ir repository.IntakeRepository,
	ur repository.UserRepository,
	nr repository.NotificationRepository) IntakeService {
	return &intakeService{ir: ir, ur: ur, nr: nr}
}

// Submit stores a public intake form submission and returns a reference code
// the visitor can quote. Every admin gets a notification.
func (s *intakeService) Submit(ctx context.Context, is *transfer.IntakeSubmission) (string, error) {
	if is == nil || is.Email == "" || is.Name == "" {
		err := errors.New("name and email are required")
		slog.Info(err.Error())
		return "", err
	}
	if !strings.Contains(is.Email, "@") {
		err := errors.New("invalid email address")
		slog.Info(err.Error())
		return "", err
	}

	reference, err := utils.GenerateRandomKey(8)
	if err != nil {
		slog.Info(err.Error())
		return "", fmt.Errorf("Error generating reference code")
	}

	if _, err := s.ir.Create(ctx, &models.ProjectIntake{
		Name:        is.Name,
		Email:       is.Email,
		Company:     is.Company,
		ProjectType: is.ProjectType,
		Budget:      is.Budget,
		Details:     is.Details,
		Reference:   reference,
	}); err != nil {
		return "", fmt.Errorf("Error saving submission")
	}

	admins, err := s.ur.ListByRole(ctx, models.RoleAdmin)
	if err != nil {
		slog.Info(err.Error())
		return reference, nil
	}
	for _, admin := range admins {
		if _, err := s.nr.Create(ctx, &models.Notification{
			UserID:  admin.ID,
			Message: fmt.Sprintf("New project intake from %s (%s)", is.Name, is.Email),
		}); err != nil {
			slog.Info(err.Error())
		}
	}

	return reference, nil
}

func (s *intakeService) ListAll(ctx context.Context) ([]*models.ProjectIntake, error) {
	return s.ir.ListAll(ctx)
}
