package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/models"
	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/repository"
	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/transfer"
)

type TaskService interface {
	Create(ctx context.Context, userID int64, tc *transfer.TaskCreation) (int64, error)
	ListForOrg(ctx context.Context, userID, orgID int64) ([]*models.Task, error)
	UpdateStatus(ctx context.Context, userID, taskID int64, status string) error
	Remove(ctx context.Context, userID, taskID int64) error
}

type taskService struct {
	tr repository.TaskRepository
	or repository.OrganizationRepository
	nr repository.NotificationRepository
}

func NewTaskService(
	tr repository.TaskRepository,
	or repository.OrganizationRepository,
	nr repository.NotificationRepository) TaskService {
	return &taskService{tr: tr, or: or, nr: nr}
}

func (s *taskService) Create(ctx context.Context, userID int64, tc *transfer.TaskCreation) (int64, error) {
	if tc == nil || tc.Title == "" {
		err := errors.New("task title cannot be empty")
		slog.Info(err.Error())
		return 0, err
	}

	if err := s.requireMembership(ctx, tc.OrganizationID, userID); err != nil {
		return 0, err
	}

	task := &models.Task{
		OrganizationID: tc.OrganizationID,
		CreatedBy:      userID,
		AssigneeID:     tc.AssigneeID,
		Title:          tc.Title,
		Description:    tc.Description,
		Status:         models.TaskStatusOpen,
	}

	if tc.DueDate != "" {
		due, err := time.Parse("2006-01-02", tc.DueDate)
		if err != nil {
			err = fmt.Errorf("invalid due date format: %w", err)
			slog.Info(err.Error())
			return 0, err
		}
		task.DueDate = &due
	}

	id, err := s.tr.Create(ctx, task)
	if err != nil {
		return 0, err
	}

	if tc.AssigneeID != nil && *tc.AssigneeID != userID {
		if _, err := s.nr.Create(ctx, &models.Notification{
			UserID:  *tc.AssigneeID,
			Message: fmt.Sprintf("You were assigned a new task: %s", tc.Title),
		}); err != nil {
			slog.Info(err.Error())
		}
	}
	return id, nil
}

func (s *taskService) ListForOrg(ctx context.Context, userID, orgID int64) ([]*models.Task, error) {
	if err := s.requireMembership(ctx, orgID, userID); err != nil {
		return nil, err
	}
	return s.tr.ListByOrgID(ctx, orgID)
}

func (s *taskService) UpdateStatus(ctx context.Context, userID, taskID int64, status string) error {
	if status != models.TaskStatusOpen && status != models.TaskStatusInProgress && status != models.TaskStatusDone {
		err := fmt.Errorf("invalid task status: %s", status)
		slog.Info(err.Error())
		return err
	}

	task, ok, err := s.tr.GetByID(ctx, taskID)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("task not found")
	}

	if err := s.requireMembership(ctx, task.OrganizationID, userID); err != nil {
		return err
	}
	return s.tr.UpdateStatus(ctx, status, taskID)
}

func (s *taskService) Remove(ctx context.Context, userID, taskID int64) error {
	task, ok, err := s.tr.GetByID(ctx, taskID)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("task not found")
	}

	if err := s.requireMembership(ctx, task.OrganizationID, userID); err != nil {
		return err
	}
	return s.tr.Remove(ctx, taskID)
}

func (s *taskService) requireMembership(ctx context.Context, orgID, userID int64) error {
	member, err := s.or.IsMember(ctx, orgID, userID)
	if err != nil {
		return err
	}
	if !member {
		err = errors.New("user is not a member of this organization")
		slog.Info(err.Error())
		return err
	}
	return nil
}
