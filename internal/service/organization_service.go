package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/models"
	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/repository"
)

type OrganizationService interface {
	Create(ctx context.Context, userID int64, name, website string) (int64, error)
	ListForUser(ctx context.Context, userID int64) ([]*models.Organization, error)
	ListAll(ctx context.Context) ([]*models.Organization, error)
	AddMember(ctx context.Context, actorID, orgID, userID int64, role string) error
	RemoveMember(ctx context.Context, actorID, orgID, userID int64) error
	ListMembers(ctx context.Context, actorID, orgID int64) ([]*models.OrganizationMember, error)
}

type organizationService struct {
	or repository.OrganizationRepository
}

func NewOrganizationService(or repository.OrganizationRepository) OrganizationService {
	return &organizationService{or: or}
}

// Create makes the creating user the org owner.
func (s *organizationService) Create(ctx context.Context, userID int64, name, website string) (int64, error) {
	if name == "" {
		err := errors.New("organization name cannot be empty")
		slog.Info(err.Error())
		return 0, err
	}

	orgID, err := s.or.Create(ctx, &models.Organization{Name: name, Website: website})
	if err != nil {
		return 0, err
	}

	if _, err := s.or.AddMember(ctx, &models.OrganizationMember{
		OrganizationID: orgID,
		UserID:         userID,
		Role:           models.MemberRoleOwner,
	}); err != nil {
		return 0, err
	}
	return orgID, nil
}

func (s *organizationService) ListForUser(ctx context.Context, userID int64) ([]*models.Organization, error) {
	return s.or.ListByUserID(ctx, userID)
}

func (s *organizationService) ListAll(ctx context.Context) ([]*models.Organization, error) {
	return s.or.ListAll(ctx)
}

func (s *organizationService) AddMember(ctx context.Context, actorID, orgID, userID int64, role string) error {
	if err := s.requireMembership(ctx, orgID, actorID); err != nil {
		return err
	}

	if role == "" {
		role = models.MemberRoleMember
	}
	if role != models.MemberRoleOwner && role != models.MemberRoleMember {
		err := errors.New("invalid member role")
		slog.Info(err.Error())
		return err
	}

	already, err := s.or.IsMember(ctx, orgID, userID)
	if err != nil {
		return err
	}
	if already {
		return errors.New("user is already a member")
	}

	_, err = s.or.AddMember(ctx, &models.OrganizationMember{
		OrganizationID: orgID,
		UserID:         userID,
		Role:           role,
	})
	return err
}

func (s *organizationService) RemoveMember(ctx context.Context, actorID, orgID, userID int64) error {
	if err := s.requireMembership(ctx, orgID, actorID); err != nil {
		return err
	}
	return s.or.RemoveMember(ctx, orgID, userID)
}

func (s *organizationService) ListMembers(ctx context.Context, actorID, orgID int64) ([]*models.OrganizationMember, error) {
	if err := s.requireMembership(ctx, orgID, actorID); err != nil {
		return nil, err
	}
	return s.or.ListMembers(ctx, orgID)
}

func (s *organizationService) requireMembership(ctx context.Context, orgID, userID int64) error {
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
