package repository

import (
	"context"
	"log/slog"

	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/models"
	"gorm.io/gorm"
)

type OrganizationRepository interface {
	Create(ctx context.Context, org *models.Organization) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Organization, bool, error)
	ListAll(ctx context.Context) ([]*models.Organization, error)
	ListByUserID(ctx context.Context, userID int64) ([]*models.Organization, error)
	AddMember(ctx context.Context, member *models.OrganizationMember) (int64, error)
	RemoveMember(ctx context.Context, orgID, userID int64) error
	ListMembers(ctx context.Context, orgID int64) ([]*models.OrganizationMember, error)
	IsMember(ctx context.Context, orgID, userID int64) (bool, error)
	Remove(ctx context.Context, id int64) error
}

type organizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) OrganizationRepository {
	return &organizationRepository{db: db}
}

func (r *organizationRepository) Create(ctx context.Context, org *models.Organization) (int64, error) {
	if err := r.db.WithContext(ctx).Create(org).Error; err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return org.ID, nil
}

func (r *organizationRepository) GetByID(ctx context.Context, id int64) (*models.Organization, bool, error) {
	var org models.Organization
	err := r.db.WithContext(ctx).First(&org, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}
	return &org, true, nil
}

func (r *organizationRepository) ListAll(ctx context.Context) ([]*models.Organization, error) {
	var orgs []*models.Organization
	if err := r.db.WithContext(ctx).Find(&orgs).Error; err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return orgs, nil
}

func (r *organizationRepository) ListByUserID(ctx context.Context, userID int64) ([]*models.Organization, error) {
	var orgs []*models.Organization
	err := r.db.WithContext(ctx).
		Joins("JOIN organization_members ON organization_members.organization_id = organizations.id").
		Where("organization_members.user_id = ?", userID).
		Find(&orgs).Error
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return orgs, nil
}

func (r *organizationRepository) AddMember(ctx context.Context, member *models.OrganizationMember) (int64, error) {
	if err := r.db.WithContext(ctx).Create(member).Error; err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return member.ID, nil
}

func (r *organizationRepository) RemoveMember(ctx context.Context, orgID, userID int64) error {
	err := r.db.WithContext(ctx).
		Where("organization_id = ? AND user_id = ?", orgID, userID).
		Delete(&models.OrganizationMember{}).Error
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *organizationRepository) ListMembers(ctx context.Context, orgID int64) ([]*models.OrganizationMember, error) {
	var members []*models.OrganizationMember
	err := r.db.WithContext(ctx).Where("organization_id = ?", orgID).Find(&members).Error
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return members, nil
}

func (r *organizationRepository) IsMember(ctx context.Context, orgID, userID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.OrganizationMember{}).
		Where("organization_id = ? AND user_id = ?", orgID, userID).
		Count(&count).Error
	if err != nil {
		slog.Info(err.Error())
		return false, err
	}
	return count > 0, nil
}

func (r *organizationRepository) Remove(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Delete(&models.Organization{}, id).Error
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
