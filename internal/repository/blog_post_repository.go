package repository

import (
	"context"
	"log/slog"

	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/models"
	"gorm.io/gorm"
)

type BlogPostRepository interface {
	Create(ctx context.Context, post *models.BlogPost) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.BlogPost, bool, error)
	GetBySlug(ctx context.Context, slug string) (*models.BlogPost, bool, error)
	ListByOrgID(ctx context.Context, orgID int64) ([]*models.BlogPost, error)
	Update(ctx context.Context, post *models.BlogPost) error
	Remove(ctx context.Context, id int64) error
}

type blogPostRepository struct {
	db *gorm.DB
}

func NewBlogPostRepository(db *gorm.DB) BlogPostRepository {
	return &blogPostRepository{db: db}
}

func (r *blogPostRepository) Create(ctx context.Context, post *models.BlogPost) (int64, error) {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return post.ID, nil
}

func (r *blogPostRepository) GetByID(ctx context.Context, id int64) (*models.BlogPost, bool, error) {
	var post models.BlogPost
	err := r.db.WithContext(ctx).First(&post, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}
	return &post, true, nil
}

func (r *blogPostRepository) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, bool, error) {
	var post models.BlogPost
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&post).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}
	return &post, true, nil
}

func (r *blogPostRepository) ListByOrgID(ctx context.Context, orgID int64) ([]*models.BlogPost, error) {
	var posts []*models.BlogPost
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return posts, nil
}

func (r *blogPostRepository) Update(ctx context.Context, post *models.BlogPost) error {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *blogPostRepository) Remove(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Delete(&models.BlogPost{}, id).Error
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
