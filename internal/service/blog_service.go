package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/models"
	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/repository"
	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/transfer"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type BlogService interface {
	Create(ctx context.Context, userID int64, bc *transfer.BlogPostCreation) (int64, error)
	Update(ctx context.Context, userID, postID int64, bc *transfer.BlogPostCreation) error
	ListForOrg(ctx context.Context, userID, orgID int64) ([]*models.BlogPost, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	Remove(ctx context.Context, userID, postID int64) error
}

type blogService struct {
	br repository.BlogPostRepository
	or repository.OrganizationRepository
}

func NewBlogService(br repository.BlogPostRepository, or repository.OrganizationRepository) BlogService {
	return &blogService{br: br, or: or}
}

func (s *blogService) Create(ctx context.Context, userID int64, bc *transfer.BlogPostCreation) (int64, error) {
	post, err := s.buildPost(ctx, userID, bc)
	if err != nil {
		return 0, err
	}

	existing, exists, err := s.br.GetBySlug(ctx, post.Slug)
	if err != nil {
		return 0, err
	}
	if exists && existing != nil {
		err = fmt.Errorf("slug already in use: %s", post.Slug)
		slog.Info(err.Error())
		return 0, err
	}

	return s.br.Create(ctx, post)
}

func (s *blogService) Update(ctx context.Context, userID, postID int64, bc *transfer.BlogPostCreation) error {
	existing, ok, err := s.br.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("post not found")
	}

	post, err := s.buildPost(ctx, userID, bc)
	if err != nil {
		return err
	}
	post.ID = existing.ID
	post.AuthorID = existing.AuthorID
	post.CreatedAt = existing.CreatedAt

	return s.br.Update(ctx, post)
}

func (s *blogService) ListForOrg(ctx context.Context, userID, orgID int64) ([]*models.BlogPost, error) {
	member, err := s.or.IsMember(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, errors.New("user is not a member of this organization")
	}
	return s.br.ListByOrgID(ctx, orgID)
}

// GetPublishedBySlug backs the public blog page; drafts are invisible.
func (s *blogService) GetPublishedBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	post, ok, err := s.br.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !ok || post.Status != models.BlogStatusPublished {
		return nil, errors.New("post not found")
	}
	return post, nil
}

func (s *blogService) Remove(ctx context.Context, userID, postID int64) error {
	post, ok, err := s.br.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("post not found")
	}

	member, err := s.or.IsMember(ctx, post.OrganizationID, userID)
	if err != nil {
		return err
	}
	if !member {
		return errors.New("user is not a member of this organization")
	}
	return s.br.Remove(ctx, postID)
}

func (s *blogService) buildPost(ctx context.Context, userID int64, bc *transfer.BlogPostCreation) (*models.BlogPost, error) {
	if bc == nil || bc.Title == "" {
		err := errors.New("post title cannot be empty")
		slog.Info(err.Error())
		return nil, err
	}

	member, err := s.or.IsMember(ctx, bc.OrganizationID, userID)
	if err != nil {
		return nil, err
	}
	if !member {
		err = errors.New("user is not a member of this organization")
		slog.Info(err.Error())
		return nil, err
	}

	slug := strings.ToLower(strings.TrimSpace(bc.Slug))
	if !slugPattern.MatchString(slug) {
		err = fmt.Errorf("invalid slug: %q", bc.Slug)
		slog.Info(err.Error())
		return nil, err
	}

	status := bc.Status
	if status == "" {
		status = models.BlogStatusDraft
	}
	if status != models.BlogStatusDraft && status != models.BlogStatusPublished {
		err = fmt.Errorf("invalid post status: %s", bc.Status)
		slog.Info(err.Error())
		return nil, err
	}

	post := &models.BlogPost{
		OrganizationID: bc.OrganizationID,
		AuthorID:       userID,
		Title:          bc.Title,
		Slug:           slug,
		Content:        bc.Content,
		ImageURL:       bc.ImageURL,
		Status:         status,
	}

	if bc.PublishAt != "" {
		publishAt, err := time.Parse(scheduledTimeLayout, bc.PublishAt)
		if err != nil {
			err = fmt.Errorf("invalid publish time format: %w", err)
			slog.Info(err.Error())
			return nil, err
		}
		post.PublishAt = &publishAt
	}

	return post, nil
}
