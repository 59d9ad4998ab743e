package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"

	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/models"
	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/repository"
	"github.com/h2non/filetype"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const maxUploadSize = 50 * 1024 * 1024 // 50 MB

type FileService interface {
	Upload(ctx context.Context, userID int64, orgID *int64, fh *multipart.FileHeader) (*models.FileAsset, error)
	List(ctx context.Context, userID int64) ([]*models.FileAsset, error)
	ListForOrg(ctx context.Context, orgID int64) ([]*models.FileAsset, error)
	Remove(ctx context.Context, userID, fileID int64) error
}

type fileService struct {
	fr repository.FileRepository
	r2 *R2Service
}

func NewFileService(fr repository.FileRepository, r2 *R2Service) FileService {
	return &fileService{fr: fr, r2: r2}
}

func (s *fileService) Upload(ctx context.Context, userID int64, orgID *int64, fh *multipart.FileHeader) (*models.FileAsset, error) {
	if fh == nil {
		return nil, errors.New("no file provided")
	}
	if fh.Size > maxUploadSize {
		err := fmt.Errorf("file too large: %d bytes", fh.Size)
		slog.Info(err.Error())
		return nil, err
	}

	f, err := fh.Open()
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		err = errors.New("unrecognized file type")
		slog.Info(err.Error())
		return nil, err
	}

	id, err := gonanoid.New()
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	key := fmt.Sprintf("uploads/%d/%s.%s", userID, id, kind.Extension)

	if err := s.r2.Upload(ctx, key, data, kind.MIME.Value); err != nil {
		return nil, fmt.Errorf("Error uploading file")
	}

	asset := &models.FileAsset{
		UserID:         userID,
		OrganizationID: orgID,
		FileName:       fh.Filename,
		FileType:       kind.MIME.Value,
		FileSize:       fh.Size,
		ObjectKey:      key,
		FileURL:        s.r2.ObjectURL(key),
	}

	if _, err := s.fr.Create(ctx, asset); err != nil {
		return nil, fmt.Errorf("Error saving file record")
	}
	return asset, nil
}

func (s *fileService) List(ctx context.Context, userID int64) ([]*models.FileAsset, error) {
	return s.fr.ListByUserID(ctx, userID)
}

func (s *fileService) ListForOrg(ctx context.Context, orgID int64) ([]*models.FileAsset, error) {
	return s.fr.ListByOrgID(ctx, orgID)
}

func (s *fileService) Remove(ctx context.Context, userID, fileID int64) error {
	owned, err := s.fr.CheckByUserID(ctx, fileID, userID)
	if err != nil {
		return err
	}
	if !owned {
		err = errors.New("file not found for user")
		slog.Info(err.Error())
		return err
	}

	file, ok, err := s.fr.GetByID(ctx, fileID)
	if err != nil {
		return err
	}
	if ok {
		if err := s.r2.Delete(ctx, file.ObjectKey); err != nil {
			// keep the row if the object is still there
			return fmt.Errorf("Error deleting stored object")
		}
	}
	return s.fr.Remove(ctx, fileID)
}
