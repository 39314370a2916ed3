package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/Liku-id/wukong-admin-api/internal/domain"
	"github.com/Liku-id/wukong-admin-api/internal/repository"
)

// MaxAssetSize caps uploads at 1MB, matching the dashboard's file
// picker limit.
const MaxAssetSize = 1 << 20

var (
	ErrAssetNotFound = repository.ErrAssetNotFound
	ErrAssetTooLarge = errors.New("file size exceeds the 1MB limit")
)

type ObjectStore interface {
	Put(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) error
	Remove(ctx context.Context, objectKey string) error
}

type AssetRepository interface {
	Create(ctx context.Context, asset domain.Asset) (domain.Asset, error)
	FindByID(ctx context.Context, id uint) (domain.Asset, error)
}

type AssetService struct {
	repo  AssetRepository
	store ObjectStore
}

func NewAssetService(repo AssetRepository, store ObjectStore) *AssetService {
	return &AssetService{
		repo:  repo,
		store: store,
	}
}

// Upload stores the file in object storage and records its metadata.
func (s *AssetService) Upload(ctx context.Context, fileName, contentType string, size int64, reader io.Reader) (domain.Asset, error) {
	if size > MaxAssetSize {
		return domain.Asset{}, ErrAssetTooLarge
	}

	objectKey := fmt.Sprintf("assets/%d_%s", time.Now().UnixNano(), fileName)

	if err := s.store.Put(ctx, objectKey, reader, size, contentType); err != nil {
		return domain.Asset{}, fmt.Errorf("s.store.Put -> %w", err)
	}

	asset, err := s.repo.Create(ctx, domain.Asset{
		FileName:    fileName,
		ObjectKey:   objectKey,
		ContentType: contentType,
		Size:        size,
	})
	if err != nil {
		if removeErr := s.store.Remove(ctx, objectKey); removeErr != nil {
			zap.L().Warn("failed to clean up orphaned object", zap.String("key", objectKey), zap.Error(removeErr))
		}

		return domain.Asset{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return asset, nil
}

func (s *AssetService) Get(ctx context.Context, id uint) (domain.Asset, error) {
	asset, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Asset{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return asset, nil
}
