package repository

import (
	"context"
	"fmt"

	"github.com/Liku-id/wukong-admin-api/internal/domain"
	"github.com/Liku-id/wukong-admin-api/internal/repository/dao"
)

var ErrAssetNotFound = dao.ErrAssetNotFound

type AssetDAO interface {
	Insert(ctx context.Context, asset dao.Asset) (dao.Asset, error)
	FindByID(ctx context.Context, id uint) (dao.Asset, error)
}

type AssetRepository struct {
	dao AssetDAO
}

func NewAssetRepository(dao AssetDAO) *AssetRepository {
	return &AssetRepository{
		dao: dao,
	}
}

func (r *AssetRepository) Create(ctx context.Context, asset domain.Asset) (domain.Asset, error) {
	created, err := r.dao.Insert(ctx, dao.Asset{
		FileName:    asset.FileName,
		ObjectKey:   asset.ObjectKey,
		ContentType: asset.ContentType,
		Size:        asset.Size,
	})
	if err != nil {
		return domain.Asset{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *AssetRepository) FindByID(ctx context.Context, id uint) (domain.Asset, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Asset{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *AssetRepository) daoToDomain(a dao.Asset) domain.Asset {
	return domain.Asset{
		ID:          a.ID,
		FileName:    a.FileName,
		ObjectKey:   a.ObjectKey,
		ContentType: a.ContentType,
		Size:        a.Size,
		CreatedAt:   a.CreatedAt,
	}
}
