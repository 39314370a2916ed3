package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrAssetNotFound = errors.New("asset not found")

type Asset struct {
	ID uint `gorm:"primaryKey"`

	FileName    string `gorm:"not null"`
	ObjectKey   string `gorm:"unique;not null"`
	ContentType string `gorm:"not null"`
	Size        int64  `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
}

type AssetDAO struct {
	db *gorm.DB
}

func NewAssetDAO(db *gorm.DB) *AssetDAO {
	return &AssetDAO{
		db: db,
	}
}

func (d *AssetDAO) Insert(ctx context.Context, asset Asset) (Asset, error) {
	result := d.db.WithContext(ctx).Create(&asset)
	if result.Error != nil {
		return Asset{}, result.Error
	}

	return asset, nil
}

func (d *AssetDAO) FindByID(ctx context.Context, id uint) (Asset, error) {
	var asset Asset

	result := d.db.WithContext(ctx).First(&asset, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Asset{}, ErrAssetNotFound
		}

		return Asset{}, result.Error
	}

	return asset, nil
}
