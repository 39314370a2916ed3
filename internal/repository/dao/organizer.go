package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrOrganizerEmailExists = errors.New("organizer already exists")
	ErrOrganizerNotFound    = errors.New("organizer not found")
)

type Organizer struct {
	ID uint `gorm:"primaryKey"`

	Name        string `gorm:"not null"`
	Email       string `gorm:"unique;not null"`
	PhoneNumber string
	LogoAssetID *uint
	Status      string `gorm:"not null;default:active"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type OrganizerDAO struct {
	db *gorm.DB
}

func NewOrganizerDAO(db *gorm.DB) *OrganizerDAO {
	return &OrganizerDAO{
		db: db,
	}
}

func (d *OrganizerDAO) Insert(ctx context.Context, organizer Organizer) (Organizer, error) {
	result := d.db.WithContext(ctx).Create(&organizer)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, `unique constraint "uni_organizers_email"`) {
			return Organizer{}, ErrOrganizerEmailExists
		}

		return Organizer{}, result.Error
	}

	return organizer, nil
}

func (d *OrganizerDAO) FindByID(ctx context.Context, id uint) (Organizer, error) {
	var organizer Organizer

	result := d.db.WithContext(ctx).First(&organizer, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Organizer{}, ErrOrganizerNotFound
		}

		return Organizer{}, result.Error
	}

	return organizer, nil
}

func (d *OrganizerDAO) List(ctx context.Context, limit, offset int) ([]Organizer, int64, error) {
	var (
		organizers []Organizer
		total      int64
	)

	if err := d.db.WithContext(ctx).Model(&Organizer{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	result := d.db.WithContext(ctx).
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&organizers)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return organizers, total, nil
}

func (d *OrganizerDAO) Update(ctx context.Context, organizer Organizer) (Organizer, error) {
	result := d.db.WithContext(ctx).Save(&organizer)
	if result.Error != nil {
		return Organizer{}, result.Error
	}

	return organizer, nil
}

func (d *OrganizerDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Organizer{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOrganizerNotFound
	}

	return nil
}
