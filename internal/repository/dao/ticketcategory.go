package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Liku-id/wukong-admin-api/internal/pkg/datewindow"
)

var ErrTicketCategoryNotFound = errors.New("ticket category not found")

type TicketCategory struct {
	ID uint `gorm:"primaryKey"`

	EventID          uint   `gorm:"not null;index"`
	Name             string `gorm:"not null"`
	Description      string `gorm:"not null"`
	ColorHex         string `gorm:"not null"`
	Price            int64  `gorm:"not null"`
	Quantity         int    `gorm:"not null"`
	MaxOrderQuantity int    `gorm:"not null"`
	IsGroup          bool   `gorm:"not null;default:false"`
	GroupSize        int

	// Window edges keep their raw picker parts alongside the display
	// string, so resubmission comparison can reconstruct canonical
	// timestamps.
	SalesStartDate  datatypes.JSONType[datewindow.Value]
	SalesEndDate    datatypes.JSONType[datewindow.Value]
	TicketStartDate datatypes.JSONType[datewindow.Value]
	TicketEndDate   datatypes.JSONType[datewindow.Value]

	Status         string `gorm:"not null;default:pending;index"`
	RejectedFields datatypes.JSONSlice[string]
	RejectedReason string

	OriginalSalesStartDate  string
	OriginalSalesEndDate    string
	OriginalTicketStartDate string
	OriginalTicketEndDate   string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (TicketCategory) TableName() string {
	return "ticket_categories"
}

type TicketCategoryDAO struct {
	db *gorm.DB
}

func NewTicketCategoryDAO(db *gorm.DB) *TicketCategoryDAO {
	return &TicketCategoryDAO{
		db: db,
	}
}

func (d *TicketCategoryDAO) Insert(ctx context.Context, category TicketCategory) (TicketCategory, error) {
	result := d.db.WithContext(ctx).Create(&category)
	if result.Error != nil {
		return TicketCategory{}, result.Error
	}

	return category, nil
}

func (d *TicketCategoryDAO) FindByID(ctx context.Context, id uint) (TicketCategory, error) {
	var category TicketCategory

	result := d.db.WithContext(ctx).First(&category, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return TicketCategory{}, ErrTicketCategoryNotFound
		}

		return TicketCategory{}, result.Error
	}

	return category, nil
}

func (d *TicketCategoryDAO) FindByEventID(ctx context.Context, eventID uint) ([]TicketCategory, error) {
	var categories []TicketCategory

	result := d.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("id").
		Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}

	return categories, nil
}

func (d *TicketCategoryDAO) Update(ctx context.Context, category TicketCategory) (TicketCategory, error) {
	result := d.db.WithContext(ctx).Save(&category)
	if result.Error != nil {
		return TicketCategory{}, result.Error
	}

	return category, nil
}

func (d *TicketCategoryDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&TicketCategory{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTicketCategoryNotFound
	}

	return nil
}
