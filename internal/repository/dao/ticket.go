package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrTicketNotFound = errors.New("ticket not found")

type Ticket struct {
	ID uint `gorm:"primaryKey"`

	EventID          uint   `gorm:"not null;index"`
	TicketCategoryID uint   `gorm:"not null;index"`
	TicketNumber     string `gorm:"unique;not null"`
	AttendeeName     string `gorm:"not null"`
	AttendeeEmail    string `gorm:"not null"`
	Status           string `gorm:"not null;default:active"`
	RedeemedAt       *time.Time

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type TicketDAO struct {
	db *gorm.DB
}

func NewTicketDAO(db *gorm.DB) *TicketDAO {
	return &TicketDAO{
		db: db,
	}
}

func (d *TicketDAO) Insert(ctx context.Context, ticket Ticket) (Ticket, error) {
	result := d.db.WithContext(ctx).Create(&ticket)
	if result.Error != nil {
		return Ticket{}, result.Error
	}

	return ticket, nil
}

func (d *TicketDAO) FindByID(ctx context.Context, id uint) (Ticket, error) {
	var ticket Ticket

	result := d.db.WithContext(ctx).First(&ticket, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Ticket{}, ErrTicketNotFound
		}

		return Ticket{}, result.Error
	}

	return ticket, nil
}

func (d *TicketDAO) ListByEventID(ctx context.Context, eventID uint, limit, offset int) ([]Ticket, int64, error) {
	var (
		tickets []Ticket
		total   int64
	)

	query := d.db.WithContext(ctx).Model(&Ticket{}).Where("event_id = ?", eventID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	result := query.
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&tickets)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return tickets, total, nil
}

func (d *TicketDAO) Update(ctx context.Context, ticket Ticket) (Ticket, error) {
	result := d.db.WithContext(ctx).Save(&ticket)
	if result.Error != nil {
		return Ticket{}, result.Error
	}

	return ticket, nil
}
