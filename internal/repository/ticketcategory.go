package repository

import (
	"context"
	"fmt"

	"gorm.io/datatypes"

	"github.com/Liku-id/wukong-admin-api/internal/domain"
	"github.com/Liku-id/wukong-admin-api/internal/repository/dao"
)

var ErrTicketCategoryNotFound = dao.ErrTicketCategoryNotFound

type TicketCategoryDAO interface {
	Insert(ctx context.Context, category dao.TicketCategory) (dao.TicketCategory, error)
	FindByID(ctx context.Context, id uint) (dao.TicketCategory, error)
	FindByEventID(ctx context.Context, eventID uint) ([]dao.TicketCategory, error)
	Update(ctx context.Context, category dao.TicketCategory) (dao.TicketCategory, error)
	Delete(ctx context.Context, id uint) error
}

type TicketCategoryRepository struct {
	dao TicketCategoryDAO
}

func NewTicketCategoryRepository(dao TicketCategoryDAO) *TicketCategoryRepository {
	return &TicketCategoryRepository{
		dao: dao,
	}
}

func (r *TicketCategoryRepository) Create(ctx context.Context, category domain.TicketCategory) (domain.TicketCategory, error) {
	created, err := r.dao.Insert(ctx, categoryDomainToDAO(category))
	if err != nil {
		return domain.TicketCategory{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return categoryDAOToDomain(created), nil
}

func (r *TicketCategoryRepository) FindByID(ctx context.Context, id uint) (domain.TicketCategory, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.TicketCategory{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return categoryDAOToDomain(found), nil
}

func (r *TicketCategoryRepository) FindByEventID(ctx context.Context, eventID uint) ([]domain.TicketCategory, error) {
	found, err := r.dao.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByEventID -> %w", err)
	}

	categories := make([]domain.TicketCategory, 0, len(found))
	for _, c := range found {
		categories = append(categories, categoryDAOToDomain(c))
	}

	return categories, nil
}

func (r *TicketCategoryRepository) Update(ctx context.Context, category domain.TicketCategory) (domain.TicketCategory, error) {
	updated, err := r.dao.Update(ctx, categoryDomainToDAO(category))
	if err != nil {
		return domain.TicketCategory{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return categoryDAOToDomain(updated), nil
}

func (r *TicketCategoryRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func categoryDAOToDomain(c dao.TicketCategory) domain.TicketCategory {
	return domain.TicketCategory{
		ID:               c.ID,
		EventID:          c.EventID,
		Name:             c.Name,
		Description:      c.Description,
		ColorHex:         c.ColorHex,
		Price:            c.Price,
		Quantity:         c.Quantity,
		MaxOrderQuantity: c.MaxOrderQuantity,
		IsGroup:          c.IsGroup,
		GroupSize:        c.GroupSize,
		SalesStartDate:   c.SalesStartDate.Data(),
		SalesEndDate:     c.SalesEndDate.Data(),
		TicketStartDate:  c.TicketStartDate.Data(),
		TicketEndDate:    c.TicketEndDate.Data(),
		Status:           domain.TicketCategoryStatus(c.Status),
		RejectedFields:   c.RejectedFields,
		RejectedReason:   c.RejectedReason,

		OriginalSalesStartDate:  c.OriginalSalesStartDate,
		OriginalSalesEndDate:    c.OriginalSalesEndDate,
		OriginalTicketStartDate: c.OriginalTicketStartDate,
		OriginalTicketEndDate:   c.OriginalTicketEndDate,

		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func categoryDomainToDAO(c domain.TicketCategory) dao.TicketCategory {
	return dao.TicketCategory{
		ID:               c.ID,
		EventID:          c.EventID,
		Name:             c.Name,
		Description:      c.Description,
		ColorHex:         c.ColorHex,
		Price:            c.Price,
		Quantity:         c.Quantity,
		MaxOrderQuantity: c.MaxOrderQuantity,
		IsGroup:          c.IsGroup,
		GroupSize:        c.GroupSize,
		SalesStartDate:   datatypes.NewJSONType(c.SalesStartDate),
		SalesEndDate:     datatypes.NewJSONType(c.SalesEndDate),
		TicketStartDate:  datatypes.NewJSONType(c.TicketStartDate),
		TicketEndDate:    datatypes.NewJSONType(c.TicketEndDate),
		Status:           string(c.Status),
		RejectedFields:   datatypes.NewJSONSlice(c.RejectedFields),
		RejectedReason:   c.RejectedReason,

		OriginalSalesStartDate:  c.OriginalSalesStartDate,
		OriginalSalesEndDate:    c.OriginalSalesEndDate,
		OriginalTicketStartDate: c.OriginalTicketStartDate,
		OriginalTicketEndDate:   c.OriginalTicketEndDate,
	}
}
