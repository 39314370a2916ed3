package repository

import (
	"context"
	"fmt"

	"github.com/Liku-id/wukong-admin-api/internal/domain"
	"github.com/Liku-id/wukong-admin-api/internal/repository/dao"
)

var (
	ErrOrganizerEmailExists = dao.ErrOrganizerEmailExists
	ErrOrganizerNotFound    = dao.ErrOrganizerNotFound
)

type OrganizerDAO interface {
	Insert(ctx context.Context, organizer dao.Organizer) (dao.Organizer, error)
	FindByID(ctx context.Context, id uint) (dao.Organizer, error)
	List(ctx context.Context, limit, offset int) ([]dao.Organizer, int64, error)
	Update(ctx context.Context, organizer dao.Organizer) (dao.Organizer, error)
	Delete(ctx context.Context, id uint) error
}

type OrganizerRepository struct {
	dao OrganizerDAO
}

func NewOrganizerRepository(dao OrganizerDAO) *OrganizerRepository {
	return &OrganizerRepository{
		dao: dao,
	}
}

func (r *OrganizerRepository) Create(ctx context.Context, organizer domain.Organizer) (domain.Organizer, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(organizer))
	if err != nil {
		return domain.Organizer{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *OrganizerRepository) FindByID(ctx context.Context, id uint) (domain.Organizer, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Organizer{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *OrganizerRepository) List(ctx context.Context, limit, offset int) ([]domain.Organizer, int64, error) {
	found, total, err := r.dao.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("r.dao.List -> %w", err)
	}

	organizers := make([]domain.Organizer, 0, len(found))
	for _, o := range found {
		organizers = append(organizers, r.daoToDomain(o))
	}

	return organizers, total, nil
}

func (r *OrganizerRepository) Update(ctx context.Context, organizer domain.Organizer) (domain.Organizer, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(organizer))
	if err != nil {
		return domain.Organizer{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *OrganizerRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *OrganizerRepository) daoToDomain(o dao.Organizer) domain.Organizer {
	return domain.Organizer{
		ID:          o.ID,
		Name:        o.Name,
		Email:       o.Email,
		PhoneNumber: o.PhoneNumber,
		LogoAssetID: o.LogoAssetID,
		Status:      o.Status,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func (r *OrganizerRepository) domainToDAO(o domain.Organizer) dao.Organizer {
	return dao.Organizer{
		ID:          o.ID,
		Name:        o.Name,
		Email:       o.Email,
		PhoneNumber: o.PhoneNumber,
		LogoAssetID: o.LogoAssetID,
		Status:      o.Status,
	}
}
