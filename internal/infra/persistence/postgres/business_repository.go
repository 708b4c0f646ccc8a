package postgres

import (
	"context"

	"vault/internal/domain/entity"
	domainerrors "vault/internal/domain/errors"
	"vault/internal/domain/repository"
	"vault/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// businessRepository implements the domain.BusinessRepository interface using GORM.
type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{db: db}
}

// FindByID retrieves a single business by its unique ID.
func (repo *businessRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BusinessProfile, error) {
	var businessM model.BusinessProfileModel
	err := repo.db.WithContext(ctx).
		Where("business_id = ?", id).
		First(&businessM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by id")
	}

	return toBusinessDomain(&businessM), nil
}

// FindByOwner retrieves the first business owned by the given user.
func (repo *businessRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.BusinessProfile, error) {
	var businessM model.BusinessProfileModel
	err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at asc").
		First(&businessM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by owner")
	}

	return toBusinessDomain(&businessM), nil
}

// FindAll retrieves every business profile in the system.
func (repo *businessRepository) FindAll(ctx context.Context) ([]*entity.BusinessProfile, error) {
	var models []model.BusinessProfileModel
	if err := repo.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list businesses")
	}

	return toBusinessDomainList(models), nil
}

// List retrieves a page of businesses ordered by creation date, newest first.
func (repo *businessRepository) List(ctx context.Context, limit, offset int) ([]*entity.BusinessProfile, error) {
	var models []model.BusinessProfileModel
	err := repo.db.WithContext(ctx).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list businesses")
	}

	return toBusinessDomainList(models), nil
}

// Create persists a new business profile.
func (repo *businessRepository) Create(ctx context.Context, business *entity.BusinessProfile) error {
	businessM := fromBusinessDomain(business)

	if err := repo.db.WithContext(ctx).Create(businessM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOwnerNotFound.WrapMessage("owner does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required business information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create business")
	}

	business.ID = businessM.ID
	business.CreatedAt = businessM.CreatedAt

	return nil
}

// Update modifies an existing business profile.
func (repo *businessRepository) Update(ctx context.Context, business *entity.BusinessProfile) error {
	businessM := fromBusinessDomain(business)

	if err := repo.db.WithContext(ctx).Save(businessM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required business information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update business")
	}

	business.UpdatedAt = businessM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toBusinessDomain(data *model.BusinessProfileModel) *entity.BusinessProfile {
	if data == nil {
		return nil
	}

	return &entity.BusinessProfile{
		ID:                 data.ID,
		OwnerID:            data.OwnerID,
		Name:               data.Name,
		Description:        data.Description,
		BusinessType:       data.BusinessType,
		Phone:              data.Phone,
		Website:            data.Website,
		Address:            data.Address,
		Latitude:           data.Latitude,
		Longitude:          data.Longitude,
		Timezone:           data.Timezone,
		QuoteSlogan:        data.QuoteSlogan,
		IdentificationMark: data.IdentificationMark,
		Published:          data.Published,
		Version:            data.Version,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func toBusinessDomainList(models []model.BusinessProfileModel) []*entity.BusinessProfile {
	result := make([]*entity.BusinessProfile, 0, len(models))
	for i := range models {
		result = append(result, toBusinessDomain(&models[i]))
	}

	return result
}

func fromBusinessDomain(data *entity.BusinessProfile) *model.BusinessProfileModel {
	if data == nil {
		return nil
	}

	return &model.BusinessProfileModel{
		ID:                 data.ID,
		OwnerID:            data.OwnerID,
		Name:               data.Name,
		Description:        data.Description,
		BusinessType:       data.BusinessType,
		Phone:              data.Phone,
		Website:            data.Website,
		Address:            data.Address,
		Latitude:           data.Latitude,
		Longitude:          data.Longitude,
		Timezone:           data.Timezone,
		QuoteSlogan:        data.QuoteSlogan,
		IdentificationMark: data.IdentificationMark,
		Published:          data.Published,
		Version:            data.Version,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
