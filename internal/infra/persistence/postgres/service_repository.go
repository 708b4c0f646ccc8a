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

// serviceRepository implements the domain.ServiceRepository interface using GORM.
type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository is the constructor for serviceRepository.
func NewServiceRepository(db *gorm.DB) repository.ServiceRepository {
	return &serviceRepository{db: db}
}

// FindByID retrieves a single service by its unique ID.
func (repo *serviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	var serviceM model.ServiceModel
	err := repo.db.WithContext(ctx).
		Where("service_id = ?", id).
		First(&serviceM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find service by id")
	}

	return toServiceDomain(&serviceM), nil
}

// FindByBusiness retrieves services of a business, newest first.
// A limit of 0 returns all rows.
func (repo *serviceRepository) FindByBusiness(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]*entity.Service, error) {
	query := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at desc").
		Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}

	var models []model.ServiceModel
	if err := query.Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	result := make([]*entity.Service, 0, len(models))
	for i := range models {
		result = append(result, toServiceDomain(&models[i]))
	}

	return result, nil
}

// Create persists a new service.
func (repo *serviceRepository) Create(ctx context.Context, service *entity.Service) error {
	serviceM := fromServiceDomain(service)

	if err := repo.db.WithContext(ctx).Create(serviceM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBusinessNotFound.WrapMessage("business does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required service information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create service")
	}

	service.ID = serviceM.ID
	service.CreatedAt = serviceM.CreatedAt

	return nil
}

// Update modifies an existing service.
func (repo *serviceRepository) Update(ctx context.Context, service *entity.Service) error {
	serviceM := fromServiceDomain(service)

	if err := repo.db.WithContext(ctx).Save(serviceM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update service")
	}

	service.UpdatedAt = serviceM.UpdatedAt

	return nil
}

// Delete removes a service by ID.
func (repo *serviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("service_id = ?", id).
		Delete(&model.ServiceModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete service")
	}
	if result.RowsAffected == 0 {
		return repository.ErrServiceNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toServiceDomain(data *model.ServiceModel) *entity.Service {
	if data == nil {
		return nil
	}

	return &entity.Service{
		ID:          data.ID,
		BusinessID:  data.BusinessID,
		ServiceType: data.ServiceType,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Currency:    data.Currency,
		IsAvailable: data.IsAvailable,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromServiceDomain(data *entity.Service) *model.ServiceModel {
	if data == nil {
		return nil
	}

	return &model.ServiceModel{
		ID:          data.ID,
		BusinessID:  data.BusinessID,
		ServiceType: data.ServiceType,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Currency:    data.Currency,
		IsAvailable: data.IsAvailable,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
