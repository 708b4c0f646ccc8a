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

// operationalInfoRepository implements the domain.OperationalInfoRepository interface using GORM.
type operationalInfoRepository struct {
	db *gorm.DB
}

// NewOperationalInfoRepository is the constructor for operationalInfoRepository.
func NewOperationalInfoRepository(db *gorm.DB) repository.OperationalInfoRepository {
	return &operationalInfoRepository{db: db}
}

// FindByBusiness retrieves the operational info of a business.
func (repo *operationalInfoRepository) FindByBusiness(ctx context.Context, businessID uuid.UUID) (*entity.OperationalInfo, error) {
	var infoM model.OperationalInfoModel
	err := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		First(&infoM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOperationalInfoNotFound
		}

		return nil, errors.Wrap(err, "failed to find operational info")
	}

	return toOperationalInfoDomain(&infoM), nil
}

// Create persists a new operational info record. The unique index on
// business_id backs up the use case's existence check.
func (repo *operationalInfoRepository) Create(ctx context.Context, info *entity.OperationalInfo) error {
	infoM := fromOperationalInfoDomain(info)

	if err := repo.db.WithContext(ctx).Create(infoM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrOperationalInfoExists.WrapMessage("business already has operational info")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBusinessNotFound.WrapMessage("business does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required operational information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create operational info")
	}

	info.ID = infoM.ID
	info.CreatedAt = infoM.CreatedAt

	return nil
}

// Update modifies an existing operational info record.
func (repo *operationalInfoRepository) Update(ctx context.Context, info *entity.OperationalInfo) error {
	infoM := fromOperationalInfoDomain(info)

	if err := repo.db.WithContext(ctx).Save(infoM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update operational info")
	}

	info.UpdatedAt = infoM.UpdatedAt

	return nil
}

// DeleteByBusiness removes the operational info record of a business.
func (repo *operationalInfoRepository) DeleteByBusiness(ctx context.Context, businessID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Delete(&model.OperationalInfoModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete operational info")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOperationalInfoNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toOperationalInfoDomain(data *model.OperationalInfoModel) *entity.OperationalInfo {
	if data == nil {
		return nil
	}

	return &entity.OperationalInfo{
		ID:                    data.ID,
		BusinessID:            data.BusinessID,
		OpeningHours:          data.OpeningHours,
		ClosingHours:          data.ClosingHours,
		OffDays:               data.OffDays,
		DeliveryOptions:       data.DeliveryOptions,
		ReservationOptions:    data.ReservationOptions,
		WifiAvailable:         data.WifiAvailable,
		AccessibilityFeatures: data.AccessibilityFeatures,
		NearbyParkingSpot:     data.NearbyParkingSpot,
		SpecialNotes:          data.SpecialNotes,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

func fromOperationalInfoDomain(data *entity.OperationalInfo) *model.OperationalInfoModel {
	if data == nil {
		return nil
	}

	return &model.OperationalInfoModel{
		ID:                    data.ID,
		BusinessID:            data.BusinessID,
		OpeningHours:          data.OpeningHours,
		ClosingHours:          data.ClosingHours,
		OffDays:               data.OffDays,
		DeliveryOptions:       data.DeliveryOptions,
		ReservationOptions:    data.ReservationOptions,
		WifiAvailable:         data.WifiAvailable,
		AccessibilityFeatures: data.AccessibilityFeatures,
		NearbyParkingSpot:     data.NearbyParkingSpot,
		SpecialNotes:          data.SpecialNotes,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}
