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

// mediaRepository implements the domain.MediaRepository interface using GORM.
type mediaRepository struct {
	db *gorm.DB
}

// NewMediaRepository is the constructor for mediaRepository.
func NewMediaRepository(db *gorm.DB) repository.MediaRepository {
	return &mediaRepository{db: db}
}

// FindByID retrieves a single asset by its unique ID.
func (repo *mediaRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MediaAsset, error) {
	var assetM model.MediaAssetModel
	err := repo.db.WithContext(ctx).
		Where("asset_id = ?", id).
		First(&assetM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMediaNotFound
		}

		return nil, errors.Wrap(err, "failed to find media asset by id")
	}

	return toMediaDomain(&assetM), nil
}

// FindByBusiness retrieves assets of a business in upload order, oldest
// first. A limit of 0 returns all rows.
func (repo *mediaRepository) FindByBusiness(ctx context.Context, businessID uuid.UUID, limit int) ([]*entity.MediaAsset, error) {
	query := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("uploaded_at asc")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var models []model.MediaAssetModel
	if err := query.Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list media assets")
	}

	return toMediaDomainList(models), nil
}

// ListByBusiness retrieves a page of assets ordered by upload time, newest first.
func (repo *mediaRepository) ListByBusiness(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]*entity.MediaAsset, error) {
	var models []model.MediaAssetModel
	err := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("uploaded_at desc").
		Limit(limit).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list media assets")
	}

	return toMediaDomainList(models), nil
}

// CountByBusiness returns the number of assets a business has.
func (repo *mediaRepository) CountByBusiness(ctx context.Context, businessID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.MediaAssetModel{}).
		Where("business_id = ?", businessID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count media assets")
	}

	return count, nil
}

// Create persists a new asset record.
func (repo *mediaRepository) Create(ctx context.Context, asset *entity.MediaAsset) error {
	assetM := fromMediaDomain(asset)

	if err := repo.db.WithContext(ctx).Create(assetM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBusinessNotFound.WrapMessage("business does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create media asset")
	}

	asset.ID = assetM.ID
	asset.UploadedAt = assetM.UploadedAt

	return nil
}

// Delete removes an asset record by ID.
func (repo *mediaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("asset_id = ?", id).
		Delete(&model.MediaAssetModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete media asset")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMediaNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toMediaDomain(data *model.MediaAssetModel) *entity.MediaAsset {
	if data == nil {
		return nil
	}

	return &entity.MediaAsset{
		ID:         data.ID,
		BusinessID: data.BusinessID,
		MediaType:  data.MediaType,
		URL:        data.URL,
		AltText:    data.AltText,
		UploadedAt: data.UploadedAt,
	}
}

func toMediaDomainList(models []model.MediaAssetModel) []*entity.MediaAsset {
	result := make([]*entity.MediaAsset, 0, len(models))
	for i := range models {
		result = append(result, toMediaDomain(&models[i]))
	}

	return result
}

func fromMediaDomain(data *entity.MediaAsset) *model.MediaAssetModel {
	if data == nil {
		return nil
	}

	return &model.MediaAssetModel{
		ID:         data.ID,
		BusinessID: data.BusinessID,
		MediaType:  data.MediaType,
		URL:        data.URL,
		AltText:    data.AltText,
		UploadedAt: data.UploadedAt,
	}
}
