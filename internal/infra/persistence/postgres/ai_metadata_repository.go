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

// aiMetadataRepository implements the domain.AiMetadataRepository interface using GORM.
type aiMetadataRepository struct {
	db *gorm.DB
}

// NewAiMetadataRepository is the constructor for aiMetadataRepository.
func NewAiMetadataRepository(db *gorm.DB) repository.AiMetadataRepository {
	return &aiMetadataRepository{db: db}
}

// FindByID retrieves a single metadata record by its unique ID.
func (repo *aiMetadataRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AiMetadata, error) {
	var metaM model.AiMetadataModel
	err := repo.db.WithContext(ctx).
		Where("ai_metadata_id = ?", id).
		First(&metaM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMetadataNotFound
		}

		return nil, errors.Wrap(err, "failed to find ai metadata by id")
	}

	return toAiMetadataDomain(&metaM), nil
}

// FindLatestByBusiness retrieves the current metadata record of a business.
func (repo *aiMetadataRepository) FindLatestByBusiness(ctx context.Context, businessID uuid.UUID) (*entity.AiMetadata, error) {
	var metaM model.AiMetadataModel
	err := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("generated_at desc").
		First(&metaM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMetadataNotFound
		}

		return nil, errors.Wrap(err, "failed to find ai metadata by business")
	}

	return toAiMetadataDomain(&metaM), nil
}

// FindByBusiness retrieves a page of metadata records, newest first.
func (repo *aiMetadataRepository) FindByBusiness(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]*entity.AiMetadata, error) {
	var models []model.AiMetadataModel
	err := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("generated_at desc").
		Limit(limit).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ai metadata")
	}

	result := make([]*entity.AiMetadata, 0, len(models))
	for i := range models {
		result = append(result, toAiMetadataDomain(&models[i]))
	}

	return result, nil
}

// Create persists a new metadata record.
func (repo *aiMetadataRepository) Create(ctx context.Context, meta *entity.AiMetadata) error {
	metaM := fromAiMetadataDomain(meta)

	if err := repo.db.WithContext(ctx).Create(metaM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBusinessNotFound.WrapMessage("business does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create ai metadata")
	}

	meta.ID = metaM.ID

	return nil
}

// Update modifies an existing metadata record in place.
func (repo *aiMetadataRepository) Update(ctx context.Context, meta *entity.AiMetadata) error {
	metaM := fromAiMetadataDomain(meta)

	if err := repo.db.WithContext(ctx).Save(metaM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update ai metadata")
	}

	return nil
}

// Delete removes a metadata record by ID.
func (repo *aiMetadataRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("ai_metadata_id = ?", id).
		Delete(&model.AiMetadataModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete ai metadata")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMetadataNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toAiMetadataDomain(data *model.AiMetadataModel) *entity.AiMetadata {
	if data == nil {
		return nil
	}

	return &entity.AiMetadata{
		ID:                data.ID,
		BusinessID:        data.BusinessID,
		ExtractedInsights: data.ExtractedInsights,
		DetectedEntities:  data.DetectedEntities,
		Keywords:          data.Keywords,
		IntentLabels:      data.IntentLabels,
		GeneratedAt:       data.GeneratedAt,
	}
}

func fromAiMetadataDomain(data *entity.AiMetadata) *model.AiMetadataModel {
	if data == nil {
		return nil
	}

	return &model.AiMetadataModel{
		ID:                data.ID,
		BusinessID:        data.BusinessID,
		ExtractedInsights: data.ExtractedInsights,
		DetectedEntities:  data.DetectedEntities,
		Keywords:          data.Keywords,
		IntentLabels:      data.IntentLabels,
		GeneratedAt:       data.GeneratedAt,
	}
}
