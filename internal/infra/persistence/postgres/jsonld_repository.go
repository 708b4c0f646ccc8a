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

// jsonldFeedRepository implements the domain.JsonLDFeedRepository interface using GORM.
type jsonldFeedRepository struct {
	db *gorm.DB
}

// NewJsonLDFeedRepository is the constructor for jsonldFeedRepository.
func NewJsonLDFeedRepository(db *gorm.DB) repository.JsonLDFeedRepository {
	return &jsonldFeedRepository{db: db}
}

// FindByID retrieves a single feed row by its unique ID.
func (repo *jsonldFeedRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.JsonLDFeed, error) {
	var feedM model.JsonLDFeedModel
	err := repo.db.WithContext(ctx).
		Where("feed_id = ?", id).
		First(&feedM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFeedNotFound
		}

		return nil, errors.Wrap(err, "failed to find jsonld feed by id")
	}

	return toJsonLDFeedDomain(&feedM), nil
}

// FindByBusiness retrieves the full feed history of a business, newest first.
func (repo *jsonldFeedRepository) FindByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.JsonLDFeed, error) {
	var models []model.JsonLDFeedModel
	err := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("generated_at desc").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list jsonld feeds")
	}

	result := make([]*entity.JsonLDFeed, 0, len(models))
	for i := range models {
		result = append(result, toJsonLDFeedDomain(&models[i]))
	}

	return result, nil
}

// CountByBusiness returns the number of feed rows a business has.
func (repo *jsonldFeedRepository) CountByBusiness(ctx context.Context, businessID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.JsonLDFeedModel{}).
		Where("business_id = ?", businessID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count jsonld feeds")
	}

	return count, nil
}

// Create appends a new feed row.
func (repo *jsonldFeedRepository) Create(ctx context.Context, feed *entity.JsonLDFeed) error {
	feedM := fromJsonLDFeedDomain(feed)

	if err := repo.db.WithContext(ctx).Create(feedM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBusinessNotFound.WrapMessage("business does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create jsonld feed")
	}

	feed.ID = feedM.ID

	return nil
}

// Delete removes a feed row by ID.
func (repo *jsonldFeedRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("feed_id = ?", id).
		Delete(&model.JsonLDFeedModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete jsonld feed")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFeedNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toJsonLDFeedDomain(data *model.JsonLDFeedModel) *entity.JsonLDFeed {
	if data == nil {
		return nil
	}

	return &entity.JsonLDFeed{
		ID:               data.ID,
		BusinessID:       data.BusinessID,
		SchemaType:       data.SchemaType,
		JsonLDData:       data.JsonLDData,
		IsValid:          data.IsValid,
		ValidationErrors: data.ValidationErrors,
		GeneratedAt:      data.GeneratedAt,
	}
}

func fromJsonLDFeedDomain(data *entity.JsonLDFeed) *model.JsonLDFeedModel {
	if data == nil {
		return nil
	}

	return &model.JsonLDFeedModel{
		ID:               data.ID,
		BusinessID:       data.BusinessID,
		SchemaType:       data.SchemaType,
		JsonLDData:       data.JsonLDData,
		IsValid:          data.IsValid,
		ValidationErrors: data.ValidationErrors,
		GeneratedAt:      data.GeneratedAt,
	}
}
