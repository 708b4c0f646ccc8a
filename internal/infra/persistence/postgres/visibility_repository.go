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

// visibilityRepository implements the domain.VisibilityRepository interface using GORM.
type visibilityRepository struct {
	db *gorm.DB
}

// NewVisibilityRepository is the constructor for visibilityRepository.
func NewVisibilityRepository(db *gorm.DB) repository.VisibilityRepository {
	return &visibilityRepository{db: db}
}

// CreateCheckRequest records a new audit request.
func (repo *visibilityRepository) CreateCheckRequest(ctx context.Context, req *entity.VisibilityCheckRequest) error {
	reqM := &model.VisibilityCheckRequestModel{
		ID:          req.ID,
		BusinessID:  req.BusinessID,
		CheckType:   req.CheckType,
		InputData:   req.InputData,
		RequestedAt: req.RequestedAt,
	}

	if err := repo.db.WithContext(ctx).Create(reqM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBusinessNotFound.WrapMessage("business does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create visibility check request")
	}

	req.ID = reqM.ID

	return nil
}

// FindCheckRequestByID retrieves a single audit request by ID.
func (repo *visibilityRepository) FindCheckRequestByID(ctx context.Context, id uuid.UUID) (*entity.VisibilityCheckRequest, error) {
	var reqM model.VisibilityCheckRequestModel
	err := repo.db.WithContext(ctx).
		Where("request_id = ?", id).
		First(&reqM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCheckRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find visibility check request")
	}

	return toCheckRequestDomain(&reqM), nil
}

// FindChecksByBusiness retrieves a page of a business's audit requests, newest first.
func (repo *visibilityRepository) FindChecksByBusiness(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]*entity.VisibilityCheckRequest, error) {
	var models []model.VisibilityCheckRequestModel
	err := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("requested_at desc").
		Limit(limit).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list visibility check requests")
	}

	result := make([]*entity.VisibilityCheckRequest, 0, len(models))
	for i := range models {
		result = append(result, toCheckRequestDomain(&models[i]))
	}

	return result, nil
}

// CreateResult records a completed audit result.
func (repo *visibilityRepository) CreateResult(ctx context.Context, res *entity.VisibilityCheckResult) error {
	resM := &model.VisibilityCheckResultModel{
		ID:              res.ID,
		RequestID:       res.RequestID,
		BusinessID:      res.BusinessID,
		VisibilityScore: res.VisibilityScore,
		IssuesFound:     res.IssuesFound,
		Recommendations: res.Recommendations,
		OutputSnapshot:  res.OutputSnapshot,
		CompletedAt:     res.CompletedAt,
	}

	if err := repo.db.WithContext(ctx).Create(resM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBusinessNotFound.WrapMessage("business or request does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create visibility check result")
	}

	res.ID = resM.ID

	return nil
}

// FindResultsByBusiness retrieves a page of a business's audit results, newest first.
func (repo *visibilityRepository) FindResultsByBusiness(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]*entity.VisibilityCheckResult, error) {
	var models []model.VisibilityCheckResultModel
	err := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("completed_at desc").
		Limit(limit).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list visibility check results")
	}

	result := make([]*entity.VisibilityCheckResult, 0, len(models))
	for i := range models {
		resM := &models[i]
		result = append(result, &entity.VisibilityCheckResult{
			ID:              resM.ID,
			RequestID:       resM.RequestID,
			BusinessID:      resM.BusinessID,
			VisibilityScore: resM.VisibilityScore,
			IssuesFound:     resM.IssuesFound,
			Recommendations: resM.Recommendations,
			OutputSnapshot:  resM.OutputSnapshot,
			CompletedAt:     resM.CompletedAt,
		})
	}

	return result, nil
}

// CreateSuggestion records a new improvement suggestion.
func (repo *visibilityRepository) CreateSuggestion(ctx context.Context, suggestion *entity.VisibilitySuggestion) error {
	suggestionM := &model.VisibilitySuggestionModel{
		ID:             suggestion.ID,
		BusinessID:     suggestion.BusinessID,
		SuggestionType: suggestion.SuggestionType,
		Title:          suggestion.Title,
		Status:         suggestion.Status,
		SuggestedAt:    suggestion.SuggestedAt,
		ResolvedAt:     suggestion.ResolvedAt,
	}

	if err := repo.db.WithContext(ctx).Create(suggestionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBusinessNotFound.WrapMessage("business does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create visibility suggestion")
	}

	suggestion.ID = suggestionM.ID

	return nil
}

// FindSuggestionsByBusiness retrieves a page of a business's suggestions, newest first.
func (repo *visibilityRepository) FindSuggestionsByBusiness(ctx context.Context, businessID uuid.UUID, status string, limit, offset int) ([]*entity.VisibilitySuggestion, error) {
	query := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var models []model.VisibilitySuggestionModel
	err := query.
		Order("suggested_at desc").
		Limit(limit).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list visibility suggestions")
	}

	result := make([]*entity.VisibilitySuggestion, 0, len(models))
	for i := range models {
		suggestionM := &models[i]
		result = append(result, &entity.VisibilitySuggestion{
			ID:             suggestionM.ID,
			BusinessID:     suggestionM.BusinessID,
			SuggestionType: suggestionM.SuggestionType,
			Title:          suggestionM.Title,
			Status:         suggestionM.Status,
			SuggestedAt:    suggestionM.SuggestedAt,
			ResolvedAt:     suggestionM.ResolvedAt,
		})
	}

	return result, nil
}

func toCheckRequestDomain(data *model.VisibilityCheckRequestModel) *entity.VisibilityCheckRequest {
	return &entity.VisibilityCheckRequest{
		ID:          data.ID,
		BusinessID:  data.BusinessID,
		CheckType:   data.CheckType,
		InputData:   data.InputData,
		RequestedAt: data.RequestedAt,
	}
}
