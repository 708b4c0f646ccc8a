package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "vault/internal/delivery/context"
	"vault/internal/domain/entity"
	domainerrors "vault/internal/domain/errors"
	"vault/internal/domain/repository"
	"vault/internal/domain/service"
	"vault/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// aiMetadataService implements the AiMetadataUsecase interface.
type aiMetadataService struct {
	txManager repository.TransactionManager
	generator service.TextGenerator
	logger    *slog.Logger
}

// AiMetadataServiceParams defines the dependencies for creating an
// aiMetadataService.
type AiMetadataServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Generator service.TextGenerator
	Logger    *slog.Logger
}

// NewAiMetadataService is the constructor for aiMetadataService.
func NewAiMetadataService(params AiMetadataServiceParams) usecase.AiMetadataUsecase {
	return &aiMetadataService{
		txManager: params.TxManager,
		generator: params.Generator,
		logger:    params.Logger,
	}
}

func (srv *aiMetadataService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateMetadata records a metadata entry after verifying the business exists.
func (srv *aiMetadataService) CreateMetadata(ctx context.Context, input *usecase.CreateMetadataInput) (*entity.AiMetadata, error) {
	var created *entity.AiMetadata

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := requireBusiness(ctx, repoFactory, input.BusinessID); err != nil {
			return err
		}

		meta := &entity.AiMetadata{
			BusinessID:        input.BusinessID,
			ExtractedInsights: input.ExtractedInsights,
			DetectedEntities:  input.DetectedEntities,
			Keywords:          input.Keywords,
			IntentLabels:      input.IntentLabels,
		}
		if err := repoFactory.AiMetadataRepo().Create(ctx, meta); err != nil {
			return errors.Wrap(err, "failed to create ai metadata")
		}
		created = meta

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute ai metadata creation transaction")
	}

	return created, nil
}

// ListMetadata retrieves a page of a business's metadata records, newest first.
func (srv *aiMetadataService) ListMetadata(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]*entity.AiMetadata, error) {
	limit = clampLimit(limit)
	if offset < 0 {
		offset = 0
	}

	var page []*entity.AiMetadata

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		records, err := repoFactory.AiMetadataRepo().FindByBusiness(ctx, businessID, limit, offset)
		if err != nil {
			return errors.Wrap(err, "failed to list ai metadata")
		}
		page = records

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute ai metadata list transaction")
	}

	return page, nil
}

// GetMetadata retrieves a single record by ID.
func (srv *aiMetadataService) GetMetadata(ctx context.Context, id uuid.UUID) (*entity.AiMetadata, error) {
	var found *entity.AiMetadata

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		meta, err := repoFactory.AiMetadataRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrMetadataNotFound) {
				return errors.Wrap(domainerrors.ErrMetadataNotFound, "ai metadata not found")
			}

			return errors.Wrap(err, "failed to find ai metadata")
		}
		found = meta

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute ai metadata lookup transaction")
	}

	return found, nil
}

// DeleteMetadata removes a record.
func (srv *aiMetadataService) DeleteMetadata(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.AiMetadataRepo().Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrMetadataNotFound) {
				return errors.Wrap(domainerrors.ErrMetadataNotFound, "ai metadata not found")
			}

			return errors.Wrap(err, "failed to delete ai metadata")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute ai metadata deletion transaction")
	}

	return nil
}

// metadataContext is the profile snapshot fed into the prompt builder.
type metadataContext struct {
	business *entity.BusinessProfile
	services []*entity.Service
	opInfo   *entity.OperationalInfo
}

// GenerateMetadata collates the profile into a prompt, asks the model for
// SEO signals and upserts the business's metadata record.
func (srv *aiMetadataService) GenerateMetadata(ctx context.Context, businessID uuid.UUID) (*entity.AiMetadata, error) {
	srv.log(ctx).Info("Generating ai metadata", slog.Any("businessID", businessID))

	var snapshot metadataContext

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		business, err := repoFactory.BusinessRepo().FindByID(ctx, businessID)
		if err != nil {
			if errors.Is(err, repository.ErrBusinessNotFound) {
				return errors.Wrap(domainerrors.ErrBusinessNotFound, "business not found")
			}

			return errors.Wrap(err, "failed to find business")
		}
		snapshot.business = business

		// Offerings and hours enrich the prompt but are not required.
		services, err := repoFactory.ServiceRepo().FindByBusiness(ctx, businessID, 0, 0)
		if err != nil {
			srv.log(ctx).Warn("Failed to load services for metadata context", slog.Any("error", err))
		} else {
			snapshot.services = services
		}

		opInfo, err := repoFactory.OperationalInfoRepo().FindByBusiness(ctx, businessID)
		if err != nil && !errors.Is(err, repository.ErrOperationalInfoNotFound) {
			srv.log(ctx).Warn("Failed to load operational info for metadata context", slog.Any("error", err))
		} else if err == nil {
			snapshot.opInfo = opInfo
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute metadata context transaction")
	}

	prompt := buildMetadataPrompt(&snapshot)

	raw, err := srv.generator.Generate(ctx, prompt)
	if err != nil {
		srv.log(ctx).Error("Metadata generation failed", slog.Any("businessID", businessID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUpstreamFailure, "metadata generation failed")
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &parsed); err != nil {
		srv.log(ctx).Error("Metadata response is not valid JSON", slog.Any("businessID", businessID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUpstreamFailure, "metadata response is not valid JSON")
	}

	keywords := joinOrString(parsed["keywords"], ", ")
	insights := joinOrString(parsed["extracted_insights"], ", ")
	intents := joinOrString(parsed["intent_labels"], ", ")
	entities := joinOrString(parsed["detected_entities"], ", ")

	var result *entity.AiMetadata

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		metaRepo := repoFactory.AiMetadataRepo()

		existing, err := metaRepo.FindLatestByBusiness(ctx, businessID)
		if err != nil && !errors.Is(err, repository.ErrMetadataNotFound) {
			return errors.Wrap(err, "failed to find existing ai metadata")
		}

		if existing != nil {
			existing.Keywords = keywords
			existing.ExtractedInsights = insights
			existing.IntentLabels = intents
			existing.DetectedEntities = entities
			existing.GeneratedAt = time.Now().UTC()
			if err := metaRepo.Update(ctx, existing); err != nil {
				return errors.Wrap(err, "failed to update ai metadata")
			}
			result = existing

			return nil
		}

		meta := &entity.AiMetadata{
			BusinessID:        businessID,
			Keywords:          keywords,
			ExtractedInsights: insights,
			IntentLabels:      intents,
			DetectedEntities:  entities,
			GeneratedAt:       time.Now().UTC(),
		}
		if err := metaRepo.Create(ctx, meta); err != nil {
			return errors.Wrap(err, "failed to create ai metadata")
		}
		result = meta

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute metadata upsert transaction")
	}

	return result, nil
}

// buildMetadataPrompt renders the profile snapshot into the generation prompt.
func buildMetadataPrompt(snapshot *metadataContext) string {
	business := snapshot.business

	offerings := "General services"
	if len(snapshot.services) > 0 {
		parts := make([]string, 0, len(snapshot.services))
		for _, svc := range snapshot.services {
			parts = append(parts, fmt.Sprintf("%s ($%s)", svc.Name, svc.Price.String()))
		}
		offerings = strings.Join(parts, ", ")
	}

	hours := "Not listed"
	if snapshot.opInfo != nil {
		hours = fmt.Sprintf("Open: %s - %s, Off: %s",
			snapshot.opInfo.OpeningHours, snapshot.opInfo.ClosingHours,
			strings.Join(snapshot.opInfo.OffDays, ", "))
	}

	description := business.Description
	if description == "" {
		description = "No description provided."
	}
	slogan := business.QuoteSlogan
	if slogan == "" {
		slogan = "None"
	}

	contextText := fmt.Sprintf(
		"Business Name: %s\nType: %s\nDescription: %s\nSlogan: %s\nOfferings: %s\nHours: %s",
		business.Name, business.BusinessType, description, slogan, offerings, hours,
	)

	return fmt.Sprintf(
		"Analyze this business for SEO optimization: %s. Generate keywords, pitch, intents, and entities in JSON.",
		contextText,
	)
}
