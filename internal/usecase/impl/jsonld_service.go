package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"vault/config"
	deliverycontext "vault/internal/delivery/context"
	"vault/internal/domain/entity"
	domainerrors "vault/internal/domain/errors"
	"vault/internal/domain/repository"
	"vault/internal/domain/schemaorg"
	"vault/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// jsonLDService implements the JsonLDUsecase interface.
type jsonLDService struct {
	txManager repository.TransactionManager
	baseURL   string
	logger    *slog.Logger
}

// JsonLDServiceParams defines the dependencies for creating a jsonLDService.
type JsonLDServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Config    *config.Config
	Logger    *slog.Logger
}

// NewJsonLDService is the constructor for jsonLDService.
func NewJsonLDService(params JsonLDServiceParams) usecase.JsonLDUsecase {
	return &jsonLDService{
		txManager: params.TxManager,
		baseURL:   params.Config.Public.BaseURL,
		logger:    params.Logger,
	}
}

func (srv *jsonLDService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GenerateFeed synthesizes a JSON-LD document from the business profile and
// all of its related records, then appends the snapshot to the feed history.
func (srv *jsonLDService) GenerateFeed(ctx context.Context, businessID uuid.UUID) (*entity.JsonLDFeed, error) {
	srv.log(ctx).Info("Generating jsonld feed", slog.Any("businessID", businessID))

	var feed *entity.JsonLDFeed

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		src, err := srv.collectSource(ctx, repoFactory, businessID)
		if err != nil {
			return err
		}

		document := schemaorg.BuildDocument(srv.baseURL, *src)
		payload, err := json.Marshal(document)
		if err != nil {
			return errors.Wrap(err, "failed to serialize jsonld document")
		}

		row := &entity.JsonLDFeed{
			BusinessID:  businessID,
			SchemaType:  schemaorg.TypeFor(src.Business.BusinessType),
			JsonLDData:  string(payload),
			IsValid:     true,
			GeneratedAt: time.Now().UTC(),
		}
		if err := repoFactory.JsonLDRepo().Create(ctx, row); err != nil {
			return errors.Wrap(err, "failed to create jsonld feed")
		}
		feed = row

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute jsonld generation transaction",
			slog.Any("businessID", businessID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute jsonld generation transaction")
	}

	return feed, nil
}

// collectSource loads the business and every related record the document is
// synthesized from. Only the business itself is mandatory.
func (srv *jsonLDService) collectSource(ctx context.Context, repoFactory repository.RepositoryFactory, businessID uuid.UUID) (*schemaorg.Source, error) {
	business, err := repoFactory.BusinessRepo().FindByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBusinessNotFound, "business not found")
		}

		return nil, errors.Wrap(err, "failed to find business")
	}

	services, err := repoFactory.ServiceRepo().FindByBusiness(ctx, businessID, 0, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load services")
	}

	coupons, err := repoFactory.CouponRepo().FindActiveByBusiness(ctx, businessID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load active coupons")
	}

	media, err := repoFactory.MediaRepo().FindByBusiness(ctx, businessID, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load media assets")
	}

	src := &schemaorg.Source{
		Business:      business,
		Services:      services,
		ActiveCoupons: coupons,
		Media:         media,
	}

	opInfo, err := repoFactory.OperationalInfoRepo().FindByBusiness(ctx, businessID)
	if err != nil && !errors.Is(err, repository.ErrOperationalInfoNotFound) {
		return nil, errors.Wrap(err, "failed to load operational info")
	}
	if err == nil {
		src.OperationalInfo = opInfo
	}

	meta, err := repoFactory.AiMetadataRepo().FindLatestByBusiness(ctx, businessID)
	if err != nil && !errors.Is(err, repository.ErrMetadataNotFound) {
		return nil, errors.Wrap(err, "failed to load ai metadata")
	}
	if err == nil {
		src.AiMetadata = meta
	}

	return src, nil
}

// ListFeeds retrieves the full feed history of a business, newest first.
func (srv *jsonLDService) ListFeeds(ctx context.Context, businessID uuid.UUID) ([]*entity.JsonLDFeed, error) {
	var feeds []*entity.JsonLDFeed

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		rows, err := repoFactory.JsonLDRepo().FindByBusiness(ctx, businessID)
		if err != nil {
			return errors.Wrap(err, "failed to list jsonld feeds")
		}
		feeds = rows

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute jsonld list transaction")
	}

	return feeds, nil
}

// GetFeed retrieves a single feed row by ID.
func (srv *jsonLDService) GetFeed(ctx context.Context, id uuid.UUID) (*entity.JsonLDFeed, error) {
	var feed *entity.JsonLDFeed

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		row, err := repoFactory.JsonLDRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrFeedNotFound) {
				return errors.Wrap(domainerrors.ErrFeedNotFound, "jsonld feed not found")
			}

			return errors.Wrap(err, "failed to find jsonld feed")
		}
		feed = row

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute jsonld lookup transaction")
	}

	return feed, nil
}

// DeleteFeed removes a feed row.
func (srv *jsonLDService) DeleteFeed(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.JsonLDRepo().Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrFeedNotFound) {
				return errors.Wrap(domainerrors.ErrFeedNotFound, "jsonld feed not found")
			}

			return errors.Wrap(err, "failed to delete jsonld feed")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute jsonld deletion transaction")
	}

	return nil
}
