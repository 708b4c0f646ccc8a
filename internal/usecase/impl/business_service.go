package impl

import (
	"context"
	"log/slog"
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

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

// businessService implements the BusinessUsecase interface.
type businessService struct {
	txManager repository.TransactionManager
	cache     service.DirectoryCache
	publisher service.EventPublisher
	qrcode    service.QRCodeService
	logger    *slog.Logger
}

// BusinessServiceParams holds dependencies for businessService, injected by Fx.
type BusinessServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Cache     service.DirectoryCache
	Publisher service.EventPublisher
	QRCode    service.QRCodeService
	Logger    *slog.Logger
}

// NewBusinessService is the constructor for businessService.
func NewBusinessService(params BusinessServiceParams) usecase.BusinessUsecase {
	return &businessService{
		txManager: params.TxManager,
		cache:     params.Cache,
		publisher: params.Publisher,
		qrcode:    params.QRCode,
		logger:    params.Logger,
	}
}

func (srv *businessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateBusiness creates a profile after verifying the owner exists.
func (srv *businessService) CreateBusiness(ctx context.Context, input *usecase.CreateBusinessInput) (*entity.BusinessProfile, error) {
	srv.log(ctx).Info("Creating business", slog.Any("ownerID", input.OwnerID), slog.String("name", input.Name))

	var created *entity.BusinessProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.UserRepo().FindByID(ctx, input.OwnerID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrOwnerNotFound, "owner not found")
			}

			return errors.Wrap(err, "failed to find owner")
		}

		newBusiness := &entity.BusinessProfile{
			OwnerID:            input.OwnerID,
			Name:               input.Name,
			Description:        input.Description,
			BusinessType:       input.BusinessType,
			Phone:              input.Phone,
			Website:            input.Website,
			Address:            input.Address,
			Latitude:           input.Latitude,
			Longitude:          input.Longitude,
			Timezone:           input.Timezone,
			QuoteSlogan:        input.QuoteSlogan,
			IdentificationMark: input.IdentificationMark,
			Published:          input.Published,
		}
		if err := repoFactory.BusinessRepo().Create(ctx, newBusiness); err != nil {
			return errors.Wrap(err, "failed to create business")
		}
		created = newBusiness

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute business creation transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute business creation transaction")
	}

	srv.cache.Invalidate()
	publishBusinessChange(ctx, srv.publisher, srv.log(ctx), created, service.BusinessChangeCreated)

	return created, nil
}

// GetBusiness retrieves a single profile by ID.
func (srv *businessService) GetBusiness(ctx context.Context, id uuid.UUID) (*entity.BusinessProfile, error) {
	var found *entity.BusinessProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		business, err := repoFactory.BusinessRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrBusinessNotFound) {
				return errors.Wrap(domainerrors.ErrBusinessNotFound, "business not found")
			}

			return errors.Wrap(err, "failed to find business")
		}
		found = business

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute business lookup transaction")
	}

	return found, nil
}

// GetBusinessByOwner retrieves the first profile owned by a user.
func (srv *businessService) GetBusinessByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.BusinessProfile, error) {
	var found *entity.BusinessProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		business, err := repoFactory.BusinessRepo().FindByOwner(ctx, ownerID)
		if err != nil {
			if errors.Is(err, repository.ErrBusinessNotFound) {
				return errors.Wrap(domainerrors.ErrBusinessNotFound, "business not found")
			}

			return errors.Wrap(err, "failed to find business by owner")
		}
		found = business

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute business lookup transaction")
	}

	return found, nil
}

// ListBusinesses retrieves a page of profiles, newest first.
func (srv *businessService) ListBusinesses(ctx context.Context, limit, offset int) ([]*entity.BusinessProfile, error) {
	limit = clampLimit(limit)
	if offset < 0 {
		offset = 0
	}

	var page []*entity.BusinessProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		businesses, err := repoFactory.BusinessRepo().List(ctx, limit, offset)
		if err != nil {
			return errors.Wrap(err, "failed to list businesses")
		}
		page = businesses

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute business list transaction")
	}

	return page, nil
}

// UpdateBusiness applies a partial update and stamps the modification time.
func (srv *businessService) UpdateBusiness(ctx context.Context, id uuid.UUID, input *usecase.UpdateBusinessInput) (*entity.BusinessProfile, error) {
	srv.log(ctx).Info("Updating business", slog.Any("businessID", id))

	var updated *entity.BusinessProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		businessRepo := repoFactory.BusinessRepo()

		business, err := businessRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrBusinessNotFound) {
				return errors.Wrap(domainerrors.ErrBusinessNotFound, "business not found")
			}

			return errors.Wrap(err, "failed to find business")
		}

		applyBusinessUpdate(business, input)
		now := time.Now().UTC()
		business.UpdatedAt = &now

		if err := businessRepo.Update(ctx, business); err != nil {
			return errors.Wrap(err, "failed to update business")
		}
		updated = business

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute business update transaction", slog.Any("businessID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute business update transaction")
	}

	srv.cache.Invalidate()
	publishBusinessChange(ctx, srv.publisher, srv.log(ctx), updated, service.BusinessChangeUpdated)

	return updated, nil
}

// GetDirectory serves the aggregated public directory through the snapshot
// cache. On a miss the whole view is rebuilt inside one transaction; the
// rebuilt snapshot is only installed when no invalidation raced it.
func (srv *businessService) GetDirectory(ctx context.Context) ([]*entity.DirectoryEntry, error) {
	cached, gen, ok := srv.cache.Read()
	if ok {
		srv.log(ctx).Debug("Directory served from cache", slog.Int("entries", len(cached)))

		return cached, nil
	}

	var entries []*entity.DirectoryEntry

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		built, err := srv.buildDirectory(ctx, repoFactory)
		if err != nil {
			return err
		}
		entries = built

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to build directory snapshot", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute directory aggregation transaction")
	}

	if !srv.cache.Write(entries, gen) {
		srv.log(ctx).Debug("Directory snapshot discarded; invalidation raced the rebuild")
	}

	return entries, nil
}

// buildDirectory assembles the denormalized entries: per business its hours,
// one thumbnail asset, and all services and coupons. Any read error aborts
// the whole rebuild so a partial view never reaches the cache.
func (srv *businessService) buildDirectory(ctx context.Context, repoFactory repository.RepositoryFactory) ([]*entity.DirectoryEntry, error) {
	businesses, err := repoFactory.BusinessRepo().FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load businesses for directory")
	}

	entries := make([]*entity.DirectoryEntry, 0, len(businesses))
	for _, business := range businesses {
		info, err := repoFactory.OperationalInfoRepo().FindByBusiness(ctx, business.ID)
		if err != nil && !errors.Is(err, repository.ErrOperationalInfoNotFound) {
			return nil, errors.Wrap(err, "failed to load operational info for directory")
		}

		media, err := repoFactory.MediaRepo().FindByBusiness(ctx, business.ID, 1)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load media for directory")
		}

		services, err := repoFactory.ServiceRepo().FindByBusiness(ctx, business.ID, 0, 0)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load services for directory")
		}

		coupons, err := repoFactory.CouponRepo().FindByBusiness(ctx, business.ID, 0, 0)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load coupons for directory")
		}

		entries = append(entries, &entity.DirectoryEntry{
			Business:        business,
			OperationalInfo: info,
			Media:           media,
			Services:        services,
			Coupons:         coupons,
		})
	}

	return entries, nil
}

// BusinessQR renders a PNG QR code pointing at the public business page.
func (srv *businessService) BusinessQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if _, err := srv.GetBusiness(ctx, id); err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GenerateBusinessQR(id)
	if err != nil {
		srv.log(ctx).Error("Failed to generate business QR code", slog.Any("businessID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate business QR code")
	}

	return png, nil
}

func applyBusinessUpdate(business *entity.BusinessProfile, input *usecase.UpdateBusinessInput) {
	if input.Name != nil {
		business.Name = *input.Name
	}
	if input.Description != nil {
		business.Description = *input.Description
	}
	if input.BusinessType != nil {
		business.BusinessType = *input.BusinessType
	}
	if input.Phone != nil {
		business.Phone = *input.Phone
	}
	if input.Website != nil {
		business.Website = *input.Website
	}
	if input.Address != nil {
		business.Address = *input.Address
	}
	if input.Latitude != nil {
		business.Latitude = input.Latitude
	}
	if input.Longitude != nil {
		business.Longitude = input.Longitude
	}
	if input.Timezone != nil {
		business.Timezone = *input.Timezone
	}
	if input.QuoteSlogan != nil {
		business.QuoteSlogan = *input.QuoteSlogan
	}
	if input.IdentificationMark != nil {
		business.IdentificationMark = *input.IdentificationMark
	}
	if input.Published != nil {
		business.Published = *input.Published
	}
	if input.Version != nil {
		business.Version = *input.Version
	}
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}

	return limit
}
