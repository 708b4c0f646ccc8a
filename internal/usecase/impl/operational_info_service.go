package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "vault/internal/delivery/context"
	"vault/internal/domain/entity"
	domainerrors "vault/internal/domain/errors"
	"vault/internal/domain/repository"
	"vault/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// operationalInfoService implements the OperationalInfoUsecase interface.
type operationalInfoService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewOperationalInfoService is the constructor for operationalInfoService.
func NewOperationalInfoService(txManager repository.TransactionManager, logger *slog.Logger) usecase.OperationalInfoUsecase {
	return &operationalInfoService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *operationalInfoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOperationalInfo records the operational facts of a business. Each
// business carries at most one record, so an existing one is a conflict.
func (srv *operationalInfoService) CreateOperationalInfo(ctx context.Context, input *usecase.CreateOperationalInfoInput) (*entity.OperationalInfo, error) {
	srv.log(ctx).Debug("Creating operational info", slog.Any("businessID", input.BusinessID))

	var created *entity.OperationalInfo

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := requireBusiness(ctx, repoFactory, input.BusinessID); err != nil {
			return err
		}

		infoRepo := repoFactory.OperationalInfoRepo()

		if _, err := infoRepo.FindByBusiness(ctx, input.BusinessID); err == nil {
			return errors.Wrap(domainerrors.ErrOperationalInfoExists, "operational info already exists")
		} else if !errors.Is(err, repository.ErrOperationalInfoNotFound) {
			return errors.Wrap(err, "failed to check existing operational info")
		}

		info := &entity.OperationalInfo{
			BusinessID:            input.BusinessID,
			OpeningHours:          input.OpeningHours,
			ClosingHours:          input.ClosingHours,
			OffDays:               input.OffDays,
			DeliveryOptions:       input.DeliveryOptions,
			ReservationOptions:    input.ReservationOptions,
			WifiAvailable:         input.WifiAvailable,
			AccessibilityFeatures: input.AccessibilityFeatures,
			NearbyParkingSpot:     input.NearbyParkingSpot,
			SpecialNotes:          input.SpecialNotes,
		}
		if err := infoRepo.Create(ctx, info); err != nil {
			return errors.Wrap(err, "failed to create operational info")
		}
		created = info

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute operational info creation transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute operational info creation transaction")
	}

	return created, nil
}

// GetOperationalInfo retrieves the record of a business.
func (srv *operationalInfoService) GetOperationalInfo(ctx context.Context, businessID uuid.UUID) (*entity.OperationalInfo, error) {
	var found *entity.OperationalInfo

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		info, err := repoFactory.OperationalInfoRepo().FindByBusiness(ctx, businessID)
		if err != nil {
			if errors.Is(err, repository.ErrOperationalInfoNotFound) {
				return errors.Wrap(domainerrors.ErrOperationalInfoNotFound, "operational info not found")
			}

			return errors.Wrap(err, "failed to find operational info")
		}
		found = info

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute operational info lookup transaction")
	}

	return found, nil
}

// UpdateOperationalInfo applies a partial update and stamps the record.
func (srv *operationalInfoService) UpdateOperationalInfo(ctx context.Context, businessID uuid.UUID, input *usecase.UpdateOperationalInfoInput) (*entity.OperationalInfo, error) {
	var updated *entity.OperationalInfo

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		infoRepo := repoFactory.OperationalInfoRepo()

		info, err := infoRepo.FindByBusiness(ctx, businessID)
		if err != nil {
			if errors.Is(err, repository.ErrOperationalInfoNotFound) {
				return errors.Wrap(domainerrors.ErrOperationalInfoNotFound, "operational info not found")
			}

			return errors.Wrap(err, "failed to find operational info")
		}

		if input.OpeningHours != nil {
			info.OpeningHours = *input.OpeningHours
		}
		if input.ClosingHours != nil {
			info.ClosingHours = *input.ClosingHours
		}
		if input.OffDays != nil {
			info.OffDays = input.OffDays
		}
		if input.DeliveryOptions != nil {
			info.DeliveryOptions = *input.DeliveryOptions
		}
		if input.ReservationOptions != nil {
			info.ReservationOptions = *input.ReservationOptions
		}
		if input.WifiAvailable != nil {
			info.WifiAvailable = *input.WifiAvailable
		}
		if input.AccessibilityFeatures != nil {
			info.AccessibilityFeatures = *input.AccessibilityFeatures
		}
		if input.NearbyParkingSpot != nil {
			info.NearbyParkingSpot = *input.NearbyParkingSpot
		}
		if input.SpecialNotes != nil {
			info.SpecialNotes = *input.SpecialNotes
		}
		now := time.Now().UTC()
		info.UpdatedAt = &now

		if err := infoRepo.Update(ctx, info); err != nil {
			return errors.Wrap(err, "failed to update operational info")
		}
		updated = info

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute operational info update transaction",
			slog.Any("businessID", businessID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute operational info update transaction")
	}

	return updated, nil
}

// DeleteOperationalInfo removes the record of a business.
func (srv *operationalInfoService) DeleteOperationalInfo(ctx context.Context, businessID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.OperationalInfoRepo().DeleteByBusiness(ctx, businessID); err != nil {
			if errors.Is(err, repository.ErrOperationalInfoNotFound) {
				return errors.Wrap(domainerrors.ErrOperationalInfoNotFound, "operational info not found")
			}

			return errors.Wrap(err, "failed to delete operational info")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute operational info deletion transaction")
	}

	return nil
}
