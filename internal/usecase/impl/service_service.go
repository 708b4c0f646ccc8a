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

// serviceService implements the ServiceUsecase interface.
type serviceService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewServiceService is the constructor for serviceService.
func NewServiceService(txManager repository.TransactionManager, logger *slog.Logger) usecase.ServiceUsecase {
	return &serviceService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *serviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateService adds an offering after verifying the business exists.
func (srv *serviceService) CreateService(ctx context.Context, input *usecase.CreateServiceInput) (*entity.Service, error) {
	srv.log(ctx).Debug("Creating service", slog.Any("businessID", input.BusinessID), slog.String("name", input.Name))

	var created *entity.Service

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := requireBusiness(ctx, repoFactory, input.BusinessID); err != nil {
			return err
		}

		currency := input.Currency
		if currency == "" {
			currency = entity.DefaultCurrency
		}
		isAvailable := true
		if input.IsAvailable != nil {
			isAvailable = *input.IsAvailable
		}

		newService := &entity.Service{
			BusinessID:  input.BusinessID,
			ServiceType: input.ServiceType,
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			Currency:    currency,
			IsAvailable: isAvailable,
		}
		if err := repoFactory.ServiceRepo().Create(ctx, newService); err != nil {
			return errors.Wrap(err, "failed to create service")
		}
		created = newService

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute service creation transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute service creation transaction")
	}

	return created, nil
}

// GetService retrieves a single offering by ID.
func (srv *serviceService) GetService(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	var found *entity.Service

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		svc, err := repoFactory.ServiceRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrServiceNotFound) {
				return errors.Wrap(domainerrors.ErrServiceNotFound, "service not found")
			}

			return errors.Wrap(err, "failed to find service")
		}
		found = svc

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute service lookup transaction")
	}

	return found, nil
}

// ListServices retrieves a page of a business's offerings, newest first.
func (srv *serviceService) ListServices(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]*entity.Service, error) {
	limit = clampLimit(limit)
	if offset < 0 {
		offset = 0
	}

	var page []*entity.Service

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		services, err := repoFactory.ServiceRepo().FindByBusiness(ctx, businessID, limit, offset)
		if err != nil {
			return errors.Wrap(err, "failed to list services")
		}
		page = services

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute service list transaction")
	}

	return page, nil
}

// UpdateService applies a partial update.
func (srv *serviceService) UpdateService(ctx context.Context, id uuid.UUID, input *usecase.UpdateServiceInput) (*entity.Service, error) {
	var updated *entity.Service

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		serviceRepo := repoFactory.ServiceRepo()

		svc, err := serviceRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrServiceNotFound) {
				return errors.Wrap(domainerrors.ErrServiceNotFound, "service not found")
			}

			return errors.Wrap(err, "failed to find service")
		}

		if input.ServiceType != nil {
			svc.ServiceType = *input.ServiceType
		}
		if input.Name != nil {
			svc.Name = *input.Name
		}
		if input.Description != nil {
			svc.Description = *input.Description
		}
		if input.Price != nil {
			svc.Price = *input.Price
		}
		if input.Currency != nil {
			svc.Currency = *input.Currency
		}
		if input.IsAvailable != nil {
			svc.IsAvailable = *input.IsAvailable
		}
		now := time.Now().UTC()
		svc.UpdatedAt = &now

		if err := serviceRepo.Update(ctx, svc); err != nil {
			return errors.Wrap(err, "failed to update service")
		}
		updated = svc

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute service update transaction", slog.Any("serviceID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute service update transaction")
	}

	return updated, nil
}

// DeleteService removes an offering.
func (srv *serviceService) DeleteService(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ServiceRepo().Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrServiceNotFound) {
				return errors.Wrap(domainerrors.ErrServiceNotFound, "service not found")
			}

			return errors.Wrap(err, "failed to delete service")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute service deletion transaction")
	}

	return nil
}

// requireBusiness verifies the referenced business exists, translating a
// missing row into the shared not-found error.
func requireBusiness(ctx context.Context, repoFactory repository.RepositoryFactory, businessID uuid.UUID) error {
	if _, err := repoFactory.BusinessRepo().FindByID(ctx, businessID); err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return errors.Wrap(domainerrors.ErrBusinessNotFound, "business not found")
		}

		return errors.Wrap(err, "failed to find business")
	}

	return nil
}
