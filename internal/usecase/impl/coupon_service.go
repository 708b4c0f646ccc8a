package impl

import (
	"context"
	"log/slog"

	deliverycontext "vault/internal/delivery/context"
	"vault/internal/domain/entity"
	domainerrors "vault/internal/domain/errors"
	"vault/internal/domain/repository"
	"vault/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// couponService implements the CouponUsecase interface.
type couponService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewCouponService is the constructor for couponService.
func NewCouponService(txManager repository.TransactionManager, logger *slog.Logger) usecase.CouponUsecase {
	return &couponService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *couponService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCoupon publishes a coupon after verifying the business exists.
func (srv *couponService) CreateCoupon(ctx context.Context, input *usecase.CreateCouponInput) (*entity.Coupon, error) {
	srv.log(ctx).Debug("Creating coupon", slog.Any("businessID", input.BusinessID), slog.String("code", input.Code))

	var created *entity.Coupon

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := requireBusiness(ctx, repoFactory, input.BusinessID); err != nil {
			return err
		}

		isActive := true
		if input.IsActive != nil {
			isActive = *input.IsActive
		}

		coupon := &entity.Coupon{
			BusinessID:      input.BusinessID,
			Code:            input.Code,
			Description:     input.Description,
			DiscountValue:   input.DiscountValue,
			ValidFrom:       input.ValidFrom,
			ValidUntil:      input.ValidUntil,
			TermsConditions: input.TermsConditions,
			IsActive:        isActive,
		}
		if err := repoFactory.CouponRepo().Create(ctx, coupon); err != nil {
			return errors.Wrap(err, "failed to create coupon")
		}
		created = coupon

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute coupon creation transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute coupon creation transaction")
	}

	return created, nil
}

// GetCoupon retrieves a single coupon by ID.
func (srv *couponService) GetCoupon(ctx context.Context, id uuid.UUID) (*entity.Coupon, error) {
	var found *entity.Coupon

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		coupon, err := repoFactory.CouponRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCouponNotFound) {
				return errors.Wrap(domainerrors.ErrCouponNotFound, "coupon not found")
			}

			return errors.Wrap(err, "failed to find coupon")
		}
		found = coupon

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute coupon lookup transaction")
	}

	return found, nil
}

// ListCoupons retrieves a page of a business's coupons ordered by expiry.
func (srv *couponService) ListCoupons(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]*entity.Coupon, error) {
	limit = clampLimit(limit)
	if offset < 0 {
		offset = 0
	}

	var page []*entity.Coupon

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		coupons, err := repoFactory.CouponRepo().FindByBusiness(ctx, businessID, limit, offset)
		if err != nil {
			return errors.Wrap(err, "failed to list coupons")
		}
		page = coupons

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute coupon list transaction")
	}

	return page, nil
}

// UpdateCoupon applies a partial update.
func (srv *couponService) UpdateCoupon(ctx context.Context, id uuid.UUID, input *usecase.UpdateCouponInput) (*entity.Coupon, error) {
	var updated *entity.Coupon

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		couponRepo := repoFactory.CouponRepo()

		coupon, err := couponRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCouponNotFound) {
				return errors.Wrap(domainerrors.ErrCouponNotFound, "coupon not found")
			}

			return errors.Wrap(err, "failed to find coupon")
		}

		if input.Code != nil {
			coupon.Code = *input.Code
		}
		if input.Description != nil {
			coupon.Description = *input.Description
		}
		if input.DiscountValue != nil {
			coupon.DiscountValue = *input.DiscountValue
		}
		if input.ValidFrom != nil {
			coupon.ValidFrom = *input.ValidFrom
		}
		if input.ValidUntil != nil {
			coupon.ValidUntil = *input.ValidUntil
		}
		if input.TermsConditions != nil {
			coupon.TermsConditions = *input.TermsConditions
		}
		if input.IsActive != nil {
			coupon.IsActive = *input.IsActive
		}

		if err := couponRepo.Update(ctx, coupon); err != nil {
			return errors.Wrap(err, "failed to update coupon")
		}
		updated = coupon

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute coupon update transaction", slog.Any("couponID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute coupon update transaction")
	}

	return updated, nil
}

// DeleteCoupon removes a coupon.
func (srv *couponService) DeleteCoupon(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.CouponRepo().Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrCouponNotFound) {
				return errors.Wrap(domainerrors.ErrCouponNotFound, "coupon not found")
			}

			return errors.Wrap(err, "failed to delete coupon")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute coupon deletion transaction")
	}

	return nil
}
