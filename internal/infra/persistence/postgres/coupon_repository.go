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

// couponRepository implements the domain.CouponRepository interface using GORM.
type couponRepository struct {
	db *gorm.DB
}

// NewCouponRepository is the constructor for couponRepository.
func NewCouponRepository(db *gorm.DB) repository.CouponRepository {
	return &couponRepository{db: db}
}

// FindByID retrieves a single coupon by its unique ID.
func (repo *couponRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Coupon, error) {
	var couponM model.CouponModel
	err := repo.db.WithContext(ctx).
		Where("coupon_id = ?", id).
		First(&couponM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to find coupon by id")
	}

	return toCouponDomain(&couponM), nil
}

// FindByBusiness retrieves coupons of a business, latest-expiring first.
// A limit of 0 returns all rows.
func (repo *couponRepository) FindByBusiness(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]*entity.Coupon, error) {
	query := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("valid_until desc").
		Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}

	var models []model.CouponModel
	if err := query.Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list coupons")
	}

	return toCouponDomainList(models), nil
}

// FindActiveByBusiness retrieves only the active coupons of a business.
func (repo *couponRepository) FindActiveByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Coupon, error) {
	var models []model.CouponModel
	err := repo.db.WithContext(ctx).
		Where("business_id = ? AND is_active = ?", businessID, true).
		Order("valid_until desc").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active coupons")
	}

	return toCouponDomainList(models), nil
}

// Create persists a new coupon.
func (repo *couponRepository) Create(ctx context.Context, coupon *entity.Coupon) error {
	couponM := fromCouponDomain(coupon)

	if err := repo.db.WithContext(ctx).Create(couponM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBusinessNotFound.WrapMessage("business does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required coupon information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create coupon")
	}

	coupon.ID = couponM.ID

	return nil
}

// Update modifies an existing coupon.
func (repo *couponRepository) Update(ctx context.Context, coupon *entity.Coupon) error {
	couponM := fromCouponDomain(coupon)

	if err := repo.db.WithContext(ctx).Save(couponM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update coupon")
	}

	return nil
}

// Delete removes a coupon by ID.
func (repo *couponRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("coupon_id = ?", id).
		Delete(&model.CouponModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete coupon")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCouponNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCouponDomain(data *model.CouponModel) *entity.Coupon {
	if data == nil {
		return nil
	}

	return &entity.Coupon{
		ID:              data.ID,
		BusinessID:      data.BusinessID,
		Code:            data.Code,
		Description:     data.Description,
		DiscountValue:   data.DiscountValue,
		ValidFrom:       data.ValidFrom,
		ValidUntil:      data.ValidUntil,
		TermsConditions: data.TermsConditions,
		IsActive:        data.IsActive,
	}
}

func toCouponDomainList(models []model.CouponModel) []*entity.Coupon {
	result := make([]*entity.Coupon, 0, len(models))
	for i := range models {
		result = append(result, toCouponDomain(&models[i]))
	}

	return result
}

func fromCouponDomain(data *entity.Coupon) *model.CouponModel {
	if data == nil {
		return nil
	}

	return &model.CouponModel{
		ID:              data.ID,
		BusinessID:      data.BusinessID,
		Code:            data.Code,
		Description:     data.Description,
		DiscountValue:   data.DiscountValue,
		ValidFrom:       data.ValidFrom,
		ValidUntil:      data.ValidUntil,
		TermsConditions: data.TermsConditions,
		IsActive:        data.IsActive,
	}
}
