// Package investment implements the investment repository on GORM/Postgres.
package investment

import (
	"context"
	"errors"

	"github.com/finexa/backend/pkg/dto"
	"github.com/finexa/backend/pkg/repository/investment"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a gorm-backed investment repository.
func New(db *gorm.DB) investment.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, create *dto.InvestmentCreate) error {
	inv := &Investment{
		ID:         create.ID,
		UserID:     create.UserID,
		Name:       create.Name,
		Amount:     create.Amount,
		Risk:       create.Risk,
		ReturnRate: create.ReturnRate,
	}
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *repository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*dto.InvestmentRead, error) {
	var inv Investment
	if err := r.db.WithContext(ctx).First(&inv, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&inv), nil
}

func (r *repository) ListForUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*dto.InvestmentRead, error) {
	var investments []Investment
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&investments).Error; err != nil {
		return nil, err
	}
	result := make([]*dto.InvestmentRead, 0, len(investments))
	for i := range investments {
		result = append(result, mapModelToDTO(&investments[i]))
	}
	return result, nil
}

func (r *repository) Update(
	ctx context.Context,
	id uuid.UUID,
	iu *dto.InvestmentUpdate,
) error {
	updates := make(map[string]interface{})

	if iu.Name != nil {
		updates["name"] = *iu.Name
	}
	if iu.Amount != nil {
		updates["amount"] = *iu.Amount
	}
	if iu.Risk != nil {
		updates["risk"] = *iu.Risk
	}
	if iu.ReturnRate != nil {
		updates["return_rate"] = *iu.ReturnRate
	}
	if len(updates) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Model(&Investment{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Investment{}, "id = ?", id).Error
}

func mapModelToDTO(inv *Investment) *dto.InvestmentRead {
	return &dto.InvestmentRead{
		ID:         inv.ID,
		UserID:     inv.UserID,
		Name:       inv.Name,
		Amount:     inv.Amount,
		Risk:       inv.Risk,
		ReturnRate: inv.ReturnRate,
		CreatedAt:  inv.CreatedAt,
	}
}
