// Package transaction implements the transaction repository on
// GORM/Postgres.
package transaction

import (
	"context"
	"errors"

	"github.com/finexa/backend/pkg/dto"
	"github.com/finexa/backend/pkg/repository/transaction"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a gorm-backed transaction repository.
func New(db *gorm.DB) transaction.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, create *dto.TransactionCreate) error {
	tx := &Transaction{
		ID:          create.ID,
		UserID:      create.UserID,
		Description: create.Description,
		Category:    create.Category,
		Amount:      create.Amount,
		Type:        create.Type,
	}
	return r.db.WithContext(ctx).Create(tx).Error
}

func (r *repository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*dto.TransactionRead, error) {
	var tx Transaction
	if err := r.db.WithContext(ctx).First(&tx, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&tx), nil
}

func (r *repository) ListForUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*dto.TransactionRead, error) {
	var transactions []Transaction
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, err
	}
	result := make([]*dto.TransactionRead, 0, len(transactions))
	for i := range transactions {
		result = append(result, mapModelToDTO(&transactions[i]))
	}
	return result, nil
}

func (r *repository) Update(
	ctx context.Context,
	id uuid.UUID,
	tu *dto.TransactionUpdate,
) error {
	updates := make(map[string]interface{})

	if tu.Description != nil {
		updates["description"] = *tu.Description
	}
	if tu.Category != nil {
		updates["category"] = *tu.Category
	}
	if tu.Amount != nil {
		updates["amount"] = *tu.Amount
	}
	if tu.Type != nil {
		updates["type"] = *tu.Type
	}
	if len(updates) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Model(&Transaction{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Transaction{}, "id = ?", id).Error
}

func mapModelToDTO(tx *Transaction) *dto.TransactionRead {
	return &dto.TransactionRead{
		ID:          tx.ID,
		UserID:      tx.UserID,
		Description: tx.Description,
		Category:    tx.Category,
		Amount:      tx.Amount,
		Type:        tx.Type,
		CreatedAt:   tx.CreatedAt,
	}
}
