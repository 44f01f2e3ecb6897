// Package transaction provides business logic for transaction records.
package transaction

import (
	"context"
	"log/slog"

	"github.com/finexa/backend/pkg/domain/transaction"
	userdomain "github.com/finexa/backend/pkg/domain/user"
	"github.com/finexa/backend/pkg/dto"
	transactionrepo "github.com/finexa/backend/pkg/repository/transaction"
	"github.com/google/uuid"
)

// UserLookup is the narrow slice of the user repository this service needs.
type UserLookup interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// Service provides business logic for transaction operations.
type Service struct {
	repo   transactionrepo.Repository
	users  UserLookup
	logger *slog.Logger
}

// New creates a transaction Service.
func New(repo transactionrepo.Repository, users UserLookup, logger *slog.Logger) *Service {
	return &Service{repo: repo, users: users, logger: logger}
}

// CreateTransaction records a transaction for an existing user.
func (s *Service) CreateTransaction(
	ctx context.Context,
	userID uuid.UUID,
	description, category string,
	amount float64,
	txType string,
) (*dto.TransactionRead, error) {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, userdomain.ErrUserNotFound
	}
	tx, err := transaction.New(userID, description, category, amount, txType)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &dto.TransactionCreate{
		ID:          tx.ID,
		UserID:      tx.UserID,
		Description: tx.Description,
		Category:    tx.Category,
		Amount:      tx.Amount,
		Type:        tx.Type,
	}); err != nil {
		return nil, err
	}
	s.logger.Info("transaction created", "transaction_id", tx.ID, "user_id", userID)
	return &dto.TransactionRead{
		ID:          tx.ID,
		UserID:      tx.UserID,
		Description: tx.Description,
		Category:    tx.Category,
		Amount:      tx.Amount,
		Type:        tx.Type,
		CreatedAt:   tx.CreatedAt,
	}, nil
}

// ListForUser returns an existing user's transactions, newest first.
func (s *Service) ListForUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*dto.TransactionRead, error) {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, userdomain.ErrUserNotFound
	}
	return s.repo.ListForUser(ctx, userID)
}

// UpdateTransaction applies a partial update to a transaction.
func (s *Service) UpdateTransaction(
	ctx context.Context,
	id uuid.UUID,
	update *dto.TransactionUpdate,
) (*dto.TransactionRead, error) {
	tx, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, transaction.ErrTransactionNotFound
	}
	if err := s.repo.Update(ctx, id, update); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

// DeleteTransaction removes a transaction.
func (s *Service) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	tx, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if tx == nil {
		return transaction.ErrTransactionNotFound
	}
	return s.repo.Delete(ctx, id)
}
