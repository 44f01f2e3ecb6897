// Package investment provides business logic for investments, including the
// investments sub-aggregate consumed by the financial summary.
package investment

import (
	"context"
	"log/slog"

	"github.com/finexa/backend/pkg/domain/investment"
	userdomain "github.com/finexa/backend/pkg/domain/user"
	"github.com/finexa/backend/pkg/dto"
	investmentrepo "github.com/finexa/backend/pkg/repository/investment"
	"github.com/google/uuid"
)

// UserLookup is the narrow slice of the user repository this service needs.
type UserLookup interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// Service provides business logic for investment operations.
type Service struct {
	repo   investmentrepo.Repository
	users  UserLookup
	logger *slog.Logger
}

// New creates an investment Service.
func New(repo investmentrepo.Repository, users UserLookup, logger *slog.Logger) *Service {
	return &Service{repo: repo, users: users, logger: logger}
}

// CreateInvestment creates an investment for an existing user.
func (s *Service) CreateInvestment(
	ctx context.Context,
	userID uuid.UUID,
	name string,
	amount float64,
	risk string,
	returnRate float64,
) (*dto.InvestmentRead, error) {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, userdomain.ErrUserNotFound
	}
	inv, err := investment.New(userID, name, amount, risk, returnRate)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &dto.InvestmentCreate{
		ID:         inv.ID,
		UserID:     inv.UserID,
		Name:       inv.Name,
		Amount:     inv.Amount,
		Risk:       inv.Risk,
		ReturnRate: inv.ReturnRate,
	}); err != nil {
		return nil, err
	}
	s.logger.Info("investment created", "investment_id", inv.ID, "user_id", userID)
	return &dto.InvestmentRead{
		ID:         inv.ID,
		UserID:     inv.UserID,
		Name:       inv.Name,
		Amount:     inv.Amount,
		Risk:       inv.Risk,
		ReturnRate: inv.ReturnRate,
		CreatedAt:  inv.CreatedAt,
	}, nil
}

// ListForUser returns an existing user's investments, newest first.
func (s *Service) ListForUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*dto.InvestmentRead, error) {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, userdomain.ErrUserNotFound
	}
	return s.repo.ListForUser(ctx, userID)
}

// UpdateInvestment applies a partial update to an investment.
func (s *Service) UpdateInvestment(
	ctx context.Context,
	id uuid.UUID,
	update *dto.InvestmentUpdate,
) (*dto.InvestmentRead, error) {
	inv, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, investment.ErrInvestmentNotFound
	}
	if err := s.repo.Update(ctx, id, update); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

// DeleteInvestment removes an investment.
func (s *Service) DeleteInvestment(ctx context.Context, id uuid.UUID) error {
	inv, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if inv == nil {
		return investment.ErrInvestmentNotFound
	}
	return s.repo.Delete(ctx, id)
}

// InvestmentsAggregate sums a user's invested amounts for the financial
// summary.
func (s *Service) InvestmentsAggregate(
	ctx context.Context,
	userID uuid.UUID,
) (*dto.InvestmentsAggregate, error) {
	investments, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	agg := &dto.InvestmentsAggregate{}
	for _, inv := range investments {
		agg.TotalInvested += inv.Amount
	}
	return agg, nil
}
