// Package user provides business logic for user management and owns the
// financial-summary aggregation.
package user

import (
	"context"
	"log/slog"

	"github.com/finexa/backend/pkg/domain/user"
	"github.com/finexa/backend/pkg/dto"
	userrepo "github.com/finexa/backend/pkg/repository/user"
	"github.com/google/uuid"
)

// Service provides business logic for user operations.
type Service struct {
	repo        userrepo.Repository
	savings     SavingsAggregator
	investments InvestmentsAggregator
	logger      *slog.Logger
}

// New creates a user Service. The aggregators are the only coupling to the
// savings and investment modules; see summary.go.
func New(
	repo userrepo.Repository,
	savings SavingsAggregator,
	investments InvestmentsAggregator,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:        repo,
		savings:     savings,
		investments: investments,
		logger:      logger,
	}
}

// Register creates a new user account. The email must be unused and the
// password is hashed before it is persisted.
func (s *Service) Register(
	ctx context.Context,
	fullName string,
	age int,
	email, password string,
	monthlyBudget *float64,
) (*dto.UserRead, error) {
	taken, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, user.ErrEmailAlreadyInUse
	}

	u, err := user.New(fullName, age, email, password)
	if err != nil {
		return nil, err
	}
	u.MonthlyBudget = monthlyBudget

	if err := s.repo.Create(ctx, &dto.UserCreate{
		ID:             u.ID,
		FullName:       u.FullName,
		Age:            u.Age,
		Email:          u.Email,
		HashedPassword: u.Password,
		MonthlyBudget:  u.MonthlyBudget,
	}); err != nil {
		return nil, err
	}
	s.logger.Info("user registered", "user_id", u.ID)
	return &dto.UserRead{
		ID:            u.ID,
		FullName:      u.FullName,
		Age:           u.Age,
		Email:         u.Email,
		MonthlyBudget: u.MonthlyBudget,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}, nil
}

// List returns all users. The read DTO never serializes password hashes.
func (s *Service) List(ctx context.Context) ([]*dto.UserRead, error) {
	return s.repo.List(ctx)
}

// GetProfile returns a user's profile.
func (s *Service) GetProfile(
	ctx context.Context,
	id uuid.UUID,
) (*dto.UserRead, error) {
	u, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

// UpdateProfile applies the non-nil fields of the update to an existing user
// and returns the updated profile.
func (s *Service) UpdateProfile(
	ctx context.Context,
	id uuid.UUID,
	update *dto.UserUpdate,
) (*dto.UserRead, error) {
	u, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, user.ErrUserNotFound
	}
	if update.Email != nil && *update.Email != u.Email {
		taken, err := s.repo.ExistsByEmail(ctx, *update.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, user.ErrEmailAlreadyInUse
		}
	}
	if err := s.repo.Update(ctx, id, update); err != nil {
		return nil, err
	}
	s.logger.Info("profile updated", "user_id", id)
	return s.repo.Get(ctx, id)
}

// Delete removes a user. Preferences, notifications, transactions, goals
// and investments go with it via the database's cascade rules.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return user.ErrUserNotFound
	}
	return s.repo.Delete(ctx, id)
}
