// Package savings provides business logic for savings goals, including the
// savings sub-aggregate consumed by the financial summary.
package savings

import (
	"context"
	"log/slog"
	"time"

	"github.com/finexa/backend/pkg/domain/savings"
	userdomain "github.com/finexa/backend/pkg/domain/user"
	"github.com/finexa/backend/pkg/dto"
	savingsrepo "github.com/finexa/backend/pkg/repository/savings"
	"github.com/google/uuid"
)

// UserLookup is the narrow slice of the user repository this service needs.
type UserLookup interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// Service provides business logic for savings-goal operations.
type Service struct {
	repo   savingsrepo.Repository
	users  UserLookup
	logger *slog.Logger
}

// New creates a savings Service.
func New(repo savingsrepo.Repository, users UserLookup, logger *slog.Logger) *Service {
	return &Service{repo: repo, users: users, logger: logger}
}

// CreateGoal creates a savings goal for an existing user.
func (s *Service) CreateGoal(
	ctx context.Context,
	userID uuid.UUID,
	title, category string,
	target, current float64,
	deadline time.Time,
) (*dto.SavingsGoalRead, error) {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, userdomain.ErrUserNotFound
	}
	g, err := savings.New(userID, title, category, target, current, deadline)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &dto.SavingsGoalCreate{
		ID:       g.ID,
		UserID:   g.UserID,
		Title:    g.Title,
		Category: g.Category,
		Target:   g.Target,
		Current:  g.Current,
		Deadline: g.Deadline,
	}); err != nil {
		return nil, err
	}
	s.logger.Info("savings goal created", "goal_id", g.ID, "user_id", userID)
	return &dto.SavingsGoalRead{
		ID:        g.ID,
		UserID:    g.UserID,
		Title:     g.Title,
		Category:  g.Category,
		Target:    g.Target,
		Current:   g.Current,
		Deadline:  g.Deadline,
		CreatedAt: g.CreatedAt,
	}, nil
}

// ListForUser returns an existing user's goals, newest first.
func (s *Service) ListForUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*dto.SavingsGoalRead, error) {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, userdomain.ErrUserNotFound
	}
	return s.repo.ListForUser(ctx, userID)
}

// UpdateGoal applies a partial update to a goal.
func (s *Service) UpdateGoal(
	ctx context.Context,
	id uuid.UUID,
	update *dto.SavingsGoalUpdate,
) (*dto.SavingsGoalRead, error) {
	g, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, savings.ErrGoalNotFound
	}
	if err := s.repo.Update(ctx, id, update); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

// DeleteGoal removes a goal.
func (s *Service) DeleteGoal(ctx context.Context, id uuid.UUID) error {
	g, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if g == nil {
		return savings.ErrGoalNotFound
	}
	return s.repo.Delete(ctx, id)
}

// SavingsAggregate computes the savings sub-aggregate for a user: goal
// count, totals and overall progress. A user with no goals yields all
// zeroes, and a zero total target yields zero progress rather than a
// division error.
func (s *Service) SavingsAggregate(
	ctx context.Context,
	userID uuid.UUID,
) (*dto.SavingsAggregate, error) {
	goals, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	agg := &dto.SavingsAggregate{
		ActiveGoals: len(goals),
		GoalTitles:  make([]string, 0, len(goals)),
	}
	for _, g := range goals {
		agg.TotalSaved += g.Current
		agg.TotalTarget += g.Target
		agg.GoalTitles = append(agg.GoalTitles, g.Title)
	}
	if agg.TotalTarget > 0 {
		agg.OverallProgress = agg.TotalSaved / agg.TotalTarget * 100
	}
	return agg, nil
}
