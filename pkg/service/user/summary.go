package user

import (
	"context"
	"time"

	"github.com/finexa/backend/pkg/domain/user"
	"github.com/finexa/backend/pkg/dto"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// SavingsAggregator is the read-only contract the summary needs from the
// savings module.
type SavingsAggregator interface {
	SavingsAggregate(ctx context.Context, userID uuid.UUID) (*dto.SavingsAggregate, error)
}

// InvestmentsAggregator is the read-only contract the summary needs from the
// investment module.
type InvestmentsAggregator interface {
	InvestmentsAggregate(ctx context.Context, userID uuid.UUID) (*dto.InvestmentsAggregate, error)
}

// FinancialSummary merges the savings and investments sub-aggregates with
// the user record into one snapshot. The two sub-aggregates have no data
// dependency on each other and are fetched concurrently; if either fetch
// fails the whole summary fails, never a partial result.
func (s *Service) FinancialSummary(
	ctx context.Context,
	id uuid.UUID,
) (*dto.FinancialSummary, error) {
	u, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, user.ErrUserNotFound
	}

	var (
		sav *dto.SavingsAggregate
		inv *dto.InvestmentsAggregate
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sav, err = s.savings.SavingsAggregate(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		inv, err = s.investments.InvestmentsAggregate(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.FinancialSummary{
		ActiveGoals:      sav.ActiveGoals,
		TotalSaved:       sav.TotalSaved,
		SavingsRate:      sav.OverallProgress,
		TotalInvestments: inv.TotalInvested,
		MonthsActive:     user.MonthsActive(u.CreatedAt, time.Now().UTC()),
		Budget:           u.MonthlyBudget,
		SavingsGoal:      sav.TotalTarget,
		FinancialGoals:   sav.GoalTitles,
	}, nil
}
