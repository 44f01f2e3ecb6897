package user_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/finexa/backend/pkg/domain/user"
	"github.com/finexa/backend/pkg/dto"
	usersvc "github.com/finexa/backend/pkg/service/user"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*dto.UserRead
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*dto.UserRead)}
}

func (f *fakeUserRepo) Create(_ context.Context, c *dto.UserCreate) error {
	f.users[c.ID] = &dto.UserRead{
		ID:             c.ID,
		FullName:       c.FullName,
		Age:            c.Age,
		Email:          c.Email,
		HashedPassword: c.HashedPassword,
		MonthlyBudget:  c.MonthlyBudget,
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, id uuid.UUID, u *dto.UserUpdate) error {
	existing, ok := f.users[id]
	if !ok {
		return nil
	}
	if u.FullName != nil {
		existing.FullName = *u.FullName
	}
	if u.Email != nil {
		existing.Email = *u.Email
	}
	if u.Location != nil {
		existing.Location = *u.Location
	}
	if u.ProfilePicture != nil {
		existing.ProfilePicture = *u.ProfilePicture
	}
	return nil
}

func (f *fakeUserRepo) Get(_ context.Context, id uuid.UUID) (*dto.UserRead, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*dto.UserRead, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]*dto.UserRead, error) {
	result := make([]*dto.UserRead, 0, len(f.users))
	for _, u := range f.users {
		result = append(result, u)
	}
	return result, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.users[id]
	return ok, nil
}

func (f *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	u, _ := f.GetByEmail(context.Background(), email)
	return u != nil, nil
}

type stubSavings struct {
	agg *dto.SavingsAggregate
	err error
}

func (s stubSavings) SavingsAggregate(context.Context, uuid.UUID) (*dto.SavingsAggregate, error) {
	return s.agg, s.err
}

type stubInvestments struct {
	agg *dto.InvestmentsAggregate
	err error
}

func (s stubInvestments) InvestmentsAggregate(context.Context, uuid.UUID) (*dto.InvestmentsAggregate, error) {
	return s.agg, s.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRegister(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)

	repo := newFakeUserRepo()
	svc := usersvc.New(repo, stubSavings{}, stubInvestments{}, discardLogger())

	budget := 1500.0
	u, err := svc.Register(context.Background(), "Ada Lovelace", 28, "ada@example.com", "secret123", &budget)
	require.NoError(err)
	assert.NotEmpty(u.ID)
	assert.Equal("ada@example.com", u.Email)
	assert.Empty(u.HashedPassword, "read DTO returned by Register must not carry the hash")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)

	repo := newFakeUserRepo()
	svc := usersvc.New(repo, stubSavings{}, stubInvestments{}, discardLogger())

	first, err := svc.Register(context.Background(), "Ada Lovelace", 28, "ada@example.com", "secret123", nil)
	require.NoError(err)

	_, err = svc.Register(context.Background(), "Impostor", 30, "ada@example.com", "other456", nil)
	assert.ErrorIs(err, user.ErrEmailAlreadyInUse)

	// The first registration is untouched
	kept, err := repo.Get(context.Background(), first.ID)
	require.NoError(err)
	assert.Equal("Ada Lovelace", kept.FullName)
}

func TestGetProfileNotFound(t *testing.T) {
	t.Parallel()
	svc := usersvc.New(newFakeUserRepo(), stubSavings{}, stubInvestments{}, discardLogger())
	_, err := svc.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUpdateProfileEmailConflict(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	repo := newFakeUserRepo()
	svc := usersvc.New(repo, stubSavings{}, stubInvestments{}, discardLogger())

	_, err := svc.Register(context.Background(), "Ada Lovelace", 28, "ada@example.com", "secret123", nil)
	require.NoError(err)
	other, err := svc.Register(context.Background(), "Grace Hopper", 35, "grace@example.com", "secret123", nil)
	require.NoError(err)

	taken := "ada@example.com"
	_, err = svc.UpdateProfile(context.Background(), other.ID, &dto.UserUpdate{Email: &taken})
	assert.ErrorIs(t, err, user.ErrEmailAlreadyInUse)
}

func TestFinancialSummaryZeroGoals(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)

	repo := newFakeUserRepo()
	budget := 2000.0
	svc := usersvc.New(
		repo,
		stubSavings{agg: &dto.SavingsAggregate{}},
		stubInvestments{agg: &dto.InvestmentsAggregate{}},
		discardLogger(),
	)
	u, err := svc.Register(context.Background(), "Ada Lovelace", 28, "ada@example.com", "secret123", &budget)
	require.NoError(err)

	summary, err := svc.FinancialSummary(context.Background(), u.ID)
	require.NoError(err)
	assert.Zero(summary.ActiveGoals)
	assert.Zero(summary.TotalSaved)
	assert.Zero(summary.SavingsRate, "a user without goals has zero savings rate, never NaN")
	assert.Zero(summary.TotalInvestments)
	assert.Zero(summary.MonthsActive, "freshly registered user has zero months active")
	require.NotNil(summary.Budget)
	assert.InEpsilon(2000.0, *summary.Budget, 0.001)
}

func TestFinancialSummaryMergesAggregates(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)

	repo := newFakeUserRepo()
	svc := usersvc.New(
		repo,
		stubSavings{agg: &dto.SavingsAggregate{
			ActiveGoals:     2,
			TotalSaved:      750,
			TotalTarget:     3000,
			OverallProgress: 25,
			GoalTitles:      []string{"Emergency fund", "Vacation"},
		}},
		stubInvestments{agg: &dto.InvestmentsAggregate{TotalInvested: 5000}},
		discardLogger(),
	)
	u, err := svc.Register(context.Background(), "Ada Lovelace", 28, "ada@example.com", "secret123", nil)
	require.NoError(err)

	summary, err := svc.FinancialSummary(context.Background(), u.ID)
	require.NoError(err)
	assert.Equal(2, summary.ActiveGoals)
	assert.InEpsilon(750.0, summary.TotalSaved, 0.001)
	assert.InEpsilon(25.0, summary.SavingsRate, 0.001)
	assert.InEpsilon(3000.0, summary.SavingsGoal, 0.001)
	assert.InEpsilon(5000.0, summary.TotalInvestments, 0.001)
	assert.Equal([]string{"Emergency fund", "Vacation"}, summary.FinancialGoals)
}

func TestFinancialSummarySubAggregateFailure(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	repo := newFakeUserRepo()
	boom := errors.New("savings store unavailable")
	svc := usersvc.New(
		repo,
		stubSavings{err: boom},
		stubInvestments{agg: &dto.InvestmentsAggregate{}},
		discardLogger(),
	)
	u, err := svc.Register(context.Background(), "Ada Lovelace", 28, "ada@example.com", "secret123", nil)
	require.NoError(err)

	_, err = svc.FinancialSummary(context.Background(), u.ID)
	assert.ErrorIs(t, err, boom, "either sub-aggregate failing fails the whole summary")
}

func TestFinancialSummaryUnknownUser(t *testing.T) {
	t.Parallel()
	svc := usersvc.New(
		newFakeUserRepo(),
		stubSavings{agg: &dto.SavingsAggregate{}},
		stubInvestments{agg: &dto.InvestmentsAggregate{}},
		discardLogger(),
	)
	_, err := svc.FinancialSummary(context.Background(), uuid.New())
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
