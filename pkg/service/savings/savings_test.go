package savings_test

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"testing"
	"time"

	"github.com/finexa/backend/pkg/domain/savings"
	userdomain "github.com/finexa/backend/pkg/domain/user"
	"github.com/finexa/backend/pkg/dto"
	savingssvc "github.com/finexa/backend/pkg/service/savings"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGoalRepo struct {
	rows map[uuid.UUID]*dto.SavingsGoalRead
}

func newFakeGoalRepo() *fakeGoalRepo {
	return &fakeGoalRepo{rows: make(map[uuid.UUID]*dto.SavingsGoalRead)}
}

func (f *fakeGoalRepo) Create(_ context.Context, c *dto.SavingsGoalCreate) error {
	f.rows[c.ID] = &dto.SavingsGoalRead{
		ID:        c.ID,
		UserID:    c.UserID,
		Title:     c.Title,
		Category:  c.Category,
		Target:    c.Target,
		Current:   c.Current,
		Deadline:  c.Deadline,
		CreatedAt: time.Now().UTC(),
	}
	return nil
}

func (f *fakeGoalRepo) Get(_ context.Context, id uuid.UUID) (*dto.SavingsGoalRead, error) {
	return f.rows[id], nil
}

func (f *fakeGoalRepo) ListForUser(_ context.Context, userID uuid.UUID) ([]*dto.SavingsGoalRead, error) {
	var result []*dto.SavingsGoalRead
	for _, g := range f.rows {
		if g.UserID == userID {
			result = append(result, g)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (f *fakeGoalRepo) Update(_ context.Context, id uuid.UUID, u *dto.SavingsGoalUpdate) error {
	g, ok := f.rows[id]
	if !ok {
		return nil
	}
	if u.Title != nil {
		g.Title = *u.Title
	}
	if u.Target != nil {
		g.Target = *u.Target
	}
	if u.Current != nil {
		g.Current = *u.Current
	}
	return nil
}

func (f *fakeGoalRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.rows, id)
	return nil
}

type fakeUserLookup struct {
	known map[uuid.UUID]bool
}

func (f fakeUserLookup) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	return f.known[id], nil
}

func newService(userID uuid.UUID) (*savingssvc.Service, *fakeGoalRepo) {
	repo := newFakeGoalRepo()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := savingssvc.New(repo, fakeUserLookup{known: map[uuid.UUID]bool{userID: true}}, logger)
	return svc, repo
}

func TestCreateGoalUnknownUser(t *testing.T) {
	t.Parallel()
	svc, _ := newService(uuid.New())
	_, err := svc.CreateGoal(context.Background(), uuid.New(), "Car", "", 1000, 0, time.Time{})
	assert.ErrorIs(t, err, userdomain.ErrUserNotFound)
}

func TestUpdateGoalUnknownID(t *testing.T) {
	t.Parallel()
	svc, _ := newService(uuid.New())
	_, err := svc.UpdateGoal(context.Background(), uuid.New(), &dto.SavingsGoalUpdate{})
	assert.ErrorIs(t, err, savings.ErrGoalNotFound)
}

func TestSavingsAggregate(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)

	userID := uuid.New()
	svc, _ := newService(userID)

	_, err := svc.CreateGoal(context.Background(), userID, "Emergency fund", "safety", 3000, 600, time.Time{})
	require.NoError(err)
	_, err = svc.CreateGoal(context.Background(), userID, "Vacation", "fun", 1000, 400, time.Time{})
	require.NoError(err)

	agg, err := svc.SavingsAggregate(context.Background(), userID)
	require.NoError(err)
	assert.Equal(2, agg.ActiveGoals)
	assert.InEpsilon(1000.0, agg.TotalSaved, 0.001)
	assert.InEpsilon(4000.0, agg.TotalTarget, 0.001)
	assert.InEpsilon(25.0, agg.OverallProgress, 0.001)
	assert.ElementsMatch([]string{"Emergency fund", "Vacation"}, agg.GoalTitles)
}

func TestSavingsAggregateNoGoals(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)

	userID := uuid.New()
	svc, _ := newService(userID)

	agg, err := svc.SavingsAggregate(context.Background(), userID)
	require.NoError(err)
	assert.Zero(agg.ActiveGoals)
	assert.Zero(agg.TotalSaved)
	assert.Zero(agg.OverallProgress, "zero target yields zero progress, not NaN")
	assert.Empty(agg.GoalTitles)
}
