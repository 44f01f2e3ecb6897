// Package testutils provides in-memory repositories and helpers for
// handler tests. No database is required.
package testutils

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/finexa/backend/pkg/dto"
	"github.com/google/uuid"
)

// DiscardLogger returns a logger that swallows everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MemoryUserRepo is an in-memory implementation of the user repository.
type MemoryUserRepo struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*dto.UserRead
}

// NewMemoryUserRepo creates an empty MemoryUserRepo.
func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{users: make(map[uuid.UUID]*dto.UserRead)}
}

func (m *MemoryUserRepo) Create(_ context.Context, c *dto.UserCreate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	m.users[c.ID] = &dto.UserRead{
		ID:             c.ID,
		FullName:       c.FullName,
		Age:            c.Age,
		Email:          c.Email,
		HashedPassword: c.HashedPassword,
		MonthlyBudget:  c.MonthlyBudget,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return nil
}

func (m *MemoryUserRepo) Update(_ context.Context, id uuid.UUID, u *dto.UserUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.users[id]
	if !ok {
		return nil
	}
	if u.FullName != nil {
		existing.FullName = *u.FullName
	}
	if u.Age != nil {
		existing.Age = *u.Age
	}
	if u.Email != nil {
		existing.Email = *u.Email
	}
	if u.PhoneNumber != nil {
		existing.PhoneNumber = *u.PhoneNumber
	}
	if u.Location != nil {
		existing.Location = *u.Location
	}
	if u.MonthlyBudget != nil {
		existing.MonthlyBudget = u.MonthlyBudget
	}
	if u.ProfilePicture != nil {
		existing.ProfilePicture = *u.ProfilePicture
	}
	existing.UpdatedAt = time.Now().UTC()
	return nil
}

func (m *MemoryUserRepo) Get(_ context.Context, id uuid.UUID) (*dto.UserRead, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.users[id], nil
}

func (m *MemoryUserRepo) GetByEmail(_ context.Context, email string) (*dto.UserRead, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *MemoryUserRepo) List(_ context.Context) ([]*dto.UserRead, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*dto.UserRead, 0, len(m.users))
	for _, u := range m.users {
		result = append(result, u)
	}
	return result, nil
}

func (m *MemoryUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, id)
	return nil
}

func (m *MemoryUserRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.users[id]
	return ok, nil
}

func (m *MemoryUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	u, _ := m.GetByEmail(context.Background(), email)
	return u != nil, nil
}

// MemoryNotificationRepo is an in-memory implementation of the notification
// repository.
type MemoryNotificationRepo struct {
	mu   sync.RWMutex
	rows map[uuid.UUID]*dto.NotificationRead
	seq  int
}

// NewMemoryNotificationRepo creates an empty MemoryNotificationRepo.
func NewMemoryNotificationRepo() *MemoryNotificationRepo {
	return &MemoryNotificationRepo{rows: make(map[uuid.UUID]*dto.NotificationRead)}
}

func (m *MemoryNotificationRepo) Create(_ context.Context, c *dto.NotificationCreate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	// Monotonic timestamps so ordering assertions are stable
	m.seq++
	m.rows[c.ID] = &dto.NotificationRead{
		ID:        c.ID,
		UserID:    c.UserID,
		Title:     c.Title,
		Message:   c.Message,
		Type:      c.Type,
		CreatedAt: time.Now().UTC().Add(time.Duration(m.seq) * time.Millisecond),
	}
	return nil
}

func (m *MemoryNotificationRepo) Get(_ context.Context, id uuid.UUID) (*dto.NotificationRead, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.rows[id], nil
}

func (m *MemoryNotificationRepo) ListForUser(_ context.Context, userID uuid.UUID) ([]*dto.NotificationRead, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*dto.NotificationRead
	for _, n := range m.rows {
		if n.UserID == userID {
			result = append(result, n)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (m *MemoryNotificationRepo) MarkRead(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n, ok := m.rows[id]; ok {
		n.IsRead = true
	}
	return nil
}

func (m *MemoryNotificationRepo) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows, id)
	return nil
}

// MemoryPreferenceRepo is an in-memory implementation of the preference
// repository.
type MemoryPreferenceRepo struct {
	mu   sync.RWMutex
	rows map[uuid.UUID]*dto.PreferenceRead
}

// NewMemoryPreferenceRepo creates an empty MemoryPreferenceRepo.
func NewMemoryPreferenceRepo() *MemoryPreferenceRepo {
	return &MemoryPreferenceRepo{rows: make(map[uuid.UUID]*dto.PreferenceRead)}
}

func (m *MemoryPreferenceRepo) GetForUser(_ context.Context, userID uuid.UUID) (*dto.PreferenceRead, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.rows[userID], nil
}

func (m *MemoryPreferenceRepo) Create(_ context.Context, p *dto.PreferenceRead) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *p
	m.rows[p.UserID] = &cp
	return nil
}

func (m *MemoryPreferenceRepo) Update(_ context.Context, p *dto.PreferenceRead) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *p
	m.rows[p.UserID] = &cp
	return nil
}

// StubSavings returns a fixed savings aggregate.
type StubSavings struct {
	Agg *dto.SavingsAggregate
	Err error
}

func (s StubSavings) SavingsAggregate(context.Context, uuid.UUID) (*dto.SavingsAggregate, error) {
	if s.Agg == nil && s.Err == nil {
		return &dto.SavingsAggregate{GoalTitles: []string{}}, nil
	}
	return s.Agg, s.Err
}

// StubInvestments returns a fixed investments aggregate.
type StubInvestments struct {
	Agg *dto.InvestmentsAggregate
	Err error
}

func (s StubInvestments) InvestmentsAggregate(context.Context, uuid.UUID) (*dto.InvestmentsAggregate, error) {
	if s.Agg == nil && s.Err == nil {
		return &dto.InvestmentsAggregate{}, nil
	}
	return s.Agg, s.Err
}
