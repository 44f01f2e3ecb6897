// Package savings implements the savings-goal repository on GORM/Postgres.
package savings

import (
	"context"
	"errors"

	"github.com/finexa/backend/pkg/dto"
	"github.com/finexa/backend/pkg/repository/savings"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a gorm-backed savings-goal repository.
func New(db *gorm.DB) savings.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, create *dto.SavingsGoalCreate) error {
	g := &Goal{
		ID:       create.ID,
		UserID:   create.UserID,
		Title:    create.Title,
		Category: create.Category,
		Target:   create.Target,
		Current:  create.Current,
		Deadline: create.Deadline,
	}
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *repository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*dto.SavingsGoalRead, error) {
	var g Goal
	if err := r.db.WithContext(ctx).First(&g, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&g), nil
}

func (r *repository) ListForUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*dto.SavingsGoalRead, error) {
	var goals []Goal
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goals).Error; err != nil {
		return nil, err
	}
	result := make([]*dto.SavingsGoalRead, 0, len(goals))
	for i := range goals {
		result = append(result, mapModelToDTO(&goals[i]))
	}
	return result, nil
}

func (r *repository) Update(
	ctx context.Context,
	id uuid.UUID,
	gu *dto.SavingsGoalUpdate,
) error {
	updates := make(map[string]interface{})

	if gu.Title != nil {
		updates["title"] = *gu.Title
	}
	if gu.Category != nil {
		updates["category"] = *gu.Category
	}
	if gu.Target != nil {
		updates["target"] = *gu.Target
	}
	if gu.Current != nil {
		updates["current"] = *gu.Current
	}
	if gu.Deadline != nil {
		updates["deadline"] = *gu.Deadline
	}
	if len(updates) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Model(&Goal{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Goal{}, "id = ?", id).Error
}

func mapModelToDTO(g *Goal) *dto.SavingsGoalRead {
	return &dto.SavingsGoalRead{
		ID:        g.ID,
		UserID:    g.UserID,
		Title:     g.Title,
		Category:  g.Category,
		Target:    g.Target,
		Current:   g.Current,
		Deadline:  g.Deadline,
		CreatedAt: g.CreatedAt,
	}
}
