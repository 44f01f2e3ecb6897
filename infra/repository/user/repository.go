// Package user implements the user repository on GORM/Postgres.
package user

import (
	"context"
	"errors"

	"github.com/finexa/backend/pkg/dto"
	"github.com/finexa/backend/pkg/repository/user"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a gorm-backed user repository.
func New(db *gorm.DB) user.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, create *dto.UserCreate) error {
	u := &User{
		ID:            create.ID,
		FullName:      create.FullName,
		Age:           create.Age,
		Email:         create.Email,
		Password:      create.HashedPassword,
		MonthlyBudget: create.MonthlyBudget,
	}
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repository) Update(
	ctx context.Context,
	id uuid.UUID,
	uu *dto.UserUpdate,
) error {
	updates := make(map[string]interface{})

	if uu.FullName != nil {
		updates["full_name"] = *uu.FullName
	}
	if uu.Age != nil {
		updates["age"] = *uu.Age
	}
	if uu.Email != nil {
		updates["email"] = *uu.Email
	}
	if uu.PhoneNumber != nil {
		updates["phone_number"] = *uu.PhoneNumber
	}
	if uu.Location != nil {
		updates["location"] = *uu.Location
	}
	if uu.MonthlyBudget != nil {
		updates["monthly_budget"] = *uu.MonthlyBudget
	}
	if uu.ProfilePicture != nil {
		updates["profile_picture"] = *uu.ProfilePicture
	}
	if len(updates) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *repository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*dto.UserRead, error) {
	var u User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&u), nil
}

func (r *repository) GetByEmail(
	ctx context.Context,
	email string,
) (*dto.UserRead, error) {
	var u User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&u), nil
}

func (r *repository) List(ctx context.Context) ([]*dto.UserRead, error) {
	var users []User
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	result := make([]*dto.UserRead, 0, len(users))
	for i := range users {
		result = append(result, mapModelToDTO(&users[i]))
	}
	return result, nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&User{}, "id = ?", id).Error
}

func (r *repository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&User{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}

func mapModelToDTO(u *User) *dto.UserRead {
	return &dto.UserRead{
		ID:             u.ID,
		FullName:       u.FullName,
		Age:            u.Age,
		Email:          u.Email,
		HashedPassword: u.Password,
		PhoneNumber:    u.PhoneNumber,
		Location:       u.Location,
		ProfilePicture: u.ProfilePicture,
		MonthlyBudget:  u.MonthlyBudget,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
