package user

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user record in the database.
type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName       string    `gorm:"not null;size:255"`
	Age            int       `gorm:"not null"`
	Email          string    `gorm:"uniqueIndex;not null;size:255"`
	Password       string    `gorm:"not null"`
	PhoneNumber    string    `gorm:"size:50"`
	Location       string    `gorm:"size:255"`
	ProfilePicture string    `gorm:"size:512"`
	MonthlyBudget  *float64  `gorm:"type:numeric"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for the User model.
func (User) TableName() string {
	return "users"
}
