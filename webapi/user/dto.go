package user

// RegisterInput is the request body for POST /users.
type RegisterInput struct {
	FullName      string   `json:"fullName" validate:"required"`
	Age           int      `json:"age" validate:"required,min=13"`
	Email         string   `json:"email" validate:"required,email"`
	Password      string   `json:"password" validate:"required,min=6"`
	MonthlyBudget *float64 `json:"monthlyBudget" validate:"omitempty,gte=0"`
}
