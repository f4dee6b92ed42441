package user

type CreateEmployeeInput struct {
	Username string  `json:"username" form:"username" binding:"required,min=3,max=50" example:"annak"`
	Password string  `json:"password" form:"password" binding:"required,min=6" example:"password123"`
	FullName *string `json:"full_name,omitempty" form:"full_name" example:"Anna Kovacs"`
	Email    *string `json:"email,omitempty" form:"email" binding:"omitempty,email" example:"anna@example.com"`
	Phone    *string `json:"phone,omitempty" form:"phone" example:"+36 30 123 4567"`
	JobRole  *string `json:"job_role,omitempty" form:"job_role" binding:"omitempty,oneof=writer videographer editor photographer" example:"editor"`
	IsBoss   bool    `json:"is_boss" form:"is_boss"`
}

type LoginInput struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type ChangePasswordInput struct {
	OldPassword string `json:"old_password" form:"old_password" binding:"required"`
	NewPassword string `json:"new_password" form:"new_password" binding:"required,min=6"`
}

type UpdateEmployeeInput struct {
	FullName *string `json:"full_name,omitempty" form:"full_name"`
	Email    *string `json:"email,omitempty" form:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone,omitempty" form:"phone"`
	JobRole  *string `json:"job_role,omitempty" form:"job_role" binding:"omitempty,oneof=writer videographer editor photographer"`
	IsActive *bool   `json:"is_active,omitempty" form:"is_active"`
}

// EmployeeSummary is the boss-facing list row: identity plus the current
// month's logged hours and attributed revenue.
type EmployeeSummary struct {
	Employee       Employee `json:"employee"`
	MonthlyHours   string   `json:"monthly_hours"`
	MonthlyRevenue int64    `json:"monthly_revenue"`
}

// SearchResult is the autocomplete payload.
type SearchResult struct {
	EID  uint   `json:"e_id"`
	Name string `json:"name"`
	Role string `json:"role"`
}
