package expense

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a company cost entry. Expenses are date-scoped only; profit
// aggregation nets them against attributed revenue regardless of project.
type Expense struct {
	XID         uint            `gorm:"primaryKey;column:x_id;autoIncrement" json:"x_id"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,0);not null" json:"amount"`
	Description string          `gorm:"size:255;not null" json:"description"`
	SpentOn     time.Time       `gorm:"type:date;not null;index" json:"spent_on"`
	CreatedBy   *uint           `json:"created_by,omitempty"`
	CreatedAt   time.Time       `gorm:"column:create_at;autoCreateTime" json:"create_at"`
}

func (Expense) TableName() string {
	return "expenses"
}

type CreateExpenseDTO struct {
	Amount      int64   `json:"amount" form:"amount" binding:"required,min=1"`
	Description string  `json:"description" form:"description" binding:"required,max=255"`
	SpentOn     *string `json:"spent_on,omitempty" form:"spent_on"`
}
