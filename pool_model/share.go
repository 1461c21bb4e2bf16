package pool_model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Earning struct {
	ID          uint            `json:"id" gorm:"primarykey"`
	BusinessID  uint            `json:"business_id" gorm:"index;not null"`
	TotalAmount decimal.Decimal `json:"total_amount" gorm:"type:decimal(20,2);not null"`
	Note        string          `json:"note"`
	CreatedByID uint            `json:"created_by_id"`
	CreatedAt   time.Time       `json:"created_at"`
}

// GetEntityID implements authorization_iface.Entity.
func (e *Earning) GetEntityID() string {
	return "pool/earning"
}

// EarningShare is the frozen claim of one investor on one earning. It is never
// recomputed when investments change afterwards.
type EarningShare struct {
	ID           uint            `json:"id" gorm:"primarykey"`
	EarningID    uint            `json:"earning_id" gorm:"index;not null"`
	UserID       uint            `json:"user_id" gorm:"index;not null"`
	BusinessID   uint            `json:"business_id" gorm:"index;not null"`
	Amount       decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null"`
	SharePercent decimal.Decimal `json:"share_percent" gorm:"type:decimal(7,2);not null"`
	CreatedAt    time.Time       `json:"created_at"`
}

type Expense struct {
	ID          uint            `json:"id" gorm:"primarykey"`
	BusinessID  uint            `json:"business_id" gorm:"index;not null"`
	TotalAmount decimal.Decimal `json:"total_amount" gorm:"type:decimal(20,2);not null"`
	Description string          `json:"description"`
	Note        string          `json:"note"`
	CreatedByID uint            `json:"created_by_id"`
	CreatedAt   time.Time       `json:"created_at"`
}

// GetEntityID implements authorization_iface.Entity.
func (e *Expense) GetEntityID() string {
	return "pool/expense"
}

type ExpenseShare struct {
	ID           uint            `json:"id" gorm:"primarykey"`
	ExpenseID    uint            `json:"expense_id" gorm:"index;not null"`
	UserID       uint            `json:"user_id" gorm:"index;not null"`
	BusinessID   uint            `json:"business_id" gorm:"index;not null"`
	Amount       decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null"`
	SharePercent decimal.Decimal `json:"share_percent" gorm:"type:decimal(7,2);not null"`
	CreatedAt    time.Time       `json:"created_at"`
}
