package pool_model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Withdrawal struct {
	ID          uint            `json:"id" gorm:"primarykey"`
	UserID      uint            `json:"user_id" gorm:"index;not null"`
	BusinessID  uint            `json:"business_id" gorm:"index;not null"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null"`
	Note        string          `json:"note"`
	CreatedByID uint            `json:"created_by_id"`
	CreatedAt   time.Time       `json:"created_at"`
}

// GetEntityID implements authorization_iface.Entity.
func (w *Withdrawal) GetEntityID() string {
	return "pool/withdrawal"
}
