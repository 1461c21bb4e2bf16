package pool_model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Business struct {
	ID          uint   `json:"id" gorm:"primarykey"`
	Name        string `json:"name" gorm:"size:128;not null"`
	Description string `json:"description"`
	Icon        string `json:"icon" gorm:"size:16"`
	// MonthlyRevenue is informational only, nothing is derived from it.
	MonthlyRevenue decimal.Decimal `json:"monthly_revenue" gorm:"type:decimal(20,2);not null"`
	Active         bool            `json:"active" gorm:"index;not null"`
	// TotalInvested must equal the sum of the business investments.
	TotalInvested decimal.Decimal `json:"total_invested" gorm:"type:decimal(20,2);not null"`
	CreatedAt     time.Time       `json:"created_at"`
}

// GetEntityID implements authorization_iface.Entity.
func (b *Business) GetEntityID() string {
	return "pool/business"
}

// BusinessManager grants a user manager rights over one business.
type BusinessManager struct {
	BusinessID uint      `json:"business_id" gorm:"primaryKey;autoIncrement:false"`
	UserID     uint      `json:"user_id" gorm:"primaryKey;autoIncrement:false;index"`
	CreatedAt  time.Time `json:"created_at"`
}

// GetEntityID implements authorization_iface.Entity.
func (m *BusinessManager) GetEntityID() string {
	return "pool/business_manager"
}
