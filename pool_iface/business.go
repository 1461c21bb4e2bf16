package pool_iface

import (
	"time"

	"github.com/shopspring/decimal"
)

type BusinessItem struct {
	ID             uint            `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Icon           string          `json:"icon"`
	MonthlyRevenue decimal.Decimal `json:"monthly_revenue"`
	Active         bool            `json:"active"`
	TotalInvested  decimal.Decimal `json:"total_invested"`
	CreatedAt      time.Time       `json:"created_at"`
}

type BusinessListRequest struct {
	IncludeInactive bool `json:"include_inactive"`
}

type BusinessListResponse struct {
	Data []*BusinessItem `json:"data"`
}

type BusinessCreateRequest struct {
	Name           string          `json:"name" validate:"required,max=128"`
	Description    string          `json:"description" validate:"max=2000"`
	Icon           string          `json:"icon" validate:"max=16"`
	MonthlyRevenue decimal.Decimal `json:"monthly_revenue" validate:"money_nonnegative"`
}

type BusinessCreateResponse struct {
	Business *BusinessItem `json:"business"`
}

type BusinessUpdateRequest struct {
	ID             uint            `json:"id" validate:"required"`
	Name           string          `json:"name" validate:"required,max=128"`
	Description    string          `json:"description" validate:"max=2000"`
	Icon           string          `json:"icon" validate:"max=16"`
	MonthlyRevenue decimal.Decimal `json:"monthly_revenue" validate:"money_nonnegative"`
	Active         *bool           `json:"active"`
}

type BusinessUpdateResponse struct {
	Business *BusinessItem `json:"business"`
}

type BusinessDeleteRequest struct {
	ID uint `json:"id" validate:"required"`
}

type ManageableBusinessesRequest struct{}

type ManageableBusinessesResponse struct {
	Data []*BusinessItem `json:"data"`
}

type ManagerItem struct {
	BusinessID uint      `json:"business_id"`
	UserID     uint      `json:"user_id"`
	Username   string    `json:"username"`
	CreatedAt  time.Time `json:"created_at"`
}

type ManagerListRequest struct {
	BusinessID uint `json:"business_id" validate:"required"`
}

type ManagerListResponse struct {
	Data []*ManagerItem `json:"data"`
}

type ManagerAddRequest struct {
	BusinessID uint `json:"business_id" validate:"required"`
	UserID     uint `json:"user_id" validate:"required"`
}

type ManagerRemoveRequest struct {
	BusinessID uint `json:"business_id" validate:"required"`
	UserID     uint `json:"user_id" validate:"required"`
}
