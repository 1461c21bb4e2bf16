package pool_iface

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvestmentItem struct {
	ID           uint            `json:"id"`
	UserID       uint            `json:"user_id"`
	Username     string          `json:"username"`
	BusinessID   uint            `json:"business_id"`
	BusinessName string          `json:"business_name"`
	Amount       decimal.Decimal `json:"amount"`
	Note         string          `json:"note"`
	CreatedAt    time.Time       `json:"created_at"`
}

type InvestmentListRequest struct {
	BusinessID uint       `json:"business_id"`
	UserID     uint       `json:"user_id"`
	Page       PageFilter `json:"page"`
}

type InvestmentListResponse struct {
	Data     []*InvestmentItem `json:"data"`
	PageInfo *PageInfo         `json:"page_info"`
}

type InvestmentCreateRequest struct {
	UserID     uint            `json:"user_id" validate:"required"`
	BusinessID uint            `json:"business_id" validate:"required"`
	Amount     decimal.Decimal `json:"amount" validate:"money_positive"`
	Note       string          `json:"note" validate:"max=255"`
}

type InvestmentCreateResponse struct {
	Investment    *InvestmentItem `json:"investment"`
	TotalInvested decimal.Decimal `json:"total_invested"`
}

type InvestmentDeleteRequest struct {
	ID uint `json:"id" validate:"required"`
}

type InvestmentDeleteResponse struct {
	TotalInvested decimal.Decimal `json:"total_invested"`
}
