package pool_iface

import (
	"time"

	"github.com/shopspring/decimal"
)

type WithdrawalItem struct {
	ID             uint            `json:"id"`
	UserID         uint            `json:"user_id"`
	Username       string          `json:"username"`
	BusinessID     uint            `json:"business_id"`
	BusinessName   string          `json:"business_name"`
	Amount         decimal.Decimal `json:"amount"`
	Note           string          `json:"note"`
	RecordedByName string          `json:"recorded_by_name"`
	CreatedAt      time.Time       `json:"created_at"`
}

type WithdrawalListRequest struct {
	BusinessID uint       `json:"business_id"`
	UserID     uint       `json:"user_id"`
	Page       PageFilter `json:"page"`
}

type WithdrawalListResponse struct {
	Data     []*WithdrawalItem `json:"data"`
	PageInfo *PageInfo         `json:"page_info"`
}

type WithdrawalCreateRequest struct {
	UserID     uint            `json:"user_id" validate:"required"`
	BusinessID uint            `json:"business_id" validate:"required"`
	Amount     decimal.Decimal `json:"amount" validate:"money_positive"`
	Note       string          `json:"note" validate:"max=255"`
}

type WithdrawalCreateResponse struct {
	Withdrawal *WithdrawalItem `json:"withdrawal"`
	Available  decimal.Decimal `json:"available"`
}

type WithdrawalDeleteRequest struct {
	ID uint `json:"id" validate:"required"`
}
