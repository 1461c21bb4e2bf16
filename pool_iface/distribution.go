package pool_iface

import (
	"time"

	"github.com/shopspring/decimal"
)

type ShareItem struct {
	UserID       uint            `json:"user_id"`
	Username     string          `json:"username"`
	Amount       decimal.Decimal `json:"amount"`
	SharePercent decimal.Decimal `json:"share_percent"`
}

type EarningItem struct {
	ID             uint            `json:"id"`
	BusinessID     uint            `json:"business_id"`
	BusinessName   string          `json:"business_name"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	Note           string          `json:"note"`
	RecordedByName string          `json:"recorded_by_name"`
	CreatedAt      time.Time       `json:"created_at"`
	Shares         []*ShareItem    `json:"shares"`
}

type EarningListRequest struct {
	BusinessID uint       `json:"business_id"`
	Page       PageFilter `json:"page"`
}

type EarningListResponse struct {
	Data     []*EarningItem `json:"data"`
	PageInfo *PageInfo      `json:"page_info"`
}

type EarningCreateRequest struct {
	BusinessID uint            `json:"business_id" validate:"required"`
	Amount     decimal.Decimal `json:"amount" validate:"money_positive"`
	Note       string          `json:"note" validate:"max=255"`
}

type EarningCreateResponse struct {
	Earning *EarningItem `json:"earning"`
}

type EarningDeleteRequest struct {
	ID uint `json:"id" validate:"required"`
}

type ExpenseItem struct {
	ID             uint            `json:"id"`
	BusinessID     uint            `json:"business_id"`
	BusinessName   string          `json:"business_name"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	Description    string          `json:"description"`
	Note           string          `json:"note"`
	RecordedByName string          `json:"recorded_by_name"`
	CreatedAt      time.Time       `json:"created_at"`
	Shares         []*ShareItem    `json:"shares"`
}

type ExpenseListRequest struct {
	BusinessID uint       `json:"business_id"`
	Page       PageFilter `json:"page"`
}

type ExpenseListResponse struct {
	Data     []*ExpenseItem `json:"data"`
	PageInfo *PageInfo      `json:"page_info"`
}

type ExpenseCreateRequest struct {
	BusinessID  uint            `json:"business_id" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"money_positive"`
	Description string          `json:"description" validate:"required,max=255"`
	Note        string          `json:"note" validate:"max=255"`
}

type ExpenseCreateResponse struct {
	Expense *ExpenseItem `json:"expense"`
}

type ExpenseDeleteRequest struct {
	ID uint `json:"id" validate:"required"`
}
