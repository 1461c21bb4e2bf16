package pool_iface

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionItem struct {
	ID           uint            `json:"id"`
	Type         string          `json:"type"`
	BusinessID   *uint           `json:"business_id"`
	BusinessName string          `json:"business_name"`
	UserID       *uint           `json:"user_id"`
	Username     string          `json:"username"`
	ActorID      *uint           `json:"actor_id"`
	ActorName    string          `json:"actor_name"`
	Amount       decimal.Decimal `json:"amount"`
	Desc         string          `json:"desc"`
	CreatedAt    time.Time       `json:"created_at"`
}

type TransactionListRequest struct {
	BusinessID uint `json:"business_id"`
	Limit      int  `json:"limit" validate:"gte=0"`
}

type TransactionListResponse struct {
	Data []*TransactionItem `json:"data"`
}

type TransactionExportRequest struct {
	BusinessID uint       `json:"business_id"`
	Since      *time.Time `json:"since"`
}

// TransactionExportResponse carries one chunk of csv text.
type TransactionExportResponse struct {
	Chunk string `json:"chunk"`
}

type BalanceItem struct {
	UserID       uint            `json:"user_id"`
	Username     string          `json:"username"`
	BusinessID   uint            `json:"business_id"`
	BusinessName string          `json:"business_name"`
	Invested     decimal.Decimal `json:"invested"`
	Earned       decimal.Decimal `json:"earned"`
	ExpenseShare decimal.Decimal `json:"expense_share"`
	Withdrawn    decimal.Decimal `json:"withdrawn"`
	Available    decimal.Decimal `json:"available"`
	Roi          decimal.Decimal `json:"roi"`
}

type PoolStatsRequest struct{}

type PoolTotals struct {
	TotalInvested    decimal.Decimal `json:"total_invested"`
	TotalEarned      decimal.Decimal `json:"total_earned"`
	TotalExpense     decimal.Decimal `json:"total_expense"`
	TotalWithdrawn   decimal.Decimal `json:"total_withdrawn"`
	TotalAvailable   decimal.Decimal `json:"total_available"`
	ActiveBusinesses int64           `json:"active_businesses"`
	Investors        int64           `json:"investors"`
}

type PoolStatsResponse struct {
	Totals      *PoolTotals    `json:"totals"`
	Leaderboard []*BalanceItem `json:"leaderboard"`
	Balances    []*BalanceItem `json:"balances"`
}

type MyStatsRequest struct{}

type MyStatsResponse struct {
	Total       *BalanceItem      `json:"total"`
	Balances    []*BalanceItem    `json:"balances"`
	Investments []*InvestmentItem `json:"investments"`
	Withdrawals []*WithdrawalItem `json:"withdrawals"`
}

type BalanceDetailRequest struct {
	UserID     uint `json:"user_id" validate:"required"`
	BusinessID uint `json:"business_id" validate:"required"`
}

type BalanceDetailResponse struct {
	Balance *BalanceItem `json:"balance"`
}
