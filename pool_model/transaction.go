package pool_model

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	RegisterTx         TransactionType = "register"
	BusinessCreateTx   TransactionType = "business_create"
	BusinessUpdateTx   TransactionType = "business_update"
	BusinessDeleteTx   TransactionType = "business_delete"
	ManagerAddTx       TransactionType = "manager_add"
	ManagerRemoveTx    TransactionType = "manager_remove"
	InvestmentTx       TransactionType = "investment"
	InvestmentDeleteTx TransactionType = "investment_delete"
	EarningTx          TransactionType = "earning"
	EarningDeleteTx    TransactionType = "earning_delete"
	ExpenseTx          TransactionType = "expense"
	ExpenseDeleteTx    TransactionType = "expense_delete"
	WithdrawalTx       TransactionType = "withdrawal"
	WithdrawalDeleteTx TransactionType = "withdrawal_delete"
)

// Transaction is the append-only audit log. Rows are never updated.
// UserID is the user the entry is about, ActorID the user who made it. Desc
// never carries usernames, names are resolved and masked when read.
type Transaction struct {
	ID         uint            `json:"id" gorm:"primarykey"`
	BusinessID *uint           `json:"business_id" gorm:"index"`
	UserID     *uint           `json:"user_id" gorm:"index"`
	ActorID    *uint           `json:"actor_id" gorm:"index"`
	Type       TransactionType `json:"type" gorm:"size:32;index;not null"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null"`
	Desc       string          `json:"desc" gorm:"column:description"`
	CreatedAt  time.Time       `json:"created_at" gorm:"index"`
}

// GetEntityID implements authorization_iface.Entity.
func (t *Transaction) GetEntityID() string {
	return "pool/transaction"
}

func AllTables() []any {
	return []any{
		&User{},
		&Business{},
		&BusinessManager{},
		&Investment{},
		&Earning{},
		&EarningShare{},
		&Expense{},
		&ExpenseShare{},
		&Withdrawal{},
		&Transaction{},
	}
}
