package report

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type transactionRow struct {
	ID           uint
	Type         string
	BusinessID   *uint
	BusinessName string
	UserID       *uint
	Username     string
	ActorID      *uint
	ActorName    string
	Amount       decimal.Decimal
	Description  string
	CreatedAt    time.Time
}

type TransactionView interface {
	BusinessID(businessID uint) TransactionView
	Since(since *time.Time) TransactionView
	Limit(limit int) TransactionView
	Count(c *int64) TransactionView
	Iterate(handle func(row *transactionRow) error) error
	Err() error
}

type transactionViewImpl struct {
	query *gorm.DB
	limit int
	err   error
}

func NewTransactionView(db *gorm.DB) TransactionView {
	query := db.
		Table("transactions t").
		Joins("left join businesses b on b.id = t.business_id").
		Joins("left join users u on u.id = t.user_id").
		Joins("left join users a on a.id = t.actor_id")

	return &transactionViewImpl{
		query: query,
	}
}

// BusinessID implements TransactionView.
func (v *transactionViewImpl) BusinessID(businessID uint) TransactionView {
	if businessID == 0 {
		return v
	}

	v.query = v.query.Where("t.business_id = ?", businessID)
	return v
}

// Since implements TransactionView.
func (v *transactionViewImpl) Since(since *time.Time) TransactionView {
	if since == nil {
		return v
	}

	v.query = v.query.Where("t.created_at >= ?", *since)
	return v
}

// Limit implements TransactionView.
func (v *transactionViewImpl) Limit(limit int) TransactionView {
	v.limit = limit
	return v
}

// Count implements TransactionView.
func (v *transactionViewImpl) Count(c *int64) TransactionView {
	if v.err != nil {
		return v
	}

	v.err = v.query.Session(&gorm.Session{}).Count(c).Error
	return v
}

// Iterate implements TransactionView. Rows come newest first.
func (v *transactionViewImpl) Iterate(handle func(row *transactionRow) error) error {
	if v.err != nil {
		return v.err
	}

	query := v.query.
		Select([]string{
			"t.id",
			"t.type",
			"t.business_id",
			"COALESCE(b.name, '') as business_name",
			"t.user_id",
			"COALESCE(u.username, '') as username",
			"t.actor_id",
			"COALESCE(a.username, '') as actor_name",
			"t.amount",
			"t.description",
			"t.created_at",
		}).
		Order("t.created_at desc, t.id desc")

	if v.limit > 0 {
		query = query.Limit(v.limit)
	}

	rows, err := query.Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var row transactionRow
		err = query.ScanRows(rows, &row)
		if err != nil {
			return err
		}

		err = handle(&row)
		if err != nil {
			return err
		}
	}

	return rows.Err()
}

// Err implements TransactionView.
func (v *transactionViewImpl) Err() error {
	return v.err
}
