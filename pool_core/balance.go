package pool_core

import (
	"sort"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Balance is derived at read time, it is never stored.
type Balance struct {
	UserID       uint            `json:"user_id"`
	BusinessID   uint            `json:"business_id"`
	Invested     decimal.Decimal `json:"invested"`
	Earned       decimal.Decimal `json:"earned"`
	ExpenseShare decimal.Decimal `json:"expense_share"`
	Withdrawn    decimal.Decimal `json:"withdrawn"`
}

func (b *Balance) Available() decimal.Decimal {
	return b.Earned.Sub(b.ExpenseShare).Sub(b.Withdrawn)
}

// ROI is earned over invested in percent.
func (b *Balance) ROI() decimal.Decimal {
	return Percent(b.Earned, b.Invested)
}

func (b *Balance) add(o *Balance) {
	b.Invested = b.Invested.Add(o.Invested)
	b.Earned = b.Earned.Add(o.Earned)
	b.ExpenseShare = b.ExpenseShare.Add(o.ExpenseShare)
	b.Withdrawn = b.Withdrawn.Add(o.Withdrawn)
}

// AvailableBalance derives the balance of one user in one business, active or not.
func AvailableBalance(tx *gorm.DB, userID, businessID uint) (*Balance, error) {
	rows, err := NewBalanceView(tx).
		UserIDs(userID).
		BusinessID(businessID).
		UserBusinessBalances()

	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return &Balance{UserID: userID, BusinessID: businessID}, nil
	}

	return rows[0], nil
}

type BalanceView interface {
	UserIDs(ids ...uint) BalanceView
	BusinessID(businessID uint) BalanceView
	ActiveOnly() BalanceView
	UserBusinessBalances() ([]*Balance, error)
	UserBalances() ([]*Balance, error)
}

type balanceViewImpl struct {
	tx         *gorm.DB
	userIDs    []uint
	businessID uint
	activeOnly bool
}

func NewBalanceView(tx *gorm.DB) BalanceView {
	return &balanceViewImpl{
		tx: tx,
	}
}

// UserIDs implements BalanceView.
func (v *balanceViewImpl) UserIDs(ids ...uint) BalanceView {
	v.userIDs = append(v.userIDs, ids...)
	return v
}

// BusinessID implements BalanceView.
func (v *balanceViewImpl) BusinessID(businessID uint) BalanceView {
	v.businessID = businessID
	return v
}

// ActiveOnly implements BalanceView.
func (v *balanceViewImpl) ActiveOnly() BalanceView {
	v.activeOnly = true
	return v
}

type balanceSumRow struct {
	UserID     uint
	BusinessID uint
	Total      decimal.Decimal
}

type balanceKey struct {
	userID     uint
	businessID uint
}

func (v *balanceViewImpl) sum(table string) ([]*balanceSumRow, error) {
	rows := []*balanceSumRow{}

	query := v.tx.
		Table(table + " x").
		Select([]string{
			"x.user_id as user_id",
			"x.business_id as business_id",
			"COALESCE(SUM(x.amount), 0) as total",
		})

	if v.activeOnly {
		query = query.
			Joins("join businesses b on b.id = x.business_id").
			Where("b.active = ?", true)
	}

	if len(v.userIDs) != 0 {
		query = query.Where("x.user_id in ?", v.userIDs)
	}

	if v.businessID != 0 {
		query = query.Where("x.business_id = ?", v.businessID)
	}

	err := query.
		Group("x.user_id, x.business_id").
		Find(&rows).
		Error

	return rows, err
}

// UserBusinessBalances implements BalanceView.
func (v *balanceViewImpl) UserBusinessBalances() ([]*Balance, error) {
	balances := map[balanceKey]*Balance{}
	get := func(row *balanceSumRow) *Balance {
		key := balanceKey{row.UserID, row.BusinessID}
		if balances[key] == nil {
			balances[key] = &Balance{
				UserID:     row.UserID,
				BusinessID: row.BusinessID,
			}
		}
		return balances[key]
	}

	sources := []struct {
		table string
		apply func(b *Balance, total decimal.Decimal)
	}{
		{"investments", func(b *Balance, total decimal.Decimal) { b.Invested = total }},
		{"earning_shares", func(b *Balance, total decimal.Decimal) { b.Earned = total }},
		{"expense_shares", func(b *Balance, total decimal.Decimal) { b.ExpenseShare = total }},
		{"withdrawals", func(b *Balance, total decimal.Decimal) { b.Withdrawn = total }},
	}

	for _, source := range sources {
		rows, err := v.sum(source.table)
		if err != nil {
			return nil, err
		}

		for _, row := range rows {
			source.apply(get(row), RoundMoney(row.Total))
		}
	}

	result := make([]*Balance, 0, len(balances))
	for _, b := range balances {
		result = append(result, b)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].UserID != result[j].UserID {
			return result[i].UserID < result[j].UserID
		}
		return result[i].BusinessID < result[j].BusinessID
	})

	return result, nil
}

// UserBalances implements BalanceView. Rows are summed per user across the
// filtered businesses, BusinessID is left zero.
func (v *balanceViewImpl) UserBalances() ([]*Balance, error) {
	rows, err := v.UserBusinessBalances()
	if err != nil {
		return nil, err
	}

	result := []*Balance{}
	byUser := map[uint]*Balance{}
	for _, row := range rows {
		if byUser[row.UserID] == nil {
			byUser[row.UserID] = &Balance{UserID: row.UserID}
			result = append(result, byUser[row.UserID])
		}
		byUser[row.UserID].add(row)
	}

	return result, nil
}
