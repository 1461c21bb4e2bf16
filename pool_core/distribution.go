package pool_core

import (
	"errors"
	"time"

	"github.com/pdcgo/pool_service/pool_model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InvestorStake struct {
	UserID   uint            `json:"user_id"`
	Invested decimal.Decimal `json:"invested"`
}

type ShareItem struct {
	UserID       uint            `json:"user_id"`
	Invested     decimal.Decimal `json:"invested"`
	SharePercent decimal.Decimal `json:"share_percent"`
	Amount       decimal.Decimal `json:"amount"`
}

// InvestorStakes sums the investments of each investor of a business, ordered by user id.
func InvestorStakes(tx *gorm.DB, businessID uint) ([]*InvestorStake, error) {
	stakes := []*InvestorStake{}
	err := tx.
		Table("investments i").
		Select([]string{
			"i.user_id as user_id",
			"COALESCE(SUM(i.amount), 0) as invested",
		}).
		Where("i.business_id = ?", businessID).
		Group("i.user_id").
		Order("i.user_id asc").
		Find(&stakes).
		Error

	if err != nil {
		return stakes, err
	}

	for _, stake := range stakes {
		stake.Invested = RoundMoney(stake.Invested)
	}

	return stakes, nil
}

// ComputeShares splits totalAmount across stakes pro rata. Each share is rounded
// independently so the shares may not add up to totalAmount exactly.
func ComputeShares(stakes []*InvestorStake, totalAmount decimal.Decimal) ([]*ShareItem, error) {
	businessTotal := decimal.Zero
	for _, stake := range stakes {
		businessTotal = businessTotal.Add(stake.Invested)
	}

	if !businessTotal.IsPositive() {
		return nil, &NoInvestorsError{}
	}

	items := make([]*ShareItem, 0, len(stakes))
	for _, stake := range stakes {
		if !stake.Invested.IsPositive() {
			continue
		}

		items = append(items, &ShareItem{
			UserID:       stake.UserID,
			Invested:     stake.Invested,
			SharePercent: Percent(stake.Invested, businessTotal),
			Amount:       RoundMoney(totalAmount.Mul(stake.Invested).Div(businessTotal)),
		})
	}

	return items, nil
}

type DistributionKind string

const (
	EarningDistribution DistributionKind = "earning"
	ExpenseDistribution DistributionKind = "expense"
)

// Distribution persists an earning or expense together with its shares and audit row.
type Distribution interface {
	Business(businessID uint) Distribution
	Amount(total decimal.Decimal) Distribution
	Note(note string) Distribution
	Description(desc string) Distribution
	CreatedBy(userID uint) Distribution
	Commit() Distribution
	ParentID() uint
	BusinessData() *pool_model.Business
	Shares() []*ShareItem
	Err() error
}

type distributionImpl struct {
	kind   DistributionKind
	tx     *gorm.DB
	bookmg BookManage

	business    *pool_model.Business
	total       decimal.Decimal
	note        string
	desc        string
	createdByID uint

	parentID uint
	shares   []*ShareItem
	err      error
}

// Business implements Distribution.
func (d *distributionImpl) Business(businessID uint) Distribution {
	if d.err != nil {
		return d
	}

	biz, err := d.bookmg.LockBusiness(businessID, true)
	if err != nil {
		return d.setErr(err)
	}

	d.business = biz
	return d
}

// Amount implements Distribution.
func (d *distributionImpl) Amount(total decimal.Decimal) Distribution {
	if !ValidMoney(total) {
		return d.setErr(NewValidationError("amount must be a positive value with at most 2 decimals", "amount"))
	}

	d.total = total
	return d
}

// Note implements Distribution.
func (d *distributionImpl) Note(note string) Distribution {
	d.note = note
	return d
}

// Description implements Distribution.
func (d *distributionImpl) Description(desc string) Distribution {
	d.desc = desc
	return d
}

// CreatedBy implements Distribution.
func (d *distributionImpl) CreatedBy(userID uint) Distribution {
	d.createdByID = userID
	return d
}

// Commit implements Distribution.
func (d *distributionImpl) Commit() Distribution {
	if d.err != nil {
		return d
	}

	if d.business == nil {
		return d.setErr(errors.New("distribution business not loaded"))
	}

	if d.total.IsZero() {
		return d.setErr(NewValidationError("amount must be greater than zero", "amount"))
	}

	stakes, err := InvestorStakes(d.tx, d.business.ID)
	if err != nil {
		return d.setErr(err)
	}

	shares, err := ComputeShares(stakes, d.total)
	if err != nil {
		var noinv *NoInvestorsError
		if errors.As(err, &noinv) {
			noinv.BusinessID = d.business.ID
		}
		return d.setErr(err)
	}

	now := time.Now()
	switch d.kind {
	case EarningDistribution:
		err = d.commitEarning(shares, now)
	case ExpenseDistribution:
		err = d.commitExpense(shares, now)
	default:
		err = errors.New("unknown distribution kind " + string(d.kind))
	}

	if err != nil {
		return d.setErr(err)
	}

	d.shares = shares
	return d
}

func (d *distributionImpl) commitEarning(shares []*ShareItem, now time.Time) error {
	earning := pool_model.Earning{
		BusinessID:  d.business.ID,
		TotalAmount: d.total,
		Note:        d.note,
		CreatedByID: d.createdByID,
		CreatedAt:   now,
	}

	err := d.tx.Create(&earning).Error
	if err != nil {
		return err
	}

	rows := make([]*pool_model.EarningShare, 0, len(shares))
	for _, share := range shares {
		rows = append(rows, &pool_model.EarningShare{
			EarningID:    earning.ID,
			UserID:       share.UserID,
			BusinessID:   d.business.ID,
			Amount:       share.Amount,
			SharePercent: share.SharePercent,
			CreatedAt:    now,
		})
	}

	err = d.tx.Create(&rows).Error
	if err != nil {
		return err
	}

	d.parentID = earning.ID

	return d.bookmg.
		NewAudit().
		Type(pool_model.EarningTx).
		Business(d.business.ID).
		Actor(d.createdByID).
		Amount(d.total).
		Desc("earning %s recorded for %s, shared to %d investors", d.total.StringFixed(2), d.business.Name, len(rows)).
		Commit().
		Err()
}

func (d *distributionImpl) commitExpense(shares []*ShareItem, now time.Time) error {
	expense := pool_model.Expense{
		BusinessID:  d.business.ID,
		TotalAmount: d.total,
		Description: d.desc,
		Note:        d.note,
		CreatedByID: d.createdByID,
		CreatedAt:   now,
	}

	err := d.tx.Create(&expense).Error
	if err != nil {
		return err
	}

	rows := make([]*pool_model.ExpenseShare, 0, len(shares))
	for _, share := range shares {
		rows = append(rows, &pool_model.ExpenseShare{
			ExpenseID:    expense.ID,
			UserID:       share.UserID,
			BusinessID:   d.business.ID,
			Amount:       share.Amount,
			SharePercent: share.SharePercent,
			CreatedAt:    now,
		})
	}

	err = d.tx.Create(&rows).Error
	if err != nil {
		return err
	}

	d.parentID = expense.ID

	return d.bookmg.
		NewAudit().
		Type(pool_model.ExpenseTx).
		Business(d.business.ID).
		Actor(d.createdByID).
		Amount(d.total).
		Desc("expense %s recorded for %s, shared to %d investors", d.total.StringFixed(2), d.business.Name, len(rows)).
		Commit().
		Err()
}

// ParentID implements Distribution.
func (d *distributionImpl) ParentID() uint {
	return d.parentID
}

// BusinessData implements Distribution.
func (d *distributionImpl) BusinessData() *pool_model.Business {
	return d.business
}

// Shares implements Distribution.
func (d *distributionImpl) Shares() []*ShareItem {
	return d.shares
}

// Err implements Distribution.
func (d *distributionImpl) Err() error {
	return d.err
}

func (d *distributionImpl) setErr(err error) *distributionImpl {
	if d.err != nil {
		return d
	}

	if err != nil {
		d.err = err
	}

	return d
}
