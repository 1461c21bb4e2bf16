package pool_core_test

import (
	"testing"

	"github.com/pdcgo/pool_service/pool_core"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(raw string) decimal.Decimal {
	return decimal.RequireFromString(raw)
}

func TestComputeShares(t *testing.T) {
	t.Run("proportional split", func(t *testing.T) {
		shares, err := pool_core.ComputeShares([]*pool_core.InvestorStake{
			{UserID: 1, Invested: dec("1000")},
			{UserID: 2, Invested: dec("3000")},
		}, dec("400"))

		assert.Nil(t, err)
		assert.Len(t, shares, 2)
		assert.Equal(t, "100.00", shares[0].Amount.StringFixed(2))
		assert.Equal(t, "25.00", shares[0].SharePercent.StringFixed(2))
		assert.Equal(t, "300.00", shares[1].Amount.StringFixed(2))
		assert.Equal(t, "75.00", shares[1].SharePercent.StringFixed(2))
	})

	t.Run("rounding drift is kept", func(t *testing.T) {
		shares, err := pool_core.ComputeShares([]*pool_core.InvestorStake{
			{UserID: 1, Invested: dec("100")},
			{UserID: 2, Invested: dec("100")},
			{UserID: 3, Invested: dec("100")},
		}, dec("100"))

		assert.Nil(t, err)
		total := decimal.Zero
		for _, share := range shares {
			assert.Equal(t, "33.33", share.Amount.StringFixed(2))
			assert.Equal(t, "33.33", share.SharePercent.StringFixed(2))
			total = total.Add(share.Amount)
		}
		assert.Equal(t, "99.99", total.StringFixed(2))
	})

	t.Run("half rounds away from zero", func(t *testing.T) {
		shares, err := pool_core.ComputeShares([]*pool_core.InvestorStake{
			{UserID: 1, Invested: dec("1")},
			{UserID: 2, Invested: dec("1")},
		}, dec("0.05"))

		assert.Nil(t, err)
		assert.Equal(t, "0.03", shares[0].Amount.StringFixed(2))
		assert.Equal(t, "0.03", shares[1].Amount.StringFixed(2))
	})

	t.Run("no investors", func(t *testing.T) {
		_, err := pool_core.ComputeShares([]*pool_core.InvestorStake{}, dec("10"))

		var noinv *pool_core.NoInvestorsError
		assert.ErrorAs(t, err, &noinv)
		assert.Equal(t, pool_core.KindNoInvestors, pool_core.KindOf(err))
	})
}

func TestBalanceROI(t *testing.T) {
	b := pool_core.Balance{
		Invested:     dec("1000"),
		Earned:       dec("100"),
		ExpenseShare: dec("50"),
		Withdrawn:    dec("20"),
	}

	assert.Equal(t, "30.00", b.Available().StringFixed(2))
	assert.Equal(t, "10.00", b.ROI().StringFixed(2))

	empty := pool_core.Balance{}
	assert.True(t, empty.ROI().IsZero())
	assert.True(t, empty.Available().IsZero())
}

func TestValidMoney(t *testing.T) {
	assert.True(t, pool_core.ValidMoney(dec("0.01")))
	assert.True(t, pool_core.ValidMoney(dec("12.50")))
	assert.False(t, pool_core.ValidMoney(dec("0")))
	assert.False(t, pool_core.ValidMoney(dec("-1")))
	assert.False(t, pool_core.ValidMoney(dec("1.005")))
}

func TestInsufficientBalanceMessage(t *testing.T) {
	err := &pool_core.InsufficientBalanceError{
		Requested: dec("51"),
		Available: dec("50"),
	}

	assert.Contains(t, err.Error(), "available 50.00")
	assert.Equal(t, pool_core.KindInsufficientBalance, pool_core.KindOf(err))
}
