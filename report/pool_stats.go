package report

import (
	"context"
	"sort"

	"connectrpc.com/connect"
	"github.com/pdcgo/pool_service/pool_core"
	"github.com/pdcgo/pool_service/pool_iface"
	"github.com/pdcgo/pool_service/pool_model"
	"github.com/pdcgo/pool_service/visibility"
	"github.com/shopspring/decimal"
)

// PoolStats implements pool_ifaceconnect.ReportServiceHandler.
// Totals and leaderboard cover active businesses only.
func (r *reportServiceImpl) PoolStats(
	ctx context.Context,
	req *connect.Request[pool_iface.PoolStatsRequest],
) (*connect.Response[pool_iface.PoolStatsResponse], error) {
	var err error
	db := r.db.WithContext(ctx)

	identity := r.auth.AuthIdentityFromHeader(req.Header())
	err = identity.Err()
	if err != nil {
		return nil, err
	}

	viewer, err := visibility.ViewerFromIdentity(db, identity.Identity())
	if err != nil {
		return nil, err
	}

	names, err := loadNameBook(db)
	if err != nil {
		return nil, err
	}

	perUser, err := pool_core.NewBalanceView(db).
		ActiveOnly().
		UserBalances()
	if err != nil {
		return nil, err
	}

	perBusiness, err := pool_core.NewBalanceView(db).
		UserBusinessBalances()
	if err != nil {
		return nil, err
	}

	totals := pool_iface.PoolTotals{
		TotalInvested:  decimal.Zero,
		TotalEarned:    decimal.Zero,
		TotalExpense:   decimal.Zero,
		TotalWithdrawn: decimal.Zero,
		TotalAvailable: decimal.Zero,
	}

	err = db.
		Model(&pool_model.Business{}).
		Where("active = ?", true).
		Count(&totals.ActiveBusinesses).
		Error
	if err != nil {
		return nil, err
	}

	for _, balance := range perUser {
		totals.TotalInvested = totals.TotalInvested.Add(balance.Invested)
		totals.TotalEarned = totals.TotalEarned.Add(balance.Earned)
		totals.TotalExpense = totals.TotalExpense.Add(balance.ExpenseShare)
		totals.TotalWithdrawn = totals.TotalWithdrawn.Add(balance.Withdrawn)
		totals.TotalAvailable = totals.TotalAvailable.Add(balance.Available())
		if balance.Invested.IsPositive() {
			totals.Investors++
		}
	}

	sort.SliceStable(perUser, func(i, j int) bool {
		return perUser[i].Earned.GreaterThan(perUser[j].Earned)
	})

	result := pool_iface.PoolStatsResponse{
		Totals:      &totals,
		Leaderboard: make([]*pool_iface.BalanceItem, 0, len(perUser)),
		Balances:    make([]*pool_iface.BalanceItem, 0, len(perBusiness)),
	}

	for _, balance := range perUser {
		result.Leaderboard = append(result.Leaderboard, names.balanceItem(viewer, balance, viewer.IsAdmin))
	}

	for _, balance := range perBusiness {
		canSee := viewer.CanSeeBusiness(balance.BusinessID)
		result.Balances = append(result.Balances, names.balanceItem(viewer, balance, canSee))
	}

	return connect.NewResponse(&result), nil
}
