package report

import (
	"context"

	"connectrpc.com/connect"
	"github.com/pdcgo/pool_service/investment"
	"github.com/pdcgo/pool_service/pool_core"
	"github.com/pdcgo/pool_service/pool_iface"
	"github.com/pdcgo/pool_service/visibility"
	"github.com/pdcgo/pool_service/withdrawal"
)

// MyStats implements pool_ifaceconnect.ReportServiceHandler.
func (r *reportServiceImpl) MyStats(
	ctx context.Context,
	req *connect.Request[pool_iface.MyStatsRequest],
) (*connect.Response[pool_iface.MyStatsResponse], error) {
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

	total := &pool_core.Balance{UserID: viewer.UserID}
	totals, err := pool_core.NewBalanceView(db).
		UserIDs(viewer.UserID).
		ActiveOnly().
		UserBalances()
	if err != nil {
		return nil, err
	}
	if len(totals) != 0 {
		total = totals[0]
	}

	balances, err := pool_core.NewBalanceView(db).
		UserIDs(viewer.UserID).
		UserBusinessBalances()
	if err != nil {
		return nil, err
	}

	investments, err := investment.FindInvestments(
		investment.InvestmentQuery(db).Where("i.user_id = ?", viewer.UserID),
	)
	if err != nil {
		return nil, err
	}

	withdrawals, err := withdrawal.FindWithdrawals(
		withdrawal.WithdrawalQuery(db).Where("w.user_id = ?", viewer.UserID),
	)
	if err != nil {
		return nil, err
	}

	result := pool_iface.MyStatsResponse{
		Total:       names.balanceItem(viewer, total, true),
		Balances:    make([]*pool_iface.BalanceItem, 0, len(balances)),
		Investments: make([]*pool_iface.InvestmentItem, 0, len(investments)),
		Withdrawals: make([]*pool_iface.WithdrawalItem, 0, len(withdrawals)),
	}

	for _, balance := range balances {
		result.Balances = append(result.Balances, names.balanceItem(viewer, balance, true))
	}
	for _, row := range investments {
		result.Investments = append(result.Investments, row.ToItem(viewer))
	}
	for _, row := range withdrawals {
		result.Withdrawals = append(result.Withdrawals, row.ToItem(viewer))
	}

	return connect.NewResponse(&result), nil
}
