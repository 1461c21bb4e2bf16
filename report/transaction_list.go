package report

import (
	"context"

	"connectrpc.com/connect"
	"github.com/pdcgo/pool_service/pool_iface"
	"github.com/pdcgo/pool_service/visibility"
)

func (r *reportServiceImpl) transactionLimit(requested int) int {
	limit := requested
	if limit <= 0 {
		limit = r.cfg.TransactionLimit
	}
	if r.cfg.TransactionLimitMax > 0 && limit > r.cfg.TransactionLimitMax {
		limit = r.cfg.TransactionLimitMax
	}
	return limit
}

// toTransactionItem masks the subject and the actor of an audit row. Rows
// without a business are only readable in clear by admins and the user itself.
func toTransactionItem(viewer *visibility.Viewer, row *transactionRow) *pool_iface.TransactionItem {
	item := pool_iface.TransactionItem{
		ID:           row.ID,
		Type:         row.Type,
		BusinessID:   row.BusinessID,
		BusinessName: row.BusinessName,
		UserID:       row.UserID,
		ActorID:      row.ActorID,
		Amount:       row.Amount,
		Desc:         row.Description,
		CreatedAt:    row.CreatedAt,
	}

	var businessID uint
	if row.BusinessID != nil {
		businessID = *row.BusinessID
	}

	if row.UserID != nil {
		canSee := viewer.IsAdmin
		if businessID != 0 {
			canSee = viewer.CanSeeBusiness(businessID)
		}
		item.Username = viewer.Mask(row.Username, *row.UserID, canSee)
	}

	if row.ActorID != nil {
		canSee := viewer.IsAdmin
		if businessID != 0 {
			canSee = viewer.CanSeeRecord(*row.ActorID, businessID)
		}
		item.ActorName = viewer.Mask(row.ActorName, *row.ActorID, canSee)
	}

	return &item
}

// TransactionList implements pool_ifaceconnect.ReportServiceHandler.
func (r *reportServiceImpl) TransactionList(
	ctx context.Context,
	req *connect.Request[pool_iface.TransactionListRequest],
) (*connect.Response[pool_iface.TransactionListResponse], error) {
	var err error
	db := r.db.WithContext(ctx)
	pay := req.Msg

	identity := r.auth.AuthIdentityFromHeader(req.Header())
	err = identity.Err()
	if err != nil {
		return nil, err
	}

	err = pool_iface.Validate(pay)
	if err != nil {
		return nil, err
	}

	viewer, err := visibility.ViewerFromIdentity(db, identity.Identity())
	if err != nil {
		return nil, err
	}

	result := pool_iface.TransactionListResponse{
		Data: []*pool_iface.TransactionItem{},
	}

	err = NewTransactionView(db).
		BusinessID(pay.BusinessID).
		Limit(r.transactionLimit(pay.Limit)).
		Iterate(func(row *transactionRow) error {
			result.Data = append(result.Data, toTransactionItem(viewer, row))
			return nil
		})

	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&result), nil
}
