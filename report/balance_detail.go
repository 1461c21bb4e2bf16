package report

import (
	"context"
	"errors"

	"connectrpc.com/connect"
	"github.com/pdcgo/pool_service/pool_core"
	"github.com/pdcgo/pool_service/pool_iface"
	"github.com/pdcgo/pool_service/pool_model"
	"github.com/pdcgo/pool_service/visibility"
	"gorm.io/gorm"
)

// BalanceDetail implements pool_ifaceconnect.ReportServiceHandler.
func (r *reportServiceImpl) BalanceDetail(
	ctx context.Context,
	req *connect.Request[pool_iface.BalanceDetailRequest],
) (*connect.Response[pool_iface.BalanceDetailResponse], error) {
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

	var user pool_model.User
	err = db.First(&user, pay.UserID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &pool_core.NotFoundError{Entity: "user", ID: pay.UserID}
		}
		return nil, err
	}

	var biz pool_model.Business
	err = db.First(&biz, pay.BusinessID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &pool_core.NotFoundError{Entity: "business", ID: pay.BusinessID}
		}
		return nil, err
	}

	viewer, err := visibility.ViewerFromIdentity(db, identity.Identity())
	if err != nil {
		return nil, err
	}

	balance, err := pool_core.AvailableBalance(db, user.ID, biz.ID)
	if err != nil {
		return nil, err
	}

	names := nameBook{
		users:      map[uint]string{user.ID: user.Username},
		businesses: map[uint]string{biz.ID: biz.Name},
	}

	return connect.NewResponse(&pool_iface.BalanceDetailResponse{
		Balance: names.balanceItem(viewer, balance, viewer.CanSeeBusiness(biz.ID)),
	}), nil
}
