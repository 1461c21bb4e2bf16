package earning

import (
	"context"
	"errors"

	"connectrpc.com/connect"
	"github.com/pdcgo/pool_service/authorization_iface"
	"github.com/pdcgo/pool_service/pool_core"
	"github.com/pdcgo/pool_service/pool_iface"
	"github.com/pdcgo/pool_service/pool_model"
	"github.com/pdcgo/pool_service/visibility"
	"gorm.io/gorm"
)

// EarningCreate implements pool_ifaceconnect.EarningServiceHandler.
func (e *earningServiceImpl) EarningCreate(
	ctx context.Context,
	req *connect.Request[pool_iface.EarningCreateRequest],
) (*connect.Response[pool_iface.EarningCreateResponse], error) {
	var err error
	pay := req.Msg

	identity := e.
		auth.
		AuthIdentityFromHeader(req.Header()).
		HasPermission(authorization_iface.CheckPermissionGroup{
			&pool_model.Earning{}: &authorization_iface.CheckPermission{
				DomainID: pay.BusinessID,
				Actions:  []authorization_iface.Action{authorization_iface.Create},
			},
		})

	err = identity.Err()
	if err != nil {
		return nil, err
	}
	agent := identity.Identity()

	err = pool_iface.Validate(pay)
	if err != nil {
		return nil, err
	}

	var row *earningRow
	var shares []*shareRow
	err = pool_core.OpenTransaction(ctx, e.db, func(tx *gorm.DB, bookmng pool_core.BookManage) error {
		dist := bookmng.
			NewDistribution(pool_core.EarningDistribution).
			Business(pay.BusinessID).
			Amount(pay.Amount).
			Note(pay.Note).
			CreatedBy(agent.GetUserID()).
			Commit()

		err := dist.Err()
		if err != nil {
			return err
		}

		var earning pool_model.Earning
		err = tx.First(&earning, dist.ParentID()).Error
		if err != nil {
			return err
		}

		row = &earningRow{
			ID:           earning.ID,
			BusinessID:   earning.BusinessID,
			BusinessName: dist.BusinessData().Name,
			TotalAmount:  earning.TotalAmount,
			Note:         earning.Note,
			CreatedByID:  earning.CreatedByID,
			RecordedBy:   agent.GetUsername(),
			CreatedAt:    earning.CreatedAt,
		}

		loaded, err := loadShares(tx, []uint{earning.ID})
		shares = loaded[earning.ID]
		return err
	})

	if err != nil {
		return nil, err
	}

	viewer, err := visibility.ViewerFromIdentity(e.db.WithContext(ctx), agent)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&pool_iface.EarningCreateResponse{
		Earning: toEarningItem(viewer, row, shares),
	}), nil
}

// EarningDelete implements pool_ifaceconnect.EarningServiceHandler.
func (e *earningServiceImpl) EarningDelete(
	ctx context.Context,
	req *connect.Request[pool_iface.EarningDeleteRequest],
) (*connect.Response[pool_iface.Empty], error) {
	var err error
	pay := req.Msg

	identity := e.
		auth.
		AuthIdentityFromHeader(req.Header()).
		HasPermission(authorization_iface.CheckPermissionGroup{
			&pool_model.Earning{}: &authorization_iface.CheckPermission{
				DomainID: authorization_iface.RootDomain,
				Actions:  []authorization_iface.Action{authorization_iface.Delete},
			},
		})

	err = identity.Err()
	if err != nil {
		return nil, err
	}
	agent := identity.Identity()

	err = pool_iface.Validate(pay)
	if err != nil {
		return nil, err
	}

	err = pool_core.OpenTransaction(ctx, e.db, func(tx *gorm.DB, bookmng pool_core.BookManage) error {
		var earning pool_model.Earning
		err := tx.First(&earning, pay.ID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &pool_core.NotFoundError{Entity: "earning", ID: pay.ID}
			}
			return err
		}

		biz, err := bookmng.LockBusiness(earning.BusinessID, false)
		if err != nil {
			return err
		}

		err = tx.Where("earning_id = ?", earning.ID).Delete(&pool_model.EarningShare{}).Error
		if err != nil {
			return err
		}

		err = tx.Delete(&pool_model.Earning{}, earning.ID).Error
		if err != nil {
			return err
		}

		return bookmng.
			NewAudit().
			Type(pool_model.EarningDeleteTx).
			Business(biz.ID).
			Actor(agent.GetUserID()).
			Amount(earning.TotalAmount).
			Desc("earning %s of %s deleted", earning.TotalAmount.StringFixed(2), biz.Name).
			Commit().
			Err()
	})

	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&pool_iface.Empty{}), nil
}
