package withdrawal

import (
	"context"
	"errors"
	"time"

	"connectrpc.com/connect"
	"github.com/pdcgo/pool_service/authorization_iface"
	"github.com/pdcgo/pool_service/pool_core"
	"github.com/pdcgo/pool_service/pool_iface"
	"github.com/pdcgo/pool_service/pool_model"
	"gorm.io/gorm"
)

// WithdrawalCreate implements pool_ifaceconnect.WithdrawalServiceHandler.
// The business row stays locked from the balance check until the insert.
func (w *withdrawalServiceImpl) WithdrawalCreate(
	ctx context.Context,
	req *connect.Request[pool_iface.WithdrawalCreateRequest],
) (*connect.Response[pool_iface.WithdrawalCreateResponse], error) {
	var err error
	pay := req.Msg

	identity := w.
		auth.
		AuthIdentityFromHeader(req.Header()).
		HasPermission(authorization_iface.CheckPermissionGroup{
			&pool_model.Withdrawal{}: &authorization_iface.CheckPermission{
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

	var result pool_iface.WithdrawalCreateResponse
	err = pool_core.OpenTransaction(ctx, w.db, func(tx *gorm.DB, bookmng pool_core.BookManage) error {
		// withdrawing from a deactivated business is allowed
		biz, err := bookmng.LockBusiness(pay.BusinessID, false)
		if err != nil {
			return err
		}

		var user pool_model.User
		err = tx.First(&user, pay.UserID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &pool_core.NotFoundError{Entity: "user", ID: pay.UserID}
			}
			return err
		}

		balance, err := pool_core.AvailableBalance(tx, user.ID, biz.ID)
		if err != nil {
			return err
		}

		available := balance.Available()
		if pay.Amount.GreaterThan(available) {
			return &pool_core.InsufficientBalanceError{
				Requested: pay.Amount,
				Available: available,
			}
		}

		wd := pool_model.Withdrawal{
			UserID:      user.ID,
			BusinessID:  biz.ID,
			Amount:      pay.Amount,
			Note:        pay.Note,
			CreatedByID: agent.GetUserID(),
			CreatedAt:   time.Now(),
		}

		err = tx.Create(&wd).Error
		if err != nil {
			return err
		}

		result.Available = available.Sub(wd.Amount)
		result.Withdrawal = &pool_iface.WithdrawalItem{
			ID:             wd.ID,
			UserID:         user.ID,
			Username:       user.Username,
			BusinessID:     biz.ID,
			BusinessName:   biz.Name,
			Amount:         wd.Amount,
			Note:           wd.Note,
			RecordedByName: agent.GetUsername(),
			CreatedAt:      wd.CreatedAt,
		}

		return bookmng.
			NewAudit().
			Type(pool_model.WithdrawalTx).
			Business(biz.ID).
			User(user.ID).
			Actor(agent.GetUserID()).
			Amount(wd.Amount).
			Desc("withdrawal %s from %s", wd.Amount.StringFixed(2), biz.Name).
			Commit().
			Err()
	})

	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&result), nil
}

// WithdrawalDelete implements pool_ifaceconnect.WithdrawalServiceHandler.
func (w *withdrawalServiceImpl) WithdrawalDelete(
	ctx context.Context,
	req *connect.Request[pool_iface.WithdrawalDeleteRequest],
) (*connect.Response[pool_iface.Empty], error) {
	var err error
	pay := req.Msg

	identity := w.auth.AuthIdentityFromHeader(req.Header())
	err = identity.Err()
	if err != nil {
		return nil, err
	}

	err = pool_iface.Validate(pay)
	if err != nil {
		return nil, err
	}

	var wd pool_model.Withdrawal
	err = w.db.WithContext(ctx).First(&wd, pay.ID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &pool_core.NotFoundError{Entity: "withdrawal", ID: pay.ID}
		}
		return nil, err
	}

	err = identity.
		HasPermission(authorization_iface.CheckPermissionGroup{
			&pool_model.Withdrawal{}: &authorization_iface.CheckPermission{
				DomainID: wd.BusinessID,
				Actions:  []authorization_iface.Action{authorization_iface.Delete},
			},
		}).
		Err()
	if err != nil {
		return nil, err
	}
	agent := identity.Identity()

	err = pool_core.OpenTransaction(ctx, w.db, func(tx *gorm.DB, bookmng pool_core.BookManage) error {
		biz, err := bookmng.LockBusiness(wd.BusinessID, false)
		if err != nil {
			return err
		}

		res := tx.Delete(&pool_model.Withdrawal{}, wd.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return &pool_core.NotFoundError{Entity: "withdrawal", ID: wd.ID}
		}

		return bookmng.
			NewAudit().
			Type(pool_model.WithdrawalDeleteTx).
			Business(biz.ID).
			User(wd.UserID).
			Actor(agent.GetUserID()).
			Amount(wd.Amount).
			Desc("withdrawal of %s from %s deleted", wd.Amount.StringFixed(2), biz.Name).
			Commit().
			Err()
	})

	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&pool_iface.Empty{}), nil
}
