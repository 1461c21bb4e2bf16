package investment

import (
	"context"
	"errors"
	"time"

	"connectrpc.com/connect"
	"github.com/pdcgo/pool_service/authorization_iface"
	"github.com/pdcgo/pool_service/pool_core"
	"github.com/pdcgo/pool_service/pool_iface"
	"github.com/pdcgo/pool_service/pool_model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InvestmentCreate implements pool_ifaceconnect.InvestmentServiceHandler.
func (i *investmentServiceImpl) InvestmentCreate(
	ctx context.Context,
	req *connect.Request[pool_iface.InvestmentCreateRequest],
) (*connect.Response[pool_iface.InvestmentCreateResponse], error) {
	var err error
	pay := req.Msg

	identity := i.
		auth.
		AuthIdentityFromHeader(req.Header()).
		HasPermission(authorization_iface.CheckPermissionGroup{
			&pool_model.Investment{}: &authorization_iface.CheckPermission{
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

	var result pool_iface.InvestmentCreateResponse
	err = pool_core.OpenTransaction(ctx, i.db, func(tx *gorm.DB, bookmng pool_core.BookManage) error {
		biz, err := bookmng.LockBusiness(pay.BusinessID, true)
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

		inv := pool_model.Investment{
			UserID:     user.ID,
			BusinessID: biz.ID,
			Amount:     pay.Amount,
			Note:       pay.Note,
			CreatedAt:  time.Now(),
		}

		err = tx.Create(&inv).Error
		if err != nil {
			return err
		}

		total := biz.TotalInvested.Add(inv.Amount)
		err = tx.
			Model(&pool_model.Business{}).
			Where("id = ?", biz.ID).
			Update("total_invested", total).
			Error
		if err != nil {
			return err
		}

		result.TotalInvested = total
		result.Investment = &pool_iface.InvestmentItem{
			ID:           inv.ID,
			UserID:       user.ID,
			Username:     user.Username,
			BusinessID:   biz.ID,
			BusinessName: biz.Name,
			Amount:       inv.Amount,
			Note:         inv.Note,
			CreatedAt:    inv.CreatedAt,
		}

		return bookmng.
			NewAudit().
			Type(pool_model.InvestmentTx).
			Business(biz.ID).
			User(user.ID).
			Actor(agent.GetUserID()).
			Amount(inv.Amount).
			Desc("investment %s in %s", inv.Amount.StringFixed(2), biz.Name).
			Commit().
			Err()
	})

	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&result), nil
}

// InvestmentDelete implements pool_ifaceconnect.InvestmentServiceHandler.
// Shares already distributed from this investment are left as they are.
func (i *investmentServiceImpl) InvestmentDelete(
	ctx context.Context,
	req *connect.Request[pool_iface.InvestmentDeleteRequest],
) (*connect.Response[pool_iface.InvestmentDeleteResponse], error) {
	var err error
	pay := req.Msg

	identity := i.
		auth.
		AuthIdentityFromHeader(req.Header()).
		HasPermission(authorization_iface.CheckPermissionGroup{
			&pool_model.Investment{}: &authorization_iface.CheckPermission{
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

	var result pool_iface.InvestmentDeleteResponse
	err = pool_core.OpenTransaction(ctx, i.db, func(tx *gorm.DB, bookmng pool_core.BookManage) error {
		var inv pool_model.Investment
		err := tx.First(&inv, pay.ID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &pool_core.NotFoundError{Entity: "investment", ID: pay.ID}
			}
			return err
		}

		biz, err := bookmng.LockBusiness(inv.BusinessID, false)
		if err != nil {
			return err
		}

		err = tx.Delete(&pool_model.Investment{}, inv.ID).Error
		if err != nil {
			return err
		}

		total := ReverseTotal(biz.TotalInvested, inv.Amount)
		err = tx.
			Model(&pool_model.Business{}).
			Where("id = ?", biz.ID).
			Update("total_invested", total).
			Error
		if err != nil {
			return err
		}

		result.TotalInvested = total

		return bookmng.
			NewAudit().
			Type(pool_model.InvestmentDeleteTx).
			Business(biz.ID).
			User(inv.UserID).
			Actor(agent.GetUserID()).
			Amount(inv.Amount).
			Desc("investment of %s in %s deleted", inv.Amount.StringFixed(2), biz.Name).
			Commit().
			Err()
	})

	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&result), nil
}

// ReverseTotal subtracts amount from total, never going below zero.
func ReverseTotal(total, amount decimal.Decimal) decimal.Decimal {
	result := total.Sub(amount)
	if result.IsNegative() {
		return decimal.Zero
	}
	return result
}
