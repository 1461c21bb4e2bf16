package business

import (
	"context"
	"time"

	"connectrpc.com/connect"
	"github.com/pdcgo/pool_service/authorization_iface"
	"github.com/pdcgo/pool_service/pool_core"
	"github.com/pdcgo/pool_service/pool_iface"
	"github.com/pdcgo/pool_service/pool_model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BusinessCreate implements pool_ifaceconnect.BusinessServiceHandler.
func (b *businessServiceImpl) BusinessCreate(
	ctx context.Context,
	req *connect.Request[pool_iface.BusinessCreateRequest],
) (*connect.Response[pool_iface.BusinessCreateResponse], error) {
	var err error
	pay := req.Msg

	identity := b.
		auth.
		AuthIdentityFromHeader(req.Header()).
		HasPermission(adminGate(authorization_iface.Create, &pool_model.Business{}))

	err = identity.Err()
	if err != nil {
		return nil, err
	}
	agent := identity.Identity()

	err = pool_iface.Validate(pay)
	if err != nil {
		return nil, err
	}

	biz := pool_model.Business{
		Name:           pay.Name,
		Description:    pay.Description,
		Icon:           pay.Icon,
		MonthlyRevenue: pay.MonthlyRevenue,
		Active:         true,
		TotalInvested:  decimal.Zero,
		CreatedAt:      time.Now(),
	}

	err = pool_core.OpenTransaction(ctx, b.db, func(tx *gorm.DB, bookmng pool_core.BookManage) error {
		err := tx.Create(&biz).Error
		if err != nil {
			return err
		}

		return bookmng.
			NewAudit().
			Type(pool_model.BusinessCreateTx).
			Business(biz.ID).
			Actor(agent.GetUserID()).
			Desc("business %s created", biz.Name).
			Commit().
			Err()
	})

	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&pool_iface.BusinessCreateResponse{
		Business: toBusinessItem(&biz),
	}), nil
}

// BusinessUpdate implements pool_ifaceconnect.BusinessServiceHandler.
func (b *businessServiceImpl) BusinessUpdate(
	ctx context.Context,
	req *connect.Request[pool_iface.BusinessUpdateRequest],
) (*connect.Response[pool_iface.BusinessUpdateResponse], error) {
	var err error
	pay := req.Msg

	identity := b.
		auth.
		AuthIdentityFromHeader(req.Header()).
		HasPermission(adminGate(authorization_iface.Update, &pool_model.Business{}))

	err = identity.Err()
	if err != nil {
		return nil, err
	}
	agent := identity.Identity()

	err = pool_iface.Validate(pay)
	if err != nil {
		return nil, err
	}

	var biz *pool_model.Business
	err = pool_core.OpenTransaction(ctx, b.db, func(tx *gorm.DB, bookmng pool_core.BookManage) error {
		var err error
		biz, err = bookmng.LockBusiness(pay.ID, false)
		if err != nil {
			return err
		}

		biz.Name = pay.Name
		biz.Description = pay.Description
		biz.Icon = pay.Icon
		biz.MonthlyRevenue = pay.MonthlyRevenue
		if pay.Active != nil {
			biz.Active = *pay.Active
		}

		err = tx.
			Model(&pool_model.Business{}).
			Where("id = ?", biz.ID).
			Updates(map[string]any{
				"name":            biz.Name,
				"description":     biz.Description,
				"icon":            biz.Icon,
				"monthly_revenue": biz.MonthlyRevenue,
				"active":          biz.Active,
			}).
			Error

		if err != nil {
			return err
		}

		return bookmng.
			NewAudit().
			Type(pool_model.BusinessUpdateTx).
			Business(biz.ID).
			Actor(agent.GetUserID()).
			Desc("business %s updated", biz.Name).
			Commit().
			Err()
	})

	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&pool_iface.BusinessUpdateResponse{
		Business: toBusinessItem(biz),
	}), nil
}

// BusinessDelete implements pool_ifaceconnect.BusinessServiceHandler.
func (b *businessServiceImpl) BusinessDelete(
	ctx context.Context,
	req *connect.Request[pool_iface.BusinessDeleteRequest],
) (*connect.Response[pool_iface.Empty], error) {
	var err error
	pay := req.Msg

	identity := b.
		auth.
		AuthIdentityFromHeader(req.Header()).
		HasPermission(adminGate(authorization_iface.Delete, &pool_model.Business{}))

	err = identity.Err()
	if err != nil {
		return nil, err
	}
	agent := identity.Identity()

	err = pool_iface.Validate(pay)
	if err != nil {
		return nil, err
	}

	err = pool_core.OpenTransaction(ctx, b.db, func(tx *gorm.DB, bookmng pool_core.BookManage) error {
		biz, err := bookmng.LockBusiness(pay.ID, false)
		if err != nil {
			return err
		}

		err = tx.
			Model(&pool_model.Business{}).
			Where("id = ?", biz.ID).
			Update("active", false).
			Error

		if err != nil {
			return err
		}

		return bookmng.
			NewAudit().
			Type(pool_model.BusinessDeleteTx).
			Business(biz.ID).
			Actor(agent.GetUserID()).
			Desc("business %s deactivated", biz.Name).
			Commit().
			Err()
	})

	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&pool_iface.Empty{}), nil
}
