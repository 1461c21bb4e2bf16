package expense

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

// ExpenseCreate implements pool_ifaceconnect.ExpenseServiceHandler.
func (e *expenseServiceImpl) ExpenseCreate(
	ctx context.Context,
	req *connect.Request[pool_iface.ExpenseCreateRequest],
) (*connect.Response[pool_iface.ExpenseCreateResponse], error) {
	var err error
	pay := req.Msg

	identity := e.
		auth.
		AuthIdentityFromHeader(req.Header()).
		HasPermission(authorization_iface.CheckPermissionGroup{
			&pool_model.Expense{}: &authorization_iface.CheckPermission{
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

	var row *expenseRow
	var shares []*shareRow
	err = pool_core.OpenTransaction(ctx, e.db, func(tx *gorm.DB, bookmng pool_core.BookManage) error {
		dist := bookmng.
			NewDistribution(pool_core.ExpenseDistribution).
			Business(pay.BusinessID).
			Amount(pay.Amount).
			Description(pay.Description).
			Note(pay.Note).
			CreatedBy(agent.GetUserID()).
			Commit()

		err := dist.Err()
		if err != nil {
			return err
		}

		var expense pool_model.Expense
		err = tx.First(&expense, dist.ParentID()).Error
		if err != nil {
			return err
		}

		row = &expenseRow{
			ID:           expense.ID,
			BusinessID:   expense.BusinessID,
			BusinessName: dist.BusinessData().Name,
			TotalAmount:  expense.TotalAmount,
			Description:  expense.Description,
			Note:         expense.Note,
			CreatedByID:  expense.CreatedByID,
			RecordedBy:   agent.GetUsername(),
			CreatedAt:    expense.CreatedAt,
		}

		loaded, err := loadShares(tx, []uint{expense.ID})
		shares = loaded[expense.ID]
		return err
	})

	if err != nil {
		return nil, err
	}

	viewer, err := visibility.ViewerFromIdentity(e.db.WithContext(ctx), agent)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&pool_iface.ExpenseCreateResponse{
		Expense: toExpenseItem(viewer, row, shares),
	}), nil
}

// ExpenseDelete implements pool_ifaceconnect.ExpenseServiceHandler.
func (e *expenseServiceImpl) ExpenseDelete(
	ctx context.Context,
	req *connect.Request[pool_iface.ExpenseDeleteRequest],
) (*connect.Response[pool_iface.Empty], error) {
	var err error
	pay := req.Msg

	identity := e.
		auth.
		AuthIdentityFromHeader(req.Header()).
		HasPermission(authorization_iface.CheckPermissionGroup{
			&pool_model.Expense{}: &authorization_iface.CheckPermission{
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
		var expense pool_model.Expense
		err := tx.First(&expense, pay.ID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &pool_core.NotFoundError{Entity: "expense", ID: pay.ID}
			}
			return err
		}

		biz, err := bookmng.LockBusiness(expense.BusinessID, false)
		if err != nil {
			return err
		}

		err = tx.Where("expense_id = ?", expense.ID).Delete(&pool_model.ExpenseShare{}).Error
		if err != nil {
			return err
		}

		err = tx.Delete(&pool_model.Expense{}, expense.ID).Error
		if err != nil {
			return err
		}

		return bookmng.
			NewAudit().
			Type(pool_model.ExpenseDeleteTx).
			Business(biz.ID).
			Actor(agent.GetUserID()).
			Amount(expense.TotalAmount).
			Desc("expense %s of %s deleted", expense.TotalAmount.StringFixed(2), biz.Name).
			Commit().
			Err()
	})

	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&pool_iface.Empty{}), nil
}
