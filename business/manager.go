package business

import (
	"context"
	"errors"
	"time"

	"connectrpc.com/connect"
	"github.com/pdcgo/pool_service/authorization_iface"
	"github.com/pdcgo/pool_service/pool_core"
	"github.com/pdcgo/pool_service/pool_iface"
	"github.com/pdcgo/pool_service/pool_model"
	"github.com/pdcgo/pool_service/visibility"
	"gorm.io/gorm"
)

type managerRow struct {
	BusinessID uint
	UserID     uint
	Username   string
	CreatedAt  time.Time
}

// ManagerList implements pool_ifaceconnect.BusinessServiceHandler.
func (b *businessServiceImpl) ManagerList(
	ctx context.Context,
	req *connect.Request[pool_iface.ManagerListRequest],
) (*connect.Response[pool_iface.ManagerListResponse], error) {
	var err error
	db := b.db.WithContext(ctx)
	pay := req.Msg

	identity := b.auth.AuthIdentityFromHeader(req.Header())
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

	rows := []*managerRow{}
	err = db.
		Table("business_managers bm").
		Joins("join users u on u.id = bm.user_id").
		Select([]string{
			"bm.business_id",
			"bm.user_id",
			"u.username",
			"bm.created_at",
		}).
		Where("bm.business_id = ?", pay.BusinessID).
		Order("bm.user_id asc").
		Find(&rows).
		Error

	if err != nil {
		return nil, err
	}

	canSee := viewer.CanSeeBusiness(pay.BusinessID)
	result := pool_iface.ManagerListResponse{
		Data: make([]*pool_iface.ManagerItem, 0, len(rows)),
	}
	for _, row := range rows {
		result.Data = append(result.Data, &pool_iface.ManagerItem{
			BusinessID: row.BusinessID,
			UserID:     row.UserID,
			Username:   viewer.Mask(row.Username, row.UserID, canSee),
			CreatedAt:  row.CreatedAt,
		})
	}

	return connect.NewResponse(&result), nil
}

// ManagerAdd implements pool_ifaceconnect.BusinessServiceHandler.
func (b *businessServiceImpl) ManagerAdd(
	ctx context.Context,
	req *connect.Request[pool_iface.ManagerAddRequest],
) (*connect.Response[pool_iface.Empty], error) {
	var err error
	pay := req.Msg

	identity := b.
		auth.
		AuthIdentityFromHeader(req.Header()).
		HasPermission(adminGate(authorization_iface.Create, &pool_model.BusinessManager{}))

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
		biz, err := bookmng.LockBusiness(pay.BusinessID, false)
		if err != nil {
			return err
		}

		user, err := findUser(tx, pay.UserID)
		if err != nil {
			return err
		}

		var count int64
		err = tx.
			Model(&pool_model.BusinessManager{}).
			Where("business_id = ? and user_id = ?", biz.ID, user.ID).
			Count(&count).
			Error
		if err != nil {
			return err
		}

		if count > 0 {
			return &pool_core.ConflictError{Msg: user.Username + " already manages " + biz.Name}
		}

		err = tx.Create(&pool_model.BusinessManager{
			BusinessID: biz.ID,
			UserID:     user.ID,
			CreatedAt:  time.Now(),
		}).Error
		if err != nil {
			return err
		}

		return bookmng.
			NewAudit().
			Type(pool_model.ManagerAddTx).
			Business(biz.ID).
			User(user.ID).
			Actor(agent.GetUserID()).
			Desc("manager of %s granted", biz.Name).
			Commit().
			Err()
	})

	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&pool_iface.Empty{}), nil
}

// ManagerRemove implements pool_ifaceconnect.BusinessServiceHandler.
func (b *businessServiceImpl) ManagerRemove(
	ctx context.Context,
	req *connect.Request[pool_iface.ManagerRemoveRequest],
) (*connect.Response[pool_iface.Empty], error) {
	var err error
	pay := req.Msg

	identity := b.
		auth.
		AuthIdentityFromHeader(req.Header()).
		HasPermission(adminGate(authorization_iface.Delete, &pool_model.BusinessManager{}))

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
		biz, err := bookmng.LockBusiness(pay.BusinessID, false)
		if err != nil {
			return err
		}

		user, err := findUser(tx, pay.UserID)
		if err != nil {
			return err
		}

		del := tx.
			Where("business_id = ? and user_id = ?", biz.ID, user.ID).
			Delete(&pool_model.BusinessManager{})

		if del.Error != nil {
			return del.Error
		}

		if del.RowsAffected == 0 {
			return &pool_core.NotFoundError{Entity: "manager grant of " + user.Username + " on " + biz.Name}
		}

		return bookmng.
			NewAudit().
			Type(pool_model.ManagerRemoveTx).
			Business(biz.ID).
			User(user.ID).
			Actor(agent.GetUserID()).
			Desc("manager of %s removed", biz.Name).
			Commit().
			Err()
	})

	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&pool_iface.Empty{}), nil
}

func findUser(tx *gorm.DB, userID uint) (*pool_model.User, error) {
	var user pool_model.User
	err := tx.
		Model(&pool_model.User{}).
		Where("id = ?", userID).
		First(&user).
		Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &pool_core.NotFoundError{Entity: "user", ID: userID}
	}

	return &user, err
}
