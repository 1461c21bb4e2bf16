package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/pdcgo/pool_service/authorization"
	"github.com/pdcgo/pool_service/pool_core"
	"github.com/pdcgo/pool_service/pool_iface"
	"github.com/pdcgo/pool_service/pool_model"
	"gorm.io/gorm"
)

// Register implements pool_ifaceconnect.UserServiceHandler.
func (u *userServiceImpl) Register(
	ctx context.Context,
	req *connect.Request[pool_iface.RegisterRequest],
) (*connect.Response[pool_iface.RegisterResponse], error) {
	var err error
	pay := req.Msg
	pay.Username = strings.TrimSpace(pay.Username)

	err = pool_iface.Validate(pay)
	if err != nil {
		return nil, err
	}

	hash, err := authorization.HashPassword(pay.Password)
	if err != nil {
		return nil, err
	}

	user := pool_model.User{
		Username:     pay.Username,
		PasswordHash: hash,
		Role:         pool_model.MemberRole,
		CreatedAt:    time.Now(),
	}

	err = CreateUser(ctx, u.db, &user)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&pool_iface.RegisterResponse{
		User: toUserItem(&user),
	}), nil
}

// CreateUser stores a new user with its register audit row.
func CreateUser(ctx context.Context, db *gorm.DB, user *pool_model.User) error {
	return pool_core.OpenTransaction(ctx, db, func(tx *gorm.DB, bookmng pool_core.BookManage) error {
		var count int64
		err := tx.
			Model(&pool_model.User{}).
			Where("username = ?", user.Username).
			Count(&count).
			Error

		if err != nil {
			return err
		}

		if count > 0 {
			return &pool_core.ConflictError{Msg: "username " + user.Username + " already taken"}
		}

		err = tx.Create(user).Error
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return &pool_core.ConflictError{Msg: "username " + user.Username + " already taken"}
			}
			return err
		}

		return bookmng.
			NewAudit().
			Type(pool_model.RegisterTx).
			User(user.ID).
			Actor(user.ID).
			Desc("user registered as %s", user.Role).
			Commit().
			Err()
	})
}
