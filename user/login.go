package user

import (
	"context"
	"errors"

	"connectrpc.com/connect"
	"github.com/pdcgo/pool_service/authorization"
	"github.com/pdcgo/pool_service/authorization_iface"
	"github.com/pdcgo/pool_service/pool_iface"
	"github.com/pdcgo/pool_service/pool_model"
	"gorm.io/gorm"
)

var errInvalidCredential = &authorization_iface.AuthenticationError{Msg: "invalid username or password"}

// Login implements pool_ifaceconnect.UserServiceHandler.
func (u *userServiceImpl) Login(
	ctx context.Context,
	req *connect.Request[pool_iface.LoginRequest],
) (*connect.Response[pool_iface.LoginResponse], error) {
	var err error
	pay := req.Msg

	err = pool_iface.Validate(pay)
	if err != nil {
		return nil, err
	}

	var user pool_model.User
	err = u.
		db.
		WithContext(ctx).
		Model(&pool_model.User{}).
		Where("username = ?", pay.Username).
		First(&user).
		Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errInvalidCredential
		}
		return nil, err
	}

	if !authorization.VerifyPassword(user.PasswordHash, pay.Password) {
		return nil, errInvalidCredential
	}

	token, expiredAt, err := u.issuer.Issue(&user)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&pool_iface.LoginResponse{
		Token:     token,
		ExpiredAt: expiredAt,
		User:      toUserItem(&user),
	}), nil
}
