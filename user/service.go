package user

import (
	"github.com/pdcgo/pool_service/authorization"
	"github.com/pdcgo/pool_service/authorization_iface"
	"github.com/pdcgo/pool_service/pool_iface"
	"github.com/pdcgo/pool_service/pool_iface/pool_ifaceconnect"
	"github.com/pdcgo/pool_service/pool_model"
	"gorm.io/gorm"
)

type userServiceImpl struct {
	db     *gorm.DB
	auth   authorization_iface.Authorization
	issuer *authorization.TokenIssuer
}

func toUserItem(u *pool_model.User) *pool_iface.UserItem {
	return &pool_iface.UserItem{
		ID:        u.ID,
		Username:  u.Username,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

func NewUserService(
	db *gorm.DB,
	auth authorization_iface.Authorization,
	issuer *authorization.TokenIssuer,
) pool_ifaceconnect.UserServiceHandler {
	return &userServiceImpl{
		db:     db,
		auth:   auth,
		issuer: issuer,
	}
}
