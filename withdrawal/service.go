package withdrawal

import (
	"github.com/pdcgo/pool_service/authorization_iface"
	"github.com/pdcgo/pool_service/pool_iface/pool_ifaceconnect"
	"gorm.io/gorm"
)

type withdrawalServiceImpl struct {
	db   *gorm.DB
	auth authorization_iface.Authorization
}

func NewWithdrawalService(db *gorm.DB, auth authorization_iface.Authorization) pool_ifaceconnect.WithdrawalServiceHandler {
	return &withdrawalServiceImpl{
		db:   db,
		auth: auth,
	}
}
