package earning

import (
	"github.com/pdcgo/pool_service/authorization_iface"
	"github.com/pdcgo/pool_service/pool_iface/pool_ifaceconnect"
	"gorm.io/gorm"
)

type earningServiceImpl struct {
	db   *gorm.DB
	auth authorization_iface.Authorization
}

func NewEarningService(db *gorm.DB, auth authorization_iface.Authorization) pool_ifaceconnect.EarningServiceHandler {
	return &earningServiceImpl{
		db:   db,
		auth: auth,
	}
}
