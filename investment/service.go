package investment

import (
	"github.com/pdcgo/pool_service/authorization_iface"
	"github.com/pdcgo/pool_service/pool_iface/pool_ifaceconnect"
	"gorm.io/gorm"
)

type investmentServiceImpl struct {
	db   *gorm.DB
	auth authorization_iface.Authorization
}

func NewInvestmentService(db *gorm.DB, auth authorization_iface.Authorization) pool_ifaceconnect.InvestmentServiceHandler {
	return &investmentServiceImpl{
		db:   db,
		auth: auth,
	}
}
