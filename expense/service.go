package expense

import (
	"github.com/pdcgo/pool_service/authorization_iface"
	"github.com/pdcgo/pool_service/pool_iface/pool_ifaceconnect"
	"gorm.io/gorm"
)

type expenseServiceImpl struct {
	db   *gorm.DB
	auth authorization_iface.Authorization
}

func NewExpenseService(db *gorm.DB, auth authorization_iface.Authorization) pool_ifaceconnect.ExpenseServiceHandler {
	return &expenseServiceImpl{
		db:   db,
		auth: auth,
	}
}
