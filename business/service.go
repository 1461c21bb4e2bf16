package business

import (
	"github.com/pdcgo/pool_service/authorization_iface"
	"github.com/pdcgo/pool_service/pool_iface"
	"github.com/pdcgo/pool_service/pool_iface/pool_ifaceconnect"
	"github.com/pdcgo/pool_service/pool_model"
	"gorm.io/gorm"
)

type businessServiceImpl struct {
	db   *gorm.DB
	auth authorization_iface.Authorization
}

func adminGate(action authorization_iface.Action, entity authorization_iface.Entity) authorization_iface.CheckPermissionGroup {
	return authorization_iface.CheckPermissionGroup{
		entity: &authorization_iface.CheckPermission{
			DomainID: authorization_iface.RootDomain,
			Actions:  []authorization_iface.Action{action},
		},
	}
}

func toBusinessItem(b *pool_model.Business) *pool_iface.BusinessItem {
	return &pool_iface.BusinessItem{
		ID:             b.ID,
		Name:           b.Name,
		Description:    b.Description,
		Icon:           b.Icon,
		MonthlyRevenue: b.MonthlyRevenue,
		Active:         b.Active,
		TotalInvested:  b.TotalInvested,
		CreatedAt:      b.CreatedAt,
	}
}

func NewBusinessService(db *gorm.DB, auth authorization_iface.Authorization) pool_ifaceconnect.BusinessServiceHandler {
	return &businessServiceImpl{
		db:   db,
		auth: auth,
	}
}
