package report

import (
	"github.com/pdcgo/pool_service/authorization_iface"
	"github.com/pdcgo/pool_service/configs"
	"github.com/pdcgo/pool_service/pool_core"
	"github.com/pdcgo/pool_service/pool_iface"
	"github.com/pdcgo/pool_service/pool_iface/pool_ifaceconnect"
	"github.com/pdcgo/pool_service/pool_model"
	"github.com/pdcgo/pool_service/visibility"
	"gorm.io/gorm"
)

type reportServiceImpl struct {
	db   *gorm.DB
	auth authorization_iface.Authorization
	cfg  *configs.ReportConfig
}

func NewReportService(db *gorm.DB, auth authorization_iface.Authorization, cfg *configs.ReportConfig) pool_ifaceconnect.ReportServiceHandler {
	return &reportServiceImpl{
		db:   db,
		auth: auth,
		cfg:  cfg,
	}
}

// nameBook resolves user and business names of balance rows.
type nameBook struct {
	users      map[uint]string
	businesses map[uint]string
}

func loadNameBook(db *gorm.DB) (*nameBook, error) {
	book := nameBook{
		users:      map[uint]string{},
		businesses: map[uint]string{},
	}

	users := []*pool_model.User{}
	err := db.Select("id", "username").Find(&users).Error
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		book.users[user.ID] = user.Username
	}

	businesses := []*pool_model.Business{}
	err = db.Select("id", "name").Find(&businesses).Error
	if err != nil {
		return nil, err
	}
	for _, biz := range businesses {
		book.businesses[biz.ID] = biz.Name
	}

	return &book, nil
}

func (n *nameBook) balanceItem(viewer *visibility.Viewer, balance *pool_core.Balance, canSee bool) *pool_iface.BalanceItem {
	return &pool_iface.BalanceItem{
		UserID:       balance.UserID,
		Username:     viewer.Mask(n.users[balance.UserID], balance.UserID, canSee),
		BusinessID:   balance.BusinessID,
		BusinessName: n.businesses[balance.BusinessID],
		Invested:     balance.Invested,
		Earned:       balance.Earned,
		ExpenseShare: balance.ExpenseShare,
		Withdrawn:    balance.Withdrawn,
		Available:    balance.Available(),
		Roi:          balance.ROI(),
	}
}
