package investment

import (
	"context"
	"time"

	"connectrpc.com/connect"
	"github.com/pdcgo/pool_service/db_connect"
	"github.com/pdcgo/pool_service/pool_iface"
	"github.com/pdcgo/pool_service/visibility"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InvestmentRow struct {
	ID           uint
	UserID       uint
	Username     string
	BusinessID   uint
	BusinessName string
	Amount       decimal.Decimal
	Note         string
	CreatedAt    time.Time
}

// ToItem masks the investor name for viewer.
func (r *InvestmentRow) ToItem(viewer *visibility.Viewer) *pool_iface.InvestmentItem {
	return &pool_iface.InvestmentItem{
		ID:           r.ID,
		UserID:       r.UserID,
		Username:     viewer.Mask(r.Username, r.UserID, viewer.CanSeeBusiness(r.BusinessID)),
		BusinessID:   r.BusinessID,
		BusinessName: r.BusinessName,
		Amount:       r.Amount,
		Note:         r.Note,
		CreatedAt:    r.CreatedAt,
	}
}

// InvestmentQuery is the base join used by investment listings.
func InvestmentQuery(db *gorm.DB) *gorm.DB {
	return db.
		Table("investments i").
		Joins("join users u on u.id = i.user_id").
		Joins("join businesses b on b.id = i.business_id")
}

var investmentColumns = []string{
	"i.id",
	"i.user_id",
	"u.username",
	"i.business_id",
	"b.name as business_name",
	"i.amount",
	"i.note",
	"i.created_at",
}

func FindInvestments(query *gorm.DB) ([]*InvestmentRow, error) {
	rows := []*InvestmentRow{}
	err := query.
		Select(investmentColumns).
		Order("i.created_at desc, i.id desc").
		Find(&rows).
		Error
	return rows, err
}

// InvestmentList implements pool_ifaceconnect.InvestmentServiceHandler.
func (i *investmentServiceImpl) InvestmentList(
	ctx context.Context,
	req *connect.Request[pool_iface.InvestmentListRequest],
) (*connect.Response[pool_iface.InvestmentListResponse], error) {
	var err error
	db := i.db.WithContext(ctx)
	pay := req.Msg

	identity := i.auth.AuthIdentityFromHeader(req.Header())
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

	query := InvestmentQuery(db)
	if pay.BusinessID != 0 {
		query = query.Where("i.business_id = ?", pay.BusinessID)
	}
	if pay.UserID != 0 {
		query = query.Where("i.user_id = ?", pay.UserID)
	}

	query, pageInfo, err := db_connect.SetPaginationQuery(query, &pay.Page)
	if err != nil {
		return nil, err
	}

	rows, err := FindInvestments(query)
	if err != nil {
		return nil, err
	}

	result := pool_iface.InvestmentListResponse{
		Data:     make([]*pool_iface.InvestmentItem, 0, len(rows)),
		PageInfo: pageInfo,
	}
	for _, row := range rows {
		result.Data = append(result.Data, row.ToItem(viewer))
	}

	return connect.NewResponse(&result), nil
}
