package expense

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

type expenseRow struct {
	ID           uint
	BusinessID   uint
	BusinessName string
	TotalAmount  decimal.Decimal
	Description  string
	Note         string
	CreatedByID  uint
	RecordedBy   string
	CreatedAt    time.Time
}

type shareRow struct {
	ExpenseID    uint
	UserID       uint
	Username     string
	BusinessID   uint
	Amount       decimal.Decimal
	SharePercent decimal.Decimal
}

func loadShares(db *gorm.DB, expenseIDs []uint) (map[uint][]*shareRow, error) {
	result := map[uint][]*shareRow{}
	if len(expenseIDs) == 0 {
		return result, nil
	}

	rows := []*shareRow{}
	err := db.
		Table("expense_shares s").
		Joins("join users u on u.id = s.user_id").
		Select([]string{
			"s.expense_id",
			"s.user_id",
			"u.username",
			"s.business_id",
			"s.amount",
			"s.share_percent",
		}).
		Where("s.expense_id in ?", expenseIDs).
		Order("s.user_id asc").
		Find(&rows).
		Error

	if err != nil {
		return result, err
	}

	for _, row := range rows {
		result[row.ExpenseID] = append(result[row.ExpenseID], row)
	}

	return result, nil
}

func toExpenseItem(viewer *visibility.Viewer, row *expenseRow, shares []*shareRow) *pool_iface.ExpenseItem {
	canSee := viewer.CanSeeBusiness(row.BusinessID)
	item := pool_iface.ExpenseItem{
		ID:             row.ID,
		BusinessID:     row.BusinessID,
		BusinessName:   row.BusinessName,
		TotalAmount:    row.TotalAmount,
		Description:    row.Description,
		Note:           row.Note,
		RecordedByName: viewer.Mask(row.RecordedBy, row.CreatedByID, viewer.CanSeeRecord(row.CreatedByID, row.BusinessID)),
		CreatedAt:      row.CreatedAt,
		Shares:         make([]*pool_iface.ShareItem, 0, len(shares)),
	}

	for _, share := range shares {
		item.Shares = append(item.Shares, &pool_iface.ShareItem{
			UserID:       share.UserID,
			Username:     viewer.Mask(share.Username, share.UserID, canSee),
			Amount:       share.Amount,
			SharePercent: share.SharePercent,
		})
	}

	return &item
}

// ExpenseList implements pool_ifaceconnect.ExpenseServiceHandler.
func (e *expenseServiceImpl) ExpenseList(
	ctx context.Context,
	req *connect.Request[pool_iface.ExpenseListRequest],
) (*connect.Response[pool_iface.ExpenseListResponse], error) {
	var err error
	db := e.db.WithContext(ctx)
	pay := req.Msg

	identity := e.auth.AuthIdentityFromHeader(req.Header())
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

	query := db.
		Table("expenses e").
		Joins("join businesses b on b.id = e.business_id").
		Joins("left join users u on u.id = e.created_by_id")

	if pay.BusinessID != 0 {
		query = query.Where("e.business_id = ?", pay.BusinessID)
	}

	query, pageInfo, err := db_connect.SetPaginationQuery(query, &pay.Page)
	if err != nil {
		return nil, err
	}

	rows := []*expenseRow{}
	err = query.
		Select([]string{
			"e.id",
			"e.business_id",
			"b.name as business_name",
			"e.total_amount",
			"e.description",
			"e.note",
			"e.created_by_id",
			"COALESCE(u.username, '') as recorded_by",
			"e.created_at",
		}).
		Order("e.created_at desc, e.id desc").
		Find(&rows).
		Error

	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	shares, err := loadShares(db, ids)
	if err != nil {
		return nil, err
	}

	result := pool_iface.ExpenseListResponse{
		Data:     make([]*pool_iface.ExpenseItem, 0, len(rows)),
		PageInfo: pageInfo,
	}
	for _, row := range rows {
		result.Data = append(result.Data, toExpenseItem(viewer, row, shares[row.ID]))
	}

	return connect.NewResponse(&result), nil
}
