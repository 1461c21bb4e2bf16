package withdrawal

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

type WithdrawalRow struct {
	ID           uint
	UserID       uint
	Username     string
	BusinessID   uint
	BusinessName string
	Amount       decimal.Decimal
	Note         string
	CreatedByID  uint
	RecordedBy   string
	CreatedAt    time.Time
}

func (r *WithdrawalRow) ToItem(viewer *visibility.Viewer) *pool_iface.WithdrawalItem {
	return &pool_iface.WithdrawalItem{
		ID:             r.ID,
		UserID:         r.UserID,
		Username:       viewer.Mask(r.Username, r.UserID, viewer.CanSeeBusiness(r.BusinessID)),
		BusinessID:     r.BusinessID,
		BusinessName:   r.BusinessName,
		Amount:         r.Amount,
		Note:           r.Note,
		RecordedByName: viewer.Mask(r.RecordedBy, r.CreatedByID, viewer.CanSeeRecord(r.CreatedByID, r.BusinessID)),
		CreatedAt:      r.CreatedAt,
	}
}

func WithdrawalQuery(db *gorm.DB) *gorm.DB {
	return db.
		Table("withdrawals w").
		Joins("join users u on u.id = w.user_id").
		Joins("join businesses b on b.id = w.business_id").
		Joins("left join users r on r.id = w.created_by_id")
}

func FindWithdrawals(query *gorm.DB) ([]*WithdrawalRow, error) {
	rows := []*WithdrawalRow{}
	err := query.
		Select([]string{
			"w.id",
			"w.user_id",
			"u.username",
			"w.business_id",
			"b.name as business_name",
			"w.amount",
			"w.note",
			"w.created_by_id",
			"COALESCE(r.username, '') as recorded_by",
			"w.created_at",
		}).
		Order("w.created_at desc, w.id desc").
		Find(&rows).
		Error

	return rows, err
}

// WithdrawalList implements pool_ifaceconnect.WithdrawalServiceHandler.
func (w *withdrawalServiceImpl) WithdrawalList(
	ctx context.Context,
	req *connect.Request[pool_iface.WithdrawalListRequest],
) (*connect.Response[pool_iface.WithdrawalListResponse], error) {
	var err error
	db := w.db.WithContext(ctx)
	pay := req.Msg

	identity := w.auth.AuthIdentityFromHeader(req.Header())
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

	query := WithdrawalQuery(db)
	if pay.BusinessID != 0 {
		query = query.Where("w.business_id = ?", pay.BusinessID)
	}
	if pay.UserID != 0 {
		query = query.Where("w.user_id = ?", pay.UserID)
	}

	query, pageInfo, err := db_connect.SetPaginationQuery(query, &pay.Page)
	if err != nil {
		return nil, err
	}

	rows, err := FindWithdrawals(query)
	if err != nil {
		return nil, err
	}

	result := pool_iface.WithdrawalListResponse{
		Data:     make([]*pool_iface.WithdrawalItem, 0, len(rows)),
		PageInfo: pageInfo,
	}
	for _, row := range rows {
		result.Data = append(result.Data, row.ToItem(viewer))
	}

	return connect.NewResponse(&result), nil
}
