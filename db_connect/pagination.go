package db_connect

import (
	"github.com/pdcgo/pool_service/pool_iface"
	"gorm.io/gorm"
)

// SetPaginationQuery counts the base query and returns it limited to the requested page.
func SetPaginationQuery(query *gorm.DB, filter *pool_iface.PageFilter) (*gorm.DB, *pool_iface.PageInfo, error) {
	filter.Normalize()

	var total int64
	err := query.Session(&gorm.Session{}).Count(&total).Error
	if err != nil {
		return nil, nil, err
	}

	paginated := query.
		Offset(filter.Offset()).
		Limit(filter.Limit)

	return paginated, pool_iface.NewPageInfo(filter, total), nil
}
