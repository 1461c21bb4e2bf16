package business

import (
	"context"

	"connectrpc.com/connect"
	"github.com/pdcgo/pool_service/pool_iface"
	"github.com/pdcgo/pool_service/pool_model"
	"github.com/pdcgo/pool_service/visibility"
)

// BusinessList implements pool_ifaceconnect.BusinessServiceHandler.
func (b *businessServiceImpl) BusinessList(
	ctx context.Context,
	req *connect.Request[pool_iface.BusinessListRequest],
) (*connect.Response[pool_iface.BusinessListResponse], error) {
	var err error
	db := b.db.WithContext(ctx)
	pay := req.Msg

	identity := b.auth.AuthIdentityFromHeader(req.Header())
	err = identity.Err()
	if err != nil {
		return nil, err
	}

	query := db.Model(&pool_model.Business{})
	if !(pay.IncludeInactive && identity.Identity().IsSuperUser()) {
		query = query.Where("active = ?", true)
	}

	businesses := []*pool_model.Business{}
	err = query.Order("id asc").Find(&businesses).Error
	if err != nil {
		return nil, err
	}

	result := pool_iface.BusinessListResponse{
		Data: make([]*pool_iface.BusinessItem, 0, len(businesses)),
	}
	for _, biz := range businesses {
		result.Data = append(result.Data, toBusinessItem(biz))
	}

	return connect.NewResponse(&result), nil
}

// ManageableBusinesses implements pool_ifaceconnect.BusinessServiceHandler.
func (b *businessServiceImpl) ManageableBusinesses(
	ctx context.Context,
	req *connect.Request[pool_iface.ManageableBusinessesRequest],
) (*connect.Response[pool_iface.ManageableBusinessesResponse], error) {
	var err error
	db := b.db.WithContext(ctx)

	identity := b.auth.AuthIdentityFromHeader(req.Header())
	err = identity.Err()
	if err != nil {
		return nil, err
	}

	viewer, err := visibility.ViewerFromIdentity(db, identity.Identity())
	if err != nil {
		return nil, err
	}

	result := pool_iface.ManageableBusinessesResponse{
		Data: []*pool_iface.BusinessItem{},
	}

	query := db.
		Model(&pool_model.Business{}).
		Where("active = ?", true)

	if !viewer.IsAdmin {
		managed := viewer.ManagedBusinessIDs()
		if len(managed) == 0 {
			return connect.NewResponse(&result), nil
		}
		query = query.Where("id in ?", managed)
	}

	businesses := []*pool_model.Business{}
	err = query.Order("id asc").Find(&businesses).Error
	if err != nil {
		return nil, err
	}

	for _, biz := range businesses {
		result.Data = append(result.Data, toBusinessItem(biz))
	}

	return connect.NewResponse(&result), nil
}
