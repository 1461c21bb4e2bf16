package user

import (
	"context"

	"connectrpc.com/connect"
	"github.com/pdcgo/pool_service/db_connect"
	"github.com/pdcgo/pool_service/pool_iface"
	"github.com/pdcgo/pool_service/pool_model"
	"github.com/pdcgo/pool_service/visibility"
)

// UserList implements pool_ifaceconnect.UserServiceHandler.
func (u *userServiceImpl) UserList(
	ctx context.Context,
	req *connect.Request[pool_iface.UserListRequest],
) (*connect.Response[pool_iface.UserListResponse], error) {
	var err error
	db := u.db.WithContext(ctx)
	pay := req.Msg

	identity := u.auth.AuthIdentityFromHeader(req.Header())
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

	err = viewer.LoadInvestors(db)
	if err != nil {
		return nil, err
	}

	query, pageInfo, err := db_connect.SetPaginationQuery(db.Model(&pool_model.User{}), &pay.Page)
	if err != nil {
		return nil, err
	}

	users := []*pool_model.User{}
	err = query.Order("id asc").Find(&users).Error
	if err != nil {
		return nil, err
	}

	result := pool_iface.UserListResponse{
		Data:     make([]*pool_iface.UserItem, 0, len(users)),
		PageInfo: pageInfo,
	}

	for _, user := range users {
		item := toUserItem(user)
		item.Username = viewer.Mask(user.Username, user.ID, viewer.CanSeeUser(user.ID))
		result.Data = append(result.Data, item)
	}

	return connect.NewResponse(&result), nil
}

// VisibleUsers implements pool_ifaceconnect.UserServiceHandler.
func (u *userServiceImpl) VisibleUsers(
	ctx context.Context,
	req *connect.Request[pool_iface.VisibleUsersRequest],
) (*connect.Response[pool_iface.VisibleUsersResponse], error) {
	var err error
	db := u.db.WithContext(ctx)

	identity := u.auth.AuthIdentityFromHeader(req.Header())
	err = identity.Err()
	if err != nil {
		return nil, err
	}

	viewer, err := visibility.ViewerFromIdentity(db, identity.Identity())
	if err != nil {
		return nil, err
	}

	query := db.Model(&pool_model.User{})
	if !viewer.IsAdmin {
		err = viewer.LoadInvestors(db)
		if err != nil {
			return nil, err
		}
		query = query.Where("id in ?", viewer.VisibleUserIDs())
	}

	users := []*pool_model.User{}
	err = query.Order("id asc").Find(&users).Error
	if err != nil {
		return nil, err
	}

	result := pool_iface.VisibleUsersResponse{
		Data: make([]*pool_iface.UserItem, 0, len(users)),
	}
	for _, user := range users {
		result.Data = append(result.Data, toUserItem(user))
	}

	return connect.NewResponse(&result), nil
}
