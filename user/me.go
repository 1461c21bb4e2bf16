package user

import (
	"context"

	"connectrpc.com/connect"
	"github.com/pdcgo/pool_service/pool_iface"
	"github.com/pdcgo/pool_service/pool_model"
	"github.com/pdcgo/pool_service/visibility"
)

// Me implements pool_ifaceconnect.UserServiceHandler.
func (u *userServiceImpl) Me(
	ctx context.Context,
	req *connect.Request[pool_iface.MeRequest],
) (*connect.Response[pool_iface.MeResponse], error) {
	var err error
	db := u.db.WithContext(ctx)

	identity := u.auth.AuthIdentityFromHeader(req.Header())
	err = identity.Err()
	if err != nil {
		return nil, err
	}
	agent := identity.Identity()

	var user pool_model.User
	err = db.First(&user, agent.GetUserID()).Error
	if err != nil {
		return nil, err
	}

	viewer, err := visibility.ViewerFromIdentity(db, agent)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&pool_iface.MeResponse{
		User:               toUserItem(&user),
		ManagedBusinessIDs: viewer.ManagedBusinessIDs(),
	}), nil
}
