package pool_ifaceconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"github.com/pdcgo/pool_service/pool_iface"
)

const UserServiceName = "pool.v1.UserService"

const (
	UserServiceRegisterProcedure     = "/pool.v1.UserService/Register"
	UserServiceLoginProcedure        = "/pool.v1.UserService/Login"
	UserServiceMeProcedure           = "/pool.v1.UserService/Me"
	UserServiceUserListProcedure     = "/pool.v1.UserService/UserList"
	UserServiceVisibleUsersProcedure = "/pool.v1.UserService/VisibleUsers"
)

type UserServiceHandler interface {
	Register(context.Context, *connect.Request[pool_iface.RegisterRequest]) (*connect.Response[pool_iface.RegisterResponse], error)
	Login(context.Context, *connect.Request[pool_iface.LoginRequest]) (*connect.Response[pool_iface.LoginResponse], error)
	Me(context.Context, *connect.Request[pool_iface.MeRequest]) (*connect.Response[pool_iface.MeResponse], error)
	UserList(context.Context, *connect.Request[pool_iface.UserListRequest]) (*connect.Response[pool_iface.UserListResponse], error)
	VisibleUsers(context.Context, *connect.Request[pool_iface.VisibleUsersRequest]) (*connect.Response[pool_iface.VisibleUsersResponse], error)
}

func NewUserServiceHandler(svc UserServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withJSONCodec(opts)
	registerHandler := connect.NewUnaryHandler(
		UserServiceRegisterProcedure,
		svc.Register,
		opts...,
	)
	loginHandler := connect.NewUnaryHandler(
		UserServiceLoginProcedure,
		svc.Login,
		opts...,
	)
	meHandler := connect.NewUnaryHandler(
		UserServiceMeProcedure,
		svc.Me,
		opts...,
	)
	userListHandler := connect.NewUnaryHandler(
		UserServiceUserListProcedure,
		svc.UserList,
		opts...,
	)
	visibleUsersHandler := connect.NewUnaryHandler(
		UserServiceVisibleUsersProcedure,
		svc.VisibleUsers,
		opts...,
	)
	return "/pool.v1.UserService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case UserServiceRegisterProcedure:
			registerHandler.ServeHTTP(w, r)
		case UserServiceLoginProcedure:
			loginHandler.ServeHTTP(w, r)
		case UserServiceMeProcedure:
			meHandler.ServeHTTP(w, r)
		case UserServiceUserListProcedure:
			userListHandler.ServeHTTP(w, r)
		case UserServiceVisibleUsersProcedure:
			visibleUsersHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}
