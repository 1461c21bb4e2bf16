package pool_ifaceconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"github.com/pdcgo/pool_service/pool_iface"
)

const WithdrawalServiceName = "pool.v1.WithdrawalService"

const (
	WithdrawalServiceWithdrawalListProcedure   = "/pool.v1.WithdrawalService/WithdrawalList"
	WithdrawalServiceWithdrawalCreateProcedure = "/pool.v1.WithdrawalService/WithdrawalCreate"
	WithdrawalServiceWithdrawalDeleteProcedure = "/pool.v1.WithdrawalService/WithdrawalDelete"
)

type WithdrawalServiceHandler interface {
	WithdrawalList(context.Context, *connect.Request[pool_iface.WithdrawalListRequest]) (*connect.Response[pool_iface.WithdrawalListResponse], error)
	WithdrawalCreate(context.Context, *connect.Request[pool_iface.WithdrawalCreateRequest]) (*connect.Response[pool_iface.WithdrawalCreateResponse], error)
	WithdrawalDelete(context.Context, *connect.Request[pool_iface.WithdrawalDeleteRequest]) (*connect.Response[pool_iface.Empty], error)
}

func NewWithdrawalServiceHandler(svc WithdrawalServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withJSONCodec(opts)
	withdrawalListHandler := connect.NewUnaryHandler(
		WithdrawalServiceWithdrawalListProcedure,
		svc.WithdrawalList,
		opts...,
	)
	withdrawalCreateHandler := connect.NewUnaryHandler(
		WithdrawalServiceWithdrawalCreateProcedure,
		svc.WithdrawalCreate,
		opts...,
	)
	withdrawalDeleteHandler := connect.NewUnaryHandler(
		WithdrawalServiceWithdrawalDeleteProcedure,
		svc.WithdrawalDelete,
		opts...,
	)
	return "/pool.v1.WithdrawalService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case WithdrawalServiceWithdrawalListProcedure:
			withdrawalListHandler.ServeHTTP(w, r)
		case WithdrawalServiceWithdrawalCreateProcedure:
			withdrawalCreateHandler.ServeHTTP(w, r)
		case WithdrawalServiceWithdrawalDeleteProcedure:
			withdrawalDeleteHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}
