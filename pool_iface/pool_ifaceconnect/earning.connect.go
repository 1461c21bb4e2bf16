package pool_ifaceconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"github.com/pdcgo/pool_service/pool_iface"
)

const EarningServiceName = "pool.v1.EarningService"

const (
	EarningServiceEarningListProcedure   = "/pool.v1.EarningService/EarningList"
	EarningServiceEarningCreateProcedure = "/pool.v1.EarningService/EarningCreate"
	EarningServiceEarningDeleteProcedure = "/pool.v1.EarningService/EarningDelete"
)

type EarningServiceHandler interface {
	EarningList(context.Context, *connect.Request[pool_iface.EarningListRequest]) (*connect.Response[pool_iface.EarningListResponse], error)
	EarningCreate(context.Context, *connect.Request[pool_iface.EarningCreateRequest]) (*connect.Response[pool_iface.EarningCreateResponse], error)
	EarningDelete(context.Context, *connect.Request[pool_iface.EarningDeleteRequest]) (*connect.Response[pool_iface.Empty], error)
}

func NewEarningServiceHandler(svc EarningServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withJSONCodec(opts)
	earningListHandler := connect.NewUnaryHandler(
		EarningServiceEarningListProcedure,
		svc.EarningList,
		opts...,
	)
	earningCreateHandler := connect.NewUnaryHandler(
		EarningServiceEarningCreateProcedure,
		svc.EarningCreate,
		opts...,
	)
	earningDeleteHandler := connect.NewUnaryHandler(
		EarningServiceEarningDeleteProcedure,
		svc.EarningDelete,
		opts...,
	)
	return "/pool.v1.EarningService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case EarningServiceEarningListProcedure:
			earningListHandler.ServeHTTP(w, r)
		case EarningServiceEarningCreateProcedure:
			earningCreateHandler.ServeHTTP(w, r)
		case EarningServiceEarningDeleteProcedure:
			earningDeleteHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}
