package pool_ifaceconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"github.com/pdcgo/pool_service/pool_iface"
)

const InvestmentServiceName = "pool.v1.InvestmentService"

const (
	InvestmentServiceInvestmentListProcedure   = "/pool.v1.InvestmentService/InvestmentList"
	InvestmentServiceInvestmentCreateProcedure = "/pool.v1.InvestmentService/InvestmentCreate"
	InvestmentServiceInvestmentDeleteProcedure = "/pool.v1.InvestmentService/InvestmentDelete"
)

type InvestmentServiceHandler interface {
	InvestmentList(context.Context, *connect.Request[pool_iface.InvestmentListRequest]) (*connect.Response[pool_iface.InvestmentListResponse], error)
	InvestmentCreate(context.Context, *connect.Request[pool_iface.InvestmentCreateRequest]) (*connect.Response[pool_iface.InvestmentCreateResponse], error)
	InvestmentDelete(context.Context, *connect.Request[pool_iface.InvestmentDeleteRequest]) (*connect.Response[pool_iface.InvestmentDeleteResponse], error)
}

func NewInvestmentServiceHandler(svc InvestmentServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withJSONCodec(opts)
	investmentListHandler := connect.NewUnaryHandler(
		InvestmentServiceInvestmentListProcedure,
		svc.InvestmentList,
		opts...,
	)
	investmentCreateHandler := connect.NewUnaryHandler(
		InvestmentServiceInvestmentCreateProcedure,
		svc.InvestmentCreate,
		opts...,
	)
	investmentDeleteHandler := connect.NewUnaryHandler(
		InvestmentServiceInvestmentDeleteProcedure,
		svc.InvestmentDelete,
		opts...,
	)
	return "/pool.v1.InvestmentService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case InvestmentServiceInvestmentListProcedure:
			investmentListHandler.ServeHTTP(w, r)
		case InvestmentServiceInvestmentCreateProcedure:
			investmentCreateHandler.ServeHTTP(w, r)
		case InvestmentServiceInvestmentDeleteProcedure:
			investmentDeleteHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}
