package pool_ifaceconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"github.com/pdcgo/pool_service/pool_iface"
)

const ExpenseServiceName = "pool.v1.ExpenseService"

const (
	ExpenseServiceExpenseListProcedure   = "/pool.v1.ExpenseService/ExpenseList"
	ExpenseServiceExpenseCreateProcedure = "/pool.v1.ExpenseService/ExpenseCreate"
	ExpenseServiceExpenseDeleteProcedure = "/pool.v1.ExpenseService/ExpenseDelete"
)

type ExpenseServiceHandler interface {
	ExpenseList(context.Context, *connect.Request[pool_iface.ExpenseListRequest]) (*connect.Response[pool_iface.ExpenseListResponse], error)
	ExpenseCreate(context.Context, *connect.Request[pool_iface.ExpenseCreateRequest]) (*connect.Response[pool_iface.ExpenseCreateResponse], error)
	ExpenseDelete(context.Context, *connect.Request[pool_iface.ExpenseDeleteRequest]) (*connect.Response[pool_iface.Empty], error)
}

func NewExpenseServiceHandler(svc ExpenseServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withJSONCodec(opts)
	expenseListHandler := connect.NewUnaryHandler(
		ExpenseServiceExpenseListProcedure,
		svc.ExpenseList,
		opts...,
	)
	expenseCreateHandler := connect.NewUnaryHandler(
		ExpenseServiceExpenseCreateProcedure,
		svc.ExpenseCreate,
		opts...,
	)
	expenseDeleteHandler := connect.NewUnaryHandler(
		ExpenseServiceExpenseDeleteProcedure,
		svc.ExpenseDelete,
		opts...,
	)
	return "/pool.v1.ExpenseService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ExpenseServiceExpenseListProcedure:
			expenseListHandler.ServeHTTP(w, r)
		case ExpenseServiceExpenseCreateProcedure:
			expenseCreateHandler.ServeHTTP(w, r)
		case ExpenseServiceExpenseDeleteProcedure:
			expenseDeleteHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}
