package pool_ifaceconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"github.com/pdcgo/pool_service/pool_iface"
)

const ReportServiceName = "pool.v1.ReportService"

const (
	ReportServiceTransactionListProcedure   = "/pool.v1.ReportService/TransactionList"
	ReportServiceTransactionExportProcedure = "/pool.v1.ReportService/TransactionExport"
	ReportServicePoolStatsProcedure         = "/pool.v1.ReportService/PoolStats"
	ReportServiceMyStatsProcedure           = "/pool.v1.ReportService/MyStats"
	ReportServiceBalanceDetailProcedure     = "/pool.v1.ReportService/BalanceDetail"
)

type ReportServiceHandler interface {
	TransactionList(context.Context, *connect.Request[pool_iface.TransactionListRequest]) (*connect.Response[pool_iface.TransactionListResponse], error)
	TransactionExport(context.Context, *connect.Request[pool_iface.TransactionExportRequest], *connect.ServerStream[pool_iface.TransactionExportResponse]) error
	PoolStats(context.Context, *connect.Request[pool_iface.PoolStatsRequest]) (*connect.Response[pool_iface.PoolStatsResponse], error)
	MyStats(context.Context, *connect.Request[pool_iface.MyStatsRequest]) (*connect.Response[pool_iface.MyStatsResponse], error)
	BalanceDetail(context.Context, *connect.Request[pool_iface.BalanceDetailRequest]) (*connect.Response[pool_iface.BalanceDetailResponse], error)
}

func NewReportServiceHandler(svc ReportServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withJSONCodec(opts)
	transactionListHandler := connect.NewUnaryHandler(
		ReportServiceTransactionListProcedure,
		svc.TransactionList,
		opts...,
	)
	transactionExportHandler := connect.NewServerStreamHandler(
		ReportServiceTransactionExportProcedure,
		svc.TransactionExport,
		opts...,
	)
	poolStatsHandler := connect.NewUnaryHandler(
		ReportServicePoolStatsProcedure,
		svc.PoolStats,
		opts...,
	)
	myStatsHandler := connect.NewUnaryHandler(
		ReportServiceMyStatsProcedure,
		svc.MyStats,
		opts...,
	)
	balanceDetailHandler := connect.NewUnaryHandler(
		ReportServiceBalanceDetailProcedure,
		svc.BalanceDetail,
		opts...,
	)
	return "/pool.v1.ReportService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ReportServiceTransactionListProcedure:
			transactionListHandler.ServeHTTP(w, r)
		case ReportServiceTransactionExportProcedure:
			transactionExportHandler.ServeHTTP(w, r)
		case ReportServicePoolStatsProcedure:
			poolStatsHandler.ServeHTTP(w, r)
		case ReportServiceMyStatsProcedure:
			myStatsHandler.ServeHTTP(w, r)
		case ReportServiceBalanceDetailProcedure:
			balanceDetailHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}
