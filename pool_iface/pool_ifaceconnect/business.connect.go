package pool_ifaceconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"github.com/pdcgo/pool_service/pool_iface"
)

const BusinessServiceName = "pool.v1.BusinessService"

const (
	BusinessServiceBusinessListProcedure         = "/pool.v1.BusinessService/BusinessList"
	BusinessServiceBusinessCreateProcedure       = "/pool.v1.BusinessService/BusinessCreate"
	BusinessServiceBusinessUpdateProcedure       = "/pool.v1.BusinessService/BusinessUpdate"
	BusinessServiceBusinessDeleteProcedure       = "/pool.v1.BusinessService/BusinessDelete"
	BusinessServiceManageableBusinessesProcedure = "/pool.v1.BusinessService/ManageableBusinesses"
	BusinessServiceManagerListProcedure          = "/pool.v1.BusinessService/ManagerList"
	BusinessServiceManagerAddProcedure           = "/pool.v1.BusinessService/ManagerAdd"
	BusinessServiceManagerRemoveProcedure        = "/pool.v1.BusinessService/ManagerRemove"
)

type BusinessServiceHandler interface {
	BusinessList(context.Context, *connect.Request[pool_iface.BusinessListRequest]) (*connect.Response[pool_iface.BusinessListResponse], error)
	BusinessCreate(context.Context, *connect.Request[pool_iface.BusinessCreateRequest]) (*connect.Response[pool_iface.BusinessCreateResponse], error)
	BusinessUpdate(context.Context, *connect.Request[pool_iface.BusinessUpdateRequest]) (*connect.Response[pool_iface.BusinessUpdateResponse], error)
	BusinessDelete(context.Context, *connect.Request[pool_iface.BusinessDeleteRequest]) (*connect.Response[pool_iface.Empty], error)
	ManageableBusinesses(context.Context, *connect.Request[pool_iface.ManageableBusinessesRequest]) (*connect.Response[pool_iface.ManageableBusinessesResponse], error)
	ManagerList(context.Context, *connect.Request[pool_iface.ManagerListRequest]) (*connect.Response[pool_iface.ManagerListResponse], error)
	ManagerAdd(context.Context, *connect.Request[pool_iface.ManagerAddRequest]) (*connect.Response[pool_iface.Empty], error)
	ManagerRemove(context.Context, *connect.Request[pool_iface.ManagerRemoveRequest]) (*connect.Response[pool_iface.Empty], error)
}

func NewBusinessServiceHandler(svc BusinessServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withJSONCodec(opts)
	businessListHandler := connect.NewUnaryHandler(
		BusinessServiceBusinessListProcedure,
		svc.BusinessList,
		opts...,
	)
	businessCreateHandler := connect.NewUnaryHandler(
		BusinessServiceBusinessCreateProcedure,
		svc.BusinessCreate,
		opts...,
	)
	businessUpdateHandler := connect.NewUnaryHandler(
		BusinessServiceBusinessUpdateProcedure,
		svc.BusinessUpdate,
		opts...,
	)
	businessDeleteHandler := connect.NewUnaryHandler(
		BusinessServiceBusinessDeleteProcedure,
		svc.BusinessDelete,
		opts...,
	)
	manageableBusinessesHandler := connect.NewUnaryHandler(
		BusinessServiceManageableBusinessesProcedure,
		svc.ManageableBusinesses,
		opts...,
	)
	managerListHandler := connect.NewUnaryHandler(
		BusinessServiceManagerListProcedure,
		svc.ManagerList,
		opts...,
	)
	managerAddHandler := connect.NewUnaryHandler(
		BusinessServiceManagerAddProcedure,
		svc.ManagerAdd,
		opts...,
	)
	managerRemoveHandler := connect.NewUnaryHandler(
		BusinessServiceManagerRemoveProcedure,
		svc.ManagerRemove,
		opts...,
	)
	return "/pool.v1.BusinessService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case BusinessServiceBusinessListProcedure:
			businessListHandler.ServeHTTP(w, r)
		case BusinessServiceBusinessCreateProcedure:
			businessCreateHandler.ServeHTTP(w, r)
		case BusinessServiceBusinessUpdateProcedure:
			businessUpdateHandler.ServeHTTP(w, r)
		case BusinessServiceBusinessDeleteProcedure:
			businessDeleteHandler.ServeHTTP(w, r)
		case BusinessServiceManageableBusinessesProcedure:
			manageableBusinessesHandler.ServeHTTP(w, r)
		case BusinessServiceManagerListProcedure:
			managerListHandler.ServeHTTP(w, r)
		case BusinessServiceManagerAddProcedure:
			managerAddHandler.ServeHTTP(w, r)
		case BusinessServiceManagerRemoveProcedure:
			managerRemoveHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}
