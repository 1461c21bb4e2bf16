package pool_service

import (
	"net/http"

	"github.com/pdcgo/pool_service/authorization"
	"github.com/pdcgo/pool_service/authorization_iface"
	"github.com/pdcgo/pool_service/business"
	"github.com/pdcgo/pool_service/configs"
	"github.com/pdcgo/pool_service/custom_connect"
	"github.com/pdcgo/pool_service/earning"
	"github.com/pdcgo/pool_service/expense"
	"github.com/pdcgo/pool_service/investment"
	"github.com/pdcgo/pool_service/pool_iface/pool_ifaceconnect"
	"github.com/pdcgo/pool_service/report"
	"github.com/pdcgo/pool_service/user"
	"github.com/pdcgo/pool_service/withdrawal"
	"gorm.io/gorm"
)

type RegisterHandler func()

func NewRegister(
	db *gorm.DB,
	auth authorization_iface.Authorization,
	issuer *authorization.TokenIssuer,
	mux *http.ServeMux,
	defaultInterceptor custom_connect.DefaultInterceptor,
	cfg *configs.AppConfig,
) RegisterHandler {

	return func() {
		path, handler := pool_ifaceconnect.NewUserServiceHandler(user.NewUserService(db, auth, issuer), defaultInterceptor)
		mux.Handle(path, handler)
		path, handler = pool_ifaceconnect.NewBusinessServiceHandler(business.NewBusinessService(db, auth), defaultInterceptor)
		mux.Handle(path, handler)
		path, handler = pool_ifaceconnect.NewInvestmentServiceHandler(investment.NewInvestmentService(db, auth), defaultInterceptor)
		mux.Handle(path, handler)
		path, handler = pool_ifaceconnect.NewEarningServiceHandler(earning.NewEarningService(db, auth), defaultInterceptor)
		mux.Handle(path, handler)
		path, handler = pool_ifaceconnect.NewExpenseServiceHandler(expense.NewExpenseService(db, auth), defaultInterceptor)
		mux.Handle(path, handler)
		path, handler = pool_ifaceconnect.NewWithdrawalServiceHandler(withdrawal.NewWithdrawalService(db, auth), defaultInterceptor)
		mux.Handle(path, handler)
		path, handler = pool_ifaceconnect.NewReportServiceHandler(
			report.NewReportService(db, auth, &cfg.Report),
			defaultInterceptor,
		)
		mux.Handle(path, handler)
	}
}
