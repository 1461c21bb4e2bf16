package pool_service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"github.com/pdcgo/pool_service"
	"github.com/pdcgo/pool_service/authorization"
	"github.com/pdcgo/pool_service/configs"
	"github.com/pdcgo/pool_service/custom_connect"
	"github.com/pdcgo/pool_service/pool_iface"
	"github.com/pdcgo/pool_service/pool_iface/pool_ifaceconnect"
	"github.com/pdcgo/pool_service/pool_mock"
	"github.com/pdcgo/pool_service/pool_model"
	"github.com/pdcgo/shared/pkg/moretest"
	"github.com/pdcgo/shared/pkg/moretest/moretest_mock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type rpcClient struct {
	t   *testing.T
	url string
}

func call[Req, Res any](c *rpcClient, procedure, token string, msg *Req) (*Res, error) {
	client := connect.NewClient[Req, Res](
		http.DefaultClient,
		c.url+procedure,
		pool_ifaceconnect.WithJSONCodec(),
	)

	req := connect.NewRequest(msg)
	if token != "" {
		req.Header().Set("Authorization", "Bearer "+token)
	}

	res, err := client.CallUnary(context.Background(), req)
	if err != nil {
		return nil, err
	}
	return res.Msg, nil
}

func mustCall[Req, Res any](c *rpcClient, procedure, token string, msg *Req) *Res {
	res, err := call[Req, Res](c, procedure, token, msg)
	assert.Nil(c.t, err)
	return res
}

func TestPoolFlow(t *testing.T) {
	var db gorm.DB

	cfg := configs.AppConfig{
		JWT:    configs.JWTConfig{Secret: pool_mock.TestSecret, ExpireHours: 1},
		Seed:   configs.SeedConfig{AdminUsername: "root", AdminPassword: "root-pass"},
		Report: configs.ReportConfig{TransactionLimit: 50, TransactionLimitMax: 500},
	}

	moretest.Suite(t, "pool flow over http",
		moretest.SetupListFunc{
			moretest_mock.MockSqliteDatabase(&db),
		},
		func(t *testing.T) {
			err := pool_service.NewMigrationHandler(&db)()
			assert.Nil(t, err)

			seed := pool_service.NewSeedHandler(&db, &cfg)
			assert.Nil(t, seed())
			assert.Nil(t, seed())

			var admins int64
			db.Model(&pool_model.User{}).Where("role = ?", pool_model.AdminRole).Count(&admins)
			assert.Equal(t, int64(1), admins)

			issuer := authorization.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.Expire())
			auth := authorization.NewAuthorization(&db, issuer)
			interceptor, err := custom_connect.NewDefaultInterceptor()
			assert.Nil(t, err)

			mux := http.NewServeMux()
			pool_service.NewRegister(&db, auth, issuer, mux, interceptor, &cfg)()

			srv := httptest.NewServer(mux)
			defer srv.Close()
			c := &rpcClient{t: t, url: srv.URL}

			login := func(username, password string) string {
				res := mustCall[pool_iface.LoginRequest, pool_iface.LoginResponse](c, pool_ifaceconnect.UserServiceLoginProcedure, "", &pool_iface.LoginRequest{
					Username: username,
					Password: password,
				})
				return res.Token
			}

			users := map[string]uint{}
			for _, name := range []string{"anna", "bob"} {
				res := mustCall[pool_iface.RegisterRequest, pool_iface.RegisterResponse](c, pool_ifaceconnect.UserServiceRegisterProcedure, "", &pool_iface.RegisterRequest{
					Username: name,
					Password: "member-pass",
				})
				users[name] = res.User.ID
			}

			rootToken := login("root", "root-pass")
			annaToken := login("anna", "member-pass")

			biz := mustCall[pool_iface.BusinessCreateRequest, pool_iface.BusinessCreateResponse](c, pool_ifaceconnect.BusinessServiceBusinessCreateProcedure, rootToken, &pool_iface.BusinessCreateRequest{
				Name: "Coffee Cart",
			}).Business

			var annaInvestment uint
			for name, amount := range map[string]string{"anna": "1000", "bob": "3000"} {
				res := mustCall[pool_iface.InvestmentCreateRequest, pool_iface.InvestmentCreateResponse](c, pool_ifaceconnect.InvestmentServiceInvestmentCreateProcedure, rootToken, &pool_iface.InvestmentCreateRequest{
					UserID:     users[name],
					BusinessID: biz.ID,
					Amount:     pool_mock.Money(amount),
				})
				if name == "anna" {
					annaInvestment = res.Investment.ID
				}
			}

			earned := mustCall[pool_iface.EarningCreateRequest, pool_iface.EarningCreateResponse](c, pool_ifaceconnect.EarningServiceEarningCreateProcedure, rootToken, &pool_iface.EarningCreateRequest{
				BusinessID: biz.ID,
				Amount:     pool_mock.Money("400"),
			}).Earning

			shareOf := func(shares []*pool_iface.ShareItem, userID uint) string {
				for _, share := range shares {
					if share.UserID == userID {
						return share.Amount.StringFixed(2)
					}
				}
				return ""
			}
			assert.Equal(t, "100.00", shareOf(earned.Shares, users["anna"]))
			assert.Equal(t, "300.00", shareOf(earned.Shares, users["bob"]))

			wd := mustCall[pool_iface.WithdrawalCreateRequest, pool_iface.WithdrawalCreateResponse](c, pool_ifaceconnect.WithdrawalServiceWithdrawalCreateProcedure, rootToken, &pool_iface.WithdrawalCreateRequest{
				UserID:     users["anna"],
				BusinessID: biz.ID,
				Amount:     pool_mock.Money("50"),
			})
			assert.Equal(t, "50.00", wd.Available.StringFixed(2))

			t.Run("overdraw rejected", func(t *testing.T) {
				_, err := call[pool_iface.WithdrawalCreateRequest, pool_iface.WithdrawalCreateResponse](c, pool_ifaceconnect.WithdrawalServiceWithdrawalCreateProcedure, rootToken, &pool_iface.WithdrawalCreateRequest{
					UserID:     users["anna"],
					BusinessID: biz.ID,
					Amount:     pool_mock.Money("51"),
				})

				var cerr *connect.Error
				assert.ErrorAs(t, err, &cerr)
				assert.Equal(t, connect.CodeFailedPrecondition, cerr.Code())
				assert.Contains(t, cerr.Message(), "available 50.00")
				assert.Equal(t, "insufficient_balance", cerr.Meta().Get(custom_connect.ErrorKindHeader))
			})

			expensed := mustCall[pool_iface.ExpenseCreateRequest, pool_iface.ExpenseCreateResponse](c, pool_ifaceconnect.ExpenseServiceExpenseCreateProcedure, rootToken, &pool_iface.ExpenseCreateRequest{
				BusinessID:  biz.ID,
				Amount:      pool_mock.Money("200"),
				Description: "repairs",
			}).Expense
			assert.Equal(t, "50.00", shareOf(expensed.Shares, users["anna"]))
			assert.Equal(t, "150.00", shareOf(expensed.Shares, users["bob"]))

			detail := mustCall[pool_iface.BalanceDetailRequest, pool_iface.BalanceDetailResponse](c, pool_ifaceconnect.ReportServiceBalanceDetailProcedure, annaToken, &pool_iface.BalanceDetailRequest{
				UserID:     users["anna"],
				BusinessID: biz.ID,
			})
			assert.Equal(t, "0.00", detail.Balance.Available.StringFixed(2))

			t.Run("investment delete keeps past shares", func(t *testing.T) {
				mustCall[pool_iface.InvestmentDeleteRequest, pool_iface.InvestmentDeleteResponse](c, pool_ifaceconnect.InvestmentServiceInvestmentDeleteProcedure, rootToken, &pool_iface.InvestmentDeleteRequest{
					ID: annaInvestment,
				})

				list := mustCall[pool_iface.EarningListRequest, pool_iface.EarningListResponse](c, pool_ifaceconnect.EarningServiceEarningListProcedure, annaToken, &pool_iface.EarningListRequest{
					BusinessID: biz.ID,
				})
				assert.Len(t, list.Data, 1)
				assert.Equal(t, "100.00", shareOf(list.Data[0].Shares, users["anna"]))
			})

			t.Run("missing token", func(t *testing.T) {
				_, err := call[pool_iface.MyStatsRequest, pool_iface.MyStatsResponse](c, pool_ifaceconnect.ReportServiceMyStatsProcedure, "", &pool_iface.MyStatsRequest{})
				assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
			})

			t.Run("member cannot create business", func(t *testing.T) {
				_, err := call[pool_iface.BusinessCreateRequest, pool_iface.BusinessCreateResponse](c, pool_ifaceconnect.BusinessServiceBusinessCreateProcedure, annaToken, &pool_iface.BusinessCreateRequest{
					Name: "Side Hustle",
				})
				assert.Equal(t, connect.CodePermissionDenied, connect.CodeOf(err))
			})
		},
	)
}
