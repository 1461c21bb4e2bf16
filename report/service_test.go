package report_test

import (
	"context"
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"connectrpc.com/connect"
	"github.com/pdcgo/pool_service/configs"
	"github.com/pdcgo/pool_service/custom_connect"
	"github.com/pdcgo/pool_service/earning"
	"github.com/pdcgo/pool_service/investment"
	"github.com/pdcgo/pool_service/pool_core"
	"github.com/pdcgo/pool_service/pool_iface"
	"github.com/pdcgo/pool_service/pool_iface/pool_ifaceconnect"
	"github.com/pdcgo/pool_service/pool_mock"
	"github.com/pdcgo/pool_service/pool_model"
	"github.com/pdcgo/pool_service/report"
	"github.com/pdcgo/pool_service/withdrawal"
	"github.com/pdcgo/shared/pkg/moretest"
	"github.com/pdcgo/shared/pkg/moretest/moretest_mock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestReport(t *testing.T) {
	var db gorm.DB

	admin := pool_model.User{Username: "root", Role: pool_model.AdminRole}
	mira := pool_model.User{Username: "mira"}
	anna := pool_model.User{Username: "anna"}
	bob := pool_model.User{Username: "bob"}
	cart := pool_model.Business{Name: "Coffee Cart", Active: true}
	kiosk := pool_model.Business{Name: "Kiosk", Active: true}

	moretest.Suite(t, "report over a small pool",
		moretest.SetupListFunc{
			moretest_mock.MockSqliteDatabase(&db),
			pool_mock.Migrate(&db),
			pool_mock.PopulateUser(&db, &admin),
			pool_mock.PopulateUser(&db, &mira),
			pool_mock.PopulateUser(&db, &anna),
			pool_mock.PopulateUser(&db, &bob),
			pool_mock.PopulateBusiness(&db, &cart),
			pool_mock.PopulateBusiness(&db, &kiosk),
			func(t *testing.T) func() error {
				pool_mock.PopulateManager(&db, mira.ID, cart.ID)(t)
				pool_mock.PopulateInvestment(&db, anna.ID, kiosk.ID, "500")(t)
				return nil
			},
		},
		func(t *testing.T) {
			auth, issuer := pool_mock.NewTestAuthorization(&db)
			ctx := context.Background()

			// kiosk earns once then closes
			_, err := earning.NewEarningService(&db, auth).EarningCreate(ctx, pool_mock.AsUser(t, issuer, &admin, &pool_iface.EarningCreateRequest{
				BusinessID: kiosk.ID,
				Amount:     pool_mock.Money("50"),
			}))
			assert.Nil(t, err)
			err = db.Model(&pool_model.Business{}).Where("id = ?", kiosk.ID).Update("active", false).Error
			assert.Nil(t, err)

			invService := investment.NewInvestmentService(&db, auth)
			for _, inv := range []*pool_iface.InvestmentCreateRequest{
				{UserID: anna.ID, BusinessID: cart.ID, Amount: pool_mock.Money("1000")},
				{UserID: bob.ID, BusinessID: cart.ID, Amount: pool_mock.Money("3000")},
			} {
				_, err := invService.InvestmentCreate(ctx, pool_mock.AsUser(t, issuer, &mira, inv))
				assert.Nil(t, err)
			}

			_, err = earning.NewEarningService(&db, auth).EarningCreate(ctx, pool_mock.AsUser(t, issuer, &mira, &pool_iface.EarningCreateRequest{
				BusinessID: cart.ID,
				Amount:     pool_mock.Money("400"),
			}))
			assert.Nil(t, err)

			wdService := withdrawal.NewWithdrawalService(&db, auth)
			wdRes, err := wdService.WithdrawalCreate(ctx, pool_mock.AsUser(t, issuer, &mira, &pool_iface.WithdrawalCreateRequest{
				UserID:     anna.ID,
				BusinessID: cart.ID,
				Amount:     pool_mock.Money("50"),
			}))
			assert.Nil(t, err)

			cfg := configs.ReportConfig{TransactionLimit: 50, TransactionLimitMax: 3}
			service := report.NewReportService(&db, auth, &cfg)

			t.Run("pool stats for member", func(t *testing.T) {
				res, err := service.PoolStats(ctx, pool_mock.AsUser(t, issuer, &bob, &pool_iface.PoolStatsRequest{}))
				assert.Nil(t, err)

				totals := res.Msg.Totals
				assert.Equal(t, "4000.00", totals.TotalInvested.StringFixed(2))
				assert.Equal(t, "400.00", totals.TotalEarned.StringFixed(2))
				assert.Equal(t, "50.00", totals.TotalWithdrawn.StringFixed(2))
				assert.Equal(t, "350.00", totals.TotalAvailable.StringFixed(2))
				assert.Equal(t, int64(1), totals.ActiveBusinesses)
				assert.Equal(t, int64(2), totals.Investors)

				assert.Len(t, res.Msg.Leaderboard, 2)
				assert.Equal(t, "bob", res.Msg.Leaderboard[0].Username)
				assert.Equal(t, "A***", res.Msg.Leaderboard[1].Username)

				assert.Len(t, res.Msg.Balances, 3)
				for _, item := range res.Msg.Balances {
					if item.UserID == anna.ID {
						assert.Equal(t, "A***", item.Username)
					}
				}
			})

			t.Run("pool stats for admin", func(t *testing.T) {
				res, err := service.PoolStats(ctx, pool_mock.AsUser(t, issuer, &admin, &pool_iface.PoolStatsRequest{}))
				assert.Nil(t, err)
				assert.Equal(t, "anna", res.Msg.Leaderboard[1].Username)
			})

			t.Run("manager sees own business balances", func(t *testing.T) {
				res, err := service.PoolStats(ctx, pool_mock.AsUser(t, issuer, &mira, &pool_iface.PoolStatsRequest{}))
				assert.Nil(t, err)
				assert.Equal(t, "A***", res.Msg.Leaderboard[1].Username)

				for _, item := range res.Msg.Balances {
					if item.UserID != anna.ID {
						continue
					}
					if item.BusinessID == cart.ID {
						assert.Equal(t, "anna", item.Username)
					} else {
						assert.Equal(t, "A***", item.Username)
					}
				}
			})

			t.Run("my stats", func(t *testing.T) {
				res, err := service.MyStats(ctx, pool_mock.AsUser(t, issuer, &anna, &pool_iface.MyStatsRequest{}))
				assert.Nil(t, err)

				total := res.Msg.Total
				assert.Equal(t, "anna", total.Username)
				assert.Equal(t, "1000.00", total.Invested.StringFixed(2))
				assert.Equal(t, "100.00", total.Earned.StringFixed(2))
				assert.Equal(t, "50.00", total.Available.StringFixed(2))

				assert.Len(t, res.Msg.Balances, 2)
				assert.Len(t, res.Msg.Investments, 2)
				assert.Len(t, res.Msg.Withdrawals, 1)
				assert.Equal(t, "M***", res.Msg.Withdrawals[0].RecordedByName)
			})

			t.Run("balance detail masked", func(t *testing.T) {
				res, err := service.BalanceDetail(ctx, pool_mock.AsUser(t, issuer, &bob, &pool_iface.BalanceDetailRequest{
					UserID:     anna.ID,
					BusinessID: cart.ID,
				}))
				assert.Nil(t, err)

				balance := res.Msg.Balance
				assert.Equal(t, "A***", balance.Username)
				assert.Equal(t, "50.00", balance.Available.StringFixed(2))
				assert.Equal(t, "10.00", balance.Roi.StringFixed(2))

				res, err = service.BalanceDetail(ctx, pool_mock.AsUser(t, issuer, &mira, &pool_iface.BalanceDetailRequest{
					UserID:     anna.ID,
					BusinessID: cart.ID,
				}))
				assert.Nil(t, err)
				assert.Equal(t, "anna", res.Msg.Balance.Username)
			})

			t.Run("balance detail unknown business", func(t *testing.T) {
				_, err := service.BalanceDetail(ctx, pool_mock.AsUser(t, issuer, &bob, &pool_iface.BalanceDetailRequest{
					UserID:     anna.ID,
					BusinessID: 999,
				}))
				var nf *pool_core.NotFoundError
				assert.ErrorAs(t, err, &nf)
			})

			t.Run("transaction visibility", func(t *testing.T) {
				res, err := service.TransactionList(ctx, pool_mock.AsUser(t, issuer, &bob, &pool_iface.TransactionListRequest{}))
				assert.Nil(t, err)
				assert.Len(t, res.Msg.Data, 3)

				wd := res.Msg.Data[0]
				assert.Equal(t, string(pool_model.WithdrawalTx), wd.Type)
				assert.Equal(t, "A***", wd.Username)
				assert.Equal(t, "M***", wd.ActorName)
				assert.NotContains(t, wd.Desc, "anna")
				assert.NotContains(t, wd.Desc, "mira")

				earn := res.Msg.Data[1]
				assert.Equal(t, string(pool_model.EarningTx), earn.Type)
				assert.Nil(t, earn.UserID)
				assert.Equal(t, "", earn.Username)
				assert.Equal(t, "M***", earn.ActorName)

				inv := res.Msg.Data[2]
				assert.Equal(t, string(pool_model.InvestmentTx), inv.Type)
				assert.Equal(t, "bob", inv.Username)
				assert.Equal(t, "M***", inv.ActorName)

				res, err = service.TransactionList(ctx, pool_mock.AsUser(t, issuer, &anna, &pool_iface.TransactionListRequest{}))
				assert.Nil(t, err)
				assert.Len(t, res.Msg.Data, 3)
				assert.Equal(t, string(pool_model.WithdrawalTx), res.Msg.Data[0].Type)
				assert.Equal(t, "anna", res.Msg.Data[0].Username)
				assert.Equal(t, "M***", res.Msg.Data[0].ActorName)
				assert.Equal(t, "B***", res.Msg.Data[2].Username)

				res, err = service.TransactionList(ctx, pool_mock.AsUser(t, issuer, &mira, &pool_iface.TransactionListRequest{
					Limit: 2,
				}))
				assert.Nil(t, err)
				assert.Len(t, res.Msg.Data, 2)
				assert.Equal(t, "anna", res.Msg.Data[0].Username)
				assert.Equal(t, "mira", res.Msg.Data[0].ActorName)
			})

			t.Run("transaction kiosk rows for admin", func(t *testing.T) {
				res, err := service.TransactionList(ctx, pool_mock.AsUser(t, issuer, &admin, &pool_iface.TransactionListRequest{
					BusinessID: kiosk.ID,
				}))
				assert.Nil(t, err)
				assert.Len(t, res.Msg.Data, 1)
				assert.Equal(t, "root", res.Msg.Data[0].ActorName)
			})

			t.Run("transaction limit capped", func(t *testing.T) {
				res, err := service.TransactionList(ctx, pool_mock.AsUser(t, issuer, &admin, &pool_iface.TransactionListRequest{
					Limit: 10,
				}))
				assert.Nil(t, err)
				assert.Len(t, res.Msg.Data, 3)
			})

			t.Run("csv export stream", func(t *testing.T) {
				interceptor, err := custom_connect.NewDefaultInterceptor()
				assert.Nil(t, err)

				mux := http.NewServeMux()
				mux.Handle(pool_ifaceconnect.NewReportServiceHandler(service, interceptor))
				srv := httptest.NewServer(mux)
				defer srv.Close()

				client := connect.NewClient[pool_iface.TransactionExportRequest, pool_iface.TransactionExportResponse](
					srv.Client(),
					srv.URL+pool_ifaceconnect.ReportServiceTransactionExportProcedure,
					pool_ifaceconnect.WithJSONCodec(),
				)

				export := func(user *pool_model.User) (string, error) {
					stream, err := client.CallServerStream(ctx, pool_mock.AsUser(t, issuer, user, &pool_iface.TransactionExportRequest{}))
					if err != nil {
						return "", err
					}
					defer stream.Close()

					var out strings.Builder
					for stream.Receive() {
						out.WriteString(stream.Msg().Chunk)
					}
					return out.String(), stream.Err()
				}

				raw, err := export(&admin)
				assert.Nil(t, err)

				records, err := csv.NewReader(strings.NewReader(raw)).ReadAll()
				assert.Nil(t, err)
				assert.Len(t, records, 6)
				assert.Equal(t, "id", records[0][0])
				assert.Equal(t, string(pool_model.WithdrawalTx), records[1][2])
				assert.Equal(t, "50.00", records[1][9])

				_, err = export(&bob)
				assert.Equal(t, connect.CodePermissionDenied, connect.CodeOf(err))
			})

			t.Run("deleted withdrawal keeps names out of the log", func(t *testing.T) {
				_, err := wdService.WithdrawalDelete(ctx, pool_mock.AsUser(t, issuer, &mira, &pool_iface.WithdrawalDeleteRequest{
					ID: wdRes.Msg.Withdrawal.ID,
				}))
				assert.Nil(t, err)

				res, err := service.TransactionList(ctx, pool_mock.AsUser(t, issuer, &anna, &pool_iface.TransactionListRequest{}))
				assert.Nil(t, err)

				row := res.Msg.Data[0]
				assert.Equal(t, string(pool_model.WithdrawalDeleteTx), row.Type)
				assert.Equal(t, "anna", row.Username)
				assert.Equal(t, "M***", row.ActorName)
				assert.NotContains(t, row.Desc, "mira")
				assert.NotContains(t, row.Desc, "anna")

				res, err = service.TransactionList(ctx, pool_mock.AsUser(t, issuer, &mira, &pool_iface.TransactionListRequest{}))
				assert.Nil(t, err)
				assert.Equal(t, "mira", res.Msg.Data[0].ActorName)
			})
		},
	)
}
