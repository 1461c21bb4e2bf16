package earning_test

import (
	"context"
	"testing"

	"github.com/pdcgo/pool_service/authorization_iface"
	"github.com/pdcgo/pool_service/earning"
	"github.com/pdcgo/pool_service/investment"
	"github.com/pdcgo/pool_service/pool_core"
	"github.com/pdcgo/pool_service/pool_iface"
	"github.com/pdcgo/pool_service/pool_mock"
	"github.com/pdcgo/pool_service/pool_model"
	"github.com/pdcgo/shared/pkg/moretest"
	"github.com/pdcgo/shared/pkg/moretest/moretest_mock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestEarning(t *testing.T) {
	var db gorm.DB

	admin := pool_model.User{Username: "root", Role: pool_model.AdminRole}
	mira := pool_model.User{Username: "mira"}
	anna := pool_model.User{Username: "anna"}
	bob := pool_model.User{Username: "bob"}
	cart := pool_model.Business{Name: "Coffee Cart", Active: true}
	empty := pool_model.Business{Name: "Empty", Active: true}

	moretest.Suite(t, "earning distributed to investors",
		moretest.SetupListFunc{
			moretest_mock.MockSqliteDatabase(&db),
			pool_mock.Migrate(&db),
			pool_mock.PopulateUser(&db, &admin),
			pool_mock.PopulateUser(&db, &mira),
			pool_mock.PopulateUser(&db, &anna),
			pool_mock.PopulateUser(&db, &bob),
			pool_mock.PopulateBusiness(&db, &cart),
			pool_mock.PopulateBusiness(&db, &empty),
			func(t *testing.T) func() error {
				pool_mock.PopulateManager(&db, mira.ID, cart.ID)(t)
				pool_mock.PopulateManager(&db, mira.ID, empty.ID)(t)
				pool_mock.PopulateInvestment(&db, anna.ID, cart.ID, "1000")(t)
				pool_mock.PopulateInvestment(&db, bob.ID, cart.ID, "3000")(t)
				return nil
			},
		},
		func(t *testing.T) {
			auth, issuer := pool_mock.NewTestAuthorization(&db)
			service := earning.NewEarningService(&db, auth)
			ctx := context.Background()

			created, err := service.EarningCreate(ctx, pool_mock.AsUser(t, issuer, &mira, &pool_iface.EarningCreateRequest{
				BusinessID: cart.ID,
				Amount:     pool_mock.Money("400"),
				Note:       "march",
			}))
			assert.Nil(t, err)

			item := created.Msg.Earning
			assert.Equal(t, "mira", item.RecordedByName)
			assert.Len(t, item.Shares, 2)
			assert.Equal(t, "100.00", item.Shares[0].Amount.StringFixed(2))
			assert.Equal(t, "25.00", item.Shares[0].SharePercent.StringFixed(2))
			assert.Equal(t, "300.00", item.Shares[1].Amount.StringFixed(2))
			assert.Equal(t, "75.00", item.Shares[1].SharePercent.StringFixed(2))

			t.Run("member cannot record", func(t *testing.T) {
				_, err := service.EarningCreate(ctx, pool_mock.AsUser(t, issuer, &anna, &pool_iface.EarningCreateRequest{
					BusinessID: cart.ID,
					Amount:     pool_mock.Money("10"),
				}))
				var permerr *authorization_iface.PermissionError
				assert.ErrorAs(t, err, &permerr)
			})

			t.Run("no investors", func(t *testing.T) {
				_, err := service.EarningCreate(ctx, pool_mock.AsUser(t, issuer, &mira, &pool_iface.EarningCreateRequest{
					BusinessID: empty.ID,
					Amount:     pool_mock.Money("10"),
				}))
				var noinv *pool_core.NoInvestorsError
				assert.ErrorAs(t, err, &noinv)

				var count int64
				db.Model(&pool_model.Earning{}).Where("business_id = ?", empty.ID).Count(&count)
				assert.Equal(t, int64(0), count)
			})

			t.Run("list masks for member", func(t *testing.T) {
				list, err := service.EarningList(ctx, pool_mock.AsUser(t, issuer, &anna, &pool_iface.EarningListRequest{
					BusinessID: cart.ID,
				}))
				assert.Nil(t, err)
				assert.Len(t, list.Msg.Data, 1)

				row := list.Msg.Data[0]
				assert.Equal(t, "M***", row.RecordedByName)
				assert.Equal(t, "anna", row.Shares[0].Username)
				assert.Equal(t, "B***", row.Shares[1].Username)
			})

			t.Run("investment delete keeps shares", func(t *testing.T) {
				var inv pool_model.Investment
				err := db.Where("user_id = ?", anna.ID).First(&inv).Error
				assert.Nil(t, err)

				invService := investment.NewInvestmentService(&db, auth)
				_, err = invService.InvestmentDelete(ctx, pool_mock.AsUser(t, issuer, &admin, &pool_iface.InvestmentDeleteRequest{
					ID: inv.ID,
				}))
				assert.Nil(t, err)

				var share pool_model.EarningShare
				err = db.Where("earning_id = ? and user_id = ?", item.ID, anna.ID).First(&share).Error
				assert.Nil(t, err)
				assert.Equal(t, "100.00", share.Amount.StringFixed(2))
				assert.Equal(t, "25.00", share.SharePercent.StringFixed(2))
			})

			t.Run("delete requires admin", func(t *testing.T) {
				_, err := service.EarningDelete(ctx, pool_mock.AsUser(t, issuer, &mira, &pool_iface.EarningDeleteRequest{
					ID: item.ID,
				}))
				var permerr *authorization_iface.PermissionError
				assert.ErrorAs(t, err, &permerr)
			})

			t.Run("delete removes shares", func(t *testing.T) {
				_, err := service.EarningDelete(ctx, pool_mock.AsUser(t, issuer, &admin, &pool_iface.EarningDeleteRequest{
					ID: item.ID,
				}))
				assert.Nil(t, err)

				var count int64
				db.Model(&pool_model.EarningShare{}).Where("earning_id = ?", item.ID).Count(&count)
				assert.Equal(t, int64(0), count)

				_, err = service.EarningDelete(ctx, pool_mock.AsUser(t, issuer, &admin, &pool_iface.EarningDeleteRequest{
					ID: item.ID,
				}))
				var nf *pool_core.NotFoundError
				assert.ErrorAs(t, err, &nf)
			})
		},
	)
}
