package expense_test

import (
	"context"
	"testing"

	"github.com/pdcgo/pool_service/expense"
	"github.com/pdcgo/pool_service/pool_core"
	"github.com/pdcgo/pool_service/pool_iface"
	"github.com/pdcgo/pool_service/pool_mock"
	"github.com/pdcgo/pool_service/pool_model"
	"github.com/pdcgo/shared/pkg/moretest"
	"github.com/pdcgo/shared/pkg/moretest/moretest_mock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestExpense(t *testing.T) {
	var db gorm.DB

	admin := pool_model.User{Username: "root", Role: pool_model.AdminRole}
	anna := pool_model.User{Username: "anna"}
	bob := pool_model.User{Username: "bob"}
	cart := pool_model.Business{Name: "Coffee Cart", Active: true}

	moretest.Suite(t, "expense shared to investors",
		moretest.SetupListFunc{
			moretest_mock.MockSqliteDatabase(&db),
			pool_mock.Migrate(&db),
			pool_mock.PopulateUser(&db, &admin),
			pool_mock.PopulateUser(&db, &anna),
			pool_mock.PopulateUser(&db, &bob),
			pool_mock.PopulateBusiness(&db, &cart),
			func(t *testing.T) func() error {
				pool_mock.PopulateInvestment(&db, anna.ID, cart.ID, "100")(t)
				pool_mock.PopulateInvestment(&db, bob.ID, cart.ID, "100")(t)
				pool_mock.PopulateInvestment(&db, admin.ID, cart.ID, "100")(t)
				return nil
			},
		},
		func(t *testing.T) {
			auth, issuer := pool_mock.NewTestAuthorization(&db)
			service := expense.NewExpenseService(&db, auth)
			ctx := context.Background()

			created, err := service.ExpenseCreate(ctx, pool_mock.AsUser(t, issuer, &admin, &pool_iface.ExpenseCreateRequest{
				BusinessID:  cart.ID,
				Amount:      pool_mock.Money("100"),
				Description: "new grinder",
			}))
			assert.Nil(t, err)

			item := created.Msg.Expense
			assert.Equal(t, "new grinder", item.Description)
			assert.Len(t, item.Shares, 3)
			for _, share := range item.Shares {
				assert.Equal(t, "33.33", share.Amount.StringFixed(2))
			}

			t.Run("description required", func(t *testing.T) {
				_, err := service.ExpenseCreate(ctx, pool_mock.AsUser(t, issuer, &admin, &pool_iface.ExpenseCreateRequest{
					BusinessID: cart.ID,
					Amount:     pool_mock.Money("10"),
				}))
				var verr *pool_core.ValidationError
				assert.ErrorAs(t, err, &verr)
				assert.Equal(t, []string{"description"}, verr.Fields)
			})

			t.Run("recorder name masked for member", func(t *testing.T) {
				list, err := service.ExpenseList(ctx, pool_mock.AsUser(t, issuer, &bob, &pool_iface.ExpenseListRequest{}))
				assert.Nil(t, err)
				assert.Len(t, list.Msg.Data, 1)
				assert.Equal(t, "R***", list.Msg.Data[0].RecordedByName)
			})

			t.Run("delete removes parent and shares", func(t *testing.T) {
				_, err := service.ExpenseDelete(ctx, pool_mock.AsUser(t, issuer, &admin, &pool_iface.ExpenseDeleteRequest{
					ID: item.ID,
				}))
				assert.Nil(t, err)

				var parents, shares int64
				db.Model(&pool_model.Expense{}).Count(&parents)
				db.Model(&pool_model.ExpenseShare{}).Count(&shares)
				assert.Equal(t, int64(0), parents)
				assert.Equal(t, int64(0), shares)

				var audit pool_model.Transaction
				err = db.Where("type = ?", pool_model.ExpenseDeleteTx).First(&audit).Error
				assert.Nil(t, err)
				assert.Contains(t, audit.Desc, "Coffee Cart")
			})
		},
	)
}
