package visibility_test

import (
	"testing"

	"github.com/pdcgo/pool_service/authorization/authorization_mock"
	"github.com/pdcgo/pool_service/pool_mock"
	"github.com/pdcgo/pool_service/pool_model"
	"github.com/pdcgo/pool_service/visibility"
	"github.com/pdcgo/shared/pkg/moretest"
	"github.com/pdcgo/shared/pkg/moretest/moretest_mock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestViewer(t *testing.T) {
	var db gorm.DB

	mira := pool_model.User{Username: "mira"}
	anna := pool_model.User{Username: "anna"}
	bob := pool_model.User{Username: "bob"}
	cart := pool_model.Business{Name: "Coffee Cart", Active: true}
	kiosk := pool_model.Business{Name: "Kiosk", Active: true}

	moretest.Suite(t, "viewer from identity",
		moretest.SetupListFunc{
			moretest_mock.MockSqliteDatabase(&db),
			pool_mock.Migrate(&db),
			pool_mock.PopulateUser(&db, &mira),
			pool_mock.PopulateUser(&db, &anna),
			pool_mock.PopulateUser(&db, &bob),
			pool_mock.PopulateBusiness(&db, &cart),
			pool_mock.PopulateBusiness(&db, &kiosk),
			func(t *testing.T) func() error {
				pool_mock.PopulateManager(&db, mira.ID, cart.ID)(t)
				pool_mock.PopulateInvestment(&db, anna.ID, cart.ID, "100")(t)
				pool_mock.PopulateInvestment(&db, bob.ID, kiosk.ID, "100")(t)
				return nil
			},
		},
		func(t *testing.T) {
			t.Run("manager", func(t *testing.T) {
				viewer, err := visibility.ViewerFromIdentity(&db, &authorization_mock.IdentityMock{
					ID:       mira.ID,
					Username: mira.Username,
				})
				assert.Nil(t, err)
				assert.False(t, viewer.IsAdmin)
				assert.Equal(t, []uint{cart.ID}, viewer.ManagedBusinessIDs())
				assert.True(t, viewer.CanSeeBusiness(cart.ID))
				assert.False(t, viewer.CanSeeBusiness(kiosk.ID))

				err = viewer.LoadInvestors(&db)
				assert.Nil(t, err)
				assert.True(t, viewer.CanSeeUser(anna.ID))
				assert.False(t, viewer.CanSeeUser(bob.ID))
				assert.Equal(t, []uint{mira.ID, anna.ID}, viewer.VisibleUserIDs())
			})

			t.Run("recorder sees own entry", func(t *testing.T) {
				viewer, err := visibility.ViewerFromIdentity(&db, &authorization_mock.IdentityMock{ID: bob.ID})
				assert.Nil(t, err)
				assert.True(t, viewer.CanSeeRecord(bob.ID, cart.ID))
				assert.False(t, viewer.CanSeeRecord(mira.ID, cart.ID))
			})

			t.Run("super user sees everything", func(t *testing.T) {
				auth := &authorization_mock.EmptyAuthorizationMock{}
				identity := auth.AuthIdentityFromHeader(nil)
				assert.Nil(t, identity.Err())

				viewer, err := visibility.ViewerFromIdentity(&db, identity.Identity())
				assert.Nil(t, err)
				assert.True(t, viewer.IsAdmin)
				assert.True(t, viewer.CanSeeBusiness(kiosk.ID))
				assert.True(t, viewer.CanSeeUser(bob.ID))
			})
		},
	)
}
