package authorization_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pdcgo/pool_service/authorization"
	"github.com/pdcgo/pool_service/authorization_iface"
	"github.com/pdcgo/pool_service/pool_mock"
	"github.com/pdcgo/pool_service/pool_model"
	"github.com/pdcgo/shared/pkg/moretest"
	"github.com/pdcgo/shared/pkg/moretest/moretest_mock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func bearer(token string) http.Header {
	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)
	return header
}

func TestAuthorization(t *testing.T) {
	var db gorm.DB

	admin := pool_model.User{Username: "root", Role: pool_model.AdminRole}
	manager := pool_model.User{Username: "mira"}
	member := pool_model.User{Username: "bob"}
	cart := pool_model.Business{Name: "Coffee Cart", Active: true}

	issuer := authorization.NewTokenIssuer("test-secret", time.Hour)

	moretest.Suite(t, "token and gates",
		moretest.SetupListFunc{
			moretest_mock.MockSqliteDatabase(&db),
			pool_mock.Migrate(&db),
			pool_mock.PopulateUser(&db, &admin),
			pool_mock.PopulateUser(&db, &manager),
			pool_mock.PopulateUser(&db, &member),
			pool_mock.PopulateBusiness(&db, &cart),
			func(t *testing.T) func() error {
				return pool_mock.PopulateManager(&db, manager.ID, cart.ID)(t)
			},
		},
		func(t *testing.T) {
			auth := authorization.NewAuthorization(&db, issuer)

			tokenOf := func(t *testing.T, user *pool_model.User) string {
				token, expiredAt, err := issuer.Issue(user)
				assert.Nil(t, err)
				assert.True(t, expiredAt.After(time.Now()))
				return token
			}

			businessGate := authorization_iface.CheckPermissionGroup{
				&pool_model.Investment{}: &authorization_iface.CheckPermission{
					DomainID: cart.ID,
					Actions:  []authorization_iface.Action{authorization_iface.Create},
				},
			}

			rootGate := authorization_iface.CheckPermissionGroup{
				&pool_model.Business{}: &authorization_iface.CheckPermission{
					DomainID: authorization_iface.RootDomain,
					Actions:  []authorization_iface.Action{authorization_iface.Create},
				},
			}

			t.Run("missing token", func(t *testing.T) {
				err := auth.AuthIdentityFromHeader(http.Header{}).Err()
				var autherr *authorization_iface.AuthenticationError
				assert.ErrorAs(t, err, &autherr)
			})

			t.Run("tampered token", func(t *testing.T) {
				token := tokenOf(t, &member) + "x"
				err := auth.AuthIdentityFromHeader(bearer(token)).Err()
				var autherr *authorization_iface.AuthenticationError
				assert.ErrorAs(t, err, &autherr)
			})

			t.Run("expired token", func(t *testing.T) {
				token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, authorization.Claims{
					UserID: member.ID,
					RegisteredClaims: jwt.RegisteredClaims{
						ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
					},
				}).SignedString([]byte("test-secret"))
				assert.Nil(t, err)

				err = auth.AuthIdentityFromToken(token).Err()
				assert.NotNil(t, err)
				assert.Contains(t, err.Error(), "token expired")
			})

			t.Run("admin passes every gate", func(t *testing.T) {
				identity := auth.AuthIdentityFromHeader(bearer(tokenOf(t, &admin)))
				assert.Nil(t, identity.HasPermission(rootGate).Err())
				assert.True(t, identity.Identity().IsSuperUser())
			})

			t.Run("manager passes own business gate", func(t *testing.T) {
				identity := auth.AuthIdentityFromHeader(bearer(tokenOf(t, &manager)))
				assert.Nil(t, identity.HasPermission(businessGate).Err())
			})

			t.Run("manager is not admin", func(t *testing.T) {
				err := auth.
					AuthIdentityFromHeader(bearer(tokenOf(t, &manager))).
					HasPermission(rootGate).
					Err()

				var permerr *authorization_iface.PermissionError
				assert.ErrorAs(t, err, &permerr)
				assert.Contains(t, err.Error(), "not admin")
			})

			t.Run("member is not manager", func(t *testing.T) {
				err := auth.
					AuthIdentityFromHeader(bearer(tokenOf(t, &member))).
					HasPermission(businessGate).
					Err()

				assert.NotNil(t, err)
				assert.Contains(t, err.Error(), "not a manager of business")
			})

			t.Run("deleted user rejected", func(t *testing.T) {
				ghost := pool_model.User{ID: 999, Username: "ghost"}
				err := auth.AuthIdentityFromHeader(bearer(tokenOf(t, &ghost))).Err()
				var autherr *authorization_iface.AuthenticationError
				assert.ErrorAs(t, err, &autherr)
			})
		},
	)
}

func TestPassword(t *testing.T) {
	hash, err := authorization.HashPassword("hunter22")
	assert.Nil(t, err)
	assert.True(t, authorization.VerifyPassword(hash, "hunter22"))
	assert.False(t, authorization.VerifyPassword(hash, "hunter23"))
}
