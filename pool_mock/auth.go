package pool_mock

import (
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/pdcgo/pool_service/authorization"
	"github.com/pdcgo/pool_service/authorization_iface"
	"github.com/pdcgo/pool_service/pool_model"
	"github.com/zeebo/assert"
	"gorm.io/gorm"
)

const TestSecret = "pool-test-secret"

func NewTestIssuer() *authorization.TokenIssuer {
	return authorization.NewTokenIssuer(TestSecret, time.Hour)
}

// NewTestAuthorization returns the real token based authorization backed by db.
func NewTestAuthorization(db *gorm.DB) (authorization_iface.Authorization, *authorization.TokenIssuer) {
	issuer := NewTestIssuer()
	return authorization.NewAuthorization(db, issuer), issuer
}

// AsUser builds a request carrying a bearer token of user.
func AsUser[T any](t *testing.T, issuer *authorization.TokenIssuer, user *pool_model.User, msg *T) *connect.Request[T] {
	token, _, err := issuer.Issue(user)
	assert.NoError(t, err)

	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+token)
	return req
}
