package authorization_mock

import (
	"net/http"

	"github.com/pdcgo/pool_service/authorization_iface"
)

type IdentityMock struct {
	ID        uint
	Username  string
	SuperUser bool
}

// GetUserID implements authorization_iface.Identity.
func (i *IdentityMock) GetUserID() uint {
	return i.ID
}

// GetUsername implements authorization_iface.Identity.
func (i *IdentityMock) GetUsername() string {
	return i.Username
}

// IsSuperUser implements authorization_iface.Identity.
func (i *IdentityMock) IsSuperUser() bool {
	return i.SuperUser
}

// AuthIdentityMock grants every permission unless Error is set.
type AuthIdentityMock struct {
	IdentityMock *IdentityMock
	Error        error
}

// Err implements authorization_iface.AuthIdentity.
func (a *AuthIdentityMock) Err() error {
	return a.Error
}

// HasPermission implements authorization_iface.AuthIdentity.
func (a *AuthIdentityMock) HasPermission(perms authorization_iface.CheckPermissionGroup) authorization_iface.AuthIdentity {
	return a
}

// Identity implements authorization_iface.AuthIdentity.
func (a *AuthIdentityMock) Identity() authorization_iface.Identity {
	if a.IdentityMock == nil {
		return nil
	}
	return a.IdentityMock
}

type EmptyAuthorizationMock struct {
	AuthIdentityMock *AuthIdentityMock
}

// AuthIdentityFromHeader implements authorization_iface.Authorization.
func (e *EmptyAuthorizationMock) AuthIdentityFromHeader(header http.Header) authorization_iface.AuthIdentity {
	return e.identity()
}

// AuthIdentityFromToken implements authorization_iface.Authorization.
func (e *EmptyAuthorizationMock) AuthIdentityFromToken(token string) authorization_iface.AuthIdentity {
	return e.identity()
}

// HasPermission implements authorization_iface.Authorization.
func (e *EmptyAuthorizationMock) HasPermission(identity authorization_iface.Identity, perms authorization_iface.CheckPermissionGroup) error {
	return nil
}

func (e *EmptyAuthorizationMock) identity() authorization_iface.AuthIdentity {
	if e.AuthIdentityMock == nil {
		return &AuthIdentityMock{IdentityMock: &IdentityMock{ID: 1, SuperUser: true}}
	}
	return e.AuthIdentityMock
}
