package authorization

import (
	"errors"
	"net/http"
	"strings"

	"github.com/pdcgo/pool_service/authorization_iface"
	"github.com/pdcgo/pool_service/pool_model"
	"gorm.io/gorm"
)

type identityImpl struct {
	user *pool_model.User
}

// GetUserID implements authorization_iface.Identity.
func (i *identityImpl) GetUserID() uint {
	return i.user.ID
}

// GetUsername implements authorization_iface.Identity.
func (i *identityImpl) GetUsername() string {
	return i.user.Username
}

// IsSuperUser implements authorization_iface.Identity.
func (i *identityImpl) IsSuperUser() bool {
	return i.user.IsAdmin()
}

type authIdentityImpl struct {
	auth     authorization_iface.Authorization
	identity authorization_iface.Identity
	err      error
}

// Err implements authorization_iface.AuthIdentity.
func (a *authIdentityImpl) Err() error {
	return a.err
}

// HasPermission implements authorization_iface.AuthIdentity.
func (a *authIdentityImpl) HasPermission(perms authorization_iface.CheckPermissionGroup) authorization_iface.AuthIdentity {
	if a.err != nil {
		return a
	}

	a.err = a.auth.HasPermission(a.identity, perms)
	return a
}

// Identity implements authorization_iface.AuthIdentity.
func (a *authIdentityImpl) Identity() authorization_iface.Identity {
	return a.identity
}

type authorizationImpl struct {
	db     *gorm.DB
	issuer *TokenIssuer
}

// AuthIdentityFromHeader implements authorization_iface.Authorization.
func (a *authorizationImpl) AuthIdentityFromHeader(header http.Header) authorization_iface.AuthIdentity {
	raw := header.Get("Authorization")
	token, found := strings.CutPrefix(raw, "Bearer ")
	if !found || token == "" {
		return &authIdentityImpl{
			auth: a,
			err:  &authorization_iface.AuthenticationError{Msg: "missing bearer token"},
		}
	}

	return a.AuthIdentityFromToken(strings.TrimSpace(token))
}

// AuthIdentityFromToken implements authorization_iface.Authorization.
func (a *authorizationImpl) AuthIdentityFromToken(token string) authorization_iface.AuthIdentity {
	result := authIdentityImpl{
		auth: a,
	}

	claims, err := a.issuer.Parse(token)
	if err != nil {
		result.err = err
		return &result
	}

	var user pool_model.User
	err = a.db.
		Model(&pool_model.User{}).
		Where("id = ?", claims.UserID).
		First(&user).
		Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			result.err = &authorization_iface.AuthenticationError{Msg: "unknown user"}
		} else {
			result.err = err
		}
		return &result
	}

	result.identity = &identityImpl{user: &user}
	return &result
}

// HasPermission implements authorization_iface.Authorization.
func (a *authorizationImpl) HasPermission(identity authorization_iface.Identity, perms authorization_iface.CheckPermissionGroup) error {
	if identity == nil {
		return &authorization_iface.AuthenticationError{Msg: "identity empty"}
	}

	if identity.IsSuperUser() {
		return nil
	}

	for ent, perm := range perms {
		if perm.DomainID == authorization_iface.RootDomain {
			return &authorization_iface.PermissionError{
				UserID:   identity.GetUserID(),
				DomainID: perm.DomainID,
				EntityID: ent.GetEntityID(),
				Actions:  perm.Actions,
			}
		}

		var count int64
		err := a.db.
			Model(&pool_model.BusinessManager{}).
			Where("business_id = ? and user_id = ?", perm.DomainID, identity.GetUserID()).
			Count(&count).
			Error

		if err != nil {
			return err
		}

		if count == 0 {
			return &authorization_iface.PermissionError{
				UserID:   identity.GetUserID(),
				DomainID: perm.DomainID,
				EntityID: ent.GetEntityID(),
				Actions:  perm.Actions,
			}
		}
	}

	return nil
}

func NewAuthorization(db *gorm.DB, issuer *TokenIssuer) authorization_iface.Authorization {
	return &authorizationImpl{
		db:     db,
		issuer: issuer,
	}
}
