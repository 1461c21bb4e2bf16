package authorization_iface

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/pdcgo/pool_service/pool_core"
)

type Action string

const (
	Create Action = "create"
	Read   Action = "read"
	Update Action = "update"
	Delete Action = "delete"
)

// RootDomain is the pool wide domain, only admins hold permissions on it.
const RootDomain uint = 0

type Entity interface {
	GetEntityID() string
}

type CheckPermission struct {
	DomainID uint
	Actions  []Action
}

type CheckPermissionGroup map[Entity]*CheckPermission

type Identity interface {
	GetUserID() uint
	GetUsername() string
	IsSuperUser() bool
}

type AuthIdentity interface {
	Err() error
	HasPermission(perms CheckPermissionGroup) AuthIdentity
	Identity() Identity
}

type Authorization interface {
	AuthIdentityFromHeader(header http.Header) AuthIdentity
	AuthIdentityFromToken(token string) AuthIdentity
	HasPermission(identity Identity, perms CheckPermissionGroup) error
}

type AuthenticationError struct {
	Msg string
}

func (e *AuthenticationError) Error() string {
	return "authentication failed: " + e.Msg
}

func (e *AuthenticationError) Kind() pool_core.ErrorKind {
	return pool_core.KindAuthentication
}

type PermissionError struct {
	UserID   uint
	DomainID uint
	EntityID string
	Actions  []Action
}

func (e *PermissionError) Error() string {
	actions := make([]string, 0, len(e.Actions))
	for _, act := range e.Actions {
		actions = append(actions, string(act))
	}

	if e.DomainID == RootDomain {
		return fmt.Sprintf("user %d is not admin, cannot %s %s", e.UserID, strings.Join(actions, ","), e.EntityID)
	}

	return fmt.Sprintf(
		"user %d is not a manager of business %d, cannot %s %s",
		e.UserID,
		e.DomainID,
		strings.Join(actions, ","),
		e.EntityID,
	)
}

func (e *PermissionError) Kind() pool_core.ErrorKind {
	return pool_core.KindAuthorization
}
