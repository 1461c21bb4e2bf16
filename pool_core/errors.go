package pool_core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type ErrorKind string

const (
	KindValidation          ErrorKind = "validation"
	KindAuthentication      ErrorKind = "authentication"
	KindAuthorization       ErrorKind = "authorization"
	KindNotFound            ErrorKind = "not_found"
	KindConflict            ErrorKind = "conflict"
	KindInsufficientBalance ErrorKind = "insufficient_balance"
	KindNoInvestors         ErrorKind = "no_investors"
	KindInternal            ErrorKind = "internal"
)

// KindError is implemented by every error the service reports to clients.
type KindError interface {
	error
	Kind() ErrorKind
}

// KindOf returns the kind of the first KindError in the chain, or KindInternal.
func KindOf(err error) ErrorKind {
	var kerr KindError
	if errors.As(err, &kerr) {
		return kerr.Kind()
	}
	return KindInternal
}

type ValidationError struct {
	Fields []string
	Msg    string
}

func (e *ValidationError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "invalid field: " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Kind() ErrorKind { return KindValidation }

func NewValidationError(msg string, fields ...string) *ValidationError {
	return &ValidationError{
		Fields: fields,
		Msg:    msg,
	}
}

type BusinessInactiveError struct {
	BusinessID uint
}

func (e *BusinessInactiveError) Error() string {
	return fmt.Sprintf("business %d is inactive", e.BusinessID)
}

func (e *BusinessInactiveError) Kind() ErrorKind { return KindValidation }

type NotFoundError struct {
	Entity string
	ID     any
}

func (e *NotFoundError) Error() string {
	if e.ID == nil {
		return e.Entity + " not found"
	}
	return fmt.Sprintf("%s %v not found", e.Entity, e.ID)
}

func (e *NotFoundError) Kind() ErrorKind { return KindNotFound }

type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

func (e *ConflictError) Kind() ErrorKind { return KindConflict }

type InsufficientBalanceError struct {
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf(
		"insufficient balance: requested %s, available %s",
		e.Requested.StringFixed(2),
		e.Available.StringFixed(2),
	)
}

func (e *InsufficientBalanceError) Kind() ErrorKind { return KindInsufficientBalance }

type NoInvestorsError struct {
	BusinessID uint
}

func (e *NoInvestorsError) Error() string {
	return fmt.Sprintf("business %d has no investors", e.BusinessID)
}

func (e *NoInvestorsError) Kind() ErrorKind { return KindNoInvestors }
