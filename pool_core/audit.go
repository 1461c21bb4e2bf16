package pool_core

import (
	"errors"
	"fmt"
	"time"

	"github.com/pdcgo/pool_service/pool_model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CreateAudit interface {
	Type(ttype pool_model.TransactionType) CreateAudit
	Business(businessID uint) CreateAudit
	User(userID uint) CreateAudit
	Actor(userID uint) CreateAudit
	Amount(amount decimal.Decimal) CreateAudit
	Desc(format string, args ...any) CreateAudit
	Commit() CreateAudit
	Data() *pool_model.Transaction
	Err() error
}

type createAuditImpl struct {
	tx          *gorm.DB
	data        *pool_model.Transaction
	afterCommit func(data *pool_model.Transaction)
	err         error
}

// Amount implements CreateAudit.
func (c *createAuditImpl) Amount(amount decimal.Decimal) CreateAudit {
	c.data.Amount = RoundMoney(amount)
	return c
}

// Business implements CreateAudit.
func (c *createAuditImpl) Business(businessID uint) CreateAudit {
	c.data.BusinessID = &businessID
	return c
}

// User implements CreateAudit.
func (c *createAuditImpl) User(userID uint) CreateAudit {
	c.data.UserID = &userID
	return c
}

// Actor implements CreateAudit.
func (c *createAuditImpl) Actor(userID uint) CreateAudit {
	c.data.ActorID = &userID
	return c
}

// Desc implements CreateAudit.
func (c *createAuditImpl) Desc(format string, args ...any) CreateAudit {
	c.data.Desc = fmt.Sprintf(format, args...)
	return c
}

// Type implements CreateAudit.
func (c *createAuditImpl) Type(ttype pool_model.TransactionType) CreateAudit {
	c.data.Type = ttype
	return c
}

// Commit implements CreateAudit.
func (c *createAuditImpl) Commit() CreateAudit {
	if c.err != nil {
		return c
	}

	if c.data.Type == "" {
		return c.setErr(errors.New("audit type empty"))
	}

	if c.data.ID != 0 {
		return c.setErr(errors.New("audit already committed"))
	}

	c.data.CreatedAt = time.Now()
	err := c.tx.Create(c.data).Error
	if err != nil {
		return c.setErr(err)
	}

	if c.afterCommit != nil {
		c.afterCommit(c.data)
	}

	return c
}

// Data implements CreateAudit.
func (c *createAuditImpl) Data() *pool_model.Transaction {
	return c.data
}

// Err implements CreateAudit.
func (c *createAuditImpl) Err() error {
	return c.err
}

func (c *createAuditImpl) setErr(err error) *createAuditImpl {
	if c.err != nil {
		return c
	}

	if err != nil {
		c.err = err
	}

	return c
}
