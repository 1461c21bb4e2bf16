package pool_core

import (
	"context"
	"errors"
	"fmt"

	"github.com/pdcgo/pool_service/pool_model"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookManage interface {
	NewAudit() CreateAudit
	NewDistribution(kind DistributionKind) Distribution
	LockBusiness(businessID uint, mustActive bool) (*pool_model.Business, error)
	Audits() []*pool_model.Transaction
}

type bookManageImpl struct {
	tx     *gorm.DB
	audits []*pool_model.Transaction
}

// Audits implements BookManage.
func (h *bookManageImpl) Audits() []*pool_model.Transaction {
	return h.audits
}

// NewAudit implements BookManage.
func (h *bookManageImpl) NewAudit() CreateAudit {
	return &createAuditImpl{
		tx:          h.tx,
		data:        &pool_model.Transaction{},
		afterCommit: h.afterAuditCommit,
	}
}

// NewDistribution implements BookManage.
func (h *bookManageImpl) NewDistribution(kind DistributionKind) Distribution {
	return &distributionImpl{
		kind:   kind,
		tx:     h.tx,
		bookmg: h,
	}
}

// LockBusiness implements BookManage.
func (h *bookManageImpl) LockBusiness(businessID uint, mustActive bool) (*pool_model.Business, error) {
	return LockBusiness(h.tx, businessID, mustActive)
}

func (h *bookManageImpl) afterAuditCommit(data *pool_model.Transaction) {
	h.audits = append(h.audits, data)
}

// LockBusiness loads the business row with FOR UPDATE.
func LockBusiness(tx *gorm.DB, businessID uint, mustActive bool) (*pool_model.Business, error) {
	var biz pool_model.Business
	err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Model(&pool_model.Business{}).
		Where("id = ?", businessID).
		First(&biz).
		Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "business", ID: businessID}
		}
		return nil, err
	}

	if mustActive && !biz.Active {
		return nil, &BusinessInactiveError{BusinessID: biz.ID}
	}

	return &biz, nil
}

var ErrSkipTransaction = errors.New("skip transaction")

// OpenTransaction runs handle inside a store transaction. Every mutation must
// leave at least one audit row, otherwise the transaction is rolled back.
func OpenTransaction(ctx context.Context, db *gorm.DB, handle func(tx *gorm.DB, bookmng BookManage) error) error {
	ctx, span := otel.Tracer("pool_core").Start(ctx, "pool_core.OpenTransaction")
	defer span.End()

	var audits int
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		hdlr := bookManageImpl{
			tx: tx,
		}

		err := handle(tx, &hdlr)
		if err != nil {
			return err
		}

		audits = len(hdlr.audits)
		if len(hdlr.audits) == 0 {
			return errors.New("audit empty in ending transaction")
		}

		for _, audit := range hdlr.audits {
			if audit.ID == 0 {
				return fmt.Errorf("theres audit not save desc %s", audit.Desc)
			}
		}

		return nil
	})

	if errors.Is(err, ErrSkipTransaction) {
		span.SetAttributes(attribute.Bool("pool.skipped", true))
		return nil
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("pool.audits", audits))
	return nil
}
