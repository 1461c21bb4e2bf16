package pool_mock

import (
	"testing"
	"time"

	"github.com/pdcgo/pool_service/pool_model"
	"github.com/pdcgo/shared/pkg/moretest"
	"github.com/shopspring/decimal"
	"github.com/zeebo/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const DefaultPassword = "secret-pass"

func Migrate(db *gorm.DB) moretest.SetupFunc {
	return func(t *testing.T) func() error {
		err := db.AutoMigrate(pool_model.AllTables()...)
		assert.NoError(t, err)

		return nil
	}
}

func Money(raw string) decimal.Decimal {
	return decimal.RequireFromString(raw)
}

// PopulateUser creates the user once and fills user with the stored row.
func PopulateUser(db *gorm.DB, user *pool_model.User) moretest.SetupFunc {
	return func(t *testing.T) func() error {
		hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
		assert.NoError(t, err)

		if user.Role == "" {
			user.Role = pool_model.MemberRole
		}
		user.PasswordHash = string(hash)
		user.CreatedAt = time.Now()

		err = db.Create(user).Error
		assert.NoError(t, err)

		return nil
	}
}

func PopulateBusiness(db *gorm.DB, biz *pool_model.Business) moretest.SetupFunc {
	return func(t *testing.T) func() error {
		if biz.Icon == "" {
			biz.Icon = "B"
		}
		biz.TotalInvested = decimal.Zero
		biz.CreatedAt = time.Now()

		err := db.Create(biz).Error
		assert.NoError(t, err)

		return nil
	}
}

// PopulateInvestment stores the investment and keeps the business total in step.
func PopulateInvestment(db *gorm.DB, userID, businessID uint, amount string) moretest.SetupFunc {
	return func(t *testing.T) func() error {
		inv := pool_model.Investment{
			UserID:     userID,
			BusinessID: businessID,
			Amount:     Money(amount),
			CreatedAt:  time.Now(),
		}

		err := db.Create(&inv).Error
		assert.NoError(t, err)

		var biz pool_model.Business
		err = db.First(&biz, businessID).Error
		assert.NoError(t, err)

		err = db.
			Model(&pool_model.Business{}).
			Where("id = ?", businessID).
			Update("total_invested", biz.TotalInvested.Add(inv.Amount)).
			Error
		assert.NoError(t, err)

		return nil
	}
}

func PopulateManager(db *gorm.DB, userID, businessID uint) moretest.SetupFunc {
	return func(t *testing.T) func() error {
		err := db.Create(&pool_model.BusinessManager{
			BusinessID: businessID,
			UserID:     userID,
			CreatedAt:  time.Now(),
		}).Error
		assert.NoError(t, err)

		return nil
	}
}
