package db_connect_test

import (
	"path/filepath"
	"testing"

	"github.com/pdcgo/pool_service/configs"
	"github.com/pdcgo/pool_service/db_connect"
	"github.com/pdcgo/pool_service/pool_iface"
	"github.com/pdcgo/pool_service/pool_model"
	"github.com/stretchr/testify/assert"
)

func TestNewProductionDatabase(t *testing.T) {
	t.Run("unknown driver", func(t *testing.T) {
		_, err := db_connect.NewProductionDatabase("pool", &configs.DatabaseConfig{Driver: "oracle"})
		assert.NotNil(t, err)
	})

	t.Run("sqlite file with pagination", func(t *testing.T) {
		db, err := db_connect.NewProductionDatabase("pool", &configs.DatabaseConfig{
			Driver: "sqlite",
			DSN:    filepath.Join(t.TempDir(), "pool.db"),
		})
		assert.Nil(t, err)

		err = db.AutoMigrate(&pool_model.Business{})
		assert.Nil(t, err)

		for i := 0; i < 5; i++ {
			err = db.Create(&pool_model.Business{Name: "shop", Active: true}).Error
			assert.Nil(t, err)
		}

		filter := pool_iface.PageFilter{Page: 2, Limit: 2}
		query, info, err := db_connect.SetPaginationQuery(db.Model(&pool_model.Business{}), &filter)
		assert.Nil(t, err)
		assert.Equal(t, int64(5), info.TotalItem)
		assert.Equal(t, int64(3), info.TotalPage)

		items := []*pool_model.Business{}
		err = query.Order("id asc").Find(&items).Error
		assert.Nil(t, err)
		assert.Len(t, items, 2)
		assert.Equal(t, uint(3), items[0].ID)
	})
}
