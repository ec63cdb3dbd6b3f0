package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"github.com/sangkips/trademarket/internal/config"
	"github.com/sangkips/trademarket/internal/domain/entity"
)

func TestOpenSQLiteAndMigrate(t *testing.T) {
	db, err := Open(&config.DatabaseConfig{Driver: "sqlite", Path: "file::memory:"}, logger.Silent)
	require.NoError(t, err)

	require.NoError(t, AutoMigrate(db))

	for _, model := range []interface{}{
		&entity.Person{}, &entity.Customer{}, &entity.ProductCategory{},
		&entity.Product{}, &entity.Receipt{}, &entity.ReceiptDetail{},
	} {
		assert.True(t, db.Migrator().HasTable(model))
	}
	assert.True(t, db.Migrator().HasIndex(&entity.ReceiptDetail{}, "idx_receipt_product"))
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(&config.DatabaseConfig{Driver: "oracle"}, logger.Silent)
	assert.ErrorContains(t, err, "unsupported database driver")
}
