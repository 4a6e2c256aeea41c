package app

import (
	"path/filepath"
	"testing"

	"github.com/itlabra/xmlcatalog/config"
	"github.com/itlabra/xmlcatalog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestApplication(t *testing.T) *Application {
	t.Helper()
	dbfile := filepath.Join(t.TempDir(), "app.db")
	db, err := gorm.Open(sqlite.Open(dbfile), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	a := NewApplication(config.DefaultAppConfig)
	a.OverrideDB(db)
	require.NoError(t, a.MigrateDB(false))
	return a
}

func TestCheckProducts_SeedsTwoRows(t *testing.T) {
	a := newTestApplication(t)
	a.checkProducts()

	var rows []domain.Product
	require.NoError(t, a.DB().Order("product_id").Find(&rows).Error)
	require.Len(t, rows, 2)

	assert.Equal(t, "Laptop", rows[0].Name)
	assert.Contains(t, rows[0].Details, "<cpu>Intel i7</cpu>")
	assert.Equal(t, "Smartphone", rows[1].Name)
	assert.Contains(t, rows[1].Details, "<storage>256GB</storage>")
}

func TestCheckProducts_Idempotent(t *testing.T) {
	a := newTestApplication(t)
	a.checkProducts()
	a.checkProducts()

	var count int64
	require.NoError(t, a.DB().Model(&domain.Product{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestMigrateDB_Repeatable(t *testing.T) {
	a := newTestApplication(t)
	// AutoMigrate on an existing schema must be a no-op
	require.NoError(t, a.MigrateDB(false))
}
