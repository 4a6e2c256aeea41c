package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/itlabra/xmlcatalog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dbfile := filepath.Join(t.TempDir(), "catalog.db")
	db, err := gorm.Open(sqlite.Open(dbfile), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrator().AutoMigrate(domain.Tables...))
	return db
}

func TestListProducts(t *testing.T) {
	db := newTestDB(t)
	rows := []domain.Product{
		{Name: "Laptop", Details: laptopDetails},
		{Name: "Smartphone", Details: `<?xml version="1.0"?><product><brand>ABC</brand><specs>` +
			`<cpu>Snapdragon 888</cpu><ram>8GB</ram><storage>256GB</storage></specs></product>`},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}

	views, err := NewService(db).ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Equal(t, ProductView{
		ProductID: 1,
		Name:      "Laptop",
		CPU:       "Intel i7",
		RAM:       "16GB",
		Storage:   "512GB SSD",
	}, views[0])
	assert.Equal(t, ProductView{
		ProductID: 2,
		Name:      "Smartphone",
		CPU:       "Snapdragon 888",
		RAM:       "8GB",
		Storage:   "256GB",
	}, views[1])
}

func TestListProducts_EmptyTable(t *testing.T) {
	db := newTestDB(t)
	views, err := NewService(db).ListProducts(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, views)
	assert.Len(t, views, 0)
}

func TestListProducts_BadDetailsFailsWhole(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&domain.Product{Name: "Laptop", Details: laptopDetails}).Error)
	require.NoError(t, db.Create(&domain.Product{
		Name:    "Broken",
		Details: `<?xml version="1.0"?><product><brand>XYZ</brand></product>`,
	}).Error)

	views, err := NewService(db).ListProducts(context.Background())
	require.Error(t, err)
	assert.Nil(t, views)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, int64(2), perr.ProductID)
}

func TestCount(t *testing.T) {
	db := newTestDB(t)
	total, err := NewService(db).Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)

	require.NoError(t, db.Create(&domain.Product{Name: "Laptop", Details: laptopDetails}).Error)
	total, err = NewService(db).Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}
