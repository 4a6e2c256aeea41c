package app

import (
	"github.com/itlabra/xmlcatalog/internal/domain"
	"go.uber.org/zap"
)

// checkProducts seeds the catalog with the two sample rows on first
// run. The check is by row count, so running it on every startup
// never duplicates data.
func (a *Application) checkProducts() {
	var count int64
	if err := a.gormDB.Model(&domain.Product{}).Count(&count).Error; err != nil {
		zap.S().Fatalf("failed to count products: %v", err)
	}
	if count > 0 {
		return
	}

	seedProducts := []domain.Product{
		{
			Name: "Laptop",
			Details: `<?xml version="1.0"?><product><brand>XYZ</brand><specs>` +
				`<cpu>Intel i7</cpu><ram>16GB</ram><storage>512GB SSD</storage></specs></product>`,
		},
		{
			Name: "Smartphone",
			Details: `<?xml version="1.0"?><product><brand>ABC</brand><specs>` +
				`<cpu>Snapdragon 888</cpu><ram>8GB</ram><storage>256GB</storage></specs></product>`,
		},
	}

	for _, p := range seedProducts {
		if err := a.gormDB.Create(&p).Error; err != nil {
			zap.S().Fatalf("failed to create seed product %s: %v", p.Name, err)
		}
		zap.L().Info("initialized seed product", zap.String("name", p.Name))
	}
}
