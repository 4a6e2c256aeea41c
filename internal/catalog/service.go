package catalog

import (
	"context"

	"github.com/itlabra/xmlcatalog/internal/domain"
	"gorm.io/gorm"
)

// ProductView is the flattened record returned by the catalog API.
type ProductView struct {
	ProductID int64  `json:"ProductID"`
	Name      string `json:"Name"`
	CPU       string `json:"CPU"`
	RAM       string `json:"RAM"`
	Storage   string `json:"Storage"`
}

// Service reads catalog rows and decomposes their Details documents.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// ListProducts returns every catalog row in insertion order with the
// Details document flattened into scalar fields. The first row whose
// document fails to parse aborts the listing.
func (s *Service) ListProducts(ctx context.Context) ([]ProductView, error) {
	var rows []domain.Product
	if err := s.db.WithContext(ctx).Order("product_id").Find(&rows).Error; err != nil {
		return nil, err
	}

	views := make([]ProductView, 0, len(rows))
	for _, row := range rows {
		spec, err := ParseDetails(row.ProductID, row.Details)
		if err != nil {
			return nil, err
		}
		views = append(views, ProductView{
			ProductID: row.ProductID,
			Name:      row.Name,
			CPU:       spec.CPU,
			RAM:       spec.RAM,
			Storage:   spec.Storage,
		})
	}
	return views, nil
}

// Count returns the number of catalog rows.
func (s *Service) Count(ctx context.Context) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&domain.Product{}).Count(&total).Error
	return total, err
}
