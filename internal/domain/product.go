package domain

// Product is a catalog row whose Details column holds a small XML
// document describing the hardware specs.
type Product struct {
	ProductID int64  `gorm:"column:product_id;primaryKey;autoIncrement" json:"ProductID"`
	Name      string `gorm:"size:100" json:"Name"`
	Details   string `gorm:"type:xml" json:"Details"`
}

// TableName Specify table name
func (Product) TableName() string {
	return "products"
}
