// internal/models/product.go
package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Product struct {
	BaseModel
	Title             string          `json:"title" gorm:"size:255;not null"`
	Slug              string          `json:"slug" gorm:"type:text;not null;uniqueIndex"`
	Price             decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null;check:chk_products_price,price >= 0"`
	MOQ               int             `json:"moq" gorm:"column:moq;not null;default:1;check:chk_products_moq,moq >= 1"`
	Description       string          `json:"description" gorm:"type:text"`
	CustomDescription datatypes.JSON  `json:"custom_description" gorm:"type:jsonb;default:'[]'"`
	Pictures          pq.StringArray  `json:"pictures" gorm:"type:text[]"`
	Tags              pq.StringArray  `json:"tags" gorm:"type:text[]"`
	SKU               string          `json:"sku" gorm:"column:sku;size:100;not null"`
	Type              string          `json:"type" gorm:"size:50;index"`
	BrandID           uuid.UUID       `json:"brand_id" gorm:"type:uuid;not null;index"`
	CategoryIDs       pq.StringArray  `json:"category_ids" gorm:"column:category_ids;type:uuid[]"`
	Status            ProductStatus   `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	IsFeatured        bool            `json:"is_featured" gorm:"default:false"`
	RelatedProducts   pq.StringArray  `json:"related_products" gorm:"type:uuid[]"`
	MetaTitle         string          `json:"meta_title" gorm:"size:255;not null"`
	MetaDescription   string          `json:"meta_description" gorm:"type:text;not null"`

	// Relationships
	Brand *Brand `json:"-" gorm:"foreignKey:BrandID;constraint:OnDelete:CASCADE"`
}

// ProductListItem is one row of a paginated listing: the product with its
// categories folded into an array and the owning brand flattened.
type ProductListItem struct {
	ID         uuid.UUID                  `json:"id"`
	Title      string                     `json:"title"`
	Slug       string                     `json:"slug"`
	Pictures   pq.StringArray             `json:"pictures"`
	Price      decimal.Decimal            `json:"price"`
	MOQ        int                        `json:"moq" gorm:"column:moq"`
	Status     ProductStatus              `json:"status"`
	IsFeatured bool                       `json:"is_featured"`
	CreatedAt  time.Time                  `json:"created_at"`
	Categories JSONArray[CategoryPreview] `json:"categories"`
	Brand      string                     `json:"brand"`
	BrandSlug  string                     `json:"brand_slug"`
}

// ProductDetail is the aggregated single-product view served by slug.
type ProductDetail struct {
	ID                uuid.UUID                        `json:"id"`
	Title             string                           `json:"title"`
	Slug              string                           `json:"slug"`
	Description       string                           `json:"description"`
	CustomDescription datatypes.JSON                   `json:"custom_description"`
	Pictures          pq.StringArray                   `json:"pictures"`
	Tags              pq.StringArray                   `json:"tags"`
	SKU               string                           `json:"sku" gorm:"column:sku"`
	Price             decimal.Decimal                  `json:"price"`
	MOQ               int                              `json:"moq" gorm:"column:moq"`
	Status            ProductStatus                    `json:"status"`
	IsFeatured        bool                             `json:"is_featured"`
	MetaTitle         string                           `json:"meta_title"`
	MetaDescription   string                           `json:"meta_description"`
	Categories        JSONArray[CategoryPreview]       `json:"categories"`
	RelatedProducts   JSONArray[RelatedProductPreview] `json:"related_products"`
	Brand             JSONArray[BrandPreview]          `json:"brand"`
}

// RelatedProductPreview is the catalog preview of a related product.
type RelatedProductPreview struct {
	ID                string          `json:"id"`
	Title             string          `json:"title"`
	Slug              string          `json:"slug"`
	Description       string          `json:"description"`
	CustomDescription json.RawMessage `json:"custom_description,omitempty"`
	Pictures          []string        `json:"pictures"`
	Tags              []string        `json:"tags"`
	SKU               string          `json:"sku"`
}

// ProductSearchResult is the minimal projection returned by free-text search.
type ProductSearchResult struct {
	ID       uuid.UUID      `json:"id"`
	Title    string         `json:"title"`
	Pictures pq.StringArray `json:"pictures"`
	Slug     string         `json:"slug"`
	Tags     pq.StringArray `json:"tags"`
}

// ProductStatusCounts is the number of products per status.
type ProductStatusCounts struct {
	Published int64 `json:"published"`
	Draft     int64 `json:"draft"`
	Pending   int64 `json:"pending"`
	Total     int64 `json:"total"`
}
