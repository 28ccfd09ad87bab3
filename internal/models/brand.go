// internal/models/brand.go
package models

type Brand struct {
	BaseModel
	Name string `json:"name" gorm:"size:255;not null"`
	Slug string `json:"slug" gorm:"type:text;not null;uniqueIndex"`
}

// BrandPreview is the brand sub-record embedded in product views.
type BrandPreview struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
