// internal/models/category.go
package models

type Category struct {
	BaseModel
	Name  string `json:"name" gorm:"size:255;not null"`
	Slug  string `json:"slug" gorm:"type:text;not null;uniqueIndex"`
	Image string `json:"image" gorm:"type:text"`
}

// CategoryPreview is the category sub-record embedded in product views.
type CategoryPreview struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Image string `json:"image,omitempty"`
}
