// internal/models/cart.go
package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// CartEntry is one product in a user's cart. The (user_id, product_id) unique
// index is the authoritative duplicate guard.
type CartEntry struct {
	BaseModel
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product,priority:1"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product,priority:2"`
	Quantity  int       `json:"quantity" gorm:"not null;check:chk_cart_quantity,quantity >= 1"`

	// Relationships
	Product *Product `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (CartEntry) TableName() string {
	return "cart"
}

// CartItemView is a cart entry joined with its product preview and brand name.
type CartItemView struct {
	CartEntry
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Pictures    pq.StringArray `json:"pictures"`
	MOQ         int            `json:"moq" gorm:"column:moq"`
	Brand       string         `json:"brand"`
}
