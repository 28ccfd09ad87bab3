// internal/models/common.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Base model with common fields. Catalog rows are hard-deleted, so there is no DeletedAt.
type BaseModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Enums
type ProductStatus string

const (
	ProductStatusPending   ProductStatus = "pending"
	ProductStatusDraft     ProductStatus = "draft"
	ProductStatusPublished ProductStatus = "published"
)

// ProductStatuses lists every status in the order status counts are reported.
var ProductStatuses = []ProductStatus{
	ProductStatusPublished,
	ProductStatusDraft,
	ProductStatusPending,
}

// IsAssignable reports whether s may be written by the status-change operation.
// pending is only ever an initial state.
func (s ProductStatus) IsAssignable() bool {
	return s == ProductStatusDraft || s == ProductStatusPublished
}
