// internal/services/cart_service.go
package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/javajoker/catalog-service/internal/models"
	"github.com/javajoker/catalog-service/internal/utils"
)

type CartService struct {
	db *gorm.DB
}

type AddToCartRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db}
}

// AddToCart stores a new cart entry. A product already in the user's cart is
// a conflict; the lookup only answers early, the (user_id, product_id)
// unique index decides concurrent inserts.
func (s *CartService) AddToCart(ctx context.Context, userID uuid.UUID, req *AddToCartRequest) (*models.CartEntry, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	db := s.db.WithContext(ctx)
	fields := logrus.Fields{"user_id": userID, "product_id": req.ProductID}

	var existing []models.CartEntry
	if err := db.Where("user_id = ? AND product_id = ?", userID, req.ProductID).Limit(1).Find(&existing).Error; err != nil {
		logStorageError("cart_lookup", err, fields)
		return nil, fmt.Errorf("failed to check cart: %w", err)
	}
	if len(existing) > 0 {
		return nil, fmt.Errorf("product %s already in cart: %w", req.ProductID, ErrConflict)
	}

	entry := &models.CartEntry{
		UserID:    userID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	}

	if err := db.Create(entry).Error; err != nil {
		switch {
		case isUniqueViolation(err):
			return nil, fmt.Errorf("product %s already in cart: %w", req.ProductID, ErrConflict)
		case isForeignKeyViolation(err):
			return nil, fmt.Errorf("product %s: %w", req.ProductID, ErrNotFound)
		}
		logStorageError("cart_create", err, fields)
		return nil, fmt.Errorf("failed to add to cart: %w", err)
	}

	logrus.WithFields(fields).Info("Cart entry created")
	return entry, nil
}

// GetCart lists the user's cart entries joined with product preview fields
// and the brand name, newest first.
func (s *CartService) GetCart(ctx context.Context, userID uuid.UUID) ([]models.CartItemView, error) {
	items := []models.CartItemView{}

	err := s.db.WithContext(ctx).
		Table("cart crt").
		Select("crt.id, crt.user_id, crt.product_id, crt.quantity, crt.created_at, crt.updated_at, " +
			"prd.title, prd.description, prd.pictures, prd.moq, COALESCE(brd.name, '') AS brand").
		Joins("JOIN products prd ON prd.id = crt.product_id").
		Joins("LEFT JOIN brands brd ON brd.id = prd.brand_id").
		Where("crt.user_id = ?", userID).
		Order("crt.created_at DESC").
		Scan(&items).Error
	if err != nil {
		logStorageError("cart_list", err, logrus.Fields{"user_id": userID})
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	return items, nil
}

// RemoveFromCart deletes one of the user's cart entries and returns it as it
// was before removal.
func (s *CartService) RemoveFromCart(ctx context.Context, userID, entryID uuid.UUID) (*models.CartEntry, error) {
	var removed models.CartEntry
	result := s.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&removed)
	if result.Error != nil {
		logStorageError("cart_delete", result.Error, logrus.Fields{"user_id": userID, "cart_id": entryID})
		return nil, fmt.Errorf("failed to remove from cart: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("cart entry %s: %w", entryID, ErrNotFound)
	}

	return &removed, nil
}
