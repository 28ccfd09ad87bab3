// internal/services/product_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/javajoker/catalog-service/internal/database"
	"github.com/javajoker/catalog-service/internal/models"
	"github.com/javajoker/catalog-service/internal/query"
	"github.com/javajoker/catalog-service/internal/utils"
)

type ProductService struct {
	db *gorm.DB
}

type CreateProductRequest struct {
	Title             string          `json:"title" validate:"required,min=3,max=255"`
	Slug              string          `json:"slug" validate:"required,max=255,slug"`
	Price             decimal.Decimal `json:"price"`
	MOQ               int             `json:"moq" validate:"omitempty,min=1"`
	Description       string          `json:"description"`
	CustomDescription datatypes.JSON  `json:"custom_description,omitempty"`
	Pictures          []string        `json:"pictures,omitempty" validate:"omitempty,dive,url"`
	Tags              []string        `json:"tags,omitempty" validate:"omitempty,dive,required,max=100"`
	SKU               string          `json:"sku" validate:"required,max=100"`
	Type              string          `json:"type,omitempty" validate:"max=50"`
	BrandID           uuid.UUID       `json:"brand_id" validate:"required"`
	CategoryIDs       []uuid.UUID     `json:"category_ids,omitempty"`
	RelatedProducts   []uuid.UUID     `json:"related_products,omitempty"`
	IsFeatured        bool            `json:"is_featured"`
	MetaTitle         string          `json:"meta_title" validate:"required,max=255"`
	MetaDescription   string          `json:"meta_description" validate:"required"`
}

// UpdateProductRequest changes only the fields that are set. Status is
// changed through SetStatus.
type UpdateProductRequest struct {
	Title             *string          `json:"title,omitempty" validate:"omitempty,min=3,max=255"`
	Slug              *string          `json:"slug,omitempty" validate:"omitempty,max=255,slug"`
	Price             *decimal.Decimal `json:"price,omitempty"`
	MOQ               *int             `json:"moq,omitempty" validate:"omitempty,min=1"`
	Description       *string          `json:"description,omitempty"`
	CustomDescription datatypes.JSON   `json:"custom_description,omitempty"`
	Pictures          []string         `json:"pictures,omitempty" validate:"omitempty,dive,url"`
	Tags              []string         `json:"tags,omitempty" validate:"omitempty,dive,required,max=100"`
	SKU               *string          `json:"sku,omitempty" validate:"omitempty,max=100"`
	Type              *string          `json:"type,omitempty" validate:"omitempty,max=50"`
	BrandID           *uuid.UUID       `json:"brand_id,omitempty"`
	CategoryIDs       []uuid.UUID      `json:"category_ids,omitempty"`
	RelatedProducts   []uuid.UUID      `json:"related_products,omitempty"`
	IsFeatured        *bool            `json:"is_featured,omitempty"`
	MetaTitle         *string          `json:"meta_title,omitempty" validate:"omitempty,max=255"`
	MetaDescription   *string          `json:"meta_description,omitempty"`
}

// ProductPage is one page of a listing together with the total match count.
type ProductPage struct {
	Products []models.ProductListItem
	Total    int64
	Page     utils.PageRequest
}

func (p *ProductPage) TotalPages() int {
	return p.Page.TotalPages(p.Total)
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

func (s *ProductService) ListProducts(ctx context.Context, filter query.ProductFilter, page utils.PageRequest) (*ProductPage, error) {
	stmts := query.CompileProductList(filter.Predicates(), page.Limit, page.Offset())
	return s.runList(ctx, "list_products", stmts, page)
}

func (s *ProductService) GetProductsByCategory(ctx context.Context, slug string, page utils.PageRequest) (*ProductPage, error) {
	stmts := query.CompileCategoryProducts(slug, page.Limit, page.Offset())
	return s.runList(ctx, "products_by_category", stmts, page)
}

func (s *ProductService) GetProductsByBrand(ctx context.Context, slug string, page utils.PageRequest) (*ProductPage, error) {
	stmts := query.CompileBrandProducts(slug, page.Limit, page.Offset())
	return s.runList(ctx, "products_by_brand", stmts, page)
}

// runList issues the data and count statements concurrently. They are not
// wrapped in one snapshot, so a row committed between them can make the total
// differ from the page contents by that row; the page itself is always a
// consistent result.
func (s *ProductService) runList(ctx context.Context, op string, stmts query.ListStatements, page utils.PageRequest) (*ProductPage, error) {
	var (
		items []models.ProductListItem
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.db.WithContext(gctx).Raw(stmts.Data.SQL, stmts.Data.Args()...).Scan(&items).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).Raw(stmts.Count.SQL, stmts.Count.Args()...).Scan(&total).Error
	})

	if err := g.Wait(); err != nil {
		logStorageError(op, err, logrus.Fields{"page": page.Page, "limit": page.Limit})
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	if items == nil {
		items = []models.ProductListItem{}
	}

	return &ProductPage{Products: items, Total: total, Page: page}, nil
}

func (s *ProductService) GetProductBySlug(ctx context.Context, slug string) (*models.ProductDetail, error) {
	stmt := query.CompileProductDetail(slug)

	var detail models.ProductDetail
	result := s.db.WithContext(ctx).Raw(stmt.SQL, stmt.Args()...).Scan(&detail)
	if result.Error != nil {
		logStorageError("product_by_slug", result.Error, logrus.Fields{"slug": slug})
		return nil, fmt.Errorf("failed to get product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("product %q: %w", slug, ErrNotFound)
	}

	return &detail, nil
}

// SearchProducts returns every product whose title or tags match the term.
// A blank term matches nothing and issues no query.
func (s *ProductService) SearchProducts(ctx context.Context, term string) ([]models.ProductSearchResult, error) {
	results := []models.ProductSearchResult{}

	stmt, ok := query.CompileSearch(term)
	if !ok {
		return results, nil
	}

	if err := s.db.WithContext(ctx).Raw(stmt.SQL, stmt.Args()...).Scan(&results).Error; err != nil {
		logStorageError("search_products", err, logrus.Fields{"term": term})
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	return results, nil
}

// SetStatus overwrites the status of a product. Writing the current status
// again succeeds.
func (s *ProductService) SetStatus(ctx context.Context, id uuid.UUID, status models.ProductStatus) (*models.Product, error) {
	if !status.IsAssignable() {
		return nil, fmt.Errorf("%w: status %q cannot be set, use draft or published", ErrValidation, status)
	}

	var product models.Product
	result := s.db.WithContext(ctx).
		Model(&product).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		logStorageError("set_product_status", result.Error, logrus.Fields{"product_id": id, "status": status})
		return nil, fmt.Errorf("failed to update product status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}

	return &product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Product{})
	if result.Error != nil {
		logStorageError("delete_product", result.Error, logrus.Fields{"product_id": id})
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	return nil
}

func (s *ProductService) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
		}
		logStorageError("product_by_id", err, logrus.Fields{"product_id": id})
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, req *CreateProductRequest) (*models.Product, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}

	product := &models.Product{
		Title:             req.Title,
		Slug:              req.Slug,
		Price:             req.Price,
		MOQ:               req.MOQ,
		Description:       req.Description,
		CustomDescription: req.CustomDescription,
		Pictures:          stringArray(req.Pictures),
		Tags:              stringArray(req.Tags),
		SKU:               req.SKU,
		Type:              req.Type,
		BrandID:           req.BrandID,
		CategoryIDs:       uuidArray(req.CategoryIDs),
		RelatedProducts:   uuidArray(req.RelatedProducts),
		Status:            models.ProductStatusPending,
		IsFeatured:        req.IsFeatured,
		MetaTitle:         req.MetaTitle,
		MetaDescription:   req.MetaDescription,
	}
	if product.MOQ == 0 {
		product.MOQ = 1
	}
	if len(product.CustomDescription) == 0 {
		product.CustomDescription = datatypes.JSON("[]")
	}

	if err := s.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, s.translateWriteError("create_product", err, product.Slug)
	}

	return product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, req *UpdateProductRequest) (*models.Product, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if req.Price != nil && req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}

	var product models.Product
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("product %s: %w", id, ErrNotFound)
			}
			return err
		}

		req.apply(&product)

		return tx.Save(&product).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, s.translateWriteError("update_product", err, product.Slug)
	}

	return &product, nil
}

func (req *UpdateProductRequest) apply(p *models.Product) {
	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Slug != nil {
		p.Slug = *req.Slug
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.MOQ != nil {
		p.MOQ = *req.MOQ
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.CustomDescription != nil {
		p.CustomDescription = req.CustomDescription
	}
	if req.Pictures != nil {
		p.Pictures = stringArray(req.Pictures)
	}
	if req.Tags != nil {
		p.Tags = stringArray(req.Tags)
	}
	if req.SKU != nil {
		p.SKU = *req.SKU
	}
	if req.Type != nil {
		p.Type = *req.Type
	}
	if req.BrandID != nil {
		p.BrandID = *req.BrandID
	}
	if req.CategoryIDs != nil {
		p.CategoryIDs = uuidArray(req.CategoryIDs)
	}
	if req.RelatedProducts != nil {
		p.RelatedProducts = uuidArray(req.RelatedProducts)
	}
	if req.IsFeatured != nil {
		p.IsFeatured = *req.IsFeatured
	}
	if req.MetaTitle != nil {
		p.MetaTitle = *req.MetaTitle
	}
	if req.MetaDescription != nil {
		p.MetaDescription = *req.MetaDescription
	}
}

func (s *ProductService) translateWriteError(op string, err error, slug string) error {
	switch {
	case isUniqueViolation(err):
		return fmt.Errorf("slug %q already exists: %w", slug, ErrConflict)
	case isForeignKeyViolation(err):
		return fmt.Errorf("%w: brand does not exist", ErrValidation)
	}
	logStorageError(op, err, logrus.Fields{"slug": slug})
	return fmt.Errorf("failed to save product: %w", err)
}

// CountByStatus counts products per status, optionally restricted to those
// created in the last 30 days. The per-status counts run concurrently.
func (s *ProductService) CountByStatus(ctx context.Context, last30Days bool) (*models.ProductStatusCounts, error) {
	counts := make([]int64, len(models.ProductStatuses))
	since := time.Now().AddDate(0, 0, -30)

	g, gctx := errgroup.WithContext(ctx)
	for i, status := range models.ProductStatuses {
		i, status := i, status
		g.Go(func() error {
			q := s.db.WithContext(gctx).Model(&models.Product{}).Where("status = ?", string(status))
			if last30Days {
				q = q.Where("created_at >= ?", since)
			}
			return q.Count(&counts[i]).Error
		})
	}

	if err := g.Wait(); err != nil {
		logStorageError("count_products", err, logrus.Fields{"last_30_days": last30Days})
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	result := &models.ProductStatusCounts{}
	for i, status := range models.ProductStatuses {
		switch status {
		case models.ProductStatusPublished:
			result.Published = counts[i]
		case models.ProductStatusDraft:
			result.Draft = counts[i]
		case models.ProductStatusPending:
			result.Pending = counts[i]
		}
		result.Total += counts[i]
	}

	return result, nil
}

// Array columns are written as {} rather than NULL.
func stringArray(values []string) pq.StringArray {
	if values == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(values)
}

func uuidArray(ids []uuid.UUID) pq.StringArray {
	out := make(pq.StringArray, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
