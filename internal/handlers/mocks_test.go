package handlers_test

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/javajoker/catalog-service/internal/models"
	"github.com/javajoker/catalog-service/internal/query"
	"github.com/javajoker/catalog-service/internal/services"
	"github.com/javajoker/catalog-service/internal/utils"
)

type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) ListProducts(ctx context.Context, filter query.ProductFilter, page utils.PageRequest) (*services.ProductPage, error) {
	args := m.Called(ctx, filter, page)
	return productPage(args.Get(0)), args.Error(1)
}

func (m *mockCatalog) GetProductsByCategory(ctx context.Context, slug string, page utils.PageRequest) (*services.ProductPage, error) {
	args := m.Called(ctx, slug, page)
	return productPage(args.Get(0)), args.Error(1)
}

func (m *mockCatalog) GetProductsByBrand(ctx context.Context, slug string, page utils.PageRequest) (*services.ProductPage, error) {
	args := m.Called(ctx, slug, page)
	return productPage(args.Get(0)), args.Error(1)
}

func (m *mockCatalog) GetProductBySlug(ctx context.Context, slug string) (*models.ProductDetail, error) {
	args := m.Called(ctx, slug)
	if v := args.Get(0); v != nil {
		return v.(*models.ProductDetail), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalog) SearchProducts(ctx context.Context, term string) ([]models.ProductSearchResult, error) {
	args := m.Called(ctx, term)
	if v := args.Get(0); v != nil {
		return v.([]models.ProductSearchResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalog) SetStatus(ctx context.Context, id uuid.UUID, status models.ProductStatus) (*models.Product, error) {
	args := m.Called(ctx, id, status)
	return product(args.Get(0)), args.Error(1)
}

func (m *mockCatalog) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCatalog) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	args := m.Called(ctx, id)
	return product(args.Get(0)), args.Error(1)
}

func (m *mockCatalog) CreateProduct(ctx context.Context, req *services.CreateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, req)
	return product(args.Get(0)), args.Error(1)
}

func (m *mockCatalog) UpdateProduct(ctx context.Context, id uuid.UUID, req *services.UpdateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, id, req)
	return product(args.Get(0)), args.Error(1)
}

func (m *mockCatalog) CountByStatus(ctx context.Context, last30Days bool) (*models.ProductStatusCounts, error) {
	args := m.Called(ctx, last30Days)
	if v := args.Get(0); v != nil {
		return v.(*models.ProductStatusCounts), args.Error(1)
	}
	return nil, args.Error(1)
}

func productPage(v interface{}) *services.ProductPage {
	if v == nil {
		return nil
	}
	return v.(*services.ProductPage)
}

func product(v interface{}) *models.Product {
	if v == nil {
		return nil
	}
	return v.(*models.Product)
}

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) UploadProductPictures(ctx context.Context, headers []*multipart.FileHeader) ([]services.UploadResult, error) {
	args := m.Called(ctx, len(headers))
	if v := args.Get(0); v != nil {
		return v.([]services.UploadResult), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCart struct {
	mock.Mock
}

func (m *mockCart) AddToCart(ctx context.Context, userID uuid.UUID, req *services.AddToCartRequest) (*models.CartEntry, error) {
	args := m.Called(ctx, userID, req)
	if v := args.Get(0); v != nil {
		return v.(*models.CartEntry), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCart) GetCart(ctx context.Context, userID uuid.UUID) ([]models.CartItemView, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.([]models.CartItemView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCart) RemoveFromCart(ctx context.Context, userID, entryID uuid.UUID) (*models.CartEntry, error) {
	args := m.Called(ctx, userID, entryID)
	if v := args.Get(0); v != nil {
		return v.(*models.CartEntry), args.Error(1)
	}
	return nil, args.Error(1)
}
