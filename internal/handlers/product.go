// internal/handlers/product.go
package handlers

import (
	"context"
	"mime/multipart"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/javajoker/catalog-service/internal/config"
	"github.com/javajoker/catalog-service/internal/i18n"
	"github.com/javajoker/catalog-service/internal/models"
	"github.com/javajoker/catalog-service/internal/query"
	"github.com/javajoker/catalog-service/internal/services"
	"github.com/javajoker/catalog-service/internal/utils"
)

// ProductCatalog is the catalog behaviour the product handler depends on.
type ProductCatalog interface {
	ListProducts(ctx context.Context, filter query.ProductFilter, page utils.PageRequest) (*services.ProductPage, error)
	GetProductsByCategory(ctx context.Context, slug string, page utils.PageRequest) (*services.ProductPage, error)
	GetProductsByBrand(ctx context.Context, slug string, page utils.PageRequest) (*services.ProductPage, error)
	GetProductBySlug(ctx context.Context, slug string) (*models.ProductDetail, error)
	SearchProducts(ctx context.Context, term string) ([]models.ProductSearchResult, error)
	SetStatus(ctx context.Context, id uuid.UUID, status models.ProductStatus) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	CreateProduct(ctx context.Context, req *services.CreateProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req *services.UpdateProductRequest) (*models.Product, error)
	CountByStatus(ctx context.Context, last30Days bool) (*models.ProductStatusCounts, error)
}

// PictureStorage stores uploaded product pictures.
type PictureStorage interface {
	UploadProductPictures(ctx context.Context, headers []*multipart.FileHeader) ([]services.UploadResult, error)
}

type ProductHandler struct {
	productService ProductCatalog
	storageService PictureStorage
	limits         config.CatalogConfig
}

func NewProductHandler(productService ProductCatalog, storageService PictureStorage, limits config.CatalogConfig) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		storageService: storageService,
		limits:         limits,
	}
}

type listProductsQuery struct {
	Type       string `form:"type"`
	Featured   string `form:"featured"`
	Categories string `form:"categories"`
	Brands     string `form:"brands"`
	Page       string `form:"page"`
	Limit      string `form:"limit"`
}

func (q listProductsQuery) filter() query.ProductFilter {
	return query.ParseProductFilter(map[string]string{
		query.KeyType:       q.Type,
		query.KeyFeatured:   q.Featured,
		query.KeyCategories: q.Categories,
		query.KeyBrands:     q.Brands,
	})
}

type setStatusRequest struct {
	Status string `json:"status" validate:"required,product_status"`
}

// GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	var q listProductsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	page := utils.NewPageRequest(q.Page, q.Limit, h.limits)
	result, err := h.productService.ListProducts(c.Request.Context(), q.filter(), page)
	if err != nil {
		respondError(c, err, "product")
		return
	}

	utils.PaginatedResponse(c, i18n.T(utils.GetLangFromContext(c), i18n.KeyProductsFetched),
		utils.CreatePaginationResult(result.Products, result.Total, page))
}

// GET /products/category/:slug
func (h *ProductHandler) GetProductsByCategory(c *gin.Context) {
	page := utils.GetPageRequest(c, h.limits)
	result, err := h.productService.GetProductsByCategory(c.Request.Context(), c.Param("slug"), page)
	if err != nil {
		respondError(c, err, "product")
		return
	}
	h.respondProductPage(c, result)
}

// GET /products/brand/:slug
func (h *ProductHandler) GetProductsByBrand(c *gin.Context) {
	page := utils.GetPageRequest(c, h.limits)
	result, err := h.productService.GetProductsByBrand(c.Request.Context(), c.Param("slug"), page)
	if err != nil {
		respondError(c, err, "product")
		return
	}
	h.respondProductPage(c, result)
}

func (h *ProductHandler) respondProductPage(c *gin.Context, result *services.ProductPage) {
	utils.SetPaginationHeaders(c, utils.CreatePaginationResult(nil, result.Total, result.Page))
	utils.SuccessResponse(c, i18n.T(utils.GetLangFromContext(c), i18n.KeyProductsFetched), gin.H{
		"products":   result.Products,
		"total_page": result.TotalPages(),
		"page":       result.Page.Page,
	})
}

// GET /products/search
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	results, err := h.productService.SearchProducts(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err, "product")
		return
	}

	// Search results are not paginated.
	c.Header("X-Result-Unbounded", "true")
	utils.SuccessResponse(c, i18n.T(utils.GetLangFromContext(c), i18n.KeyProductSearchResult), results)
}

// GET /products/:slug
func (h *ProductHandler) GetProductBySlug(c *gin.Context) {
	product, err := h.productService.GetProductBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err, "product")
		return
	}

	utils.SuccessResponse(c, i18n.T(utils.GetLangFromContext(c), i18n.KeyProductFetched), product)
}

// GET /products/id/:id
func (h *ProductHandler) GetProductByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "product")
	if !ok {
		return
	}

	product, err := h.productService.GetProductByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "product")
		return
	}

	utils.SuccessResponse(c, i18n.T(utils.GetLangFromContext(c), i18n.KeyProductFetched), product)
}

// GET /products/stats
func (h *ProductHandler) GetStatusCounts(c *gin.Context) {
	_, last30Days := c.GetQuery("last_30_days")

	counts, err := h.productService.CountByStatus(c.Request.Context(), last30Days)
	if err != nil {
		respondError(c, err, "product")
		return
	}

	utils.SuccessResponse(c, i18n.T(utils.GetLangFromContext(c), i18n.KeyProductStats), counts)
}

// POST /products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req services.CreateProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "product")
		return
	}

	utils.CreatedResponse(c, i18n.T(utils.GetLangFromContext(c), i18n.KeyProductCreated), product)
}

// PUT /products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "product")
	if !ok {
		return
	}

	var req services.UpdateProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "product")
		return
	}

	utils.SuccessResponse(c, i18n.T(utils.GetLangFromContext(c), i18n.KeyProductUpdated), product)
}

// PATCH /products/:id/status
func (h *ProductHandler) SetStatus(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, ok := parseUUIDParam(c, "id", "product")
	if !ok {
		return
	}

	var req setStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyProductInvalidState), utils.GetValidationErrors(err))
		return
	}

	product, err := h.productService.SetStatus(c.Request.Context(), id, models.ProductStatus(req.Status))
	if err != nil {
		respondError(c, err, "product")
		return
	}

	utils.SuccessResponse(c, i18n.T(lang, i18n.KeyProductStatusSet, req.Status), product)
}

// DELETE /products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "product")
	if !ok {
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, err, "product")
		return
	}

	utils.SuccessResponse(c, i18n.T(utils.GetLangFromContext(c), i18n.KeyProductDeleted), gin.H{"id": id})
}

// POST /products/pictures
func (h *ProductHandler) UploadPictures(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	form, err := c.MultipartForm()
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "form"), err.Error())
		return
	}

	files := form.File["pictures"]
	if len(files) == 0 {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationRequired, "pictures"), nil)
		return
	}

	results, err := h.storageService.UploadProductPictures(c.Request.Context(), files)
	if err != nil {
		respondError(c, err, "product")
		return
	}

	utils.CreatedResponse(c, i18n.T(lang, i18n.KeyProductPictures), results)
}
