// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"

	// Authentication
	KeyAuthRequired      = "auth.required"
	KeyAuthInvalidToken  = "auth.invalid_token"
	KeyAdminAccessDenied = "admin.access_denied"

	// Products
	KeyProductsFetched     = "product.list_fetched"
	KeyProductFetched      = "product.fetched"
	KeyProductCreated      = "product.created"
	KeyProductUpdated      = "product.updated"
	KeyProductDeleted      = "product.deleted"
	KeyProductNotFound     = "product.not_found"
	KeyProductStatusSet    = "product.status_updated"
	KeyProductInvalidState = "product.invalid_status"
	KeyProductSlugTaken    = "product.slug_taken"
	KeyProductSearchResult = "product.search_results"
	KeyProductStats        = "product.stats_fetched"
	KeyProductPictures     = "product.pictures_uploaded"

	// Cart
	KeyCartItemAdded    = "cart.item_added"
	KeyCartItemExists   = "cart.item_exists"
	KeyCartFetched      = "cart.fetched"
	KeyCartItemRemoved  = "cart.item_removed"
	KeyCartItemNotFound = "cart.not_found"

	// Validation
	KeyValidationRequired = "validation.required"
	KeyValidationInvalid  = "validation.invalid"
	KeyInvalidID          = "validation.invalid_id"

	// System
	KeyInternalError = "system.internal_error"
	KeyRateLimited   = "system.rate_limited"
	KeyHealthy       = "system.healthy"
)
