// internal/utils/pagination.go
package utils

import (
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/catalog-service/internal/config"
)

// PageRequest is a validated page/limit pair. Limit is always positive.
type PageRequest struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

type PaginationResult struct {
	Data      interface{} `json:"data"`
	Page      int         `json:"page"`
	Limit     int         `json:"limit"`
	Total     int64       `json:"total"`
	TotalPage int         `json:"total_page"`
}

// NewPageRequest validates raw page and limit values. Missing or malformed
// values fall back to defaults; a limit above the maximum is capped, and so
// is a page whose offset would overflow.
func NewPageRequest(rawPage, rawLimit string, limits config.CatalogConfig) PageRequest {
	page, err := strconv.Atoi(strings.TrimSpace(rawPage))
	if err != nil || page < 1 {
		page = 1
	}

	defaultLimit := limits.DefaultPageLimit
	if defaultLimit < 1 {
		defaultLimit = 10
	}

	limit, err := strconv.Atoi(strings.TrimSpace(rawLimit))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limits.MaxPageLimit > 0 && limit > limits.MaxPageLimit {
		limit = limits.MaxPageLimit
	}

	// Keep (page-1)*limit representable; larger pages are past any result.
	if maxPage := math.MaxInt / limit; page > maxPage {
		page = maxPage
	}

	return PageRequest{Page: page, Limit: limit}
}

func GetPageRequest(c *gin.Context, limits config.CatalogConfig) PageRequest {
	return NewPageRequest(c.Query("page"), c.Query("limit"), limits)
}

func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages is ceil(total/limit); zero rows means zero pages.
func (p PageRequest) TotalPages(total int64) int {
	if p.Limit < 1 || total <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(p.Limit)))
}

func CreatePaginationResult(data interface{}, total int64, page PageRequest) PaginationResult {
	return PaginationResult{
		Data:      data,
		Page:      page.Page,
		Limit:     page.Limit,
		Total:     total,
		TotalPage: page.TotalPages(total),
	}
}

func SetPaginationHeaders(c *gin.Context, result PaginationResult) {
	c.Header("X-Total-Count", strconv.FormatInt(result.Total, 10))
	c.Header("X-Page", strconv.Itoa(result.Page))
	c.Header("X-Per-Page", strconv.Itoa(result.Limit))
	c.Header("X-Total-Pages", strconv.Itoa(result.TotalPage))
}
