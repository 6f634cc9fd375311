package public

import (
	"errors"
	"strconv"
	"strings"

	"github.com/bunai-store/internal/http/response"
	"github.com/bunai-store/internal/repository"
	"github.com/bunai-store/internal/service"

	"github.com/gin-gonic/gin"
)

// ListProducts 商品列表，按商品名聚合颜色变体。
func (h *Handler) ListProducts(c *gin.Context) {
	filter := repository.ProductListFilter{
		Category:   strings.TrimSpace(c.Query("category")),
		Color:      strings.TrimSpace(c.Query("color")),
		FabricType: strings.TrimSpace(c.Query("fabric_type")),
		Search:     strings.TrimSpace(c.Query("search")),
		OrderBy:    strings.TrimSpace(c.Query("order_by")),
	}
	if raw := c.Query("is_new"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, response.CodeBadRequest, "error.bad_request", err)
			return
		}
		filter.IsNew = &parsed
	}
	if raw := c.Query("is_best_seller"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, response.CodeBadRequest, "error.bad_request", err)
			return
		}
		filter.IsBestSeller = &parsed
	}
	if raw := c.Query("in_stock"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, response.CodeBadRequest, "error.bad_request", err)
			return
		}
		filter.InStock = &parsed
	}

	groups, err := h.ProductService.ListGrouped(c.Request.Context(), filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.Success(c, groups)
}

// GetProduct 按 slug 获取商品详情，含同名变体。
func (h *Handler) GetProduct(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	detail, err := h.ProductService.GetDetailBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "product.not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.Success(c, detail)
}

// ListCategories 商品分类列表
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.ProductService.ListCategories()
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, categories)
}
