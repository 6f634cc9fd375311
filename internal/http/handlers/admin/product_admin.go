package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/bunai-store/internal/http/response"
	"github.com/bunai-store/internal/repository"
	"github.com/bunai-store/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ProductRequest 商品创建/更新请求
type ProductRequest struct {
	Name            string   `json:"name" binding:"required"`
	Category        string   `json:"category"`
	Color           string   `json:"color"`
	FabricType      string   `json:"fabric_type"`
	Size            string   `json:"size"`
	Description     string   `json:"description"`
	ImageURL        string   `json:"image_url"`
	Images          []string `json:"images"`
	WholesalePrice  float64  `json:"wholesale_price"`
	RetailPrice     float64  `json:"retail_price" binding:"required"`
	DiscountPercent *int     `json:"discount_percent"`
	IsNew           bool     `json:"is_new"`
	IsBestSeller    bool     `json:"is_best_seller"`
	StockQuantity   int      `json:"stock_quantity"`
}

// RestockRequest 补货请求
type RestockRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

func (req ProductRequest) toInput() service.ProductInput {
	return service.ProductInput{
		Name:            req.Name,
		Category:        req.Category,
		Color:           req.Color,
		FabricType:      req.FabricType,
		Size:            req.Size,
		Description:     req.Description,
		ImageURL:        req.ImageURL,
		Images:          req.Images,
		WholesalePrice:  decimal.NewFromFloat(req.WholesalePrice),
		RetailPrice:     decimal.NewFromFloat(req.RetailPrice),
		DiscountPercent: req.DiscountPercent,
		IsNew:           req.IsNew,
		IsBestSeller:    req.IsBestSeller,
		StockQuantity:   req.StockQuantity,
	}
}

func respondProductWriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		respondError(c, response.CodeNotFound, "product.not_found", nil)
	case errors.Is(err, service.ErrProductNameEmpty),
		errors.Is(err, service.ErrInvalidPrice),
		errors.Is(err, service.ErrInvalidDiscount),
		errors.Is(err, service.ErrInvalidQuantity):
		respondError(c, response.CodeBadRequest, "product.invalid", nil)
	case errors.Is(err, service.ErrSlugExists), errors.Is(err, service.ErrSKUExists):
		respondError(c, response.CodeConflict, "product.conflict", nil)
	default:
		respondError(c, response.CodeInternal, "error.internal", err)
	}
}

// GetAdminProducts 商品列表（管理端，不聚合变体）
func (h *Handler) GetAdminProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = h.normalizePagination(page, pageSize)

	filter := repository.ProductListFilter{
		Page:       page,
		PageSize:   pageSize,
		Category:   strings.TrimSpace(c.Query("category")),
		Color:      strings.TrimSpace(c.Query("color")),
		FabricType: strings.TrimSpace(c.Query("fabric_type")),
		Search:     strings.TrimSpace(c.Query("search")),
		OrderBy:    strings.TrimSpace(c.Query("order_by")),
	}
	if raw := c.Query("in_stock"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, response.CodeBadRequest, "error.bad_request", err)
			return
		}
		filter.InStock = &parsed
	}

	products, total, err := h.ProductService.ListAdmin(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.SuccessWithPage(c, products, response.NewPagination(page, pageSize, total))
}

// GetAdminProduct 商品详情（管理端）
func (h *Handler) GetAdminProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	product, err := h.ProductService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "product.not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.Success(c, product)
}

// CreateProduct 创建商品，slug 与 SKU 由服务端派生。
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	product, err := h.ProductService.Create(req.toInput())
	if err != nil {
		respondProductWriteError(c, err)
		return
	}

	requestLog(c).Infow("product_created",
		"product_id", product.ID,
		"sku", product.SKU,
	)
	response.Success(c, product)
}

// UpdateProduct 更新商品，改名/改色会重派生 slug，SKU 保持不变。
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	product, err := h.ProductService.Update(id, req.toInput())
	if err != nil {
		respondProductWriteError(c, err)
		return
	}

	response.Success(c, product)
}

// DeleteProduct 删除商品
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.ProductService.Delete(id); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "product.not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.Success(c, gin.H{"deleted": true})
}

// RestockProduct 补货。从 0 补到正数会触发到货通知任务。
func (h *Handler) RestockProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req RestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	product, err := h.ProductService.Restock(id, req.Quantity)
	if err != nil {
		respondProductWriteError(c, err)
		return
	}

	requestLog(c).Infow("product_restocked",
		"product_id", product.ID,
		"quantity", req.Quantity,
		"stock", product.StockQuantity,
	)
	response.Success(c, product)
}
