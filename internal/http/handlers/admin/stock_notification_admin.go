package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/bunai-store/internal/http/response"
	"github.com/bunai-store/internal/repository"
	"github.com/bunai-store/internal/service"

	"github.com/gin-gonic/gin"
)

// NotifyStockRequest 手动触发到货通知请求
type NotifyStockRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// GetAdminStockNotifications 到货通知登记列表
func (h *Handler) GetAdminStockNotifications(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = h.normalizePagination(page, pageSize)

	filter := repository.StockNotificationListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   strings.TrimSpace(c.Query("status")),
	}
	if raw := strings.TrimSpace(c.Query("product_id")); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || parsed == 0 {
			respondError(c, response.CodeBadRequest, "error.bad_request", err)
			return
		}
		filter.ProductID = uint(parsed)
	}

	subscriptions, total, err := h.StockNotificationService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.SuccessWithPage(c, subscriptions, response.NewPagination(page, pageSize, total))
}

// NotifyStock 将指定商品的 pending 登记批量标记为已通知。
// 实际触达（电话/WhatsApp）由店员线下完成，接口返回需要联系的名单。
func (h *Handler) NotifyStock(c *gin.Context) {
	var req NotifyStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	notified, err := h.StockNotificationService.NotifyProduct(req.ProductID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "product.not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	requestLog(c).Infow("stock_notifications_flushed",
		"product_id", req.ProductID,
		"count", len(notified),
	)
	response.Success(c, gin.H{
		"notified": notified,
		"count":    len(notified),
	})
}
