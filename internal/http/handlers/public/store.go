package public

import (
	"github.com/gin-gonic/gin"

	"github.com/bunai-store/internal/http/response"
)

// GetStoreConfig 店铺基础配置，前端首屏读取。
func (h *Handler) GetStoreConfig(c *gin.Context) {
	response.Success(c, gin.H{
		"name":             h.Config.Store.Name,
		"currency":         h.Config.Store.Currency,
		"locale":           h.Config.Store.Locale,
		"whatsapp_phone":   h.Config.WhatsApp.PhoneNumber,
		"default_discount": h.Config.Catalog.DefaultDiscountPercent,
	})
}
