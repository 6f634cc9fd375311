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

// GetAdminInquiries 商品咨询列表
func (h *Handler) GetAdminInquiries(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = h.normalizePagination(page, pageSize)

	filter := repository.InquiryListFilter{
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

	inquiries, total, err := h.InquiryService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.SuccessWithPage(c, inquiries, response.NewPagination(page, pageSize, total))
}

// CloseInquiry 关闭咨询，重复关闭为幂等操作。
func (h *Handler) CloseInquiry(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	inquiry, err := h.InquiryService.Close(id)
	if err != nil {
		if errors.Is(err, service.ErrInquiryNotFound) {
			respondError(c, response.CodeNotFound, "inquiry.not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.Success(c, inquiry)
}
