package public

import (
	"strconv"
	"strings"

	"github.com/storefront-next/internal/constants"
	"github.com/storefront-next/internal/http/response"
	"github.com/storefront-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetCategories 获取分类导航
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.CategoryService.ListPublic()
	if err != nil {
		respondError(c, response.CodeInternal, "error.category_fetch_failed", err)
		return
	}
	response.Success(c, categories)
}

// GetPublicBanners 获取前台 Banner 列表
func (h *Handler) GetPublicBanners(c *gin.Context) {
	position := c.DefaultQuery("position", constants.BannerPositionHomeHero)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit <= 0 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}

	banners, err := h.BannerService.ListPublic(position, limit)
	if err != nil {
		respondError(c, response.CodeInternal, "error.banner_fetch_failed", err)
		return
	}

	response.Success(c, banners)
}

// GetProducts 按栏目或分类获取商品列表
func (h *Handler) GetProducts(c *gin.Context) {
	// 获取分页参数
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	products, total, err := h.CatalogService.ListProducts(service.ProductListInput{
		Section:      c.Query("section"),
		CategorySlug: c.Query("category"),
		Search:       strings.TrimSpace(c.Query("search")),
		Page:         page,
		PageSize:     pageSize,
	})
	if err != nil {
		respondWithMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.product_fetch_failed")
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, products, pagination)
}

// GetProduct 获取商品详情及相关推荐，参数可为 ID 或 slug
func (h *Handler) GetProduct(c *gin.Context) {
	raw := strings.TrimSpace(c.Param("id"))
	var (
		detail *service.ProductDetail
		err    error
	)
	if id, parseErr := strconv.ParseUint(raw, 10, 64); parseErr == nil {
		detail, err = h.CatalogService.GetDetail(uint(id))
	} else {
		detail, err = h.CatalogService.GetDetailBySlug(raw)
	}
	if err != nil {
		respondWithMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.product_fetch_failed")
		return
	}
	response.Success(c, detail)
}

// GetPaymentMethods 获取支付方式列表
func (h *Handler) GetPaymentMethods(c *gin.Context) {
	response.Success(c, h.PaymentMethodService.List())
}

func parseProductID(c *gin.Context, raw string) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.product_id_invalid", nil)
		return 0, false
	}
	return uint(id), true
}
