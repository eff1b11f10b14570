package public

import (
	"github.com/storefront-next/internal/http/response"
	"github.com/storefront-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CartItemRequest 加购请求
type CartItemRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"max=999"`
	Variant   string `json:"variant"`
}

// CartQuantityRequest 修改数量请求
type CartQuantityRequest struct {
	Quantity int `json:"quantity" binding:"max=999"`
}

// CouponRequest 优惠码请求
type CouponRequest struct {
	Code string `json:"code"`
}

// CouponResponse 优惠码应用结果
type CouponResponse struct {
	service.CartView
	Applied bool `json:"applied"`
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	session, ok := getSession(c)
	if !ok {
		return
	}
	view, err := h.CartService.View(session)
	if err != nil {
		respondWithMappedError(c, err, sessionErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, view)
}

// AddCartItem 加入购物车
func (h *Handler) AddCartItem(c *gin.Context) {
	session, ok := getSession(c)
	if !ok {
		return
	}
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	view, err := h.CartService.AddItem(session, service.AddCartItemInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Variant:   req.Variant,
	})
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.cart_update_failed")
		return
	}
	response.Success(c, view)
}

// UpdateCartItem 修改购物车商品数量
func (h *Handler) UpdateCartItem(c *gin.Context) {
	session, ok := getSession(c)
	if !ok {
		return
	}
	productID, ok := parseProductID(c, c.Param("product_id"))
	if !ok {
		return
	}
	var req CartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	view, err := h.CartService.SetQuantity(session, productID, req.Quantity)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.cart_update_failed")
		return
	}
	response.Success(c, view)
}

// DeleteCartItem 移除购物车商品
func (h *Handler) DeleteCartItem(c *gin.Context) {
	session, ok := getSession(c)
	if !ok {
		return
	}
	productID, ok := parseProductID(c, c.Param("product_id"))
	if !ok {
		return
	}

	view, err := h.CartService.RemoveItem(session, productID)
	if err != nil {
		respondWithMappedError(c, err, sessionErrorRules, response.CodeInternal, "error.cart_update_failed")
		return
	}
	response.Success(c, view)
}

// ApplyCoupon 应用优惠码，不可用时返回 applied=false
func (h *Handler) ApplyCoupon(c *gin.Context) {
	session, ok := getSession(c)
	if !ok {
		return
	}
	var req CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	view, applied, err := h.CartService.ApplyCoupon(session, req.Code)
	if err != nil {
		respondWithMappedError(c, err, sessionErrorRules, response.CodeInternal, "error.coupon_apply_failed")
		return
	}
	msg := "success.coupon_applied"
	if !applied {
		msg = "success.coupon_not_applicable"
	}
	respondSuccessWithKey(c, msg, CouponResponse{CartView: view, Applied: applied})
}

// ClearCoupon 清除优惠码
func (h *Handler) ClearCoupon(c *gin.Context) {
	session, ok := getSession(c)
	if !ok {
		return
	}
	view, err := h.CartService.ClearCoupon(session)
	if err != nil {
		respondWithMappedError(c, err, sessionErrorRules, response.CodeInternal, "error.coupon_apply_failed")
		return
	}
	response.Success(c, view)
}
