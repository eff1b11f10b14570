package public

import (
	"github.com/storefront-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// PaymentMethodRequest 选择支付方式请求
type PaymentMethodRequest struct {
	MethodID string `json:"method_id"`
}

// PlaceOrderRequest 下单请求，未传支付方式时使用会话中已选择的
type PlaceOrderRequest struct {
	PaymentMethod string `json:"payment_method"`
}

// SelectPaymentMethod 选择支付方式
func (h *Handler) SelectPaymentMethod(c *gin.Context) {
	session, ok := getSession(c)
	if !ok {
		return
	}
	var req PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	method, err := h.OrderService.SelectPaymentMethod(session, req.MethodID)
	if err != nil {
		respondWithMappedError(c, err, paymentMethodErrorRules, response.CodeInternal, "error.payment_method_failed")
		return
	}
	response.Success(c, method)
}

// PlaceOrder 下单
func (h *Handler) PlaceOrder(c *gin.Context) {
	session, ok := getSession(c)
	if !ok {
		return
	}
	var req PlaceOrderRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, response.CodeBadRequest, "error.bad_request", nil)
			return
		}
	}

	receipt, err := h.OrderService.PlaceOrder(session, req.PaymentMethod)
	if err != nil {
		respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "error.order_create_failed")
		return
	}
	respondSuccessWithKey(c, "success.order_placed", receipt)
}
