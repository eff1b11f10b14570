package public

import (
	"errors"

	"github.com/storefront-next/internal/http/response"
	"github.com/storefront-next/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

func concatMappedHandlerErrors(groups ...[]mappedHandlerError) []mappedHandlerError {
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	result := make([]mappedHandlerError, 0, total)
	for _, group := range groups {
		result = append(result, group...)
	}
	return result
}

var catalogErrorRules = []mappedHandlerError{
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
	{target: service.ErrCategoryNotFound, code: response.CodeNotFound, key: "error.category_not_found"},
	{target: service.ErrInvalidSection, code: response.CodeBadRequest, key: "error.section_invalid"},
}

var sessionErrorRules = []mappedHandlerError{
	{target: service.ErrSessionNotFound, code: response.CodeBadRequest, key: "error.session_required"},
}

var cartErrorRules = concatMappedHandlerErrors(
	[]mappedHandlerError{
		{target: service.ErrInvalidQuantity, code: response.CodeBadRequest, key: "error.quantity_invalid"},
	},
	catalogErrorRules,
	sessionErrorRules,
)

var paymentMethodErrorRules = concatMappedHandlerErrors(
	[]mappedHandlerError{
		{target: service.ErrPaymentMethodRequired, code: response.CodeBadRequest, key: "error.payment_method_required"},
		{target: service.ErrPaymentMethodInvalid, code: response.CodeBadRequest, key: "error.payment_method_invalid"},
	},
	sessionErrorRules,
)

var checkoutErrorRules = concatMappedHandlerErrors(
	[]mappedHandlerError{
		{target: service.ErrCartEmpty, code: response.CodeBadRequest, key: "error.cart_empty"},
	},
	paymentMethodErrorRules,
)
