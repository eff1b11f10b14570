package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// LocaleEN 英文
	LocaleEN = "en-US"
	// LocaleZHCN 简体中文
	LocaleZHCN = "zh-CN"

	localeQueryKey = "lang"
)

var messages = map[string]map[string]string{
	LocaleEN: {
		"error.bad_request":             "Invalid request parameters",
		"error.not_found":               "Resource not found",
		"error.internal":                "Internal server error",
		"error.rate_limited":            "Too many requests, please retry in %d seconds",
		"error.rate_limit_unavailable":  "Rate limiter unavailable",
		"error.coupon_too_many":         "Too many coupon attempts, please retry in %d seconds",
		"error.order_too_many":          "Too many orders, please retry in %d seconds",
		"error.quantity_invalid":        "Quantity must be between 1 and 999",
		"error.product_not_found":       "Product not found",
		"error.product_id_invalid":      "Invalid product id",
		"error.category_not_found":      "Category not found",
		"error.section_invalid":         "Unknown product section",
		"error.cart_empty":              "Your cart is empty",
		"error.payment_method_required": "Please select a payment method",
		"error.payment_method_invalid":  "Unknown payment method",
		"error.session_not_found":       "Session not found",
		"error.session_required":        "Session required",
		"error.product_fetch_failed":    "Failed to load products",
		"error.category_fetch_failed":   "Failed to load categories",
		"error.banner_fetch_failed":     "Failed to load banners",
		"error.cart_update_failed":      "Failed to update cart",
		"error.coupon_apply_failed":     "Failed to apply coupon",
		"error.order_create_failed":     "Failed to place order",
		"error.payment_method_failed":   "Failed to select payment method",
		"success.coupon_applied":        "Coupon applied",
		"success.coupon_not_applicable": "Coupon not applicable",
		"success.order_placed":          "Order placed successfully",
		"success.session_deleted":       "Session closed",
	},
	LocaleZHCN: {
		"error.bad_request":             "请求参数错误",
		"error.not_found":               "资源不存在",
		"error.internal":                "服务器内部错误",
		"error.rate_limited":            "请求过于频繁，请在 %d 秒后重试",
		"error.rate_limit_unavailable":  "限流服务不可用",
		"error.coupon_too_many":         "优惠码尝试次数过多，请在 %d 秒后重试",
		"error.order_too_many":          "下单过于频繁，请在 %d 秒后重试",
		"error.quantity_invalid":        "数量需在 1 到 999 之间",
		"error.product_not_found":       "商品不存在",
		"error.product_id_invalid":      "商品 ID 无效",
		"error.category_not_found":      "分类不存在",
		"error.section_invalid":         "未知的商品栏目",
		"error.cart_empty":              "购物车为空",
		"error.payment_method_required": "请选择支付方式",
		"error.payment_method_invalid":  "不支持的支付方式",
		"error.session_not_found":       "会话不存在",
		"error.session_required":        "缺少会话",
		"error.product_fetch_failed":    "商品加载失败",
		"error.category_fetch_failed":   "分类加载失败",
		"error.banner_fetch_failed":     "轮播图加载失败",
		"error.cart_update_failed":      "购物车更新失败",
		"error.coupon_apply_failed":     "优惠码使用失败",
		"error.order_create_failed":     "下单失败",
		"error.payment_method_failed":   "支付方式选择失败",
		"success.coupon_applied":        "优惠码已使用",
		"success.coupon_not_applicable": "优惠码不可用",
		"success.order_placed":          "下单成功",
		"success.session_deleted":       "会话已关闭",
	},
}

// ResolveLocale 从请求中解析语言，优先 lang 参数，其次 Accept-Language
func ResolveLocale(c *gin.Context) string {
	if c == nil || c.Request == nil {
		return LocaleEN
	}
	if locale := normalizeLocale(c.Query(localeQueryKey)); locale != "" {
		return locale
	}
	header := c.GetHeader("Accept-Language")
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if locale := normalizeLocale(tag); locale != "" {
			return locale
		}
	}
	return LocaleEN
}

// T 翻译文案，未命中时回退英文，再回退 key
func T(locale, key string) string {
	if table, ok := messages[locale]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if msg, ok := messages[LocaleEN][key]; ok {
		return msg
	}
	return key
}

// Sprintf 翻译并格式化文案
func Sprintf(locale, key string, args ...interface{}) string {
	return fmt.Sprintf(T(locale, key), args...)
}

func normalizeLocale(raw string) string {
	value := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case value == "":
		return ""
	case strings.HasPrefix(value, "zh"):
		return LocaleZHCN
	case strings.HasPrefix(value, "en"):
		return LocaleEN
	default:
		return ""
	}
}
