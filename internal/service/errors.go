package service

import "errors"

var (
	// ErrInvalidQuantity 商品数量非法（小于 1）
	ErrInvalidQuantity = errors.New("商品数量无效")
	// ErrProductNotFound 商品不存在或已下架
	ErrProductNotFound = errors.New("商品不存在")
	// ErrCategoryNotFound 分类不存在
	ErrCategoryNotFound = errors.New("分类不存在")
	// ErrInvalidSection 首页栏目非法
	ErrInvalidSection = errors.New("栏目无效")
	// ErrCartEmpty 购物车为空
	ErrCartEmpty = errors.New("购物车为空")
	// ErrPaymentMethodRequired 未选择支付方式
	ErrPaymentMethodRequired = errors.New("请选择支付方式")
	// ErrPaymentMethodInvalid 支付方式不存在
	ErrPaymentMethodInvalid = errors.New("支付方式无效")
	// ErrSessionNotFound 会话不存在或已过期
	ErrSessionNotFound = errors.New("会话不存在")
)
