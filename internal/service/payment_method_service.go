package service

import (
	"strings"

	"github.com/storefront-next/internal/constants"
)

// PaymentMethod 支付方式
type PaymentMethod struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// PaymentMethodGroup 支付方式分组
type PaymentMethodGroup struct {
	Key     string          `json:"key"`
	Name    string          `json:"name"`
	Methods []PaymentMethod `json:"methods"`
}

var defaultPaymentMethodGroups = []PaymentMethodGroup{
	{
		Key:  constants.PaymentGroupCOD,
		Name: "Cash on Delivery",
		Methods: []PaymentMethod{
			{ID: "cod", Name: "Cash on Delivery", Description: "Pay when you receive your order"},
		},
	},
	{
		Key:  constants.PaymentGroupCard,
		Name: "Credit / Debit Card",
		Methods: []PaymentMethod{
			{ID: "visa", Name: "Visa"},
			{ID: "mastercard", Name: "MasterCard"},
			{ID: "rupay", Name: "RuPay"},
		},
	},
	{
		Key:  constants.PaymentGroupUPI,
		Name: "UPI",
		Methods: []PaymentMethod{
			{ID: "phonepe", Name: "PhonePe"},
			{ID: "gpay", Name: "Google Pay"},
			{ID: "bhim", Name: "BHIM UPI"},
		},
	},
	{
		Key:  constants.PaymentGroupNetBanking,
		Name: "Net Banking",
		Methods: []PaymentMethod{
			{ID: "sbi", Name: "State Bank of India"},
			{ID: "hdfc", Name: "HDFC Bank"},
			{ID: "icici", Name: "ICICI Bank"},
			{ID: "axis", Name: "Axis Bank"},
		},
	},
}

// PaymentMethodService 支付方式目录（静态配置）
type PaymentMethodService struct {
	groups []PaymentMethodGroup
	byID   map[string]PaymentMethod
}

// NewPaymentMethodService 创建支付方式目录
func NewPaymentMethodService() *PaymentMethodService {
	s := &PaymentMethodService{
		groups: defaultPaymentMethodGroups,
		byID:   make(map[string]PaymentMethod),
	}
	for _, group := range s.groups {
		for _, method := range group.Methods {
			s.byID[method.ID] = method
		}
	}
	return s
}

// List 按分组返回支付方式
func (s *PaymentMethodService) List() []PaymentMethodGroup {
	groups := make([]PaymentMethodGroup, 0, len(s.groups))
	for _, group := range s.groups {
		group.Methods = append([]PaymentMethod(nil), group.Methods...)
		groups = append(groups, group)
	}
	return groups
}

// Get 获取支付方式
func (s *PaymentMethodService) Get(id string) (PaymentMethod, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "" {
		return PaymentMethod{}, ErrPaymentMethodRequired
	}
	method, ok := s.byID[id]
	if !ok {
		return PaymentMethod{}, ErrPaymentMethodInvalid
	}
	return method, nil
}
