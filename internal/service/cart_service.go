package service

import (
	"github.com/storefront-next/internal/logger"
)

// CartView 购物车视图
type CartView struct {
	Items         []LineItem     `json:"items"`
	ItemCount     int            `json:"item_count"`
	Totals        OrderTotals    `json:"totals"`
	Badge         CartBadgeState `json:"badge"`
	PaymentMethod string         `json:"payment_method,omitempty"`
}

// AddCartItemInput 加购输入
type AddCartItemInput struct {
	ProductID uint
	Quantity  int
	Variant   string
}

// CartService 会话购物车服务
type CartService struct {
	catalog Catalog
	pricing PricingSource
}

// NewCartService 创建购物车服务
func NewCartService(catalog Catalog, pricing PricingSource) *CartService {
	return &CartService{catalog: catalog, pricing: pricing}
}

// View 查看购物车
func (s *CartService) View(session *Session) (CartView, error) {
	var view CartView
	err := session.Do(func() error {
		view = s.viewLocked(session)
		return nil
	})
	return view, err
}

// AddItem 加入购物车
func (s *CartService) AddItem(session *Session, input AddCartItemInput) (CartView, error) {
	if input.Quantity < 0 {
		return CartView{}, ErrInvalidQuantity
	}
	product, err := s.catalog.GetProduct(input.ProductID)
	if err != nil {
		return CartView{}, err
	}
	var view CartView
	err = session.Do(func() error {
		if err := session.Ledger().AddVariantItem(product, input.Quantity, input.Variant); err != nil {
			return err
		}
		view = s.viewLocked(session)
		return nil
	})
	if err != nil {
		return CartView{}, err
	}
	logger.Debugw("cart_item_added",
		"session_id", session.ID(),
		"product_id", product.ID,
		"quantity", input.Quantity,
		"cart_count", view.ItemCount,
	)
	return view, nil
}

// SetQuantity 修改数量
func (s *CartService) SetQuantity(session *Session, productID uint, quantity int) (CartView, error) {
	var view CartView
	err := session.Do(func() error {
		if err := session.Ledger().SetQuantity(productID, quantity); err != nil {
			return err
		}
		view = s.viewLocked(session)
		return nil
	})
	return view, err
}

// RemoveItem 移除商品
func (s *CartService) RemoveItem(session *Session, productID uint) (CartView, error) {
	var view CartView
	err := session.Do(func() error {
		session.Ledger().RemoveItem(productID)
		view = s.viewLocked(session)
		return nil
	})
	return view, err
}

// ApplyCoupon 应用优惠码，无效码会清除当前优惠码
func (s *CartService) ApplyCoupon(session *Session, code string) (CartView, bool, error) {
	calculator := s.pricing.Calculator()
	var (
		view    CartView
		applied bool
	)
	err := session.Do(func() error {
		if _, ok := calculator.Lookup(code); ok {
			session.SetCouponCode(NormalizeCouponCode(code))
			applied = true
		} else {
			session.SetCouponCode("")
		}
		view = s.viewWith(session, calculator)
		return nil
	})
	if err != nil {
		return CartView{}, false, err
	}
	logger.Debugw("cart_coupon_applied", "session_id", session.ID(), "code", NormalizeCouponCode(code), "applied", applied)
	return view, applied, nil
}

// ClearCoupon 清除优惠码
func (s *CartService) ClearCoupon(session *Session) (CartView, error) {
	var view CartView
	err := session.Do(func() error {
		session.SetCouponCode("")
		view = s.viewLocked(session)
		return nil
	})
	return view, err
}

func (s *CartService) viewLocked(session *Session) CartView {
	return s.viewWith(session, s.pricing.Calculator())
}

func (s *CartService) viewWith(session *Session, calculator *PricingCalculator) CartView {
	ledger := session.Ledger()
	items := ledger.Items()
	return CartView{
		Items:         items,
		ItemCount:     ledger.Count(),
		Totals:        calculator.Calculate(items, session.CouponCode()),
		Badge:         session.Badge().State(),
		PaymentMethod: session.PaymentMethod(),
	}
}
