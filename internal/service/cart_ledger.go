package service

import (
	"github.com/storefront-next/internal/constants"
	"github.com/storefront-next/internal/models"
)

const defaultAddQuantity = 1

// LineItem 购物车行（加入时从商品复制展示与价格信息）
type LineItem struct {
	ProductID         uint          `json:"product_id"`
	Name              string        `json:"name"`
	Image             string        `json:"image"`
	UnitPrice         models.Money  `json:"unit_price"`
	OriginalUnitPrice *models.Money `json:"original_unit_price,omitempty"`
	Quantity          int           `json:"quantity"`
	Variant           string        `json:"variant,omitempty"`
}

// LineTotal 行小计
func (i LineItem) LineTotal() models.Money {
	return i.UnitPrice.Times(i.Quantity)
}

// CountChangedFunc 购物车件数变化回调
type CountChangedFunc func(oldCount, newCount int)

type countListener struct {
	id int
	fn CountChangedFunc
}

// Ledger 单个会话的购物车账本，不做内部加锁，由所属会话串行访问
type Ledger struct {
	items          []LineItem
	listeners      []countListener
	nextListenerID int
}

// NewLedger 创建空账本
func NewLedger() *Ledger {
	return &Ledger{}
}

// AddItem 加入商品，已存在则累加数量
func (l *Ledger) AddItem(product *models.Product, quantity int) error {
	return l.AddVariantItem(product, quantity, "")
}

// AddVariantItem 加入带规格的商品，规格以首次加入为准
func (l *Ledger) AddVariantItem(product *models.Product, quantity int, variant string) error {
	if product == nil || product.ID == 0 {
		return ErrProductNotFound
	}
	if quantity == 0 {
		quantity = defaultAddQuantity
	}
	if quantity < 0 || quantity > constants.MaxLineQuantity {
		return ErrInvalidQuantity
	}

	idx := l.indexOf(product.ID)
	if idx >= 0 && l.items[idx].Quantity > constants.MaxLineQuantity-quantity {
		return ErrInvalidQuantity
	}
	before := l.Count()
	if idx >= 0 {
		l.items[idx].Quantity += quantity
	} else {
		item := LineItem{
			ProductID: product.ID,
			Name:      product.Name,
			Image:     product.Image,
			UnitPrice: product.PriceAmount,
			Quantity:  quantity,
			Variant:   variant,
		}
		if product.OriginalPrice != nil {
			item.OriginalUnitPrice = models.MoneyPtr(*product.OriginalPrice)
		}
		l.items = append(l.items, item)
	}
	l.notify(before)
	return nil
}

// RemoveItem 移除商品，不存在时忽略
func (l *Ledger) RemoveItem(productID uint) {
	idx := l.indexOf(productID)
	if idx < 0 {
		return
	}
	before := l.Count()
	l.items = append(l.items[:idx], l.items[idx+1:]...)
	l.notify(before)
}

// SetQuantity 设置数量，数量越界时拒绝且账本不变
func (l *Ledger) SetQuantity(productID uint, quantity int) error {
	if quantity < 1 || quantity > constants.MaxLineQuantity {
		return ErrInvalidQuantity
	}
	idx := l.indexOf(productID)
	if idx < 0 {
		return nil
	}
	before := l.Count()
	l.items[idx].Quantity = quantity
	l.notify(before)
	return nil
}

// Items 返回行项目快照
func (l *Ledger) Items() []LineItem {
	items := make([]LineItem, len(l.items))
	copy(items, l.items)
	for i := range items {
		if items[i].OriginalUnitPrice != nil {
			items[i].OriginalUnitPrice = models.MoneyPtr(*items[i].OriginalUnitPrice)
		}
	}
	return items
}

// Item 按商品查找行项目
func (l *Ledger) Item(productID uint) (LineItem, bool) {
	idx := l.indexOf(productID)
	if idx < 0 {
		return LineItem{}, false
	}
	return l.items[idx], true
}

// Subtotal 商品小计
func (l *Ledger) Subtotal() models.Money {
	return SubtotalOf(l.items)
}

// Count 商品总件数（角标数字）
func (l *Ledger) Count() int {
	total := 0
	for _, item := range l.items {
		total += item.Quantity
	}
	return total
}

// Len 行项目数
func (l *Ledger) Len() int {
	return len(l.items)
}

// IsEmpty 是否为空
func (l *Ledger) IsEmpty() bool {
	return len(l.items) == 0
}

// Clear 清空账本
func (l *Ledger) Clear() {
	before := l.Count()
	l.items = nil
	l.notify(before)
}

// OnCountChanged 订阅件数变化，返回取消订阅函数
func (l *Ledger) OnCountChanged(fn CountChangedFunc) func() {
	if fn == nil {
		return func() {}
	}
	l.nextListenerID++
	id := l.nextListenerID
	l.listeners = append(l.listeners, countListener{id: id, fn: fn})
	return func() {
		for i, listener := range l.listeners {
			if listener.id == id {
				l.listeners = append(l.listeners[:i], l.listeners[i+1:]...)
				return
			}
		}
	}
}

func (l *Ledger) indexOf(productID uint) int {
	for i := range l.items {
		if l.items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

func (l *Ledger) notify(before int) {
	after := l.Count()
	listeners := make([]countListener, len(l.listeners))
	copy(listeners, l.listeners)
	for _, listener := range listeners {
		listener.fn(before, after)
	}
}

// SubtotalOf 计算行项目小计
func SubtotalOf(items []LineItem) models.Money {
	var subtotal models.Money
	for _, item := range items {
		subtotal += item.LineTotal()
	}
	return subtotal
}
