package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product 商品表
type Product struct {
	ID            uint           `gorm:"primarykey" json:"id"`                                  // 主键
	CategoryID    uint           `gorm:"not null;index" json:"category_id"`                     // 分类ID
	Slug          string         `gorm:"uniqueIndex;not null" json:"slug"`                      // 唯一标识
	Name          string         `gorm:"type:varchar(255);not null" json:"name"`                // 名称
	Image         string         `gorm:"type:varchar(500)" json:"image"`                        // 主图
	Gallery       StringArray    `gorm:"type:json" json:"gallery"`                              // 详情图
	PriceAmount   Money          `gorm:"type:bigint;not null;default:0" json:"price_amount"`    // 售价（整数货币单位）
	OriginalPrice *Money         `gorm:"type:bigint" json:"original_price,omitempty"`           // 原价（仅用于展示优惠）
	Rating        float64        `gorm:"not null;default:0" json:"rating"`                      // 评分
	Reviews       int            `gorm:"not null;default:0" json:"reviews"`                     // 评价数
	Badge         string         `gorm:"type:varchar(60)" json:"badge,omitempty"`               // 角标
	Section       string         `gorm:"type:varchar(30);not null;default:''" json:"section"`   // 首页栏目（deals/trending/fashion/recommended）
	IsActive      bool           `gorm:"default:true;index" json:"is_active"`                   // 是否上架
	SortOrder     int            `gorm:"default:0;index" json:"sort_order"`                     // 排序权重
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`                               // 创建时间
	UpdatedAt     time.Time      `json:"updated_at"`                                            // 更新时间
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`                                        // 软删除时间

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"` // 分类信息
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// DiscountPercent 原价相对售价的折扣百分比（四舍五入），无原价时为 0
func (p *Product) DiscountPercent() int {
	if p == nil || p.OriginalPrice == nil || *p.OriginalPrice <= 0 || *p.OriginalPrice <= p.PriceAmount {
		return 0
	}
	saved := (*p.OriginalPrice - p.PriceAmount).Decimal()
	return int(NewMoneyFromDecimal(saved.Mul(decimal.NewFromInt(100)).Div(p.OriginalPrice.Decimal())))
}
