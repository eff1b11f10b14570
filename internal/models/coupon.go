package models

import (
	"time"

	"gorm.io/gorm"
)

// Coupon 优惠码规则（内置规则之外的运营配置）
type Coupon struct {
	ID        uint           `gorm:"primarykey" json:"id"`                      // 主键
	Code      string         `gorm:"uniqueIndex;not null" json:"code"`          // 优惠码
	Type      string         `gorm:"not null" json:"type"`                      // 类型（fixed/percent）
	Value     int64          `gorm:"not null" json:"value"`                     // 数值（固定金额或百分比）
	StartsAt  *time.Time     `gorm:"index" json:"starts_at"`                    // 生效时间
	EndsAt    *time.Time     `gorm:"index" json:"ends_at"`                      // 失效时间
	IsActive  bool           `gorm:"not null;default:true" json:"is_active"`    // 是否启用
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                   // 创建时间
	UpdatedAt time.Time      `gorm:"index" json:"updated_at"`                   // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                            // 软删除时间
}

// TableName 指定表名
func (Coupon) TableName() string {
	return "coupons"
}
