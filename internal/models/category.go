package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// StringArray 字符串数组类型，用于存储图片等列表
type StringArray []string

// Value 实现 driver.Valuer 接口
func (s StringArray) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan 实现 sql.Scanner 接口
func (s *StringArray) Scan(value interface{}) error {
	if value == nil {
		*s = StringArray{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return nil
	}
}

// Category 分类表（首页分类导航）
type Category struct {
	ID        uint           `gorm:"primarykey" json:"id"`                     // 主键
	Slug      string         `gorm:"uniqueIndex;not null" json:"slug"`         // 唯一标识
	Name      string         `gorm:"type:varchar(120);not null" json:"name"`   // 名称
	Image     string         `gorm:"type:varchar(500)" json:"image"`           // 分类图标
	IsActive  bool           `gorm:"default:true;index" json:"is_active"`      // 是否展示
	SortOrder int            `gorm:"default:0;index" json:"sort_order"`        // 排序权重
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                  // 创建时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                           // 软删除时间
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}
