package models

import (
	"time"

	"gorm.io/gorm"
)

// 物品状态的合法取值
const (
	ItemStatusAvailable = "available"
	ItemStatusReserved  = "reserved"
	ItemStatusSold      = "sold"
	ItemStatusArchived  = "archived"
)

// Item 对应于数据库中的 items 表
type Item struct {
	ID          int64          `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string         `json:"name" gorm:"column:name;not null;size:255"`
	Description string         `json:"description" gorm:"column:description;type:text"`                    // 物品描述
	Category    string         `json:"category" gorm:"column:category;index;size:100"`                     // 分类
	Status      string         `json:"status" gorm:"column:status;not null;default:'available';size:50"`   // 物品状态
	Price       float64        `json:"price" gorm:"column:price;not null;default:0"`                       // 价格
	CreatedAt   time.Time      `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime;index"`   // 创建后不再变更，是分页的决胜键
	UpdatedAt   time.Time      `json:"updatedAt" gorm:"column:updated_at;not null;autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`
}

// TableName 指定 Item 结构体对应的数据库表名
func (Item) TableName() string {
	return "items"
}

// UpdateItemPayload 是用于绑定和验证更新物品请求的结构体。
// 指针字段区分 "未提供" 和 "显式置空"，未提供的字段不参与更新。
type UpdateItemPayload struct {
	Name        *string  `json:"name,omitempty" binding:"omitempty,max=255"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty" binding:"omitempty,max=100"`
	Status      *string  `json:"status,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}

// CursorValue 返回物品在指定排序字段上的取值，用于生成下一页游标。
// 字段集合与分页白名单保持一致。
func (i Item) CursorValue(field string) any {
	switch field {
	case "price":
		return i.Price
	case "name":
		return i.Name
	case "category":
		return i.Category
	case "status":
		return i.Status
	default:
		return nil
	}
}

// CursorTime 返回物品的创建时间，即游标的决胜键
func (i Item) CursorTime() time.Time {
	return i.CreatedAt
}

// IsValidItemStatus 检查状态取值是否合法
func IsValidItemStatus(status string) bool {
	switch status {
	case ItemStatusAvailable, ItemStatusReserved, ItemStatusSold, ItemStatusArchived:
		return true
	}
	return false
}
