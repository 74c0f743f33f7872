package repositories

import (
	"github.com/item_management/internal/models"
	"github.com/item_management/internal/pagination"
	"gorm.io/gorm"
)

// ErrRecordNotFound 表示记录未找到，可以重用 gorm 的错误或自定义
var ErrRecordNotFound = gorm.ErrRecordNotFound

// ItemRepository 定义了物品数据仓库的接口
type ItemRepository interface {
	CreateItem(item *models.Item) (*models.Item, error)
	// GetItems 按游标分页获取物品列表，支持过滤和排序
	GetItems(query pagination.Query) (*pagination.Page[models.Item], error)
	GetItemByID(id int64) (*models.Item, error)
	UpdateItem(id int64, updates map[string]interface{}) (*models.Item, error)
	DeleteItem(id int64) error
}

// gormItemRepository 是 ItemRepository 的 GORM 实现
type gormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository 创建一个新的 gormItemRepository 实例
func NewGormItemRepository(db *gorm.DB) ItemRepository {
	return &gormItemRepository{db: db}
}

// CreateItem 在数据库中创建一条新的物品记录
func (r *gormItemRepository) CreateItem(item *models.Item) (*models.Item, error) {
	if err := r.db.Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// GetItems 从数据库中按游标分页获取物品列表。
// 请求的编译、游标解码、超额抓取与下一页游标的生成全部由 pagination 包完成，
// 这里只负责提供查询入口。
func (r *gormItemRepository) GetItems(query pagination.Query) (*pagination.Page[models.Item], error) {
	return pagination.Paginate[models.Item](r.db.Model(&models.Item{}), query)
}

// GetItemByID 根据主键获取单条物品记录
func (r *gormItemRepository) GetItemByID(id int64) (*models.Item, error) {
	var item models.Item
	if err := r.db.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem 更新物品记录的指定字段并返回更新后的记录。
// createdAt 不在可更新字段内，由调用方（服务层）保证。
func (r *gormItemRepository) UpdateItem(id int64, updates map[string]interface{}) (*models.Item, error) {
	var item models.Item
	if err := r.db.First(&item, id).Error; err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := r.db.Model(&item).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	// 重新读取，保证返回数据库中的最终状态
	if err := r.db.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteItem 软删除物品记录
func (r *gormItemRepository) DeleteItem(id int64) error {
	result := r.db.Delete(&models.Item{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
