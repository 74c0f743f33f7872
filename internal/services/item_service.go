package services

import (
	"errors"
	"strings"

	"github.com/item_management/internal/models"
	"github.com/item_management/internal/pagination"
	"github.com/item_management/internal/repositories"
	"github.com/item_management/pkg/utils"
)

// ErrItemNotFound 表示物品未找到
var ErrItemNotFound = errors.New("物品未找到")

// ErrInvalidItemName 表示物品名称为空
var ErrInvalidItemName = errors.New("物品名称不能为空")

// ErrInvalidItemPrice 表示物品价格为负数
var ErrInvalidItemPrice = errors.New("物品价格不能为负数")

// ErrInvalidItemStatus 表示物品状态不在合法取值内
var ErrInvalidItemStatus = errors.New("无效的物品状态")

// ItemService 定义了物品服务的接口
type ItemService interface {
	CreateItem(item *models.Item) (*models.Item, error)
	GetItems(query pagination.Query) (*pagination.Page[models.Item], error)
	GetItemByID(id int64) (*models.Item, error)
	UpdateItem(id int64, payload models.UpdateItemPayload) (*models.Item, error)
	DeleteItem(id int64) error
}

// itemService 是 ItemService 的实现
type itemService struct {
	repo repositories.ItemRepository
}

// NewItemService 创建一个新的 itemService 实例
func NewItemService(repo repositories.ItemRepository) ItemService {
	return &itemService{repo: repo}
}

// CreateItem 处理创建物品的业务逻辑
func (s *itemService) CreateItem(item *models.Item) (*models.Item, error) {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return nil, ErrInvalidItemName
	}
	if item.Price < 0 {
		return nil, ErrInvalidItemPrice
	}

	if item.Status == "" {
		item.Status = models.ItemStatusAvailable
	}
	if !models.IsValidItemStatus(item.Status) {
		return nil, ErrInvalidItemStatus
	}

	// 分类名称归一化，保证等值过滤不受录入大小写差异影响
	item.Category = utils.NormalizeCategory(item.Category)

	return s.repo.CreateItem(item)
}

// GetItems 处理获取物品列表的业务逻辑
// 当前业务逻辑主要是参数传递和调用仓库层
func (s *itemService) GetItems(query pagination.Query) (*pagination.Page[models.Item], error) {
	return s.repo.GetItems(query)
}

// GetItemByID 获取单条物品记录
func (s *itemService) GetItemByID(id int64) (*models.Item, error) {
	item, err := s.repo.GetItemByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

// UpdateItem 处理更新物品的业务逻辑。
// 只更新请求中出现的字段；createdAt 不可变更，不出现在可更新字段内。
func (s *itemService) UpdateItem(id int64, payload models.UpdateItemPayload) (*models.Item, error) {
	updates := make(map[string]interface{})

	if payload.Name != nil {
		name := strings.TrimSpace(*payload.Name)
		if name == "" {
			return nil, ErrInvalidItemName
		}
		updates["name"] = name
	}
	if payload.Description != nil {
		updates["description"] = *payload.Description
	}
	if payload.Category != nil {
		updates["category"] = utils.NormalizeCategory(*payload.Category)
	}
	if payload.Status != nil {
		if !models.IsValidItemStatus(*payload.Status) {
			return nil, ErrInvalidItemStatus
		}
		updates["status"] = *payload.Status
	}
	if payload.Price != nil {
		if *payload.Price < 0 {
			return nil, ErrInvalidItemPrice
		}
		updates["price"] = *payload.Price
	}

	item, err := s.repo.UpdateItem(id, updates)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

// DeleteItem 软删除物品记录
func (s *itemService) DeleteItem(id int64) error {
	if err := s.repo.DeleteItem(id); err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return ErrItemNotFound
		}
		return err
	}
	return nil
}
