package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/item_management/internal/models"
	"github.com/item_management/internal/pagination"
	"github.com/item_management/internal/services"
	"github.com/item_management/pkg/utils"
)

// ItemHandler 封装了物品相关的 HTTP 处理逻辑
type ItemHandler struct {
	service services.ItemService
}

// NewItemHandler 创建一个新的 ItemHandler 实例
func NewItemHandler(service services.ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

// CreateItemPayload 是用于绑定和验证创建物品请求的结构体
type CreateItemPayload struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Description string  `json:"description" binding:"max=2000"`
	Category    string  `json:"category" binding:"max=100"`
	Status      string  `json:"status" binding:"omitempty,oneof=available reserved sold archived"`
	Price       float64 `json:"price" binding:"omitempty,gte=0"`
}

// CreateItem godoc
// @Summary 新增一个物品
// @Description 从请求体绑定数据并验证，数据保存到 items 表中
// @Tags Items
// @Accept json
// @Produce json
// @Param item body CreateItemPayload true "物品信息"
// @Success 201 {object} utils.SuccessResponse{data=models.Item} "创建成功的物品对象"
// @Failure 400 {object} utils.ErrorResponse "请求参数错误或数据校验失败"
// @Failure 401 {object} utils.ErrorResponse "未认证或 Token 无效/过期"
// @Failure 500 {object} utils.ErrorResponse "服务器内部错误"
// @Router /items [post]
// @Security BearerAuth
func (h *ItemHandler) CreateItem(c *gin.Context) {
	var payload CreateItemPayload

	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	itemToCreate := &models.Item{
		Name:        payload.Name,
		Description: payload.Description,
		Category:    payload.Category,
		Status:      payload.Status,
		Price:       payload.Price,
	}

	createdItem, err := h.service.CreateItem(itemToCreate)
	if err != nil {
		if errors.Is(err, services.ErrInvalidItemName) ||
			errors.Is(err, services.ErrInvalidItemPrice) ||
			errors.Is(err, services.ErrInvalidItemStatus) {
			utils.RespondValidationError(c, err.Error())
		} else {
			utils.RespondInternalServerError(c, "创建物品失败", err.Error())
		}
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, createdItem, "物品创建成功")
}

// PagedItemsData 定义 GetItems 的分页响应结构
type PagedItemsData struct {
	Items      []models.Item  `json:"items"`
	Pagination PaginationInfo `json:"pagination"`
}

// GetItems godoc
// @Summary 获取物品列表
// @Description 根据查询参数获取物品列表，基于游标分页，支持过滤和排序
// @Tags Items
// @Accept json
// @Produce json
// @Param cursor query string false "上一页返回的游标令牌"
// @Param limit query int false "每页数量" default(10)
// @Param sortBy query string false "排序字段 (createdAt, price, name, category, status)" default(createdAt)
// @Param sortOrder query string false "排序顺序 ('asc'或'desc')" default(desc)
// @Param category query string false "分类筛选"
// @Param status query string false "状态筛选 (available, reserved, sold, archived)"
// @Param minPrice query number false "最低价格（含）"
// @Param maxPrice query number false "最高价格（含）"
// @Param search query string false "搜索关键词 (大小写不敏感，匹配名称和描述)"
// @Success 200 {object} utils.SuccessResponse{data=PagedItemsData} "成功响应，包含物品列表和分页信息"
// @Failure 400 {object} utils.ErrorResponse "游标或请求参数错误"
// @Failure 401 {object} utils.ErrorResponse "未认证或 Token 无效/过期"
// @Failure 500 {object} utils.ErrorResponse "服务器内部错误"
// @Router /items [get]
// @Security BearerAuth
func (h *ItemHandler) GetItems(c *gin.Context) {
	type GetItemsQuery struct {
		Cursor    string `form:"cursor"`
		Limit     int    `form:"limit,default=10"`
		SortBy    string `form:"sortBy,default=createdAt"`
		SortOrder string `form:"sortOrder,default=desc"`
		Category  string `form:"category"`
		Status    string `form:"status"`
		MinPrice  string `form:"minPrice"`
		MaxPrice  string `form:"maxPrice"`
		Search    string `form:"search"`
	}

	var queryParams GetItemsQuery
	if err := c.ShouldBindQuery(&queryParams); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	minPrice, err := utils.ParsePrice(queryParams.MinPrice)
	if err != nil {
		utils.RespondValidationError(c, "minPrice: "+err.Error())
		return
	}
	maxPrice, err := utils.ParsePrice(queryParams.MaxPrice)
	if err != nil {
		utils.RespondValidationError(c, "maxPrice: "+err.Error())
		return
	}

	page, err := h.service.GetItems(pagination.Query{
		Filters: pagination.Filters{
			Category: queryParams.Category,
			Status:   queryParams.Status,
			MinPrice: minPrice,
			MaxPrice: maxPrice,
			Search:   queryParams.Search,
		},
		SortBy:    queryParams.SortBy,
		SortOrder: queryParams.SortOrder,
		Limit:     queryParams.Limit,
		Cursor:    queryParams.Cursor,
	})

	if err != nil {
		// 坏游标绝不静默回退到第一页，参数错误也不做兜底排序
		if errors.Is(err, pagination.ErrInvalidCursor) {
			utils.RespondError(c, http.StatusBadRequest, "Invalid cursor format")
		} else if errors.Is(err, pagination.ErrInvalidRequest) {
			utils.RespondError(c, http.StatusBadRequest, err.Error())
		} else {
			// 存储层错误原样透传，不在核心内部重试
			utils.RespondError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	var nextCursor *string
	if page.HasMore {
		nextCursor = &page.NextCursor
	}

	pagedData := PagedItemsData{
		Items: page.Items,
		Pagination: PaginationInfo{
			HasMore:    page.HasMore,
			NextCursor: nextCursor,
			Limit:      queryParams.Limit,
			Count:      len(page.Items),
		},
	}

	utils.RespondSuccess(c, http.StatusOK, pagedData, "物品列表获取成功")
}

// GetItemByID godoc
// @Summary 获取指定物品的详情
// @Description 根据路径参数 ID 获取单个物品的完整信息
// @Tags Items
// @Accept json
// @Produce json
// @Param id path int true "物品 ID"
// @Success 200 {object} utils.SuccessResponse{data=models.Item} "成功响应，包含物品详情"
// @Failure 400 {object} utils.ErrorResponse "无效的物品 ID"
// @Failure 401 {object} utils.ErrorResponse "未认证或 Token 无效/过期"
// @Failure 404 {object} utils.ErrorResponse "物品未找到"
// @Failure 500 {object} utils.ErrorResponse "服务器内部错误"
// @Router /items/{id} [get]
// @Security BearerAuth
func (h *ItemHandler) GetItemByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondValidationError(c, "无效的物品 ID")
		return
	}

	item, err := h.service.GetItemByID(id)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			utils.RespondNotFoundError(c, "物品")
		} else {
			utils.RespondInternalServerError(c, "获取物品详情失败", err.Error())
		}
		return
	}

	utils.RespondSuccess(c, http.StatusOK, item, "物品详情获取成功")
}

// UpdateItem godoc
// @Summary 更新指定物品
// @Description 根据路径参数 ID 更新物品的部分字段，未提供的字段保持不变
// @Tags Items
// @Accept json
// @Produce json
// @Param id path int true "物品 ID"
// @Param item body models.UpdateItemPayload true "要更新的字段"
// @Success 200 {object} utils.SuccessResponse{data=models.Item} "更新后的物品对象"
// @Failure 400 {object} utils.ErrorResponse "请求参数错误或数据校验失败"
// @Failure 401 {object} utils.ErrorResponse "未认证或 Token 无效/过期"
// @Failure 404 {object} utils.ErrorResponse "物品未找到"
// @Failure 500 {object} utils.ErrorResponse "服务器内部错误"
// @Router /items/{id} [put]
// @Security BearerAuth
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondValidationError(c, "无效的物品 ID")
		return
	}

	var payload models.UpdateItemPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	updatedItem, err := h.service.UpdateItem(id, payload)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			utils.RespondNotFoundError(c, "物品")
		} else if errors.Is(err, services.ErrInvalidItemName) ||
			errors.Is(err, services.ErrInvalidItemPrice) ||
			errors.Is(err, services.ErrInvalidItemStatus) {
			utils.RespondValidationError(c, err.Error())
		} else {
			utils.RespondInternalServerError(c, "更新物品失败", err.Error())
		}
		return
	}

	utils.RespondSuccess(c, http.StatusOK, updatedItem, "物品更新成功")
}

// DeleteItem godoc
// @Summary 删除指定物品
// @Description 根据路径参数 ID 软删除物品
// @Tags Items
// @Accept json
// @Produce json
// @Param id path int true "物品 ID"
// @Success 200 {object} utils.SuccessResponse "删除成功"
// @Failure 400 {object} utils.ErrorResponse "无效的物品 ID"
// @Failure 401 {object} utils.ErrorResponse "未认证或 Token 无效/过期"
// @Failure 404 {object} utils.ErrorResponse "物品未找到"
// @Failure 500 {object} utils.ErrorResponse "服务器内部错误"
// @Router /items/{id} [delete]
// @Security BearerAuth
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondValidationError(c, "无效的物品 ID")
		return
	}

	if err := h.service.DeleteItem(id); err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			utils.RespondNotFoundError(c, "物品")
		} else {
			utils.RespondInternalServerError(c, "删除物品失败", err.Error())
		}
		return
	}

	utils.RespondSuccess(c, http.StatusOK, nil, "物品删除成功")
}
