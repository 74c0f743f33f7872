package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/item_management/internal/auth"
	"github.com/item_management/internal/handlers"
	"github.com/item_management/internal/repositories"
	"github.com/item_management/internal/services"
	"github.com/item_management/pkg/db"
)

// SetupItemRoutes 设置物品相关路由，全部需要JWT认证
func SetupItemRoutes(router *gin.RouterGroup) {
	itemRepo := repositories.NewGormItemRepository(db.GetDB())
	itemService := services.NewItemService(itemRepo)
	itemHandler := handlers.NewItemHandler(itemService)

	apiV1 := router.Group("/v1")
	itemGroup := apiV1.Group("/items")
	itemGroup.Use(auth.JWTMiddleware())
	{
		// POST /api/v1/items
		itemGroup.POST("", itemHandler.CreateItem)
		// GET /api/v1/items
		itemGroup.GET("", itemHandler.GetItems)
		// GET /api/v1/items/:id
		itemGroup.GET("/:id", itemHandler.GetItemByID)
		// PUT /api/v1/items/:id
		itemGroup.PUT("/:id", itemHandler.UpdateItem)
		// DELETE /api/v1/items/:id
		itemGroup.DELETE("/:id", itemHandler.DeleteItem)
	}
}
