package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/item_management/docs" // 注册 swagger 文档
)

// SetupRoutes 初始化所有路由
func SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")
	SetupAuthRoutes(api) // 注册认证路由
	SetupItemRoutes(api) // 注册物品路由

	// Swagger UI: /swagger/index.html
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
