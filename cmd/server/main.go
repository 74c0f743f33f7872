// @title 物品目录管理 API
// @version 1.0
// @description 基于游标分页的物品 CRUD HTTP API，使用 JWT 认证。
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/item_management/configs"
	"github.com/item_management/internal/routes"
	"github.com/item_management/pkg/db"
)

func main() {
	// 加载应用配置
	configs.LoadConfig()

	// 初始化数据库连接
	db.InitDB()        // 从 pkg/db 调用 InitDB
	defer db.CloseDB() // 确保在 main 函数退出时关闭数据库连接

	router := gin.Default()

	// 设置API路由
	routes.SetupRoutes(router)

	port := configs.AppConfig.ServerPort
	log.Printf("Server starting on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
