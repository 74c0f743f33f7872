package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/item_management/internal/models"
	"github.com/item_management/internal/repositories"
	"github.com/item_management/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupItemRouter 构建一个带内存数据库的测试路由。
// 这里不挂载JWT中间件，认证在 internal/auth 的测试中单独覆盖。
func setupItemRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}
	if err := db.AutoMigrate(&models.Item{}); err != nil {
		t.Fatalf("Failed to migrate items table: %v", err)
	}

	handler := NewItemHandler(services.NewItemService(repositories.NewGormItemRepository(db)))

	router := gin.New()
	itemGroup := router.Group("/api/v1/items")
	{
		itemGroup.POST("", handler.CreateItem)
		itemGroup.GET("", handler.GetItems)
		itemGroup.GET("/:id", handler.GetItemByID)
		itemGroup.PUT("/:id", handler.UpdateItem)
		itemGroup.DELETE("/:id", handler.DeleteItem)
	}
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// 测试用的响应信封结构
type itemEnvelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    models.Item `json:"data"`
}

type pagedEnvelope struct {
	Success bool           `json:"success"`
	Data    PagedItemsData `json:"data"`
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func decodeInto(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("Failed to decode response %s: %v", w.Body.String(), err)
	}
}

func TestItemCRUDLifecycle(t *testing.T) {
	router := setupItemRouter(t)

	// 创建
	w := doRequest(t, router, http.MethodPost, "/api/v1/items", CreateItemPayload{
		Name:        "Laptop Pro",
		Description: "15 inch workstation",
		Category:    "electronics",
		Price:       1999.99,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", w.Code, w.Body.String())
	}
	var created itemEnvelope
	decodeInto(t, w, &created)
	if !created.Success || created.Data.ID == 0 {
		t.Fatalf("create response = %+v", created)
	}
	// 分类名称应被归一化
	if created.Data.Category != "Electronics" {
		t.Errorf("category = %q, want normalized %q", created.Data.Category, "Electronics")
	}
	if created.Data.Status != models.ItemStatusAvailable {
		t.Errorf("status = %q, want default %q", created.Data.Status, models.ItemStatusAvailable)
	}

	itemPath := fmt.Sprintf("/api/v1/items/%d", created.Data.ID)

	// 查询详情
	w = doRequest(t, router, http.MethodGet, itemPath, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d, body = %s", w.Code, w.Body.String())
	}

	// 部分更新：只改价格和状态，名称保持不变
	newPrice := 1799.0
	newStatus := models.ItemStatusReserved
	w = doRequest(t, router, http.MethodPut, itemPath, models.UpdateItemPayload{
		Price:  &newPrice,
		Status: &newStatus,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d, body = %s", w.Code, w.Body.String())
	}
	var updated itemEnvelope
	decodeInto(t, w, &updated)
	if updated.Data.Price != newPrice || updated.Data.Status != newStatus {
		t.Errorf("updated item = %+v", updated.Data)
	}
	if updated.Data.Name != "Laptop Pro" {
		t.Errorf("name changed to %q after partial update", updated.Data.Name)
	}
	if !updated.Data.CreatedAt.Equal(created.Data.CreatedAt) {
		t.Errorf("createdAt mutated by update: %v -> %v", created.Data.CreatedAt, updated.Data.CreatedAt)
	}

	// 删除后再查询应返回404
	w = doRequest(t, router, http.MethodDelete, itemPath, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d, body = %s", w.Code, w.Body.String())
	}
	w = doRequest(t, router, http.MethodGet, itemPath, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("get after delete status = %d, want 404", w.Code)
	}
	w = doRequest(t, router, http.MethodDelete, itemPath, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("delete twice status = %d, want 404", w.Code)
	}
}

func TestGetItemsPaginationFlow(t *testing.T) {
	router := setupItemRouter(t)

	for i := 1; i <= 3; i++ {
		w := doRequest(t, router, http.MethodPost, "/api/v1/items", CreateItemPayload{
			Name:  fmt.Sprintf("item%d", i),
			Price: float64(i),
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("seed create status = %d, body = %s", w.Code, w.Body.String())
		}
	}

	// 第一页：默认按创建时间降序
	w := doRequest(t, router, http.MethodGet, "/api/v1/items?limit=2&sortOrder=desc", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d, body = %s", w.Code, w.Body.String())
	}
	var first pagedEnvelope
	decodeInto(t, w, &first)
	if len(first.Data.Items) != 2 ||
		first.Data.Items[0].Name != "item3" || first.Data.Items[1].Name != "item2" {
		t.Fatalf("first page items = %+v, want [item3, item2]", first.Data.Items)
	}
	if !first.Data.Pagination.HasMore || first.Data.Pagination.NextCursor == nil {
		t.Fatalf("first page pagination = %+v", first.Data.Pagination)
	}
	if first.Data.Pagination.Limit != 2 || first.Data.Pagination.Count != 2 {
		t.Errorf("pagination limit/count = %d/%d, want 2/2",
			first.Data.Pagination.Limit, first.Data.Pagination.Count)
	}

	// 第二页：串联游标
	w = doRequest(t, router, http.MethodGet,
		"/api/v1/items?limit=2&sortOrder=desc&cursor="+*first.Data.Pagination.NextCursor, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("second list status = %d, body = %s", w.Code, w.Body.String())
	}
	var second pagedEnvelope
	decodeInto(t, w, &second)
	if len(second.Data.Items) != 1 || second.Data.Items[0].Name != "item1" {
		t.Fatalf("second page items = %+v, want [item1]", second.Data.Items)
	}
	if second.Data.Pagination.HasMore || second.Data.Pagination.NextCursor != nil {
		t.Errorf("second page pagination = %+v, want final page", second.Data.Pagination)
	}
}

func TestGetItemsRejectsBadInput(t *testing.T) {
	router := setupItemRouter(t)

	testCases := []struct {
		name        string
		path        string
		wantMessage string
	}{
		{"坏游标返回固定错误信息", "/api/v1/items?cursor=not-a-cursor", "Invalid cursor format"},
		{"limit为零", "/api/v1/items?limit=0", ""},
		{"limit为负数", "/api/v1/items?limit=-5", ""},
		{"未知排序字段", "/api/v1/items?sortBy=popularity", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(t, router, http.MethodGet, tc.path, nil)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400, body = %s", w.Code, w.Body.String())
			}
			var resp errorEnvelope
			decodeInto(t, w, &resp)
			if resp.Success {
				t.Error("success = true in error response")
			}
			if tc.wantMessage != "" && resp.Message != tc.wantMessage {
				t.Errorf("message = %q, want %q", resp.Message, tc.wantMessage)
			}
		})
	}
}

func TestCreateItemValidation(t *testing.T) {
	router := setupItemRouter(t)

	t.Run("缺少名称", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/v1/items", map[string]interface{}{
			"price": 10,
		})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})

	t.Run("非法状态", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/v1/items", map[string]interface{}{
			"name":   "x",
			"status": "exploded",
		})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})

	t.Run("负价格", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/v1/items", map[string]interface{}{
			"name":  "x",
			"price": -1,
		})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})
}
