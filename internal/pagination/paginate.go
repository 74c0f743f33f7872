package pagination

import (
	"time"

	"gorm.io/gorm"
)

// Cursorable 由可分页的模型实现，用于从页尾记录提取游标位置。
// 动态的 item[sortBy] 取值在这里收敛为一个封闭的字段集合，
// 白名单之外的字段在编译阶段就已被拒绝。
type Cursorable interface {
	// CursorValue 返回记录在指定排序字段上的取值（字段为 createdAt 时不会被调用）
	CursorValue(field string) any
	// CursorTime 返回记录的 createdAt，即游标的决胜键
	CursorTime() time.Time
}

// Page 是一次分页查询的结果，返回后不再修改
type Page[T Cursorable] struct {
	Items      []T
	HasMore    bool
	NextCursor string // HasMore 为 false 时为空
}

// StorageError 包装底层查询执行失败，错误信息原样向上传递。
// 核心内部不做重试，是否重试由外层决定。
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Paginate 执行一次分页查询：编译请求、超额抓取 limit+1 行探测是否有下一页、
// 截断到 limit 并为页尾记录生成下一页游标。整个过程无共享状态，
// 对同一集合的并发请求无需加锁。
func Paginate[T Cursorable](db *gorm.DB, q Query) (*Page[T], error) {
	c, err := compile(q)
	if err != nil {
		return nil, err
	}

	var rows []T
	tx := db
	for _, scope := range c.scopes {
		tx = scope(tx)
	}
	// 多取一行用于探测下一页，避免第二次查询
	if err := tx.Order(c.order).Limit(q.Limit + 1).Find(&rows).Error; err != nil {
		return nil, &StorageError{Err: err}
	}

	hasMore := len(rows) > q.Limit
	if hasMore {
		rows = rows[:q.Limit]
	}
	if rows == nil {
		rows = make([]T, 0)
	}

	page := &Page[T]{Items: rows, HasMore: hasMore}
	if hasMore {
		last := rows[len(rows)-1]
		payload := Payload{Field: c.sortBy, CreatedAt: last.CursorTime()}
		if c.sortBy != FieldCreatedAt {
			payload.Value = last.CursorValue(c.sortBy)
		}
		token, err := Encode(payload)
		if err != nil {
			return nil, err
		}
		page.NextCursor = token
	}

	return page, nil
}
