package pagination

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// sortableColumns 把 API 暴露的排序字段名映射到数据库列名。
// 白名单校验 sortBy 字段，防止 SQL 注入；白名单之外的字段一律拒绝，
// 不做静默回退。
var sortableColumns = map[string]string{
	"createdAt": "created_at",
	"price":     "price",
	"name":      "name",
	"category":  "category",
	"status":    "status",
}

// Filters 描述列表查询的过滤条件。
// 指针字段区分 "未提供" 和 "显式为零值"（如 minPrice=0）。
type Filters struct {
	Category string
	Status   string
	MinPrice *float64
	MaxPrice *float64
	Search   string
}

// Query 是一次分页请求的全部输入，每次请求构造一次，不做持久化
type Query struct {
	Filters   Filters
	SortBy    string // 默认 createdAt
	SortOrder string // asc 或 desc，默认 desc
	Limit     int
	Cursor    string // 不透明游标令牌，可为空
}

// compiled 是编译结果：一组 GORM scope（过滤 + 游标谓词）加上 ORDER BY 子句
type compiled struct {
	scopes []func(*gorm.DB) *gorm.DB
	order  string
	sortBy string
}

// compile 把分页请求翻译为存储层的范围谓词和排序规则。
// 校验顺序：先请求参数（ErrInvalidRequest），再游标（ErrInvalidCursor），
// 全部通过后才可能触达数据库。
func compile(q Query) (*compiled, error) {
	if q.Limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive", ErrInvalidRequest)
	}

	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = FieldCreatedAt
	}
	column, ok := sortableColumns[sortBy]
	if !ok {
		return nil, fmt.Errorf("%w: unknown sort field %q", ErrInvalidRequest, q.SortBy)
	}

	sortOrder := strings.ToLower(q.SortOrder)
	if sortOrder == "" {
		sortOrder = "desc"
	}
	if sortOrder != "asc" && sortOrder != "desc" {
		return nil, fmt.Errorf("%w: sortOrder must be 'asc' or 'desc'", ErrInvalidRequest)
	}

	c := &compiled{sortBy: sortBy}
	c.scopes = append(c.scopes, filterScope(q.Filters))

	if q.Cursor != "" {
		payload, err := Decode(q.Cursor)
		if err != nil {
			return nil, err
		}
		// 游标中嵌入的排序字段必须与本次请求一致。
		// 若客户端换了 sortBy 却沿用旧游标，混用两种排序语义的页面没有意义，
		// 在此显式拒绝而不是信任游标中的字段。
		if payload.Field != sortBy {
			return nil, fmt.Errorf("%w: cursor sort field %q does not match request sort field %q",
				ErrInvalidRequest, payload.Field, sortBy)
		}
		c.scopes = append(c.scopes, cursorScope(payload, column, sortOrder))
	}

	// 主排序键之后始终追加 created_at 同方向排序作为决胜键，
	// 保证排序字段取值重复时仍是全序，翻页不会漏掉或重复记录
	if sortBy == FieldCreatedAt {
		c.order = "created_at " + sortOrder
	} else {
		c.order = fmt.Sprintf("%s %s, created_at %s", column, sortOrder, sortOrder)
	}

	return c, nil
}

// filterScope 把过滤条件翻译为 WHERE 子句。
// 等值过滤直接翻译；价格区间为闭区间；search 对名称和描述做
// 大小写不敏感的子串匹配，二者取 OR，再与其余条件取 AND。
func filterScope(f Filters) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if f.Category != "" {
			tx = tx.Where("category = ?", f.Category)
		}
		if f.Status != "" {
			tx = tx.Where("status = ?", f.Status)
		}
		if f.MinPrice != nil {
			tx = tx.Where("price >= ?", *f.MinPrice)
		}
		if f.MaxPrice != nil {
			tx = tx.Where("price <= ?", *f.MaxPrice)
		}
		if f.Search != "" {
			term := "%" + strings.ToLower(f.Search) + "%"
			tx = tx.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", term, term)
		}
		return tx
	}
}

// cursorScope 把解码后的游标位置翻译为键集（keyset）谓词。
// 设游标值为 (v, c)，比较符 cmp 在 desc 时为 <、asc 时为 >：
//   - 排序字段就是 createdAt 时：created_at cmp c
//   - 否则：(col cmp v) OR (col = v AND created_at cmp c)
//
// 第二个析取项正是排序字段取值重复时分页不漏不重的关键：
// 严格越过游标主值的行排在前面，与主值并列的行由决胜键继续切分。
func cursorScope(p Payload, column, sortOrder string) func(*gorm.DB) *gorm.DB {
	cmp := "<"
	if sortOrder == "asc" {
		cmp = ">"
	}
	return func(tx *gorm.DB) *gorm.DB {
		if p.Field == FieldCreatedAt {
			return tx.Where(fmt.Sprintf("created_at %s ?", cmp), p.CreatedAt)
		}
		return tx.Where(
			fmt.Sprintf("(%s %s ?) OR (%s = ? AND created_at %s ?)", column, cmp, column, cmp),
			p.Value, p.Value, p.CreatedAt,
		)
	}
}
