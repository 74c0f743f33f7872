package pagination

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"
)

// FieldCreatedAt 是默认排序字段，同时也是所有排序的最终决胜字段。
// createdAt 在插入时单调赋值且不可变，因此可以保证游标位置的全序。
const FieldCreatedAt = "createdAt"

var (
	// ErrInvalidCursor 表示游标令牌无法解码或内容不合法
	ErrInvalidCursor = errors.New("invalid cursor format")
	// ErrInvalidRequest 表示分页请求参数不合法（如 limit 非正数、未知排序字段）
	ErrInvalidRequest = errors.New("invalid pagination request")
)

// cursorEncoding 使用无填充的 URL 安全 base64，令牌可直接放入查询参数
var cursorEncoding = base64.RawURLEncoding

// Payload 记录上一页最后一条记录的排序位置。
// Field 是排序字段名；Value 是该记录在排序字段上的取值；
// CreatedAt 始终存在，作为决胜键。当 Field 为 createdAt 时 Value 省略，
// 位置信息折叠进 CreatedAt 一个字段。
type Payload struct {
	Field     string    `json:"field"`
	Value     any       `json:"value,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Encode 将 Payload 序列化为不透明的游标令牌
func Encode(p Payload) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return cursorEncoding.EncodeToString(data), nil
}

// Decode 将游标令牌还原为 Payload。
// 任何一步失败（base64 非法、JSON 结构错误、字段缺失或不在白名单内）
// 都返回 ErrInvalidCursor，绝不返回部分填充的 Payload。
func Decode(token string) (Payload, error) {
	data, err := cursorEncoding.DecodeString(token)
	if err != nil {
		return Payload{}, ErrInvalidCursor
	}

	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return Payload{}, ErrInvalidCursor
	}

	// 字段名必须在可排序白名单内
	if _, ok := sortableColumns[p.Field]; !ok {
		return Payload{}, ErrInvalidCursor
	}
	// 决胜键必须存在
	if p.CreatedAt.IsZero() {
		return Payload{}, ErrInvalidCursor
	}
	// Field 为 createdAt 时不应携带额外的 Value；其他字段必须携带
	if p.Field == FieldCreatedAt {
		if p.Value != nil {
			return Payload{}, ErrInvalidCursor
		}
	} else if p.Value == nil {
		return Payload{}, ErrInvalidCursor
	}

	return p, nil
}
