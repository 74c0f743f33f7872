package pagination

import (
	"encoding/base64"
	"errors"
	"testing"
	"time"
)

func TestCursorRoundTrip(t *testing.T) {
	// 对任意合法 Payload，decode(encode(p)) 应还原出相同内容
	testCases := []struct {
		name    string
		payload Payload
	}{
		{
			name: "createdAt 排序（位置折叠为单字段）",
			payload: Payload{
				Field:     FieldCreatedAt,
				CreatedAt: time.Date(2025, 6, 1, 12, 30, 45, 123456000, time.UTC),
			},
		},
		{
			name: "price 排序（数值型排序值）",
			payload: Payload{
				Field:     "price",
				Value:     float64(1999.99),
				CreatedAt: time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "name 排序（字符串型排序值）",
			payload: Payload{
				Field:     "name",
				Value:     "Laptop Pro",
				CreatedAt: time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			token, err := Encode(tc.payload)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}

			got, err := Decode(token)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}

			if got.Field != tc.payload.Field {
				t.Errorf("Field = %q, want %q", got.Field, tc.payload.Field)
			}
			if !got.CreatedAt.Equal(tc.payload.CreatedAt) {
				t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, tc.payload.CreatedAt)
			}
			if tc.payload.Value != nil && got.Value != tc.payload.Value {
				t.Errorf("Value = %v, want %v", got.Value, tc.payload.Value)
			}
			if tc.payload.Value == nil && got.Value != nil {
				t.Errorf("Value = %v, want nil", got.Value)
			}
		})
	}
}

func TestDecodeRejectsInvalidInput(t *testing.T) {
	// 任意不合规的输入都应返回 ErrInvalidCursor，而不是 panic 或部分结果
	encode := func(s string) string {
		return base64.RawURLEncoding.EncodeToString([]byte(s))
	}

	testCases := []struct {
		name  string
		token string
	}{
		{"非 base64 字符", "!!!not-base64!!!"},
		{"base64 但不是 JSON", encode("hello world")},
		{"JSON 但结构不符", encode(`[1,2,3]`)},
		{"排序字段不在白名单内", encode(`{"field":"secret","value":1,"createdAt":"2025-06-01T00:00:00Z"}`)},
		{"缺少决胜键 createdAt", encode(`{"field":"price","value":10}`)},
		{"createdAt 排序却携带多余的排序值", encode(`{"field":"createdAt","value":10,"createdAt":"2025-06-01T00:00:00Z"}`)},
		{"非 createdAt 排序却缺少排序值", encode(`{"field":"price","createdAt":"2025-06-01T00:00:00Z"}`)},
		{"createdAt 不是合法时间", encode(`{"field":"price","value":10,"createdAt":"yesterday"}`)},
		{"空令牌对应的空 JSON", encode("")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Decode(tc.token)
			if !errors.Is(err, ErrInvalidCursor) {
				t.Fatalf("Decode(%q) error = %v, want ErrInvalidCursor", tc.token, err)
			}
			if got.Field != "" || got.Value != nil || !got.CreatedAt.IsZero() {
				t.Errorf("Decode(%q) returned partial payload %+v, want zero value", tc.token, got)
			}
		})
	}
}
