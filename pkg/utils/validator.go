package utils

import (
	"errors"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	ErrInvalidPriceFormat = errors.New("无效的价格格式，必须是非负数字")
	ErrEmptyUsername      = errors.New("用户名不能为空")
	ErrPasswordTooShort   = errors.New("密码长度不能少于6位")
)

// categoryCaser 用于分类名称的大小写归一化
var categoryCaser = cases.Title(language.Und)

// ParsePrice 解析查询参数中的价格字符串。
// 空字符串返回 nil（表示该过滤条件未提供）；非法或负数价格返回错误。
func ParsePrice(s string) (*float64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || v < 0 {
		return nil, ErrInvalidPriceFormat
	}
	return &v, nil
}

// NormalizeCategory 归一化分类名称：去除首尾空白并统一为标题大小写，
// 使等值过滤不受录入时大小写差异的影响。
func NormalizeCategory(category string) string {
	trimmed := strings.TrimSpace(category)
	if trimmed == "" {
		return ""
	}
	return categoryCaser.String(strings.ToLower(trimmed))
}

// ValidateCredentials 校验注册/登录凭证的基本格式。
func ValidateCredentials(username, password string) error {
	if strings.TrimSpace(username) == "" {
		return ErrEmptyUsername
	}
	if len(password) < 6 {
		return ErrPasswordTooShort
	}
	return nil
}
