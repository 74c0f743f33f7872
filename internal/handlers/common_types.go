package handlers

// PaginationInfo 定义了游标分页响应中的分页信息结构
type PaginationInfo struct {
	HasMore    bool    `json:"hasMore"`    // 是否还有下一页
	NextCursor *string `json:"nextCursor"` // 下一页游标，没有下一页时为 null
	Limit      int     `json:"limit"`      // 本次请求的页大小
	Count      int     `json:"count"`      // 本页实际返回的记录数
}
