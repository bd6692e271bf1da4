package domain

import "strings"

type SortOrder struct {
	Sort  string `bson:"sort" json:"sort"`   // 排序字段
	Order string `bson:"order" json:"order"` // 排序方式（asc 或 desc）
}

// Direction mongo 排序方向
func (s SortOrder) Direction() int {
	if strings.EqualFold(s.Order, "desc") {
		return -1
	}
	return 1
}
