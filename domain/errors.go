package domain

import "errors"

// ErrNotFound 实体不存在
var ErrNotFound = errors.New("entity not found")

// ErrDuplicate 唯一索引冲突
var ErrDuplicate = errors.New("entity already exists")
