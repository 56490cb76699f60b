package models

import "github.com/google/uuid"

// ensureID 为文档型主键生成 ID（与托管文档库一致，使用字符串 ID）
func ensureID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}
