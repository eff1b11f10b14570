package repository

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// dbDialectName 获取数据库方言名称，默认按 sqlite 处理。
func dbDialectName(db *gorm.DB) string {
	if db == nil || db.Dialector == nil {
		return "sqlite"
	}
	name := strings.ToLower(strings.TrimSpace(db.Dialector.Name()))
	if name == "" {
		return "sqlite"
	}
	return name
}

// caseInsensitiveLike 构建不区分大小写的模糊匹配条件。
func caseInsensitiveLike(db *gorm.DB, column string) string {
	return caseInsensitiveLikeByDialect(dbDialectName(db), column)
}

func caseInsensitiveLikeByDialect(dialect, column string) string {
	switch strings.ToLower(strings.TrimSpace(dialect)) {
	case "postgres", "postgresql":
		return fmt.Sprintf("%s ILIKE ?", column)
	default:
		// sqlite / mysql 统一转小写后比较
		return fmt.Sprintf("LOWER(%s) LIKE ?", column)
	}
}

// buildSearchCondition 生成多列 OR 模糊匹配条件，返回条件与参数个数。
func buildSearchCondition(db *gorm.DB, columns []string) (string, int) {
	parts := make([]string, 0, len(columns))
	for _, column := range columns {
		parts = append(parts, caseInsensitiveLike(db, column))
	}
	return "(" + strings.Join(parts, " OR ") + ")", len(parts)
}

func repeatLikeArgs(like string, count int) []interface{} {
	args := make([]interface{}, 0, count)
	for i := 0; i < count; i++ {
		args = append(args, like)
	}
	return args
}
