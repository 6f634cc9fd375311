package catalog

import (
	"fmt"
	"strings"

	"github.com/gosimple/slug"
)

// Slugify 生成 URL 标识：名称小写、非字母数字压缩为单个连字符、
// 去除首尾连字符；颜色存在时以 "<name>-<color>" 形式追加。
// 本函数不保证唯一性，冲突由调用方按 SlugWithID 策略消解。
func Slugify(name, color string) string {
	base := slug.Make(name)
	colorPart := slug.Make(strings.TrimSpace(color))
	if colorPart == "" {
		return base
	}
	if base == "" {
		return colorPart
	}
	return base + "-" + colorPart
}

// SlugWithID 冲突消解策略：追加数据行 ID，结果确定且全局唯一。
func SlugWithID(baseSlug string, id uint) string {
	return fmt.Sprintf("%s-%d", baseSlug, id)
}
