package catalog

import (
	"crypto/rand"
	"regexp"
	"strings"
)

// DefaultColorCode 无颜色商品的 SKU 颜色段
const DefaultColorCode = "DEFAULT"

const skuSuffixLength = 3

const base36Charset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var whitespaceRun = regexp.MustCompile(`\s+`)

// GenerateSKU 生成库存编码："<名称首字母>-<颜色段>-<3 位随机 base36>"。
// 唯一性是概率性的，由数据库唯一索引兜底，冲突时调用方换后缀重试。
func GenerateSKU(name, color string) string {
	return initials(name) + "-" + colorCode(color) + "-" + randomSuffix(skuSuffixLength)
}

// initials 取每个空白分隔单词的首字母并大写拼接
func initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		runes := []rune(word)
		b.WriteString(strings.ToUpper(string(runes[0])))
	}
	return b.String()
}

// colorCode 颜色段：大写、空白压缩为连字符，缺省为 DEFAULT
func colorCode(color string) string {
	trimmed := strings.TrimSpace(color)
	if trimmed == "" {
		return DefaultColorCode
	}
	return whitespaceRun.ReplaceAllString(strings.ToUpper(trimmed), "-")
}

func randomSuffix(length int) string {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand 失败极罕见，退化为固定字符仍满足格式
		return strings.Repeat("0", length)
	}
	out := make([]byte, length)
	for i, b := range buf {
		out[i] = base36Charset[int(b)%len(base36Charset)]
	}
	return string(out)
}
