package pkg

import (
	"strings"
	"unicode"
)

// Slugify 标签/分组 slug 生成：小写，空白转 '-'，去掉其他符号。
// 保留 unicode 字母数字，标签允许非拉丁文。
func Slugify(s string) string {
	var b strings.Builder
	lastDash := true // 抑制开头的 '-'
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case unicode.IsSpace(r) || r == '-' || r == '_':
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
