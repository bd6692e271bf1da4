package domain_util

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/mozillazg/go-pinyin"
)

var invalidCharRegex = regexp.MustCompile(`[\x00-\x1F\x7F\x{200B}-\x{200F}\x{2028}\x{2029}\x{FEFF}]`)

// ContainsInvalidChars 控制字符与零宽字符检测
func ContainsInvalidChars(word string) bool {
	return invalidCharRegex.MatchString(word)
}

// SanitizeText 去除首尾空白与不可见字符
func SanitizeText(s string) string {
	return strings.TrimSpace(invalidCharRegex.ReplaceAllString(s, ""))
}

// OrderTitle 排序键：汉字转拼音，其余字符小写
func OrderTitle(name string) string {
	var b strings.Builder
	for _, r := range SanitizeText(name) {
		if unicode.Is(unicode.Han, r) {
			py := pinyin.LazyConvert(string(r), nil)
			if len(py) > 0 {
				b.WriteString(py[0])
				continue
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// NormalizeGenres 去空白，忽略大小写去重，保留首次出现的写法
func NormalizeGenres(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, g := range in {
		g = strings.TrimSpace(g)
		key := strings.ToLower(g)
		if g == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, g)
	}
	return out
}
