package utils

import (
	"strings"
	"unicode"

	"github.com/speps/go-hashids/v2"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// GenHashID 把自增 ID 编码为不可猜测的短串
func GenHashID(salt string, id int64) (string, error) {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = 12
	h, err := hashids.NewWithData(hd)
	if err != nil {
		return "", err
	}
	return h.EncodeInt64([]int64{id})
}

// Slugify 生成 URL 友好的标识: 去掉重音, 小写, 非字母数字折叠为单个 "-"
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// Paginate 规范化分页参数
func Paginate(page, limit, maxLimit int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > maxLimit {
		limit = maxLimit
	}
	return page, limit, (page - 1) * limit
}
