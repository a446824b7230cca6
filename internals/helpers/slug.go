// file: internals/helpers/slug.go
package helper

import (
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"
)

var (
	spaceRe = regexp.MustCompile(`\s+`)
	// huruf Arab/Persia tetap dipertahankan supaya slug kampanye tetap terbaca
	invalidRe  = regexp.MustCompile(`[^\x{0600}-\x{06FF}\x{0750}-\x{077F}\x{08A0}-\x{08FF}\x{FB50}-\x{FDFF}\x{FE70}-\x{FEFF}a-zA-Z0-9-]`)
	dashRe     = regexp.MustCompile(`-+`)
	trimDashRe = regexp.MustCompile(`^-+|-+$`)
)

// Slugify membuat slug URL-safe dari judul kampanye.
func Slugify(text string) string {
	s := strings.TrimSpace(text)
	s = spaceRe.ReplaceAllString(s, "-")
	s = invalidRe.ReplaceAllString(s, "")
	s = dashRe.ReplaceAllString(s, "-")
	s = trimDashRe.ReplaceAllString(s, "")
	return s
}

// EnsureUniqueSlug menambah suffix -1, -2, ... sampai slug belum terpakai.
// exists dicek lewat query count ke tabel terkait.
func EnsureUniqueSlug(db *gorm.DB, table, column, base string) (string, error) {
	slug := base
	for i := 1; ; i++ {
		var n int64
		if err := db.Table(table).Where(column+" = ?", slug).Count(&n).Error; err != nil {
			return "", err
		}
		if n == 0 {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
