// file: internals/helpers/slug_test.go
package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Khatm Ramadan 2026", "Khatm-Ramadan-2026"},
		{"  spasi   berlebih  ", "spasi-berlebih"},
		{"ختم قرآن جمعی", "ختم-قرآن-جمعی"},
		{"دعای عرفه ۱", "دعای-عرفه-۱"},
		{"Mixed ختم 7", "Mixed-ختم-7"},
		{"a!!b??c", "abc"},
		{"--sudah--dash--", "sudah-dash"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in), "input %q", tc.in)
	}
}

func TestClassifyDevice(t *testing.T) {
	cases := map[string]string{
		"":             "unknown",
		"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)":  "mobile",
		"Mozilla/5.0 (Linux; Android 14; SM-S921B) Mobile Safari": "mobile",
		"Mozilla/5.0 (iPad; CPU OS 17_0 like Mac OS X)":           "tablet",
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64)":               "desktop",
		"Googlebot/2.1 (+http://www.google.com/bot.html)":         "bot",
	}
	for ua, want := range cases {
		assert.Equal(t, want, ClassifyDevice(ua), "ua %q", ua)
	}
}

func TestClassifyOS(t *testing.T) {
	cases := map[string]string{
		"Mozilla/5.0 (Linux; Android 14)":             "android",
		"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0)":    "ios",
		"Mozilla/5.0 (Windows NT 10.0)":               "windows",
		"Mozilla/5.0 (Macintosh; Intel Mac OS X)":     "macos",
		"Mozilla/5.0 (X11; Linux x86_64)":             "linux",
		"curl/8.4.0":                                  "other",
	}
	for ua, want := range cases {
		assert.Equal(t, want, ClassifyOS(ua), "ua %q", ua)
	}
}
