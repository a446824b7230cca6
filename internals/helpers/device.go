// file: internals/helpers/device.go
package helper

import "strings"

// Klasifikasi kasar device/OS dari User-Agent untuk reading_logs.
// Cukup untuk dashboard statistik; tidak perlu parser UA penuh.

func ClassifyDevice(ua string) string {
	s := strings.ToLower(ua)
	switch {
	case s == "":
		return "unknown"
	case strings.Contains(s, "ipad") || strings.Contains(s, "tablet"):
		return "tablet"
	case strings.Contains(s, "mobi") || strings.Contains(s, "android") || strings.Contains(s, "iphone"):
		return "mobile"
	case strings.Contains(s, "bot") || strings.Contains(s, "crawler") || strings.Contains(s, "spider"):
		return "bot"
	default:
		return "desktop"
	}
}

func ClassifyOS(ua string) string {
	s := strings.ToLower(ua)
	switch {
	case strings.Contains(s, "android"):
		return "android"
	case strings.Contains(s, "iphone") || strings.Contains(s, "ipad") || strings.Contains(s, "ios"):
		return "ios"
	case strings.Contains(s, "windows"):
		return "windows"
	case strings.Contains(s, "mac os") || strings.Contains(s, "macintosh"):
		return "macos"
	case strings.Contains(s, "linux"):
		return "linux"
	default:
		return "other"
	}
}
