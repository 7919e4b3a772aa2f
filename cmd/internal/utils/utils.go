package utils

import (
	"net/url"
	"strings"
	"time"
)

func FormatEpoch(millis int64) string {
	return time.UnixMilli(millis).
		UTC().
		Format(time.RFC3339)
}

func NowUTC() int64 {
	return time.Now().
		UTC().
		UnixMilli()
}

// DownloadURL turns a path relative to the crawler root into the public
// download URL: each segment percent-escaped, slashes kept as separators.
// Company directories are named after the companies themselves, so spaces
// and umlauts are the norm.
func DownloadURL(baseURL, relPath string) string {
	segments := strings.Split(strings.Trim(relPath, "/"), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.Join(segments, "/")
}
