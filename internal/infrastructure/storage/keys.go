package storage

import (
	"path"
	"strings"

	"github.com/rs/xid"
)

// ObjectName generates a fresh random object name preserving the original
// file extension, so a replaced headshot never collides with the old one.
func ObjectName(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return xid.New().String() + ext
}

// KeyFromURL extracts the object key from a public URL previously returned
// by Upload. Returns "" for an empty URL.
func KeyFromURL(url string) string {
	if url == "" {
		return ""
	}
	idx := strings.LastIndex(url, "/")
	if idx < 0 || idx == len(url)-1 {
		return ""
	}
	return url[idx+1:]
}
