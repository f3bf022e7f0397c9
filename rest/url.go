package rest

import (
	"net/url"
	"strings"
)

// BuildURL appends path segments to a base URL in order. Each segment is
// path-encoded; no other normalization is applied.
func BuildURL(base string, segments ...string) string {
	var sb strings.Builder
	sb.WriteString(strings.TrimRight(base, "/"))
	for _, segment := range segments {
		sb.WriteByte('/')
		sb.WriteString(url.PathEscape(segment))
	}
	return sb.String()
}
