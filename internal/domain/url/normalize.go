// Package url resolves bookmark hyperlinks to cache hosts.
package url

import (
	"net/url"
	"path/filepath"
	"strings"
	"time"
)

// ExtractHost returns the lowercased host of an absolute URL.
// It reports false for relative links, malformed URLs, and schemes without
// a host (javascript:, place:, file:///...). Unresolvable links are not errors.
func ExtractHost(href string) (string, bool) {
	href = strings.TrimSpace(href)
	if href == "" {
		return "", false
	}
	parsed, err := url.Parse(href)
	if err != nil || parsed.Host == "" {
		return "", false
	}
	host := strings.ToLower(parsed.Hostname())
	if host == "" {
		return "", false
	}
	return host, true
}

// outputTimestampLayout matches YYYY-MM-DD-HHMMSS.
const outputTimestampLayout = "2006-01-02-150405"

// OutputFilename derives the default output path for an input document:
// <dir>/<stem>-with-favicons--YYYY-MM-DD-HHMMSS.<ext>
// The extension defaults to "html" when the input has none.
func OutputFilename(input string, now time.Time) string {
	dir := filepath.Dir(input)
	base := filepath.Base(input)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if stem == "" || stem == "." || stem == string(filepath.Separator) {
		stem = "output"
	}
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		ext = "html"
	}

	name := stem + "-with-favicons--" + now.Format(outputTimestampLayout) + "." + ext
	if dir == "." || dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}
