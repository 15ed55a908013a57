// Package siteurl resolves hrefs found on crawled pages and derives the keys
// used to recognise a page that has already been visited.
package siteurl

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
)

var (
	ErrEmptyHref    = errors.New("siteurl: empty href")
	ErrNotAbsolute  = errors.New("siteurl: base url must be absolute")
	ErrUnsupported  = errors.New("siteurl: unsupported scheme")
	errEmptyPageURL = errors.New("siteurl: empty page url")
)

// Resolve turns href into an absolute http(s) URL relative to base.
// Fragment-only, javascript: and mailto: links are rejected.
func Resolve(base, href string) (string, error) {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return "", ErrEmptyHref
	}

	baseURL, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("siteurl: parse base %q: %w", base, err)
	}
	if !baseURL.IsAbs() || baseURL.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrNotAbsolute, base)
	}

	ref, err := url.Parse(href)
	if err != nil {
		return "", fmt.Errorf("siteurl: parse href %q: %w", href, err)
	}

	resolved := baseURL.ResolveReference(ref)
	switch resolved.Scheme {
	case "http", "https":
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupported, resolved.Scheme)
	}
	resolved.Fragment = ""

	return resolved.String(), nil
}

// PrefixBase prepends base to a root-relative raw URL ("/news/x").
// Anything else, including scheme-relative "//host" URLs, is returned as-is.
func PrefixBase(base, raw string) string {
	if strings.HasPrefix(raw, "/") && !strings.HasPrefix(raw, "//") {
		return strings.TrimRight(base, "/") + raw
	}
	return raw
}

// IsAbsolute reports whether raw carries both a scheme and a host.
func IsAbsolute(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.IsAbs() && u.Host != ""
}

// PageKey reduces a page URL to a comparison key: scheme and host lowercased,
// default port, fragment and trailing slash removed, query kept sorted.
func PageKey(raw string) (string, error) {
	if raw == "" {
		return "", errEmptyPageURL
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("siteurl: page key: %w", err)
	}

	scheme := strings.ToLower(u.Scheme)
	host := strings.ToLower(u.Hostname())
	if port := u.Port(); port != "" && !isDefaultPort(scheme, port) {
		host += ":" + port
	}

	p := u.EscapedPath()
	if p != "" {
		p = path.Clean(p)
	}
	p = strings.TrimSuffix(p, "/")

	key := scheme + "://" + host + p
	if q := u.Query(); len(q) > 0 {
		key += "?" + q.Encode()
	}
	return key, nil
}

func isDefaultPort(scheme, port string) bool {
	return (scheme == "http" && port == "80") || (scheme == "https" && port == "443")
}
