// Package storeid turns user input (a Microsoft Store URL or a bare product
// ID) into the product identifier winget expects.
package storeid

import (
	"errors"
	"net/url"
	"strings"
)

var (
	// ErrEmptyInput is returned for empty or whitespace-only input.
	ErrEmptyInput = errors.New("no input provided")
	// ErrUnparseable is returned when a URL carries no usable identifier.
	ErrUnparseable = errors.New("could not parse a store ID")
)

// Resolve extracts a Store product ID from raw.
//
// Absolute URLs yield the last segment of the still-escaped path (or of the
// opaque part) with trailing slashes and any query remnant removed. Links
// like ms-windows-store://pdp/?ProductId=9ABC fall back to the ProductId
// query parameter. Anything else is returned trimmed and otherwise untouched.
func Resolve(raw string) (string, error) {
	input := strings.TrimSpace(raw)
	if input == "" {
		return "", ErrEmptyInput
	}

	u, err := url.Parse(input)
	if err != nil || !u.IsAbs() {
		return input, nil
	}

	if id := lastSegment(u); id != "" {
		return id, nil
	}
	if id := productIDParam(u); id != "" {
		return id, nil
	}
	return "", ErrUnparseable
}

func lastSegment(u *url.URL) string {
	path := u.EscapedPath()
	if u.Opaque != "" {
		path = u.Opaque
	}
	path = strings.TrimRight(path, "/")
	if path == "" {
		return ""
	}
	segs := strings.Split(path, "/")
	last := segs[len(segs)-1]
	if i := strings.IndexByte(last, '?'); i >= 0 {
		last = last[:i]
	}
	return last
}

func productIDParam(u *url.URL) string {
	for k, v := range u.Query() {
		if strings.EqualFold(k, "productid") && len(v) > 0 {
			return strings.TrimSpace(v[0])
		}
	}
	return ""
}
