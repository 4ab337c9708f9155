package multipart

import (
	"bytes"
	"errors"
	"strings"
)

// maxDelimiterLen bounds the full delimiter, leading dashes included. RFC
// 2046 limits the boundary token itself to 70 characters.
const maxDelimiterLen = 72

var (
	// ErrNoBoundary is returned when no boundary delimiter can be located
	// in the input.
	ErrNoBoundary = errors.New("multipart: no boundary found")

	// ErrNotMultipart is returned when a Content-Type value does not
	// describe a multipart/form-data body.
	ErrNotMultipart = errors.New("multipart: content type is not multipart/form-data")

	// ErrBoundaryTooLong is returned when the delimiter exceeds the
	// maximum length permitted by RFC 2046.
	ErrBoundaryTooLong = errors.New("multipart: boundary exceeds maximum length")
)

const formDataType = "multipart/form-data"

// ParseBoundary extracts the boundary delimiter from the first line of a
// request body. The line already carries the leading dashes, so the result
// can be passed directly to [ParseForm].
func ParseBoundary(body []byte) (string, error) {
	end := bytes.Index(body, crlf)
	if end < 0 {
		return "", ErrNoBoundary
	}
	if end > maxDelimiterLen {
		return "", ErrBoundaryTooLong
	}
	return string(body[:end]), nil
}

// ParseBoundaryFromHeader extracts the boundary from a Content-Type header
// value. The header's boundary token lacks the leading dashes that precede
// every delimiter in the body, so the result is prefixed with "--" and is
// identical to what [ParseBoundary] yields for the same form.
func ParseBoundaryFromHeader(contentType string) (string, error) {
	if len(contentType) < len(formDataType) || !strings.EqualFold(contentType[:len(formDataType)], formDataType) {
		return "", ErrNotMultipart
	}

	const param = "boundary="
	start := strings.Index(contentType, param)
	if start < 0 {
		return "", ErrNoBoundary
	}

	token := contentType[start+len(param):]
	if len(token) == 0 {
		return "", ErrNoBoundary
	}
	if len(token)+2 > maxDelimiterLen {
		return "", ErrBoundaryTooLong
	}
	return "--" + token, nil
}
