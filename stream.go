package multipart

import (
	"fmt"
	"io"
)

// Decoder reads a multipart/form-data body from an [io.Reader] and parses
// it into a [Form].
type Decoder struct {
	r        io.Reader
	boundary string
}

// NewDecoder creates a [Decoder] that reads from r. The boundary is derived
// from contentType, which must be a multipart/form-data Content-Type header
// value carrying a boundary parameter.
func NewDecoder(r io.Reader, contentType string) (*Decoder, error) {
	boundary, err := ParseBoundaryFromHeader(contentType)
	if err != nil {
		return nil, err
	}
	return &Decoder{r: r, boundary: boundary}, nil
}

// Boundary returns the delimiter the decoder parses with, leading dashes
// included.
func (d *Decoder) Boundary() string {
	return d.boundary
}

// Decode reads the remainder of the underlying reader and parses it into
// form. It returns the body buffer it read: the form's file headers
// reference that buffer, so the caller must retain it for as long as the
// files are in use.
func (d *Decoder) Decode(form *Form) ([]byte, error) {
	body, err := io.ReadAll(d.r)
	if err != nil {
		return nil, fmt.Errorf("multipart: failed to read body: %w", err)
	}
	if err := ParseForm(body, d.boundary, form); err != nil {
		return nil, err
	}
	return body, nil
}
