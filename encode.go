package multipart

import "bytes"

// Builder incrementally constructs a multipart/form-data body. Parts appear
// in the order they are written. The zero value is not usable; create a
// Builder with [NewBuilder].
type Builder struct {
	buf   bytes.Buffer
	token string
}

// NewBuilder creates a Builder using the given boundary token. The token is
// the bare value that would appear in a Content-Type header, without the
// leading dashes of the in-body delimiter.
func NewBuilder(token string) *Builder {
	return &Builder{token: token}
}

// ContentType returns the Content-Type header value describing the body
// under construction.
func (b *Builder) ContentType() string {
	return formDataType + "; boundary=" + b.token
}

// Boundary returns the full in-body delimiter, leading dashes included.
func (b *Builder) Boundary() string {
	return "--" + b.token
}

// WriteField appends a form field part.
func (b *Builder) WriteField(name, value string) {
	b.buf.WriteString("--" + b.token + "\r\n")
	b.buf.WriteString(`Content-Disposition: form-data; name="` + name + "\"\r\n\r\n")
	b.buf.WriteString(value)
	b.buf.WriteString("\r\n")
}

// WriteFile appends a file part. The content may be arbitrary binary data.
func (b *Builder) WriteFile(field, filename, mimetype string, content []byte) {
	b.buf.WriteString("--" + b.token + "\r\n")
	b.buf.WriteString(`Content-Disposition: form-data; name="` + field + `"; filename="` + filename + "\"\r\n")
	b.buf.WriteString("Content-Type: " + mimetype + "\r\n\r\n")
	b.buf.Write(content)
	b.buf.WriteString("\r\n")
}

// Bytes returns the complete body, closed with the terminal delimiter. The
// Builder remains usable: further writes insert parts before a new terminal
// delimiter on the next call.
func (b *Builder) Bytes() []byte {
	body := make([]byte, 0, b.buf.Len()+len(b.token)+8)
	body = append(body, b.buf.Bytes()...)
	body = append(body, "--"+b.token+"--\r\n"...)
	return body
}
