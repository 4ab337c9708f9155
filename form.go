package multipart

import (
	"fmt"
	"os"
)

// DefaultMaxFileSize is the file size cap applied when [Form.MaxFileSize]
// is zero.
const DefaultMaxFileSize = 10 << 20 // 10 MiB

const (
	defaultFieldCapacity = 16
	defaultFileCapacity  = 2
)

// FormField is a single form field and its value. The value is copied out
// of the body during parsing and is owned by the form.
type FormField struct {
	Name  string
	Value string
}

// FileHeader describes a file uploaded as part of a form. The file content
// is not copied: Offset and Size locate it inside the body buffer that was
// passed to [ParseForm], and remain valid only while that buffer is alive
// and unmodified.
type FileHeader struct {
	Offset int // byte offset of the content within the body
	Size   int // content length in bytes

	Filename  string // filename parameter of Content-Disposition
	Mimetype  string // Content-Type of the file part
	FieldName string // name of the field the file was uploaded under
}

// Content returns the file's bytes as a subslice of body, which must be the
// same buffer the form was parsed from. The view shares memory with body;
// no bytes are copied.
func (h *FileHeader) Content(body []byte) ([]byte, error) {
	if h.Offset < 0 || h.Size < 0 || h.Offset+h.Size > len(body) {
		return nil, fmt.Errorf("multipart: file span [%d, %d) out of range for %d byte body", h.Offset, h.Offset+h.Size, len(body))
	}
	return body[h.Offset : h.Offset+h.Size], nil
}

// Save writes the file's content to path, overwriting any existing file.
// On failure the destination state is undefined; nothing is retried or
// rolled back.
func (h *FileHeader) Save(body []byte, path string) error {
	content, err := h.Content(body)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("multipart: failed to save file: %w", err)
	}
	return nil
}

// Form holds the fields and files parsed from a multipart body. Both slices
// preserve appearance order, and names are not required to be unique. The
// zero value is ready to be passed to [ParseForm].
type Form struct {
	Files  []FileHeader
	Fields []FormField

	// MaxFileSize caps the size of a single file part. Zero selects
	// [DefaultMaxFileSize].
	MaxFileSize int

	// FieldCapacity and FileCapacity set the initial capacities of the
	// field and file slices allocated by ParseForm. Zero selects the
	// defaults of 16 and 2.
	FieldCapacity int
	FileCapacity  int
}

// Reset returns the form to its empty state, releasing every parsed entry.
// It is idempotent: resetting an empty or already-reset form is a no-op.
func (f *Form) Reset() {
	f.Files = nil
	f.Fields = nil
}

// FieldValue returns the value of the first field with the given name. The
// second return value reports whether the field was present, distinguishing
// a missing field from one with an empty value.
func (f *Form) FieldValue(name string) (string, bool) {
	for i := range f.Fields {
		if f.Fields[i].Name == name {
			return f.Fields[i].Value, true
		}
	}
	return "", false
}

// FieldValues returns the values of every field with the given name, in
// appearance order. It returns nil when no field matches.
func (f *Form) FieldValues(name string) []string {
	var values []string
	for i := range f.Fields {
		if f.Fields[i].Name == name {
			values = append(values, f.Fields[i].Value)
		}
	}
	return values
}

// File returns the first file uploaded under the given field name, or nil
// when no file matches.
func (f *Form) File(field string) *FileHeader {
	for i := range f.Files {
		if f.Files[i].FieldName == field {
			return &f.Files[i]
		}
	}
	return nil
}

// FilesByField returns every file uploaded under the given field name, in
// appearance order. The slice is newly allocated and owned by the caller;
// zero matches yield nil rather than an error.
func (f *Form) FilesByField(field string) []FileHeader {
	var files []FileHeader
	for i := range f.Files {
		if f.Files[i].FieldName == field {
			files = append(files, f.Files[i])
		}
	}
	return files
}

func (f *Form) maxFileSize() int {
	if f.MaxFileSize > 0 {
		return f.MaxFileSize
	}
	return DefaultMaxFileSize
}

func (f *Form) fieldCapacity() int {
	if f.FieldCapacity > 0 {
		return f.FieldCapacity
	}
	return defaultFieldCapacity
}

func (f *Form) fileCapacity() int {
	if f.FileCapacity > 0 {
		return f.FileCapacity
	}
	return defaultFileCapacity
}
