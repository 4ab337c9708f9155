package multipart

// Code classifies the outcome of parsing a multipart form. Every parse
// failure returned by [ParseForm] is a Code, so callers may compare with
// errors.Is against the constants below.
type Code uint8

const (
	// CodeOK indicates a successful parse. It is never returned as an
	// error; ParseForm reports success with a nil error.
	CodeOK Code = iota

	// CodeAllocFailed is reserved for allocation failure during a parse.
	// A Go runtime aborts on out-of-memory rather than reporting it, so
	// this code is never produced but remains part of the closed set.
	CodeAllocFailed

	// CodeInvalidBoundary indicates the body ended without a terminating
	// boundary after a file part, or the boundary was otherwise corrupt.
	CodeInvalidBoundary

	// CodeMaxFileSize indicates a file part exceeded [Form.MaxFileSize].
	CodeMaxFileSize

	// CodeNoContentType is reserved for a file part missing its
	// Content-Type header.
	CodeNoContentType

	// CodeNoContentDisposition indicates a Content-Disposition header
	// carried no name parameter.
	CodeNoContentDisposition

	// CodeNoFilename is reserved for a file part missing its filename
	// parameter.
	CodeNoFilename

	// CodeNoFileData is reserved for a file part with no payload.
	CodeNoFileData
)

// Message returns the fixed human-readable description of c.
func (c Code) Message() string {
	switch c {
	case CodeAllocFailed:
		return "memory allocation failed"
	case CodeInvalidBoundary:
		return "invalid form boundary"
	case CodeMaxFileSize:
		return "maximum file size exceeded"
	case CodeNoContentType:
		return "no file content type"
	case CodeNoContentDisposition:
		return "no file content disposition"
	case CodeNoFilename:
		return "no file name"
	case CodeNoFileData:
		return "no file data"
	default:
		return "multipart OK"
	}
}

// Error implements the error interface.
func (c Code) Error() string {
	return "multipart: " + c.Message()
}
