package multipart

import "bytes"

// state enumerates the positions of the parsing state machine.
type state uint8

const (
	stateBoundary state = iota
	stateHeader
	stateKey
	stateValue
	stateFilename
	stateFileMIMEHeader
	stateMimetype
	stateFileBody
)

var (
	crlf               = []byte("\r\n")
	crlfDashes         = []byte("\r\n--")
	contentDisposition = []byte("Content-Disposition:")
	contentTypeToken   = []byte("Content-Type: ")
	nameParam          = []byte(`name="`)
	filenameParam      = []byte(`"; filename="`)
)

// ParseForm parses a multipart/form-data body into form. The boundary is
// the full delimiter as it appears in the body, leading dashes included;
// use [ParseBoundary] or [ParseBoundaryFromHeader] to obtain it. The body
// may contain arbitrary binary payloads and need not be NUL-terminated.
//
// Field names and values are copied into the form. File contents are not:
// each [FileHeader] records an offset and size into data, so data must
// outlive the form. On failure the form is fully reset; it is never left
// half-populated.
func ParseForm(data []byte, boundary string, form *Form) error {
	if len(boundary) == 0 {
		return CodeInvalidBoundary
	}
	delim := []byte(boundary)
	maxFileSize := form.maxFileSize()

	form.Fields = make([]FormField, 0, form.fieldCapacity())
	form.Files = make([]FileHeader, 0, form.fileCapacity())

	var (
		st         = stateBoundary
		keyStart   = -1
		valueStart = -1
		key        string
		pending    FileHeader
	)

	pos := 0
	for pos < len(data) {
		switch st {
		case stateBoundary:
			if bytes.HasPrefix(data[pos:], delim) {
				pos += len(delim)
				for pos < len(data) && (data[pos] == '-' || data[pos] == '\r' || data[pos] == '\n') {
					pos++
				}
				st = stateHeader
			} else {
				pos++
			}

		case stateHeader:
			if bytes.HasPrefix(data[pos:], contentDisposition) {
				i := bytes.Index(data[pos:], nameParam)
				if i < 0 {
					form.Reset()
					return CodeNoContentDisposition
				}
				pos += i + len(nameParam)
				keyStart = pos
				st = stateKey
			} else {
				pos++
			}

		case stateKey:
			if data[pos] == '"' && keyStart >= 0 {
				key = string(data[keyStart:pos])
				if bytes.HasPrefix(data[pos:], filenameParam) {
					// A filename parameter follows, so this part is a
					// file upload rather than a plain field.
					pending.FieldName = key
					pos += len(filenameParam)
					keyStart = pos
					st = stateFilename
				} else {
					pos = skipLine(data, pos)
					pos = skipCRLF(data, pos)
					valueStart = pos
					st = stateValue
				}
			} else {
				pos++
			}

		case stateValue:
			if valueStart >= 0 && (bytes.HasPrefix(data[pos:], crlfDashes) || bytes.HasPrefix(data[pos:], delim)) {
				form.Fields = append(form.Fields, FormField{
					Name:  key,
					Value: string(data[valueStart:pos]),
				})
				key = ""
				keyStart, valueStart = -1, -1
				for pos < len(data) && (data[pos] == '\r' || data[pos] == '\n') {
					pos++
				}
				st = stateBoundary
			} else {
				pos++
			}

		case stateFilename:
			if data[pos] == '"' && keyStart >= 0 {
				pending.Filename = string(data[keyStart:pos])
				keyStart = -1
				pos = skipLine(data, pos)
				pos = skipCRLF(data, pos)
				st = stateFileMIMEHeader
			} else {
				pos++
			}

		case stateFileMIMEHeader:
			if bytes.HasPrefix(data[pos:], contentTypeToken) {
				pos += len(contentTypeToken)
				st = stateMimetype
			} else {
				pos++
			}

		case stateMimetype:
			start := pos
			for pos < len(data) && data[pos] != '\r' && data[pos] != '\n' {
				pos++
			}
			pending.Mimetype = string(data[start:pos])
			pos = skipLine(data, pos)
			for pos+1 < len(data) && data[pos] == '\r' && data[pos+1] == '\n' {
				pos += 2
			}
			if bytes.HasPrefix(data[pos:], delim) {
				// Zero-byte file: the boundary follows the headers
				// immediately. The part is dropped, not reported.
				pending = FileHeader{}
				key = ""
				st = stateBoundary
			} else {
				st = stateFileBody
			}

		case stateFileBody:
			pending.Offset = pos
			i := bytes.Index(data[pos:], delim)
			if i < 0 {
				form.Reset()
				return CodeInvalidBoundary
			}
			match := pos + i
			end := match
			// The CRLF immediately before a boundary belongs to the
			// delimiter, not the file content.
			if end-pending.Offset >= 2 && data[end-2] == '\r' && data[end-1] == '\n' {
				end -= 2
			}
			size := end - pending.Offset
			if size > maxFileSize {
				form.Reset()
				return CodeMaxFileSize
			}
			pending.Size = size
			form.Files = append(form.Files, pending)
			pending = FileHeader{}
			key = ""
			pos = match
			st = stateBoundary
		}
	}

	// Input exhausted. Any pending key, filename or mimetype that was never
	// committed to the form is discarded.
	return nil
}

// skipLine advances past the current line's terminating newline. When no
// newline remains it returns len(data), which terminates the parse loop.
func skipLine(data []byte, pos int) int {
	for pos < len(data) && data[pos] != '\n' {
		pos++
	}
	if pos < len(data) {
		pos++
	}
	return pos
}

// skipCRLF consumes a single CRLF pair at pos, if present.
func skipCRLF(data []byte, pos int) int {
	if pos+1 < len(data) && data[pos] == '\r' && data[pos+1] == '\n' {
		return pos + 2
	}
	return pos
}
