// Package multipart parses multipart/form-data request bodies into form
// fields and file attachments without copying file payload bytes.
//
// The parser operates on a fully buffered body. Field values are copied into
// the resulting [Form], but file contents are recorded as an offset and size
// into the original body buffer, so the buffer must outlive any [FileHeader]
// derived from it. Binary payloads are safe: all scanning is length-bounded
// and never treats the body as a NUL-terminated string.
package multipart
