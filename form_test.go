package multipart_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/tomasbasham/multipart"
)

func TestFormResetIdempotent(t *testing.T) {
	t.Parallel()

	// Resetting a never-populated form is a no-op.
	var empty multipart.Form
	empty.Reset()
	empty.Reset()

	body, boundary := loginBody([]byte("payload"))
	var form multipart.Form
	if err := multipart.ParseForm(body, boundary, &form); err != nil {
		t.Fatalf("ParseForm: %v", err)
	}

	form.Reset()
	if len(form.Fields) != 0 || len(form.Files) != 0 {
		t.Errorf("got %d fields and %d files after Reset, want 0 and 0", len(form.Fields), len(form.Files))
	}
	form.Reset()

	// A reset form is reusable.
	if err := multipart.ParseForm(body, boundary, &form); err != nil {
		t.Fatalf("ParseForm after Reset: %v", err)
	}
	if len(form.Fields) != 2 || len(form.Files) != 1 {
		t.Errorf("got %d fields and %d files after reparse, want 2 and 1", len(form.Fields), len(form.Files))
	}
}

func TestFileHeaderContentOutOfRange(t *testing.T) {
	t.Parallel()

	header := multipart.FileHeader{Offset: 100, Size: 50}
	if _, err := header.Content(make([]byte, 10)); err == nil {
		t.Error("expected error for span beyond body length")
	}

	header = multipart.FileHeader{Offset: 0, Size: 10}
	if _, err := header.Content(make([]byte, 10)); err != nil {
		t.Errorf("span covering exactly the body should be valid, got %v", err)
	}
}

func TestFileHeaderSave(t *testing.T) {
	t.Parallel()

	payload := []byte{0x00, 0x01, 'b', 'i', 'n', 0xff, 0x00}
	body, boundary := loginBody(payload)

	var form multipart.Form
	if err := multipart.ParseForm(body, boundary, &form); err != nil {
		t.Fatalf("ParseForm: %v", err)
	}

	file := form.File("file")
	if file == nil {
		t.Fatal("File(\"file\") returned nil")
	}

	path := filepath.Join(t.TempDir(), "saved.bin")
	if err := file.Save(body, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	saved, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.Equal(saved, payload) {
		t.Errorf("got saved bytes % x, want % x", saved, payload)
	}

	// Saving over an existing file overwrites it.
	if err := file.Save(body, path); err != nil {
		t.Fatalf("Save over existing file: %v", err)
	}
}

func TestFileHeaderSaveBadPath(t *testing.T) {
	t.Parallel()

	body, boundary := loginBody([]byte("payload"))
	var form multipart.Form
	if err := multipart.ParseForm(body, boundary, &form); err != nil {
		t.Fatalf("ParseForm: %v", err)
	}

	file := form.File("file")
	path := filepath.Join(t.TempDir(), "missing", "saved.bin")
	if err := file.Save(body, path); err == nil {
		t.Error("expected error saving into a nonexistent directory")
	}
}

func TestCodeMessages(t *testing.T) {
	t.Parallel()

	tests := map[multipart.Code]string{
		multipart.CodeOK:                   "multipart OK",
		multipart.CodeAllocFailed:          "memory allocation failed",
		multipart.CodeInvalidBoundary:      "invalid form boundary",
		multipart.CodeMaxFileSize:          "maximum file size exceeded",
		multipart.CodeNoContentType:        "no file content type",
		multipart.CodeNoContentDisposition: "no file content disposition",
		multipart.CodeNoFilename:           "no file name",
		multipart.CodeNoFileData:           "no file data",
	}

	for code, want := range tests {
		if got := code.Message(); got != want {
			t.Errorf("Code(%d).Message() = %q, want %q", code, got, want)
		}
	}

	if got := multipart.CodeMaxFileSize.Error(); got != "multipart: maximum file size exceeded" {
		t.Errorf("Error() = %q", got)
	}
}
