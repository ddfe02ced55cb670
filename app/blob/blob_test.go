package blob

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDiskUpload(t *testing.T) {
	d, err := NewDisk(t.TempDir(), "/files/")
	if err != nil {
		t.Fatalf("NewDisk: %v", err)
	}

	handle, err := d.Upload("photos", []byte("jpeg bytes"), "jpg")
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if !strings.HasPrefix(handle, "photos/") || !strings.HasSuffix(handle, ".jpg") {
		t.Errorf("handle = %q, want photos/<id>.jpg", handle)
	}

	data, err := os.ReadFile(filepath.Join(d.root, filepath.FromSlash(handle)))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "jpeg bytes" {
		t.Errorf("stored bytes = %q", data)
	}

	if got := d.URL(handle); got != "/files/"+handle {
		t.Errorf("URL = %q, want /files/%s", got, handle)
	}
}

func TestDiskUploadExtNormalization(t *testing.T) {
	d, err := NewDisk(t.TempDir(), "/files")
	if err != nil {
		t.Fatalf("NewDisk: %v", err)
	}

	handle, err := d.Upload("papers", []byte("pdf"), ".pdf")
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if strings.HasSuffix(handle, "..pdf") || !strings.HasSuffix(handle, ".pdf") {
		t.Errorf("handle = %q, want a single .pdf suffix", handle)
	}

	handle, err = d.Upload("papers", []byte("raw"), "")
	if err != nil {
		t.Fatalf("Upload without ext: %v", err)
	}
	if strings.Contains(filepath.Base(handle), ".") {
		t.Errorf("handle = %q, want no extension", handle)
	}
}
