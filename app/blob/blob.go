// Package blob is the blob store capability used for photos, logos and
// exam papers.
package blob

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Nayan-navghane/School-application/app/apperr"
)

// Store uploads bytes under a path prefix and resolves handles to
// externally fetchable URLs.
type Store interface {
	Upload(prefix string, data []byte, ext string) (handle string, err error)
	URL(handle string) string
}

// Disk keeps blobs on the local filesystem and serves them under a base
// URL (the app mounts the root dir as static).
type Disk struct {
	root    string
	baseURL string
}

var _ Store = (*Disk)(nil)

func NewDisk(root, baseURL string) (*Disk, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, apperr.Collaborator("init blob storage", err)
	}
	return &Disk{root: root, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

func (d *Disk) Upload(prefix string, data []byte, ext string) (string, error) {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	handle := path.Join(prefix, uuid.NewString()+ext)

	full := filepath.Join(d.root, filepath.FromSlash(handle))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", apperr.Collaborator("upload blob", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", apperr.Collaborator("upload blob", err)
	}
	return handle, nil
}

func (d *Disk) URL(handle string) string {
	return d.baseURL + "/" + handle
}
