package reports

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Nayan-navghane/School-application/app/apperr"
)

// Sink is the share/print collaborator: it turns markup into a file and
// shares the result through whatever the platform provides.
type Sink interface {
	RenderToFile(markup string) (handle string, err error)
	Share(handle string) error
}

// FileSink writes rendered documents to a directory and "shares" by
// logging the path; the actual hand-off to a viewer happens out of
// process.
type FileSink struct {
	dir    string
	logger *zap.Logger
}

var _ Sink = (*FileSink)(nil)

func NewFileSink(dir string, logger *zap.Logger) (*FileSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, apperr.Collaborator("init report sink", err)
	}
	return &FileSink{dir: dir, logger: logger}, nil
}

func (s *FileSink) RenderToFile(markup string) (string, error) {
	handle := uuid.NewString() + ".html"
	if err := os.WriteFile(filepath.Join(s.dir, handle), []byte(markup), 0o644); err != nil {
		return "", apperr.Collaborator("render to file", err)
	}
	return handle, nil
}

func (s *FileSink) Share(handle string) error {
	s.logger.Info("document ready to share",
		zap.String("path", filepath.Join(s.dir, handle)))
	return nil
}

// Path resolves a handle to its on-disk location.
func (s *FileSink) Path(handle string) string {
	return filepath.Join(s.dir, handle)
}
