package reports

import (
	"os"
	"testing"

	"go.uber.org/zap"
)

func TestFileSink(t *testing.T) {
	sink, err := NewFileSink(t.TempDir(), zap.NewNop())
	if err != nil {
		t.Fatalf("NewFileSink: %v", err)
	}

	handle, err := sink.RenderToFile("<html>hi</html>")
	if err != nil {
		t.Fatalf("RenderToFile: %v", err)
	}

	data, err := os.ReadFile(sink.Path(handle))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "<html>hi</html>" {
		t.Errorf("stored markup = %q", data)
	}

	if err := sink.Share(handle); err != nil {
		t.Errorf("Share: %v", err)
	}
}
