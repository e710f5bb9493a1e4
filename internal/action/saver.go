package action

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DiskSaver writes downloaded certificates into a fixed directory,
// creating it on first use. It satisfies [FileSaver].
type DiskSaver struct {
	dir string
}

// NewDiskSaver constructs a DiskSaver rooted at dir.
func NewDiskSaver(dir string) *DiskSaver {
	return &DiskSaver{dir: dir}
}

// Save writes data under the given file name and returns the path written.
// The name is reduced to its base component so a server-provided name can
// never escape the downloads directory.
func (s *DiskSaver) Save(fileName string, data []byte) (string, error) {
	name := filepath.Base(strings.ReplaceAll(fileName, "\\", "/"))
	if name == "" || name == "." || name == ".." || name == "/" {
		return "", fmt.Errorf("unusable file name %q", fileName)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create downloads dir: %w", err)
	}

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write certificate file: %w", err)
	}

	return path, nil
}
