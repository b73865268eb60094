package runner

import (
	"os"

	"github.com/gopak/minigrep/internal/search"
)

// Reporter receives matches in order, one call per line, then Flush once.
type Reporter interface {
	Line(m search.Match)
	Flush() error
}

// FileSystem is the file-reading collaborator. fstest.MapFS satisfies it.
type FileSystem interface {
	ReadFile(name string) ([]byte, error)
}

type OSFileSystem struct{}

func (OSFileSystem) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }
