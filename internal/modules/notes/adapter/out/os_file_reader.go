package out

import (
	"context"
	"fmt"
	"os"

	notesout "inkwell/internal/modules/notes/port/out"
)

type OSFileReader struct{}

func NewOSFileReader() notesout.FileReader {
	return &OSFileReader{}
}

func (r *OSFileReader) Read(_ context.Context, path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return string(b), nil
}
