package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/phrazzld/flashforge-api/internal/extract"
)

// ErrUnsupportedFileType is returned by Save for extensions outside the allow-list.
var ErrUnsupportedFileType = errors.New("unsupported file type")

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// Store writes uploads into a single directory.
type Store struct {
	dir string
}

// NewStore creates dir if needed and returns a Store rooted there.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("upload directory must not be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory uploads are written to.
func (s *Store) Dir() string {
	return s.dir
}

// Upload is a saved document awaiting extraction.
type Upload struct {
	Path string
	Name string
	Kind extract.Kind
}

// Save validates filename against the allow-list and copies r into a uniquely
// named file. Callers should defer Remove on the returned Upload.
func (s *Store) Save(ctx context.Context, filename string, r io.Reader) (*Upload, error) {
	kind, ok := extract.KindFromFilename(filename)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFileType, filepath.Ext(filename))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	prefix, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("failed to generate upload id: %w", err)
	}

	name := SanitizeFilename(filename)
	if name == "" {
		name = "upload." + string(kind)
	}
	path := filepath.Join(s.dir, prefix+"_"+name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload file: %w", err)
	}

	_, copyErr := io.Copy(f, r)
	closeErr := f.Close()
	if err := errors.Join(copyErr, closeErr); err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("failed to write upload: %w", err)
	}

	return &Upload{Path: path, Name: name, Kind: kind}, nil
}

// Remove deletes the stored file. Removing an already removed upload is not an error.
func (u *Upload) Remove() error {
	if u == nil {
		return nil
	}
	if err := os.Remove(u.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove upload: %w", err)
	}
	return nil
}

// SanitizeFilename reduces a client-supplied filename to a safe basename:
// directory components are dropped, whitespace becomes underscores, and any
// character outside [A-Za-z0-9_.-] is removed. Leading dots and underscores
// are trimmed so the result can never be hidden or traverse upwards.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	if name == "." || name == "/" {
		return ""
	}
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	return strings.TrimLeft(strings.TrimRight(name, "._"), "._")
}
