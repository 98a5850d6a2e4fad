// Package upload stores admin-uploaded images on local disk.
package upload

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// URLPrefix is the public path under which stored files are served.
const URLPrefix = "/uploads/"

var (
	ErrTooLarge        = errors.New("file is too large")
	ErrUnsupportedType = errors.New("only image files are allowed")
	ErrEmpty           = errors.New("file is empty")
)

// allowed maps accepted image types to the stored file extension.
var allowed = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

type Storage struct {
	dir     string
	maxSize int64
	now     func() time.Time
}

func New(dir string, maxSize int64) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads dir: %w", err)
	}

	return &Storage{
		dir:     dir,
		maxSize: maxSize,
		now:     time.Now,
	}, nil
}

func (s *Storage) Dir() string {
	return s.dir
}

func (s *Storage) MaxSize() int64 {
	return s.maxSize
}

// Save checks size and content type of the uploaded file and writes it under
// a unique name. It returns the public URL of the stored file. Rejected files
// never reach the uploads directory.
func (s *Storage) Save(fh *multipart.FileHeader) (string, error) {
	if fh.Size > s.maxSize {
		return "", ErrTooLarge
	}

	if declared := declaredType(fh); declared != "" {
		if _, ok := allowed[declared]; !ok {
			return "", fmt.Errorf("%w: %s", ErrUnsupportedType, declared)
		}
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	return s.write(src)
}

func (s *Storage) write(src io.Reader) (string, error) {
	head := make([]byte, 512)
	n, err := io.ReadFull(src, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read uploaded file: %w", err)
	}
	head = head[:n]
	if n == 0 {
		return "", ErrEmpty
	}

	detected := mimetype.Detect(head)
	ext, ok := allowed[detected.String()]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, detected.String())
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	body := io.MultiReader(bytes.NewReader(head), src)
	written, err := io.Copy(tmp, io.LimitReader(body, s.maxSize+1))
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return "", fmt.Errorf("failed to write uploaded file: %w", err)
	}
	if written > s.maxSize {
		return "", ErrTooLarge
	}

	name := fmt.Sprintf("image-%d-%s%s", s.now().UnixMilli(), uuid.NewString()[:8], ext)
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return "", fmt.Errorf("failed to store uploaded file: %w", err)
	}

	return URLPrefix + name, nil
}

func declaredType(fh *multipart.FileHeader) string {
	ct := fh.Header.Get("Content-Type")
	if ct == "" || ct == "application/octet-stream" {
		return ""
	}

	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return ct
	}

	return mediaType
}
