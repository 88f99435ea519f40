// Package imagefile turns a path on disk into a domain.ProductImage.
package imagefile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/alimikegami/point-of-sales/product-admin/internal/domain"
	"github.com/alimikegami/point-of-sales/product-admin/pkg/errs"
)

// Load stats the file and sniffs its content type from the leading bytes.
// The file is reopened on every Open call, so a loaded image can be sent more than once.
func Load(path string) (*domain.ProductImage, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat image %q: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%q is a directory: %w", path, errs.ErrNotAnImage)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image %q: %w", path, err)
	}
	defer file.Close()

	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return nil, fmt.Errorf("detect image type %q: %w", path, err)
	}

	return &domain.ProductImage{
		Filename:    filepath.Base(path),
		ContentType: baseType(mtype),
		Size:        info.Size(),
		Open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}, nil
}

// baseType drops parameters such as "; charset=utf-8" that mimetype adds for text.
func baseType(m *mimetype.MIME) string {
	base, _, _ := strings.Cut(m.String(), ";")
	return base
}
