package domain

import (
	"bytes"
	"io"
)

const (
	MIMEImageJPEG = "image/jpeg"
	MIMEImagePNG  = "image/png"

	MaxImageSize int64 = 5 * 1024 * 1024
)

var AllowedImageTypes = []string{MIMEImageJPEG, MIMEImagePNG}

// ProductImage is the file chosen for upload. Open is called once per submission.
type ProductImage struct {
	Filename    string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

func NewImageFromBytes(filename, contentType string, data []byte) *ProductImage {
	return &ProductImage{
		Filename:    filename,
		ContentType: contentType,
		Size:        int64(len(data)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

func (i *ProductImage) AllowedType() bool {
	for _, t := range AllowedImageTypes {
		if i.ContentType == t {
			return true
		}
	}
	return false
}
