// Package uploads stores files received on the upload endpoint. The storage
// mechanism sits behind an interface with a local-disk backend (default) and
// an S3-compatible backend.
package uploads

import (
	"context"
	"io"
)

// StoredFile describes a stored upload: the caller's original file name and
// the server-side path (or object key) the content landed at.
type StoredFile struct {
	FileName string `json:"fileName"`
	FilePath string `json:"filePath"`
}

// Storage persists uploaded file content under a server-chosen name.
type Storage interface {
	Save(ctx context.Context, originalName string, content io.Reader) (*StoredFile, error)
}
