package uploads

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/akorlov/mapmark/internal/common"
	"github.com/akorlov/mapmark/internal/filex"
)

// LocalStorage writes uploads to a directory under the working directory.
// Files get a random name; the original name is only reported back to the
// caller, never used on disk.
type LocalStorage struct {
	dirName string
	dir     string
}

// NewLocalStorage ensures dirName exists and returns a storage rooted there.
func NewLocalStorage(dirName string) (*LocalStorage, error) {
	dir, err := filex.EnsureSubDir(dirName)
	if err != nil {
		return nil, err
	}
	return &LocalStorage{dirName: dirName, dir: dir}, nil
}

// Save streams content into a randomly named file and returns the original
// name plus the relative path it was stored at.
func (s *LocalStorage) Save(ctx context.Context, originalName string, content io.Reader) (*StoredFile, error) {
	name, err := common.MakeRandHexString(16)
	if err != nil {
		return nil, fmt.Errorf("generate upload name: %w", err)
	}

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, content); err != nil {
		return nil, fmt.Errorf("write upload file: %w", err)
	}

	return &StoredFile{
		FileName: originalName,
		FilePath: filepath.ToSlash(filepath.Join(s.dirName, name)),
	}, nil
}
