package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Upload prompts for a local file path and sends the file to the server.
// The stored name and path reported by the server are printed on success.
func (a *App) Upload(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Enter file path", os.Stdout)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Printf("Cannot open file: %s\n", err.Error())
		return err
	}
	defer f.Close()

	stored, err := a.sessionService.Upload(ctx, filepath.Base(path), f)
	if err != nil {
		fmt.Printf("Upload failed: %s\n", err.Error())
		return err
	}

	fmt.Printf("Uploaded %s -> %s\n", stored.FileName, stored.FilePath)
	return nil
}
