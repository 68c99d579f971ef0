package models

// StoredFile describes a file the backend accepted and stored.
type StoredFile struct {
	FileName string `json:"fileName"`
	FilePath string `json:"filePath"`
}
