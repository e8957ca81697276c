package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"sakhi-support-be/internal/entity"

	"github.com/google/uuid"
)

// LocalStore writes report attachments to a flat directory under generated
// names. The original filename only survives in the metadata record.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Store copies src to disk under a fresh uuid keeping the original extension,
// and returns the metadata record for the report row.
func (s *LocalStore) Store(originalName, contentType string, src io.Reader) (entity.ReportFile, error) {
	fileId := uuid.New().String()
	storedName := fileId + filepath.Ext(originalName)
	path := filepath.Join(s.dir, storedName)

	dst, err := os.Create(path)
	if err != nil {
		return entity.ReportFile{}, err
	}
	defer dst.Close()

	size, err := io.Copy(dst, src)
	if err != nil {
		os.Remove(path)
		return entity.ReportFile{}, err
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return entity.ReportFile{
		Id:       fileId,
		Name:     originalName,
		Filename: storedName,
		Size:     size,
		Type:     contentType,
	}, nil
}

// Path returns the absolute-ish on-disk location of a stored filename.
func (s *LocalStore) Path(storedName string) string {
	return filepath.Join(s.dir, storedName)
}

// Exists reports whether the backing file is still on disk.
func (s *LocalStore) Exists(storedName string) bool {
	_, err := os.Stat(s.Path(storedName))
	return err == nil
}
