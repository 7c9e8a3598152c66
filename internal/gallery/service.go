package gallery

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/alecrj/atelier/internal/store"
)

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// Service manages the learner's artwork gallery. Imported files are
// copied into a managed directory and indexed in the database.
type Service struct {
	repo store.ArtworkRepo
	dir  string
}

// NewService creates a gallery service backed by the given repo and
// managed directory.
func NewService(repo store.ArtworkRepo, dir string) *Service {
	return &Service{repo: repo, dir: dir}
}

// Import copies the file at srcPath into the gallery directory and
// records it. lessonID may be empty for freeform work.
func (s *Service) Import(ctx context.Context, srcPath, title, lessonID string) (*store.ArtworkRecord, error) {
	ext := strings.ToLower(filepath.Ext(srcPath))
	if !allowedExtensions[ext] {
		return nil, fmt.Errorf("unsupported file type %q", ext)
	}

	if title == "" {
		base := filepath.Base(srcPath)
		title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	src, err := os.Open(srcPath)
	if err != nil {
		return nil, fmt.Errorf("open artwork: %w", err)
	}
	defer src.Close()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create gallery dir: %w", err)
	}

	destName := uuid.New().String() + ext
	destPath := filepath.Join(s.dir, destName)

	dest, err := os.Create(destPath)
	if err != nil {
		return nil, fmt.Errorf("create gallery file: %w", err)
	}

	if _, err := io.Copy(dest, src); err != nil {
		dest.Close()
		os.Remove(destPath)
		return nil, fmt.Errorf("copy artwork: %w", err)
	}
	if err := dest.Close(); err != nil {
		os.Remove(destPath)
		return nil, fmt.Errorf("close gallery file: %w", err)
	}

	rec, err := s.repo.Save(ctx, title, lessonID, destPath)
	if err != nil {
		os.Remove(destPath)
		return nil, fmt.Errorf("index artwork: %w", err)
	}
	return rec, nil
}

// List returns all gallery entries, newest first.
func (s *Service) List(ctx context.Context) ([]store.ArtworkRecord, error) {
	return s.repo.List(ctx)
}

// Remove deletes a gallery entry and its managed file. A missing file
// is not an error; the index row still goes away.
func (s *Service) Remove(ctx context.Context, id uuid.UUID) error {
	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := os.Remove(rec.Path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove gallery file: %w", err)
	}
	return nil
}
