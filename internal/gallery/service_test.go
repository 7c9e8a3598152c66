package gallery

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/alecrj/atelier/internal/store"
)

// memArtworkRepo is an in-memory ArtworkRepo for tests.
type memArtworkRepo struct {
	records []store.ArtworkRecord
}

func (r *memArtworkRepo) Save(_ context.Context, title, lessonID, path string) (*store.ArtworkRecord, error) {
	rec := store.ArtworkRecord{
		ID:         uuid.New(),
		Title:      title,
		LessonID:   lessonID,
		Path:       path,
		ImportedAt: time.Now(),
	}
	r.records = append(r.records, rec)
	return &rec, nil
}

func (r *memArtworkRepo) List(_ context.Context) ([]store.ArtworkRecord, error) {
	out := make([]store.ArtworkRecord, len(r.records))
	for i, rec := range r.records {
		out[len(r.records)-1-i] = rec
	}
	return out, nil
}

func (r *memArtworkRepo) Get(_ context.Context, id uuid.UUID) (*store.ArtworkRecord, error) {
	for _, rec := range r.records {
		if rec.ID == id {
			return &rec, nil
		}
	}
	return nil, fmt.Errorf("artwork %s not found", id)
}

func (r *memArtworkRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, rec := range r.records {
		if rec.ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("artwork %s not found", id)
}

func writeTestImage(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("not-a-real-png"), 0o644); err != nil {
		t.Fatalf("write test image: %v", err)
	}
	return path
}

func TestImport(t *testing.T) {
	ctx := context.Background()
	srcDir := t.TempDir()
	galleryDir := filepath.Join(t.TempDir(), "gallery")

	repo := &memArtworkRepo{}
	s := NewService(repo, galleryDir)

	src := writeTestImage(t, srcDir, "warmup sketch.png")
	rec, err := s.Import(ctx, src, "", "warmup-strokes")
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	if rec.Title != "warmup sketch" {
		t.Errorf("title = %q, want %q", rec.Title, "warmup sketch")
	}
	if rec.LessonID != "warmup-strokes" {
		t.Errorf("lesson_id = %q, want warmup-strokes", rec.LessonID)
	}
	if filepath.Dir(rec.Path) != galleryDir {
		t.Errorf("path %q not inside gallery dir %q", rec.Path, galleryDir)
	}
	if filepath.Ext(rec.Path) != ".png" {
		t.Errorf("extension not preserved: %q", rec.Path)
	}
	if _, err := os.Stat(rec.Path); err != nil {
		t.Errorf("copied file missing: %v", err)
	}
	// Source stays where it was.
	if _, err := os.Stat(src); err != nil {
		t.Errorf("source file gone: %v", err)
	}
}

func TestImport_ExplicitTitle(t *testing.T) {
	ctx := context.Background()
	repo := &memArtworkRepo{}
	s := NewService(repo, t.TempDir())

	src := writeTestImage(t, t.TempDir(), "img_0042.jpg")
	rec, err := s.Import(ctx, src, "First still life", "")
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if rec.Title != "First still life" {
		t.Errorf("title = %q, want explicit title", rec.Title)
	}
}

func TestImport_RejectsUnsupportedType(t *testing.T) {
	ctx := context.Background()
	s := NewService(&memArtworkRepo{}, t.TempDir())

	src := writeTestImage(t, t.TempDir(), "notes.txt")
	if _, err := s.Import(ctx, src, "", ""); err == nil {
		t.Error("expected error for .txt import")
	}
}

func TestImport_MissingSource(t *testing.T) {
	ctx := context.Background()
	s := NewService(&memArtworkRepo{}, t.TempDir())

	if _, err := s.Import(ctx, "/nonexistent/sketch.png", "", ""); err == nil {
		t.Error("expected error for missing source file")
	}
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	repo := &memArtworkRepo{}
	s := NewService(repo, t.TempDir())

	src := writeTestImage(t, t.TempDir(), "a.png")
	rec, err := s.Import(ctx, src, "", "")
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	if err := s.Remove(ctx, rec.ID); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	if _, err := os.Stat(rec.Path); !os.IsNotExist(err) {
		t.Error("gallery file still exists after Remove")
	}
	list, _ := s.List(ctx)
	if len(list) != 0 {
		t.Errorf("list = %d entries, want 0", len(list))
	}
}

func TestRemove_MissingFileStillDeletesRow(t *testing.T) {
	ctx := context.Background()
	repo := &memArtworkRepo{}
	s := NewService(repo, t.TempDir())

	src := writeTestImage(t, t.TempDir(), "b.png")
	rec, err := s.Import(ctx, src, "", "")
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	os.Remove(rec.Path)

	if err := s.Remove(ctx, rec.ID); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	list, _ := s.List(ctx)
	if len(list) != 0 {
		t.Errorf("list = %d entries, want 0", len(list))
	}
}
