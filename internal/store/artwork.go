package store

import (
	"context"
	"fmt"

	"github.com/alecrj/atelier/ent"
	"github.com/alecrj/atelier/ent/artwork"
	"github.com/google/uuid"
)

// artworkRepo implements ArtworkRepo using the ent client.
type artworkRepo struct {
	client *ent.Client
}

func (r *artworkRepo) Save(ctx context.Context, title, lessonID, path string) (*ArtworkRecord, error) {
	builder := r.client.Artwork.Create().
		SetTitle(title).
		SetPath(path)
	if lessonID != "" {
		builder = builder.SetLessonID(lessonID)
	}

	a, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save artwork: %w", err)
	}
	return entArtworkToRecord(a), nil
}

func (r *artworkRepo) List(ctx context.Context) ([]ArtworkRecord, error) {
	rows, err := r.client.Artwork.Query().
		Order(ent.Desc(artwork.FieldImportedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list artworks: %w", err)
	}

	records := make([]ArtworkRecord, len(rows))
	for i, a := range rows {
		records[i] = *entArtworkToRecord(a)
	}
	return records, nil
}

func (r *artworkRepo) Get(ctx context.Context, id uuid.UUID) (*ArtworkRecord, error) {
	a, err := r.client.Artwork.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("artwork %s not found", id)
		}
		return nil, fmt.Errorf("get artwork: %w", err)
	}
	return entArtworkToRecord(a), nil
}

func (r *artworkRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Artwork.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("artwork %s not found", id)
		}
		return fmt.Errorf("delete artwork: %w", err)
	}
	return nil
}

func entArtworkToRecord(a *ent.Artwork) *ArtworkRecord {
	return &ArtworkRecord{
		ID:         a.ID,
		Title:      a.Title,
		LessonID:   a.LessonID,
		Path:       a.Path,
		ImportedAt: a.ImportedAt,
	}
}
