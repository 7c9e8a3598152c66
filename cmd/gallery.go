package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/alecrj/atelier/internal/gallery"
	"github.com/alecrj/atelier/internal/store"
)

var (
	galleryTitle  string
	galleryLesson string
)

var galleryCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Manage your imported artwork",
}

var galleryImportCmd = &cobra.Command{
	Use:     "import <image-file>",
	Aliases: []string{"add"},
	Short:   "Copy a photo of finished work into the gallery",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := openGallery(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		rec, err := svc.Import(cmd.Context(), args[0], galleryTitle, galleryLesson)
		if err != nil {
			return err
		}
		fmt.Printf("Imported %q as %s\n", rec.Title, rec.ID)
		return nil
	},
}

var galleryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List gallery entries, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := openGallery(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		records, err := svc.List(cmd.Context())
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("Gallery is empty. Import a drawing with: atelier gallery import <file>")
			return nil
		}

		fmt.Printf("%-36s  %-12s  %-24s  %s\n", "ID", "DATE", "TITLE", "LESSON")
		for _, r := range records {
			lesson := r.LessonID
			if lesson == "" {
				lesson = "-"
			}
			fmt.Printf("%-36s  %-12s  %-24s  %s\n", r.ID, r.ImportedAt.Format("2006-01-02"), r.Title, lesson)
		}
		return nil
	},
}

var galleryRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a gallery entry and its file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid gallery ID %q: %w", args[0], err)
		}

		svc, st, err := openGallery(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := svc.Remove(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Println("Removed", id)
		return nil
	},
}

// openGallery opens the store and builds a gallery service over the
// managed gallery directory. The caller owns closing the store.
func openGallery(cmd *cobra.Command) (*gallery.Service, *store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, err
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, err
	}
	dir, err := store.DefaultGalleryDir()
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	return gallery.NewService(st.ArtworkRepo(), dir), st, nil
}

func init() {
	galleryImportCmd.Flags().StringVar(&galleryTitle, "title", "", "Title for the entry (defaults to the file name)")
	galleryImportCmd.Flags().StringVar(&galleryLesson, "lesson", "", "Lesson the drawing came from")

	galleryCmd.AddCommand(galleryImportCmd)
	galleryCmd.AddCommand(galleryListCmd)
	galleryCmd.AddCommand(galleryRmCmd)
}
