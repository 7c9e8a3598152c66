package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alecrj/atelier/internal/curriculum"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Work with curriculum content packs",
}

var contentValidateCmd = &cobra.Command{
	Use:   "validate <pack.json>",
	Short: "Validate a curriculum pack file",
	Long: `Check a curriculum pack against the content schema and structural
rules: unique IDs, resolvable prerequisites and an acyclic unlock graph.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := curriculum.LoadPack(args[0])
		if err != nil {
			return fmt.Errorf("pack invalid: %w", err)
		}
		graph, err := curriculum.New(content)
		if err != nil {
			return fmt.Errorf("pack invalid: %w", err)
		}

		steps := 0
		for _, l := range graph.Lessons() {
			steps += len(l.Steps)
		}
		fmt.Printf("Pack OK: %d sections, %d lessons, %d exercises\n",
			len(graph.Sections()), len(graph.Lessons()), steps)
		return nil
	},
}

func init() {
	contentCmd.AddCommand(contentValidateCmd)
}
