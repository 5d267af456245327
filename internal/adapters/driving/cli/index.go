package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/acta-labs/acta-cli/internal/core/domain"
)

var indexResetSource string

var indexCmd = &cobra.Command{
	Use:   "index [transcript-file]",
	Short: "Index a transcript file for retrieval",
	Long: `Chunks the transcript, embeds the chunks and adds them to the local
index. Re-indexing an unchanged file adds nothing; chunks already present
are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runIndex,
}

var indexResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the index",
	Long: `Irreversibly removes indexed chunks. Without --source the whole
index is cleared; with --source only that source's chunks are removed.`,
	Args: cobra.NoArgs,
	RunE: runIndexReset,
}

var indexStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show how many chunks are indexed",
	Args:  cobra.NoArgs,
	RunE:  runIndexStatus,
}

func init() {
	indexResetCmd.Flags().StringVar(&indexResetSource, "source", "", "only clear chunks from this source ID")
	indexCmd.AddCommand(indexResetCmd)
	indexCmd.AddCommand(indexStatusCmd)
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading transcript file: %w", err)
	}

	doc := domain.Document{
		SourceID: filepath.Base(path),
		Text:     string(data),
	}

	added, err := indexService.IndexDocument(cmd.Context(), doc)
	if err != nil {
		return fmt.Errorf("indexing %s: %w", doc.SourceID, err)
	}

	if added == 0 {
		cmd.Println("Index already up to date.")
		return nil
	}
	cmd.Printf("Indexed %d new chunks from %s.\n", added, doc.SourceID)
	return nil
}

func runIndexReset(cmd *cobra.Command, _ []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	if err := indexService.Reset(cmd.Context(), indexResetSource); err != nil {
		return fmt.Errorf("resetting index: %w", err)
	}

	if indexResetSource == "" {
		cmd.Println("Index cleared.")
	} else {
		cmd.Printf("Cleared chunks from %s.\n", indexResetSource)
	}
	return nil
}

func runIndexStatus(cmd *cobra.Command, _ []string) error {
	if vectorStore == nil {
		return errors.New("vector store not configured")
	}

	ids, err := vectorStore.ListIDs(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing indexed chunks: %w", err)
	}

	if len(ids) == 0 {
		cmd.Println("Index is empty.")
		return nil
	}

	// Count per source for a quick overview.
	perSource := make(map[string]int)
	for id := range ids {
		source, _, err := domain.SplitChunkID(id)
		if err != nil {
			source = id
		}
		perSource[source]++
	}

	sources := make([]string, 0, len(perSource))
	for source := range perSource {
		sources = append(sources, source)
	}
	sort.Strings(sources)

	cmd.Printf("%d chunks indexed.\n", len(ids))
	for _, source := range sources {
		cmd.Printf("  %s: %d\n", source, perSource[source])
	}
	return nil
}
