package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/acta-labs/acta-cli/internal/core/domain"
	"github.com/acta-labs/acta-cli/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch [transcript-file]",
	Short: "Watch a transcript file and re-index it on change",
	Long: `Watches the transcript file and re-indexes it whenever it is
written. Only new chunks are embedded and added; unchanged chunks are
skipped. Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	path := args[0]
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("opening transcript file: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors replace files on save
	// and a file-level watch is lost after the rename.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	// Index the current contents before waiting for changes. An empty or
	// unreadable file is not fatal here; a later write may fix it.
	if err := indexFile(cmd, path); err != nil {
		logger.Warn("Initial indexing failed: %v", err)
	}

	cmd.Printf("Watching %s for changes. Ctrl+C to stop.\n", path)

	ctx := cmd.Context()
	target := filepath.Clean(path)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := indexFile(cmd, path); err != nil {
				// Keep watching through transient failures.
				logger.Warn("Re-indexing failed: %v", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}

func indexFile(cmd *cobra.Command, path string) error {
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
	if added > 0 {
		cmd.Printf("Indexed %d new chunks from %s.\n", added, doc.SourceID)
	}
	return nil
}
