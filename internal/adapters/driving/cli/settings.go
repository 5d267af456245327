package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change acta configuration.

Settings use dot-notation keys, e.g.:
  ollama.base_url          Ollama server address
  ollama.generation_model  model for answers and summaries
  ollama.embedding_model   model for embeddings
  whisper.binary_path      whisper.cpp executable
  whisper.model_dir        directory of ggml-*.bin model files
  whisper.model            whisper model name
  chunking.size            chunk length in characters
  chunking.overlap         overlap between adjacent chunks
  data_dir                 index and transcript location
  language                 force prompt language (pt or en)`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

var settingsUnsetCmd = &cobra.Command{
	Use:   "unset [key]",
	Short: "Remove a setting, reverting to the default",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsUnset,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsUnsetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	keys := configStore.Keys()
	if len(keys) == 0 {
		cmd.Println("No settings configured; adapter defaults apply.")
		return nil
	}

	for _, key := range keys {
		val, _ := configStore.Get(key)
		cmd.Printf("%s = %v\n", key, val)
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key, raw := args[0], args[1]

	// Store integers and booleans typed; everything else is a string.
	var value any = raw
	if n, err := strconv.Atoi(raw); err == nil {
		value = n
	} else if b, err := strconv.ParseBool(strings.ToLower(raw)); err == nil {
		value = b
	}

	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("saving setting: %w", err)
	}

	cmd.Printf("%s = %v\n", key, value)
	return nil
}

func runSettingsUnset(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	if err := configStore.Delete(args[0]); err != nil {
		return fmt.Errorf("removing setting: %w", err)
	}

	cmd.Printf("%s unset\n", args[0])
	return nil
}
