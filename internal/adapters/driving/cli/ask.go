package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/acta-labs/acta-cli/internal/core/domain"
)

var askShowSources bool

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about the ingested meeting",
	Long: `Answers a question using passages retrieved from the indexed
transcript. Each invocation starts a fresh conversation; use 'acta chat'
for a running conversation with history.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askShowSources, "sources", false, "print the source IDs of the retrieved passages")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	session := domain.NewSession()
	response, err := queryService.Query(cmd.Context(), session, args[0])
	if err != nil {
		return fmt.Errorf("answering question: %w", err)
	}

	cmd.Println(response.ResponseText)

	if askShowSources && len(response.Sources) > 0 {
		cmd.Println()
		cmd.Println("Sources:")
		for _, src := range response.Sources {
			cmd.Printf("  - %s\n", src)
		}
	}

	return nil
}
