package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/counsel-cli/internal/core/domain"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Show the effective routing keyword table",
	Long: `Prints the keyword table used to screen and route questions, including
any overrides from config.toml:

  [routing.keywords]
  financial_aid = ["fafsa", "cal grant", "tuition"]

  [scope.disallowed]
  cars = ["transmission", "oil change"]`,
	Args: cobra.NoArgs,
	RunE: runKeywords,
}

func init() {
	rootCmd.AddCommand(keywordsCmd)
}

func runKeywords(cmd *cobra.Command, _ []string) error {
	if policy == nil {
		return errors.New("keyword policy not configured")
	}
	writeKeywordTable(cmd.OutOrStdout(), policy.Table())
	return nil
}

func writeKeywordTable(w io.Writer, table domain.KeywordTable) {
	fmt.Fprintln(w, "Out of scope:")
	for _, rule := range table.Disallowed {
		fmt.Fprintf(w, "  %-18s %s\n", rule.Name, strings.Join(rule.Keywords, ", "))
	}

	fmt.Fprintln(w, "\nTopics (first match wins):")
	for _, rule := range table.Topics {
		fmt.Fprintf(w, "  %-18s %s\n", rule.Category, strings.Join(rule.Keywords, ", "))
	}

	fmt.Fprintln(w, "\nSpecialists:")
	for _, rule := range table.Specialists {
		name := rule.ID
		if rule.Category != "" {
			name = fmt.Sprintf("%s [%s]", rule.ID, rule.Category)
		}
		fmt.Fprintf(w, "  %-30s %s\n", name, strings.Join(rule.Keywords, ", "))
	}
}
