package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/counsel-cli/internal/adapters/driving/tui/components/markdown"
	"github.com/custodia-labs/counsel-cli/internal/core/domain"
)

var (
	askJSON    bool
	askPlain   bool
	askContext []string
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the counselor a single question",
	Long: `Routes one question to the specialists that cover it and prints the answer.

Student facts can be supplied with --context and are used to tailor the
answer, for example tuition by residency or GPA planning.

Examples:
  counsel ask "How do I fill out the FAFSA?"
  counsel ask "What does tuition cost?" --context residency=nonresident
  counsel ask "Can I raise my GPA before transfer?" -c gpa=2.9 --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the routing result as JSON")
	askCmd.Flags().BoolVar(&askPlain, "plain", false, "print the answer as plain text with markdown removed")
	askCmd.Flags().StringArrayVarP(&askContext, "context", "c", nil, "student fact as key=value (repeatable)")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if router == nil {
		return errors.New("router not configured")
	}

	student, err := parseContextFlags(askContext)
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	result := router.Route(cmd.Context(), query, student)

	if askJSON {
		return outputAskJSON(cmd, result)
	}

	out := cmd.OutOrStdout()
	if askPlain {
		result.Response = markdown.Strip(result.Response)
		writeAnswer(out, result, nil)
		return nil
	}
	var renderer *markdown.Renderer
	if isTerminal(out) {
		renderer = markdown.NewRenderer(terminalWidth(out))
	}
	writeAnswer(out, result, renderer)
	return nil
}

func outputAskJSON(cmd *cobra.Command, result domain.RoutingResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
