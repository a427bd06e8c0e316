package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var specialistsJSON bool

var specialistsCmd = &cobra.Command{
	Use:   "specialists",
	Short: "List the specialists the counselor consults",
	Args:  cobra.NoArgs,
	RunE:  runSpecialists,
}

func init() {
	specialistsCmd.Flags().BoolVar(&specialistsJSON, "json", false, "output specialists as JSON")
	rootCmd.AddCommand(specialistsCmd)
}

func runSpecialists(cmd *cobra.Command, _ []string) error {
	if catalog == nil {
		return errors.New("specialist catalog not configured")
	}

	list := catalog.Specialists()
	out := cmd.OutOrStdout()

	if specialistsJSON {
		data, err := json.MarshalIndent(list, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal specialists: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if len(list) == 0 {
		fmt.Fprintln(out, "No specialists registered.")
		return nil
	}

	fmt.Fprintln(out, "Specialists:")
	for _, s := range list {
		fmt.Fprintf(out, "\n  %s (%s)\n", s.Title, s.ID)
		if s.Description != "" {
			fmt.Fprintf(out, "    %s\n", s.Description)
		}
	}
	return nil
}
