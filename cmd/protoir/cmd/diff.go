package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	protoir "github.com/protoir/protoir"
	"github.com/protoir/protoir/internal/diff"
)

var diffCmd = &cobra.Command{
	Use:   "diff <base> <head>",
	Short: "Report IR-level differences between two loaded protocol documents",
	Args:  cobra.ExactArgs(2),
	RunE: func(c *cobra.Command, args []string) error {
		base, err := protoir.LoadFile(args[0], protoir.WithStrictContextAccess(strictContextAccess))
		if err != nil {
			return fmt.Errorf("loading base %s: %w", args[0], err)
		}
		head, err := protoir.LoadFile(args[1], protoir.WithStrictContextAccess(strictContextAccess))
		if err != nil {
			return fmt.Errorf("loading head %s: %w", args[1], err)
		}

		result := diff.Compare(base, head)
		if len(result.Changes) == 0 {
			fmt.Println("no differences")
			return nil
		}
		for _, change := range result.Sorted() {
			fmt.Printf("[%s] %s: %s\n", change.Severity, change.Kind, change.Detail)
		}
		fmt.Printf("\n%d breaking change(s)\n", result.BreakingCount)
		return nil
	},
}
