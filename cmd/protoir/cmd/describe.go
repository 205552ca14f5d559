package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	protoir "github.com/protoir/protoir"
	"github.com/protoir/protoir/internal/report"
)

var describeCmd = &cobra.Command{
	Use:   "describe <file>",
	Short: "Render a Markdown summary of a loaded protocol's types, traits, context, and PDUs",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		p, err := protoir.LoadFile(args[0], protoir.WithStrictContextAccess(strictContextAccess))
		if err != nil {
			return err
		}
		fmt.Print(report.Markdown(p))
		return nil
	},
}
