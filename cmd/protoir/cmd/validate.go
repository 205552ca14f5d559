package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	protoir "github.com/protoir/protoir"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Load a protocol document and report the first validation failure, if any",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		correlationID := uuid.NewString()
		logger.With("file", args[0], "correlation_id", correlationID).Info("loading protocol document")

		p, err := protoir.LoadFile(args[0], protoir.WithStrictContextAccess(strictContextAccess))
		if err != nil {
			logger.With("correlation_id", correlationID).Error("validation failed", "err", err)
			return err
		}

		fmt.Printf("%s: ok (%d types, %d traits, %d PDUs)\n", p.Name, len(p.Types()), len(p.Traits()), len(p.PDUs))
		return nil
	},
}
