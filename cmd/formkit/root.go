package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func newRootCmd(cfg Config, log *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "formkit",
		Short: "Form field validators and tree flattening",
		Long: `formkit checks form values against the username, password, mobile phone
and email rules, and flattens nested records into a list with children before
their parent.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newValidateCmd(log),
		newKindsCmd(),
		newFlattenCmd(cfg, log),
	)
	return root
}
