package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// errInvalidValues signals that at least one value failed validation.
var errInvalidValues = errors.New("some values are invalid")

func newValidateCmd(log *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <kind> <value>...",
		Short: "Check values against a validator",
		Long: `Runs the named validator against every value and prints one line per value.
Empty values are accepted. Exits with a non-zero status if any value fails.

Kinds: ` + strings.Join(validator.Kinds(), ", "),
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, values := args[0], args[1:]
			fn, ok := validator.Lookup(kind)
			if !ok {
				return fmt.Errorf("%w: %q", validator.ErrUnknownKind, kind)
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, v := range values {
				if err := fn(nil, v); err != nil {
					failed++
					fmt.Fprintf(out, "%q: %v\n", v, err)
					continue
				}
				fmt.Fprintf(out, "%q: ok\n", v)
			}

			log.Debug("values validated", logger.Kind(kind), logger.Count(len(values)), slog.Int("failed", failed))
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", errInvalidValues, failed, len(values))
			}
			return nil
		},
	}
}

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List validator kinds",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, k := range validator.Kinds() {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
		},
	}
}
