package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/tree"
)

func newFlattenCmd(cfg Config, log *slog.Logger) *cobra.Command {
	var (
		childrenKey string
		format      string
	)

	cmd := &cobra.Command{
		Use:   "flatten [file]",
		Short: "Flatten a YAML or JSON tree",
		Long: `Reads a list of nested records from a file (or stdin when no file or "-" is
given) and prints them as a flat list, children before their parent, with the
children field removed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := "-"
			if len(args) == 1 {
				src = args[0]
			}

			in := cmd.InOrStdin()
			if src != "-" {
				f, err := os.Open(src)
				if err != nil {
					return fmt.Errorf("open tree: %w", err)
				}
				defer f.Close()
				in = f
			}

			records, err := tree.ParseYAML(in)
			if err != nil {
				log.Error("failed to parse tree", logger.Source(src), logger.Error(err))
				return err
			}

			flat := tree.FlattenMaps(tree.WithData(records), tree.WithChildrenKey(childrenKey))
			log.Debug("tree flattened", logger.Source(src), logger.Count(len(flat)))

			return writeRecords(cmd.OutOrStdout(), format, flat)
		},
	}

	cmd.Flags().StringVarP(&childrenKey, "children-key", "k", cfg.ChildrenKey, "field holding child records")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	return cmd
}

func writeRecords(w io.Writer, format string, records []map[string]any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
