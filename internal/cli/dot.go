package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/p-sodmann/ironweaver/pkg/export"
)

// dotCommand creates the dot command for Graphviz export.
func (c *CLI) dotCommand() *cobra.Command {
	var (
		output string
		name   string
	)

	cmd := &cobra.Command{
		Use:   "dot [graph-file]",
		Short: "Export a graph in Graphviz DOT format",
		Long: `Export a graph in Graphviz DOT format.

Writes to stdout unless --output is given. Node "label" and edge "type"
string attributes become DOT labels. Pipe the result into Graphviz:

  ironweaver dot graph.json | dot -Tsvg -o graph.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, _, err := loadGraph(args[0])
			if err != nil {
				return err
			}
			out := export.DOT(g, name)
			if output == "" {
				fmt.Print(out)
				return nil
			}
			if err := os.WriteFile(output, []byte(out), 0o644); err != nil {
				return fmt.Errorf("write dot file: %w", err)
			}
			printSuccess("DOT export complete")
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&name, "name", "", "digraph name (default: \"graph\")")

	return cmd
}
