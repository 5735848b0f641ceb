package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/p-sodmann/ironweaver/pkg/codec"
)

// convertCommand creates the convert command for translating graph files
// between the JSON and binary container formats.
func (c *CLI) convertCommand() *cobra.Command {
	var (
		output string
		f16    bool
	)

	cmd := &cobra.Command{
		Use:   "convert [graph-file]",
		Short: "Convert a graph between JSON and binary formats",
		Long: `Convert a graph between JSON and binary formats.

The input format is detected from the file extension (.bin/.iwb are binary,
anything else JSON) and the output is written in the other format. Pass
--output to control the destination; the default swaps the extension.

With --f16 the binary output stores float attributes in half precision,
roughly halving the float payload at the cost of precision. This only
affects binary output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConvert(args[0], output, f16)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: input with swapped extension)")
	cmd.Flags().BoolVar(&f16, "f16", false, "store floats as half precision in binary output (lossy)")

	return cmd
}

func (c *CLI) runConvert(input, output string, f16 bool) error {
	g, _, err := loadGraph(input)
	if err != nil {
		return err
	}

	toBinary := !isBinaryPath(input)
	if output == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		if toBinary {
			output = base + ".iwb"
		} else {
			output = base + ".json"
		}
	}

	prog := newProgress(c.Logger)
	if toBinary {
		if f16 {
			err = codec.SaveBinaryF16(g, output)
		} else {
			err = codec.SaveBinary(g, output)
		}
	} else {
		if f16 {
			c.Logger.Warn("--f16 has no effect on JSON output")
		}
		err = codec.SaveJSON(g, output)
	}
	if err != nil {
		return fmt.Errorf("convert %s: %w", input, err)
	}
	prog.done(fmt.Sprintf("Converted %d nodes, %d edges", g.NodeCount(), g.EdgeCount()))

	printSuccess("Conversion complete")
	printFile(output)
	printStats(g.NodeCount(), g.EdgeCount(), false)
	printNewline()
	printNextStep("Inspect", appName+" stats "+output)

	return nil
}
