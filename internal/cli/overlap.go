package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spanmark/spanmark/pkg/render/overlap"
)

// overlapOpts holds the command-line flags for the overlap command.
type overlapOpts struct {
	output   string // output file path; empty means stdout
	format   string // "dot", "svg", or "png"
	detailed bool   // include levels and text excerpts in node labels
}

// newOverlapCmd creates the overlap command, a debugging aid that exports
// the span overlap structure as a Graphviz graph.
func newOverlapCmd() *cobra.Command {
	var opts overlapOpts

	cmd := &cobra.Command{
		Use:   "overlap [file]",
		Short: "Export the span overlap structure as a Graphviz graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOverlap(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "dot", "output format: dot (default), svg, png")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include levels and text excerpts in node labels")

	return cmd
}

func runOverlap(cmd *cobra.Command, input string, opts overlapOpts) error {
	logger := loggerFromContext(cmd.Context())

	m, err := loadDocument(input)
	if err != nil {
		return err
	}

	dot := overlap.ToDOT(m, overlap.Options{Detailed: opts.detailed})
	logger.Debugf("Overlap graph: %d groups", len(m.Groups()))

	var data []byte
	switch opts.format {
	case "dot":
		data = []byte(dot)
	case "svg":
		data, err = overlap.RenderSVG(dot)
	case "png":
		data, err = overlap.RenderPNG(dot)
	default:
		return fmt.Errorf("unknown format: %s (must be dot, svg, or png)", opts.format)
	}
	if err != nil {
		return err
	}

	out, closeOut, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer closeOut()

	_, err = out.Write(data)
	return err
}
