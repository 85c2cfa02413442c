package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/spanmark/spanmark/pkg/markup"
	"github.com/spanmark/spanmark/pkg/render/ansi"
	"github.com/spanmark/spanmark/pkg/render/ascii"
	"github.com/spanmark/spanmark/pkg/render/html"
	"github.com/spanmark/spanmark/pkg/render/sink"
	"github.com/spanmark/spanmark/pkg/wrap"
)

// Output formats accepted by --format.
const (
	formatASCII = "ascii" // plain text diagram
	formatANSI  = "ansi"  // colored text diagram
	formatBox   = "box"   // HTML inline boxes
	formatLine  = "line"  // HTML underlines
	formatJSON  = "json"  // spans and layout groups as JSON
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string // output file path; empty means stdout
	format  string // one of the format constants; empty falls back to config
	width   int    // wrap width; 0 means config or terminal auto-detect
	labels  bool   // draw category labels in HTML output
	noColor bool   // disable coloring (ansi and box formats)
	compact bool   // single-line JSON output
}

// newRenderCmd creates the render command for drawing a document in one of
// the supported output formats.
func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render an annotation document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: ascii (default), ansi, box, line, json")
	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "wrap width (default: config, else terminal width)")
	cmd.Flags().BoolVar(&opts.labels, "labels", false, "draw category labels in HTML output")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colors")
	cmd.Flags().BoolVar(&opts.compact, "compact", false, "single-line JSON output")

	return cmd
}

func runRender(ctx context.Context, input string, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	format := opts.format
	if format == "" {
		format = cfg.Format
	}
	if opts.labels || cfg.Labels {
		opts.labels = true
	}

	m, err := loadDocument(input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded %s: %d runes, %d spans, %d groups",
		input, m.RuneLen(), len(m.Spans()), len(m.Groups()))

	width := resolveWidth(opts.width, cfg)
	logger.Debugf("Rendering as %s at width %d", format, width)

	p := newProgress(logger)
	data, err := renderDocument(m, format, width, cfg, opts)
	if err != nil {
		return err
	}

	out, closeOut, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer closeOut()

	if _, err := out.Write(data); err != nil {
		return err
	}
	if opts.output != "" {
		p.done(fmt.Sprintf("Generated %s", opts.output))
	}
	return nil
}

// renderDocument dispatches to the renderer selected by format.
func renderDocument(m *markup.Markup, format string, width int, cfg Config, opts renderOpts) ([]byte, error) {
	switch format {
	case formatASCII:
		return ascii.Render(m, width), nil
	case formatANSI:
		ansiOpts := []ansi.Option{ansi.WithPalette(cfg.Palette())}
		if opts.noColor {
			ansiOpts = append(ansiOpts, ansi.WithoutColor())
		}
		return ansi.Render(m, width, ansiOpts...), nil
	case formatBox, formatLine:
		htmlOpts := []html.Option{html.WithPalette(cfg.Palette())}
		if opts.labels {
			htmlOpts = append(htmlOpts, html.WithLabels())
		}
		if opts.noColor {
			htmlOpts = append(htmlOpts, html.WithoutColor())
		}
		if format == formatBox {
			return html.RenderBox(m, htmlOpts...), nil
		}
		return html.RenderLine(m, htmlOpts...), nil
	case formatJSON:
		var jsonOpts []sink.JSONOption
		if opts.compact {
			jsonOpts = append(jsonOpts, sink.WithJSONCompact())
		}
		return sink.RenderJSON(m, jsonOpts...)
	default:
		return nil, fmt.Errorf("unknown format: %s (must be ascii, ansi, box, line, or json)", format)
	}
}

// resolveWidth picks the wrap width: explicit flag, then config, then the
// terminal width when stdout is a terminal, then the package default.
func resolveWidth(flag int, cfg Config) int {
	if flag > 0 {
		return flag
	}
	if cfg.Width > 0 {
		return cfg.Width
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return wrap.DefaultWidth
}
