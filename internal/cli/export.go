package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dragbox/pkg/buildinfo"
	"github.com/matzehuels/dragbox/pkg/cache"
	"github.com/matzehuels/dragbox/pkg/config"
	"github.com/matzehuels/dragbox/pkg/render/nodelink"
	"github.com/matzehuels/dragbox/pkg/render/screen"
	"github.com/matzehuels/dragbox/pkg/render/snapshot"
	"github.com/matzehuels/dragbox/pkg/scenario"
)

// Output formats of the export command.
const (
	formatDOT  = "dot"
	formatSVG  = "svg"
	formatPDF  = "pdf"
	formatPNG  = "png"
	formatJSON = "json"
	formatTXT  = "txt"
)

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{
	formatDOT: true, formatSVG: true, formatPDF: true,
	formatPNG: true, formatJSON: true, formatTXT: true,
}

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	output   string   // output file (single format) or base path (multiple)
	formats  []string // output formats
	detailed bool     // include rectangles and styles in diagram labels
	steps    int      // replay only the first n steps; negative means all
	scale    float64  // PNG scale factor
	noCache  bool     // render diagrams even when a cached copy exists
}

// exportCommand creates the export command for writing a replayed board.
func (c *CLI) exportCommand() *cobra.Command {
	var formatsStr string
	opts := exportOpts{steps: -1, scale: 2}

	cmd := &cobra.Command{
		Use:   "export <scenario.toml>",
		Short: "Export a replayed board as a diagram, snapshot or text",
		Long: `Replay a scenario and write the resulting element tree.

Formats:
  dot   Graphviz source of the element tree
  svg   element tree diagram (pdf and png need rsvg-convert)
  json  layout snapshot with rectangles and container orders
  txt   the board as drawn in the terminal

Use --steps to stop part way, for example while a tile is still dragged.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeScenarios,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return c.runExport(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format, - for stdout) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), dot, pdf, png, json, txt (comma-separated)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show rectangles and styles in diagram labels")
	cmd.Flags().IntVar(&opts.steps, "steps", opts.steps, "replay only the first n steps (default all)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "do not read or write the render cache")
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)
	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{formatSVG}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(strings.ToLower(f)); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return fmt.Errorf("invalid format: %s (must be one of dot, svg, pdf, png, json, txt)", f)
		}
	}
	return nil
}

func (c *CLI) runExport(ctx context.Context, input string, opts exportOpts) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	defer installHooks(c.Logger)()

	sc, err := scenario.Load(input)
	if err != nil {
		return err
	}
	if opts.steps >= 0 && opts.steps < len(sc.Steps) {
		c.Logger.Debugf("Replaying %d of %d steps", opts.steps, len(sc.Steps))
		sc.Steps = sc.Steps[:opts.steps]
	}
	res, err := scenario.Run(ctx, sc, cfg.WidgetOptions(c.Logger))
	if err != nil {
		return err
	}
	defer res.Doc.Close()

	rc, err := newCache(opts.noCache)
	if err != nil {
		return err
	}
	defer rc.Close()

	base := basePath(opts.output, input)
	var written []string
	for _, format := range opts.formats {
		prog := newProgress(c.Logger, "exported")
		data, err := c.exportData(ctx, rc, res, format, cfg, opts)
		if err != nil {
			return fmt.Errorf("%s: %w", format, err)
		}

		path := base + "." + format
		if len(opts.formats) == 1 && opts.output != "" {
			path = opts.output
		}
		out, err := openOutput(path)
		if err != nil {
			return err
		}
		_, werr := out.Write(data)
		cerr := out.Close()
		if werr != nil {
			return werr
		}
		if cerr != nil {
			return cerr
		}
		prog.done("format", format, "bytes", len(data))
		if path != "-" {
			written = append(written, path)
		}
	}

	if len(written) > 0 {
		printSuccess("Exported %s", res.Scenario.Name)
		for _, p := range written {
			printFile(p)
		}
	}
	return nil
}

// exportData renders the replayed board in one format. Diagram renders go
// through rc.
func (c *CLI) exportData(ctx context.Context, rc cache.Cache, res *scenario.Result, format string, cfg config.Config, opts exportOpts) ([]byte, error) {
	switch format {
	case formatTXT:
		text := screen.Render(res.Doc, screen.Options{Theme: cfg.ScreenTheme(), Plain: true})
		return []byte(text + "\n"), nil
	case formatJSON:
		return snapshot.RenderJSON(res.Doc,
			snapshot.WithJSONScenario(res.Scenario.Name),
			snapshot.WithJSONStep(len(res.Steps)-1))
	}

	dot := nodelink.ToDOT(res.Doc, nodelink.Options{Detailed: opts.detailed})
	if format == formatDOT {
		return []byte(dot), nil
	}

	key := cache.ArtifactKey(format, []byte(dot), opts.scale, buildinfo.Version)
	if data, ok, err := rc.Get(ctx, key); err != nil {
		c.Logger.Warn("render cache read failed", "err", err)
	} else if ok {
		c.Logger.Debugf("Using cached %s", format)
		return data, nil
	}

	data, err := renderDiagram(ctx, dot, format, opts.scale)
	if err != nil {
		return nil, err
	}
	if err := rc.Set(ctx, key, data, cache.DefaultTTL); err != nil {
		c.Logger.Warn("render cache write failed", "err", err)
	}
	return data, nil
}

// renderDiagram runs Graphviz on dot behind a spinner.
func renderDiagram(ctx context.Context, dot, format string, scale float64) ([]byte, error) {
	s := newRenderSpinner(ctx, os.Stderr, format)
	s.run()

	var (
		data []byte
		err  error
	)
	switch format {
	case formatSVG:
		data, err = nodelink.RenderSVG(ctx, dot)
	case formatPDF:
		data, err = nodelink.RenderPDF(ctx, dot)
	case formatPNG:
		data, err = nodelink.RenderPNG(ctx, dot, scale)
	default:
		err = fmt.Errorf("unknown format: %s", format)
	}

	switch {
	case err != nil && s.interrupted():
		s.stop()
		return nil, ctx.Err()
	case err != nil:
		s.fail()
		return nil, err
	}
	s.stop()
	return data, nil
}
