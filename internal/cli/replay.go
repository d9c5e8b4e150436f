package cli

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dragbox/pkg/config"
	"github.com/matzehuels/dragbox/pkg/errors"
	"github.com/matzehuels/dragbox/pkg/render/screen"
	"github.com/matzehuels/dragbox/pkg/render/snapshot"
	"github.com/matzehuels/dragbox/pkg/scenario"
)

// replayOpts holds the command-line flags for the replay command.
type replayOpts struct {
	render bool // print the final board
	steps  bool // print a table of every step
	json   bool // print the final snapshot as JSON instead
}

// replayCommand creates the replay command for running scenarios headlessly.
func (c *CLI) replayCommand() *cobra.Command {
	var opts replayOpts

	cmd := &cobra.Command{
		Use:   "replay <scenario.toml>...",
		Short: "Replay pointer scenarios and verify the resulting orders",
		Long: `Replay scripted pointer input against a board and compare each container's
final child order with the scenario's [[expect]] entries. The command fails
when any expectation is not met.`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeScenarios,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runReplay(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.render, "render", false, "print the final board")
	cmd.Flags().BoolVar(&opts.steps, "steps", false, "print a table of every step")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the final layout as JSON")
	return cmd
}

func (c *CLI) runReplay(ctx context.Context, paths []string, opts replayOpts) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	defer installHooks(c.Logger)()

	var failed int
	for i, path := range paths {
		if i > 0 {
			printNewline()
		}
		ok, err := c.replayOne(ctx, path, cfg, opts)
		if err != nil {
			return err
		}
		if !ok {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(paths))
	}
	return nil
}

// replayOne runs one scenario and prints its outcome. It reports whether the
// expectations held; load and run failures are returned as errors.
func (c *CLI) replayOne(ctx context.Context, path string, cfg config.Config, opts replayOpts) (bool, error) {
	res, err := runScenario(ctx, path, cfg)
	if err != nil {
		return false, err
	}
	defer res.Doc.Close()

	if opts.json {
		data, err := snapshot.RenderJSON(res.Doc,
			snapshot.WithJSONScenario(res.Scenario.Name),
			snapshot.WithJSONStep(len(res.Steps)-1))
		if err != nil {
			return false, err
		}
		fmt.Println(string(data))
		return res.Verify() == nil, nil
	}

	printInfo("Scenario %s", StyleHighlight.Render(res.Scenario.Name))
	if res.Scenario.Description != "" {
		printDetail("%s", res.Scenario.Description)
	}
	if opts.steps {
		fmt.Println(stepTable(res))
	}
	final := res.Final()
	for _, id := range slices.Sorted(maps.Keys(final)) {
		printKeyValue(id, strings.Join(final[id], " "))
	}
	if opts.render {
		fmt.Println(screen.Render(res.Doc, screen.Options{Theme: cfg.ScreenTheme()}))
	}

	if len(res.Scenario.Expect) == 0 {
		printWarning("%s has no [[expect]] entries", res.Scenario.Name)
	}
	verr := res.Verify()
	printStats(len(res.Steps), countReorders(res), verr == nil && len(res.Scenario.Expect) > 0)
	if verr != nil {
		printError("%s", StyleWarning.Render(errors.UserMessage(verr)))
		return false, nil
	}
	printSuccess("%s passed", res.Scenario.Name)
	return true, nil
}

// runScenario loads and runs the scenario at path with the configured widget
// options, logging to the command's logger.
func runScenario(ctx context.Context, path string, cfg config.Config) (*scenario.Result, error) {
	logger := loggerFromContext(ctx)
	sc, err := scenario.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded scenario", "path", path, "name", sc.Name, "steps", len(sc.Steps))

	prog := newProgress(logger, "replayed")
	res, err := scenario.Run(ctx, sc, cfg.WidgetOptions(logger))
	if err != nil {
		return nil, err
	}
	prog.done("scenario", sc.Name, "steps", len(res.Steps))
	return res, nil
}

// countReorders counts the steps that changed some container's order. The
// first step is not counted; pressing never reorders.
func countReorders(res *scenario.Result) int {
	n := 0
	for i := 1; i < len(res.Steps); i++ {
		if !maps.EqualFunc(res.Steps[i-1].Orders, res.Steps[i].Orders, func(a, b []string) bool {
			return slices.Equal(a, b)
		}) {
			n++
		}
	}
	return n
}

// formatOrders renders container orders as "row: a b c; col: d e".
func formatOrders(orders map[string][]string) string {
	parts := make([]string, 0, len(orders))
	for _, id := range slices.Sorted(maps.Keys(orders)) {
		parts = append(parts, id+": "+strings.Join(orders[id], " "))
	}
	return strings.Join(parts, "; ")
}

// stepTable renders one row per step.
func stepTable(res *scenario.Result) string {
	rows := make([][]string, len(res.Steps))
	for i, st := range res.Steps {
		prevented := ""
		if st.Prevented {
			prevented = "✓"
		}
		rows[i] = []string{
			strconv.Itoa(st.Index),
			st.Step.String(),
			st.Target,
			prevented,
			strings.Join(st.Dragging, " "),
			formatOrders(st.Orders),
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Input", "Target", "Prevented", "Dragging", "Orders").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 || col == 3 {
				return lipgloss.NewStyle().Foreground(colorDim).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	return t.Render()
}
