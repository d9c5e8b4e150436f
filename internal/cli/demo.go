package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/net/html"

	"github.com/matzehuels/dragbox/pkg/config"
	"github.com/matzehuels/dragbox/pkg/dom"
	"github.com/matzehuels/dragbox/pkg/widget"
)

const (
	boardID       = "board"
	tileHeight    = 3
	initialWidth  = 80
	initialHeight = 24
)

// demoCommand creates the demo command running the interactive board.
func (c *CLI) demoCommand() *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Drag tiles around an interactive board",
		Long: `Open a board of tiles in the terminal. Press a tile with the left mouse
button, drag it onto another tile and release: the tile moves before or after
the one under the pointer. Tiles come from the [board] section of the config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDemo(cmd.Context(), logFile)
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "", "log file (default $XDG_CACHE_HOME/dragbox/demo.log)")
	return cmd
}

func (c *CLI) runDemo(ctx context.Context, logFile string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	if logFile == "" {
		if logFile, err = defaultLogFile(); err != nil {
			return err
		}
	}
	logger, closer, err := newFileLogger(logFile, c.Logger.GetLevel())
	if err != nil {
		return err
	}
	defer closer.Close()

	defer installHooks(logger)()

	doc, err := newBoard(cfg, logger)
	if err != nil {
		return err
	}
	defer doc.Close()

	logger.Info("demo started", "tiles", len(cfg.Board.Tiles))
	model := NewBoardModel(doc, boardID, cfg.ScreenTheme(), cfg.Theme.Accent)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run board: %w", err)
	}

	printSuccess("Board closed")
	printDetail("log written to %s", logFile)
	printNewline()
	printNextStep("Replay a scripted drag", "dragbox replay --steps examples/scenarios/swap.toml")
	return nil
}

// newBoard creates a document holding the configured board.
func newBoard(cfg config.Config, logger *log.Logger) (*dom.Document, error) {
	reg := dom.NewRegistry()
	if err := widget.Register(reg, cfg.WidgetOptions(logger)); err != nil {
		return nil, err
	}
	doc := dom.NewDocument(reg, initialWidth, initialHeight)
	if _, err := doc.MountMarkup(boardMarkup(cfg.Board)); err != nil {
		doc.Close()
		return nil, err
	}
	return doc, nil
}

// boardMarkup renders the configured tiles as a drag-container of
// drag-boxes with ids tile-1, tile-2 and so on.
func boardMarkup(b config.BoardConfig) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<drag-container id=%q>`, boardID)
	for i, label := range b.Tiles {
		fmt.Fprintf(&sb, `<drag-box id="tile-%d" style="width: %d; height: %d; border: rounded; padding: 0 1">%s</drag-box>`,
			i+1, b.TileWidth, tileHeight, html.EscapeString(label))
	}
	sb.WriteString(`</drag-container>`)
	return sb.String()
}
