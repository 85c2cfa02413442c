package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/spanmark/spanmark/pkg/markup"
	"github.com/spanmark/spanmark/pkg/render/ansi"
	"github.com/spanmark/spanmark/pkg/render/palette"
)

// newViewCmd creates the view command, an interactive pager that re-renders
// the colored diagram whenever the terminal is resized.
func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view [file]",
		Short: "Browse a rendered document interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, args[0])
		},
	}
}

func runView(cmd *cobra.Command, input string) error {
	cfg := configFromContext(cmd.Context())

	m, err := loadDocument(input)
	if err != nil {
		return err
	}

	model := newViewModel(input, m, cfg.Palette())
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

// viewModel is the bubbletea model for the view command. It keeps the parsed
// document and re-renders at the current terminal width on resize.
type viewModel struct {
	title    string
	markup   *markup.Markup
	palette  *palette.Palette
	viewport viewport.Model
	ready    bool
}

func newViewModel(title string, m *markup.Markup, p *palette.Palette) viewModel {
	return viewModel{
		title:   title,
		markup:  m,
		palette: p,
	}
}

func (m viewModel) Init() tea.Cmd {
	return nil
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		headerHeight := 2
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight
		}
		content := ansi.Render(m.markup, msg.Width, ansi.WithPalette(m.palette))
		m.viewport.SetContent(string(content))
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m viewModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render(m.title))
	b.WriteString("  ")
	b.WriteString(styleDim.Render("↑/↓ scroll  q quit"))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	return b.String()
}
