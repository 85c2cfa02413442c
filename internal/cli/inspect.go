package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

// excerptWidth caps the text excerpt column in the inspect table.
const excerptWidth = 32

// newInspectCmd creates the inspect command, which summarizes a document's
// spans and the overlap layout computed for them.
func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "Summarize a document's spans and layout groups",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0])
		},
	}
}

func runInspect(cmd *cobra.Command, input string) error {
	m, err := loadDocument(input)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	groups := m.Groups()

	fmt.Fprintln(out, styleTitle.Render(input))
	fmt.Fprintf(out, "%s runes, %s spans, %s groups\n\n",
		styleCount.Render(fmt.Sprint(m.RuneLen())),
		styleCount.Render(fmt.Sprint(len(m.Spans()))),
		styleCount.Render(fmt.Sprint(len(groups))))

	rows := make([][]string, 0, len(m.Spans()))
	for _, g := range groups {
		for _, r := range g.Rows {
			rows = append(rows, []string{
				fmt.Sprintf("[%d, %d)", g.Start, g.Stop),
				fmt.Sprint(r.Level),
				fmt.Sprintf("[%d, %d)", r.Start, r.Stop),
				r.Type,
				excerpt(m.Slice(r.Start, r.Stop)),
			})
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleDim).
		Headers("Group", "Level", "Span", "Type", "Text").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			return lipgloss.NewStyle()
		})

	fmt.Fprintln(out, t.Render())
	return nil
}

// excerpt flattens line breaks and truncates the text to the excerpt column
// width, measured in display cells.
func excerpt(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\t", " ")
	return runewidth.Truncate(s, excerptWidth, "…")
}
