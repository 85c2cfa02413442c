// Package palette maps span categories to display colors.
//
// Colors are resolved through a plain lookup table, not dispatch: a
// [Palette] assigns one [Color] per category from a fixed pastel cycle, in
// the order categories are first seen, with explicit pins taking precedence.
// Two documents that mention the same categories in the same order therefore
// always color them identically.
package palette

// Color is one palette entry. The hex values are CSS colors used by the HTML
// renderers; Term is the ANSI-256 code the terminal renderer feeds to
// lipgloss. Line is the saturated stroke for underlines, Background the pale
// fill for boxes, with Darker and EvenDarker shades for borders and labels.
type Color struct {
	Line       string
	Background string
	Darker     string
	EvenDarker string
	Term       string
}

// Soft pastel cycle, assigned to categories in first-seen order.
var cycle = []Color{
	{Line: "#1f77b4", Background: "#aec7e8", Darker: "#9cb4cf", EvenDarker: "#71839b", Term: "75"},  // blue
	{Line: "#2ca02c", Background: "#98df8a", Darker: "#88c87c", EvenDarker: "#66965d", Term: "78"},  // green
	{Line: "#d62728", Background: "#ff9896", Darker: "#e58887", EvenDarker: "#ac6665", Term: "167"}, // red
	{Line: "#ff7f0e", Background: "#ffbb78", Darker: "#e5a86c", EvenDarker: "#ac7e51", Term: "214"}, // orange
	{Line: "#9467bd", Background: "#c5b0d5", Darker: "#b19ebf", EvenDarker: "#85778f", Term: "141"}, // purple
}

// Blue is the first cycle entry, used as the fixed underline shade by the
// labeled line renderer.
var Blue = cycle[0]

// Yellow is the neutral shade used when category coloring is disabled.
var Yellow = Color{
	Line:       "#bcbd22",
	Background: "#ffffb8",
	Darker:     "#e5e5a5",
	EvenDarker: "#acac7c",
	Term:       "221",
}

// names maps configuration color names to palette entries.
var names = map[string]Color{
	"blue":   cycle[0],
	"green":  cycle[1],
	"red":    cycle[2],
	"orange": cycle[3],
	"purple": cycle[4],
	"yellow": Yellow,
}

// Named looks up a palette entry by its configuration name: "blue", "green",
// "red", "orange", "purple", or "yellow".
func Named(name string) (Color, bool) {
	c, ok := names[name]
	return c, ok
}

// Palette assigns colors to categories on first use. The zero value is not
// usable; construct with [New].
type Palette struct {
	byType map[string]Color
	next   int
}

// New returns an empty palette ready for assignment.
func New() *Palette {
	return &Palette{byType: make(map[string]Color)}
}

// Set pins a category to a specific color, overriding the cycle. Pins made
// before the first Get for that category always win; pinning after the fact
// replaces the assigned color.
func (p *Palette) Set(category string, c Color) { p.byType[category] = c }

// Get returns the color for a category, assigning the next cycle color on
// first use. The untyped category ("") participates like any other.
func (p *Palette) Get(category string) Color {
	if c, ok := p.byType[category]; ok {
		return c
	}
	c := cycle[p.next%len(cycle)]
	p.next++
	p.byType[category] = c
	return c
}
