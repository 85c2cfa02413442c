// Package sink exports computed markup layouts in machine-readable form.
package sink

import (
	"encoding/json"

	"github.com/spanmark/spanmark/pkg/markup"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	compact bool
	noRows  bool
}

// WithJSONCompact emits the document on a single line instead of
// pretty-printing it.
func WithJSONCompact() JSONOption { return func(r *jsonRenderer) { r.compact = true } }

// WithoutJSONGroups omits the computed layout groups, leaving only the text
// and its sorted spans. Useful when the consumer runs its own layout.
func WithoutJSONGroups() JSONOption { return func(r *jsonRenderer) { r.noRows = true } }

type jsonOutput struct {
	Text   string      `json:"text"`
	Spans  []jsonSpan  `json:"spans"`
	Groups []jsonGroup `json:"groups,omitempty"`
}

type jsonSpan struct {
	Start int    `json:"start"`
	Stop  int    `json:"stop"`
	Type  string `json:"type,omitempty"`
}

type jsonGroup struct {
	Start int       `json:"start"`
	Stop  int       `json:"stop"`
	Rows  []jsonRow `json:"rows"`
}

type jsonRow struct {
	Level int    `json:"level"`
	Start int    `json:"start"`
	Stop  int    `json:"stop"`
	Type  string `json:"type,omitempty"`
}

// RenderJSON exports the document together with its resolved layout as a
// pretty-printed JSON document. The span list round-trips through
// [markup.DecodeJSON]; the groups block lets external tools draw the overlap
// structure without reimplementing level assignment.
func RenderJSON(m *markup.Markup, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{Text: m.Text()}
	for _, s := range m.Spans() {
		out.Spans = append(out.Spans, jsonSpan{Start: s.Start, Stop: s.Stop, Type: s.Type})
	}
	if !r.noRows {
		for _, g := range m.Groups() {
			jg := jsonGroup{Start: g.Start, Stop: g.Stop}
			for _, row := range g.Rows {
				jg.Rows = append(jg.Rows, jsonRow{Level: row.Level, Start: row.Start, Stop: row.Stop, Type: row.Type})
			}
			out.Groups = append(out.Groups, jg)
		}
	}

	if r.compact {
		return json.Marshal(out)
	}
	return json.MarshalIndent(out, "", "  ")
}
