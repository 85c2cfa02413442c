package markup

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/BurntSushi/toml"

	"github.com/spanmark/spanmark/pkg/span"
)

// Document is the on-disk annotation format shared by the JSON and TOML
// codecs:
//
//	{
//	  "text": "hello world",
//	  "spans": [{"start": 0, "stop": 5, "type": "GREETING"}]
//	}
//
// or equivalently in TOML:
//
//	text = "hello world"
//
//	[[spans]]
//	start = 0
//	stop = 5
//	type = "GREETING"
//
// The "type" field is optional. Offsets are rune positions into text.
type Document struct {
	Text  string         `json:"text" toml:"text"`
	Spans []DocumentSpan `json:"spans" toml:"spans"`
}

// DocumentSpan is one span entry of a [Document]. Offsets decode as floats
// so that fractional values can be rejected explicitly instead of surfacing
// as an opaque unmarshal error.
type DocumentSpan struct {
	Start float64 `json:"start" toml:"start"`
	Stop  float64 `json:"stop" toml:"stop"`
	Type  string  `json:"type,omitempty" toml:"type,omitempty"`
}

// DecodeJSON parses a JSON annotation document and builds a validated
// [Markup] from it.
func DecodeJSON(data []byte) (*Markup, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return doc.Markup()
}

// DecodeTOML parses a TOML annotation document and builds a validated
// [Markup] from it.
func DecodeTOML(data []byte) (*Markup, error) {
	var doc Document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return doc.Markup()
}

// Markup validates the document's spans and constructs the [Markup].
// Fractional offsets fail with [span.ErrNonIntegerOffset]; everything else
// follows the [New] validation rules.
func (d Document) Markup() (*Markup, error) {
	spans := make([]span.Span, 0, len(d.Spans))
	for i, ds := range d.Spans {
		start, stop, err := ds.offsets()
		if err != nil {
			return nil, fmt.Errorf("span %d: %w", i, err)
		}
		s, err := span.New(start, stop, ds.Type)
		if err != nil {
			return nil, fmt.Errorf("span %d: %w", i, err)
		}
		spans = append(spans, s)
	}
	return New(d.Text, spans)
}

func (ds DocumentSpan) offsets() (start, stop int, err error) {
	if ds.Start != math.Trunc(ds.Start) || ds.Stop != math.Trunc(ds.Stop) {
		return 0, 0, fmt.Errorf("%w: got [%v, %v)", span.ErrNonIntegerOffset, ds.Start, ds.Stop)
	}
	return int(ds.Start), int(ds.Stop), nil
}
