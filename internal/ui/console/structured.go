package console

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/gopak/minigrep/internal/config"
	"github.com/gopak/minigrep/internal/search"
)

type matchRecord struct {
	Line int    `json:"line" yaml:"line"`
	Text string `json:"text" yaml:"text"`
}

type countRecord struct {
	Count int `json:"count" yaml:"count"`
}

// structuredReporter buffers matches and encodes them as one JSON or YAML
// document on Flush.
type structuredReporter struct {
	w         io.Writer
	format    config.Format
	countOnly bool
	records   []matchRecord
}

func (r *structuredReporter) Line(m search.Match) {
	r.records = append(r.records, matchRecord{Line: m.Number, Text: m.Text})
}

func (r *structuredReporter) Flush() error {
	var doc any = r.records
	if r.records == nil {
		doc = []matchRecord{}
	}
	if r.countOnly {
		doc = countRecord{Count: len(r.records)}
	}
	if r.format == config.FormatYAML {
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
