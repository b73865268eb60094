package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/gopak/minigrep/internal/search"
)

type tableReporter struct {
	w         io.Writer
	countOnly bool
	matches   []search.Match
}

func (r *tableReporter) Line(m search.Match) { r.matches = append(r.matches, m) }

func (r *tableReporter) Flush() error {
	_, err := io.WriteString(r.w, renderTable(r.matches, r.countOnly))
	return err
}

func renderTable(matches []search.Match, countOnly bool) string {
	var b strings.Builder
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	if countOnly {
		tw.AppendHeader(table.Row{"Matches"})
		tw.AppendRow(table.Row{len(matches)})
	} else {
		tw.AppendHeader(table.Row{"Line", "Text"})
		tw.SetColumnConfigs([]table.ColumnConfig{{Number: 1, Align: text.AlignRight}})
		for _, m := range matches {
			tw.AppendRow(table.Row{m.Number, m.Text})
		}
		tw.AppendFooter(table.Row{"", fmt.Sprintf("%d matches", len(matches))})
	}
	b.WriteString(tw.Render())
	b.WriteString("\n")
	return b.String()
}
